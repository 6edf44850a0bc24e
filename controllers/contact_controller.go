package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"zain-site-backend/models"
	"zain-site-backend/services"
)

type ContactController struct {
	contactService *services.ContactService
}

func NewContactController(contactService *services.ContactService) *ContactController {
	return &ContactController{
		contactService: contactService,
	}
}

// SubmitContact captures a contact-form submission.
func (cc *ContactController) SubmitContact(c *gin.Context) {
	var req models.ContactRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	contact, err := cc.contactService.Submit(c.Request.Context(), req, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to save submission",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":      contact.ID,
		"message": "Thank you for reaching out. Our team will get back to you shortly.",
	})
}

// ListContacts returns submissions with lead scores (admin).
func (cc *ContactController) ListContacts(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)
	offset, _ := strconv.ParseInt(c.DefaultQuery("offset", "0"), 10, 64)

	contacts, err := cc.contactService.List(c.Request.Context(), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve contacts",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"contacts": contacts,
		"count":    len(contacts),
	})
}
