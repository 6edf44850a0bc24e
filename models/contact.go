package models

import (
	"time"
)

// ContactSubmission is one contact-form submission captured from the
// marketing site.
type ContactSubmission struct {
	ID         string    `bson:"_id" json:"id"`
	Name       string    `bson:"name" json:"name"`
	Email      string    `bson:"email" json:"email"`
	Phone      string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Company    string    `bson:"company,omitempty" json:"company,omitempty"`
	Position   string    `bson:"position,omitempty" json:"position,omitempty"`
	Interest   string    `bson:"interest,omitempty" json:"interest,omitempty"`
	Budget     string    `bson:"budget,omitempty" json:"budget,omitempty"`
	Timeline   string    `bson:"timeline,omitempty" json:"timeline,omitempty"`
	Message    string    `bson:"message" json:"message"`
	Consent    bool      `bson:"consent" json:"consent"`
	Newsletter bool      `bson:"newsletter" json:"newsletter"`
	Source     string    `bson:"source" json:"source"`
	IPAddress  string    `bson:"ip_address,omitempty" json:"ip_address,omitempty"`
	UserAgent  string    `bson:"user_agent,omitempty" json:"user_agent,omitempty"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}

type ContactRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone,omitempty"`
	Company    string `json:"company,omitempty"`
	Position   string `json:"position,omitempty"`
	Interest   string `json:"interest,omitempty"`
	Budget     string `json:"budget,omitempty"`
	Timeline   string `json:"timeline,omitempty"`
	Message    string `json:"message" binding:"required"`
	Consent    bool   `json:"consent,omitempty"`
	Newsletter bool   `json:"newsletter,omitempty"`
	Source     string `json:"source,omitempty"`
}

type EngagementLevel string

const (
	EngagementLow    EngagementLevel = "low"
	EngagementMedium EngagementLevel = "medium"
	EngagementHigh   EngagementLevel = "high"
)

// LeadScore is derived from a contact submission at capture time.
type LeadScore struct {
	ID                    string          `bson:"_id" json:"id"`
	ContactID             string          `bson:"contact_id" json:"contact_id"`
	SessionID             string          `bson:"session_id,omitempty" json:"session_id,omitempty"`
	Score                 int             `bson:"score" json:"score"`
	EngagementLevel       EngagementLevel `bson:"engagement_level" json:"engagement_level"`
	ConversionProbability float64         `bson:"conversion_probability" json:"conversion_probability"`
	LastInteraction       time.Time       `bson:"last_interaction" json:"last_interaction"`
	CreatedAt             time.Time       `bson:"created_at" json:"created_at"`
}

// ScoredContact pairs a submission with its lead score for admin listings.
type ScoredContact struct {
	ContactSubmission `bson:",inline"`
	Score             int             `bson:"score" json:"score"`
	EngagementLevel   EngagementLevel `bson:"engagement_level" json:"engagement_level"`
}
