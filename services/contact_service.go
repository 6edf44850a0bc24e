package services

import (
	"context"
	"fmt"
	"time"

	"zain-site-backend/models"
	"zain-site-backend/observability"
	"zain-site-backend/utils"
)

// ContactStore persists contact-form submissions and their derived lead
// scores.
type ContactStore interface {
	SaveContact(ctx context.Context, contact *models.ContactSubmission, score *models.LeadScore) error
	ListContacts(ctx context.Context, limit, offset int64) ([]models.ScoredContact, error)
}

type ContactService struct {
	store ContactStore
	sink  EventSink
}

func NewContactService(store ContactStore, sink EventSink) *ContactService {
	return &ContactService{store: store, sink: sink}
}

// Submit captures a contact-form submission, scores the lead, and emits a
// form_submit event.
func (s *ContactService) Submit(ctx context.Context, req models.ContactRequest, ip, userAgent string) (*models.ContactSubmission, error) {
	now := time.Now().UTC()

	contact := &models.ContactSubmission{
		ID:         utils.NewMessageID(),
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Company:    req.Company,
		Position:   req.Position,
		Interest:   req.Interest,
		Budget:     req.Budget,
		Timeline:   req.Timeline,
		Message:    req.Message,
		Consent:    req.Consent,
		Newsletter: req.Newsletter,
		Source:     req.Source,
		IPAddress:  ip,
		UserAgent:  userAgent,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if contact.Source == "" {
		contact.Source = "website"
	}

	score := ScoreLead(req)
	score.ID = utils.NewMessageID()
	score.ContactID = contact.ID
	score.LastInteraction = now
	score.CreatedAt = now

	if err := s.store.SaveContact(ctx, contact, score); err != nil {
		return nil, fmt.Errorf("failed to save contact: %w", err)
	}

	observability.RecordContact(string(score.EngagementLevel))

	s.sink.Track(ctx, &models.AnalyticsEvent{
		ID:       utils.NewMessageID(),
		Type:     "form_submit",
		Category: "contact",
		Action:   "submit",
		Label:    contact.Interest,
		Properties: map[string]interface{}{
			"contact_id":       contact.ID,
			"engagement_level": score.EngagementLevel,
		},
		CreatedAt: now,
	})

	return contact, nil
}

// List returns submissions joined with their lead scores, newest first.
func (s *ContactService) List(ctx context.Context, limit, offset int64) ([]models.ScoredContact, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.store.ListContacts(ctx, limit, offset)
}

// ScoreLead derives a lead score from submission data quality. The weights
// are fixed: company +10, position +15, phone +10, committed budget +20,
// committed timeline +15, substantial message +20. Levels: high at 60,
// medium at 30, low below.
func ScoreLead(req models.ContactRequest) *models.LeadScore {
	score := 0
	if req.Company != "" {
		score += 10
	}
	if req.Position != "" {
		score += 15
	}
	if req.Phone != "" {
		score += 10
	}
	if req.Budget != "" && req.Budget != "discuss" {
		score += 20
	}
	if req.Timeline != "" && req.Timeline != "planning" {
		score += 15
	}
	if len(req.Message) > 100 {
		score += 20
	}

	level := models.EngagementLow
	if score >= 60 {
		level = models.EngagementHigh
	} else if score >= 30 {
		level = models.EngagementMedium
	}

	return &models.LeadScore{
		Score:                 score,
		EngagementLevel:       level,
		ConversionProbability: float64(score) / 100,
	}
}
