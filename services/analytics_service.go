package services

import (
	"context"
	"time"

	"zain-site-backend/models"
	"zain-site-backend/observability"
	"zain-site-backend/utils"
)

// AnalyticsStore is the durable side of the event sink plus the read
// models backing the admin endpoints.
type AnalyticsStore interface {
	EventSink
	Aggregate(ctx context.Context, from, to time.Time, eventType string) ([]models.EventCount, error)
	Stats(ctx context.Context) (*models.StoreStats, error)
	Export(ctx context.Context) (*models.DataExport, error)
}

// webVitalTypes are the performance-observer metrics the site reports as
// ordinary analytics events; they are additionally mirrored to Prometheus.
var webVitalTypes = map[string]bool{
	"lcp":            true,
	"fid":            true,
	"cls":            true,
	"page_load_time": true,
	"dom_ready_time": true,
}

type AnalyticsService struct {
	store AnalyticsStore
}

func NewAnalyticsService(store AnalyticsStore) *AnalyticsService {
	return &AnalyticsService{store: store}
}

// Track accepts one event. Fire-and-forget: the store logs its own
// failures and nothing propagates to the caller.
func (s *AnalyticsService) Track(ctx context.Context, req models.EventRequest) {
	event := &models.AnalyticsEvent{
		ID:         utils.NewMessageID(),
		SessionID:  req.SessionID,
		Type:       req.Type,
		Category:   req.Category,
		Action:     req.Action,
		Label:      req.Label,
		Value:      req.Value,
		PageURL:    req.PageURL,
		Properties: req.Properties,
		CreatedAt:  time.Now().UTC(),
	}

	observability.RecordEvent(event.Type)
	if webVitalTypes[event.Type] {
		observability.RecordWebVital(event.Type, event.Value)
	}

	s.store.Track(ctx, event)
}

// TrackBatch accepts a page's worth of buffered events in one call.
func (s *AnalyticsService) TrackBatch(ctx context.Context, reqs []models.EventRequest) {
	for _, req := range reqs {
		s.Track(ctx, req)
	}
}

// Aggregate returns event counts grouped by type, category and day.
func (s *AnalyticsService) Aggregate(ctx context.Context, from, to time.Time, eventType string) ([]models.EventCount, error) {
	if to.IsZero() {
		to = time.Now().UTC()
	}
	if from.IsZero() {
		from = to.AddDate(0, -1, 0)
	}
	return s.store.Aggregate(ctx, from, to, eventType)
}

func (s *AnalyticsService) Stats(ctx context.Context) (*models.StoreStats, error) {
	return s.store.Stats(ctx)
}

func (s *AnalyticsService) Export(ctx context.Context) (*models.DataExport, error) {
	return s.store.Export(ctx)
}
