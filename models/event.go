package models

import (
	"time"
)

// AnalyticsEvent is one fire-and-forget event from the site: page views,
// widget interactions, form engagement, web-vitals samples. The sink never
// acknowledges and callers never wait on it.
type AnalyticsEvent struct {
	ID         string                 `bson:"_id" json:"id"`
	SessionID  string                 `bson:"session_id" json:"session_id"`
	Type       string                 `bson:"event_type" json:"event_type"`
	Category   string                 `bson:"event_category,omitempty" json:"event_category,omitempty"`
	Action     string                 `bson:"event_action,omitempty" json:"event_action,omitempty"`
	Label      string                 `bson:"event_label,omitempty" json:"event_label,omitempty"`
	Value      float64                `bson:"event_value,omitempty" json:"event_value,omitempty"`
	PageURL    string                 `bson:"page_url,omitempty" json:"page_url,omitempty"`
	Properties map[string]interface{} `bson:"user_properties,omitempty" json:"user_properties,omitempty"`
	CreatedAt  time.Time              `bson:"created_at" json:"created_at"`
}

type EventRequest struct {
	SessionID  string                 `json:"session_id" binding:"required"`
	Type       string                 `json:"event_type" binding:"required"`
	Category   string                 `json:"event_category,omitempty"`
	Action     string                 `json:"event_action,omitempty"`
	Label      string                 `json:"event_label,omitempty"`
	Value      float64                `json:"event_value,omitempty"`
	PageURL    string                 `json:"page_url,omitempty"`
	Properties map[string]interface{} `json:"user_properties,omitempty"`
}

// EventCount is one row of the analytics aggregation: events grouped by
// type, category and day.
type EventCount struct {
	Type     string `bson:"event_type" json:"event_type"`
	Category string `bson:"event_category,omitempty" json:"event_category,omitempty"`
	Date     string `bson:"date" json:"date"`
	Count    int64  `bson:"count" json:"count"`
}

// StoreStats reports per-collection document counts for the admin stats
// endpoint.
type StoreStats struct {
	Contacts      int64 `json:"contacts"`
	Conversations int64 `json:"conversations"`
	Messages      int64 `json:"messages"`
	Events        int64 `json:"events"`
}

// DataExport bundles everything the admin export endpoint returns.
type DataExport struct {
	ExportedAt    time.Time       `json:"exported_at"`
	Version       string          `json:"version"`
	Contacts      []ScoredContact `json:"contacts"`
	Conversations []Conversation  `json:"conversations"`
	Messages      []Message       `json:"messages"`
	Analytics     []EventCount    `json:"analytics"`
}
