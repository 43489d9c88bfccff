package models

import (
	"fmt"
	"time"
)

// FeatureCreationRequestEvent asks the platform to ingest one new feature.
// Validation tags use gin's "binding" key so the same rules apply to HTTP bodies
// and to payloads loaded from resources.
type FeatureCreationRequestEvent struct {
	RequestID    string                          `json:"requestId" binding:"required"`
	RequestOwner string                          `json:"requestOwner" binding:"required"`
	RequestDate  time.Time                       `json:"requestDate" binding:"required"`
	MessageType  string                          `json:"messageType,omitempty"`
	Metadata     *FeatureCreationSessionMetadata `json:"metadata" binding:"required"`
	Feature      *Feature                        `json:"feature" binding:"required"`
}

// FeatureCreationSessionMetadata groups the ingestion session the request belongs to.
type FeatureCreationSessionMetadata struct {
	SessionOwner   string            `json:"sessionOwner" binding:"required"`
	Session        string            `json:"session" binding:"required"`
	Priority       string            `json:"priority,omitempty" binding:"omitempty,oneof=LOW NORMAL HIGH"`
	Override       bool              `json:"override"`
	UpdateIfExists bool              `json:"updateIfExists"`
	Storages       []StorageMetadata `json:"storages,omitempty" binding:"dive"`
}

// StorageMetadata names a storage location files should be copied to.
type StorageMetadata struct {
	PluginBusinessID string   `json:"pluginBusinessId" binding:"required"`
	SubDirectory     string   `json:"subDirectory,omitempty"`
	TargetTypes      []string `json:"targetTypes,omitempty"`
}

// String renders the event on a single line for debug traces.
func (e FeatureCreationRequestEvent) String() string {
	session := "<none>"
	if e.Metadata != nil {
		session = e.Metadata.SessionOwner + "/" + e.Metadata.Session
	}
	feature := "<none>"
	if e.Feature != nil {
		feature = e.Feature.String()
	}
	return fmt.Sprintf(
		"FeatureCreationRequestEvent{requestId=%s owner=%s date=%s session=%s feature=%s}",
		e.RequestID,
		e.RequestOwner,
		e.RequestDate.UTC().Format(time.RFC3339),
		session,
		feature,
	)
}
