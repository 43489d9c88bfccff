package models

// CheckResponse is returned by every successful check endpoint.
type CheckResponse struct {
	CheckID   string                      `json:"check_id"`
	Source    string                      `json:"source"`
	RequestID string                      `json:"request_id"`
	Event     FeatureCreationRequestEvent `json:"event"`
}

// PutResourceResponse is returned by PUT /resources/*name.
// Created is false when an existing resource was replaced.
type PutResourceResponse struct {
	Name      string `json:"name"`
	RequestID string `json:"request_id"`
	Created   bool   `json:"created"`
}
