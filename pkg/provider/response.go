package provider

import "time"

// Status is the outcome of a translation call.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
	StatusPending Status = "pending"
)

// Metadata carries provider-specific extras attached to a response.
type Metadata map[string]any

// Response is the standardized result of a translation call. Responses are
// created fresh per call, never mutated afterwards, and owned by the caller.
type Response struct {
	TranslatedText string    `json:"translated_text"`
	SourceLang     string    `json:"source_lang"`
	TargetLang     string    `json:"target_lang"`
	Provider       string    `json:"provider"`
	CharCount      int       `json:"char_count"`
	Status         Status    `json:"status"`
	Error          string    `json:"error,omitempty"`
	RequestID      string    `json:"request_id"`
	Timestamp      time.Time `json:"timestamp"`
	Metadata       Metadata  `json:"metadata,omitempty"`
}

// OK reports whether the translation succeeded.
func (r Response) OK() bool {
	return r.Status == StatusSuccess
}
