package models

import "strings"

// StatusKind classifies a status message for the banner
type StatusKind string

const (
	StatusNone    StatusKind = ""
	StatusError   StatusKind = "error"
	StatusSuccess StatusKind = "success"
)

// ClassifyStatus returns StatusError when the message mentions "error" or
// "failed" in any case, StatusNone for an empty message, and StatusSuccess
// otherwise.
func ClassifyStatus(msg string) StatusKind {
	if msg == "" {
		return StatusNone
	}
	lower := strings.ToLower(msg)
	if strings.Contains(lower, "error") || strings.Contains(lower, "failed") {
		return StatusError
	}
	return StatusSuccess
}
