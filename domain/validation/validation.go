// Package validation holds the pure field validators for tasks. Nothing in
// here touches storage; every function depends only on its arguments so the
// rules can be tested in isolation.
package validation

import (
	"strings"
	"time"
	"unicode/utf8"

	"taskapi/domain/apperr"
	"taskapi/domain/models"
)

const (
	MaxTitleLen       = 200
	MaxDescriptionLen = 1000
	MaxAssignedToLen  = 100
)

// NormalizeTitle trims surrounding whitespace and enforces the 1-200
// character range on the trimmed result.
func NormalizeTitle(raw string) (string, error) {
	title := strings.TrimSpace(raw)
	if title == "" {
		return "", apperr.InvalidField("title", "must not be empty or whitespace only")
	}
	if utf8.RuneCountInString(title) > MaxTitleLen {
		return "", apperr.InvalidField("title", "must be at most 200 characters")
	}
	return title, nil
}

// NormalizeDescription accepts the empty string; a non-empty description is
// capped at 1000 characters.
func NormalizeDescription(raw string) (string, error) {
	if utf8.RuneCountInString(raw) > MaxDescriptionLen {
		return "", apperr.InvalidField("description", "must be at most 1000 characters")
	}
	return raw, nil
}

func NormalizeAssignedTo(raw string) (string, error) {
	if utf8.RuneCountInString(raw) > MaxAssignedToLen {
		return "", apperr.InvalidField("assigned_to", "must be at most 100 characters")
	}
	return raw, nil
}

// ValidateDueDate requires ts to be strictly after now. A nil due date is
// always valid.
func ValidateDueDate(ts *time.Time, now time.Time) error {
	if ts == nil {
		return nil
	}
	if !ts.After(now) {
		return apperr.InvalidField("due_date", "must be in the future")
	}
	return nil
}

// ParseStatus rejects anything outside the closed status set, so an invalid
// value can never reach the store regardless of how the request was decoded.
func ParseStatus(raw string) (models.TaskStatus, error) {
	status := models.TaskStatus(raw)
	if !status.Valid() {
		return "", apperr.InvalidField("status", "must be one of pending, in_progress, completed, cancelled")
	}
	return status, nil
}

func ParsePriority(raw string) (models.TaskPriority, error) {
	priority := models.TaskPriority(raw)
	if !priority.Valid() {
		return "", apperr.InvalidField("priority", "must be one of low, medium, high, urgent")
	}
	return priority, nil
}
