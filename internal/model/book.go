// Package model defines data structures used throughout the application.
package model

import (
	"fmt"
	"time"
	"unicode/utf8"
)

// Year bounds for a catalog record.
const (
	MinYear = 1000
	MaxYear = 2026
)

// Valid ISBN lengths (character count, not checksum).
const (
	ISBNLength10 = 10
	ISBNLength13 = 13
)

// ValidationError describes the first field that failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

// Error returns the field and reason as a single message.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// Book represents a single catalog entry. The ID is caller-supplied and
// unique within the catalog.
type Book struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   int    `json:"year"`
	ISBN   string `json:"isbn"`
}

// Validate checks field constraints in a fixed order: title, year, isbn.
// The first failing field wins. Values are not normalized; accepted records
// are stored exactly as submitted.
func (b *Book) Validate() error {
	if b.Title == "" {
		return &ValidationError{Field: "title", Reason: "must not be empty"}
	}

	if b.Year < MinYear || b.Year > MaxYear {
		return &ValidationError{
			Field:  "year",
			Reason: fmt.Sprintf("must be between %d and %d", MinYear, MaxYear),
		}
	}

	if n := utf8.RuneCountInString(b.ISBN); n != ISBNLength10 && n != ISBNLength13 {
		return &ValidationError{
			Field:  "isbn",
			Reason: fmt.Sprintf("must be exactly %d or %d characters", ISBNLength10, ISBNLength13),
		}
	}

	return nil
}

// APIResponse is a generic wrapper for API responses.
type APIResponse[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// NewSuccessResponse creates a successful API response.
func NewSuccessResponse[T any](data T) APIResponse[T] {
	return APIResponse[T]{
		Success: true,
		Data:    data,
	}
}

// NewErrorResponse creates an error API response.
func NewErrorResponse[T any](errMsg string) APIResponse[T] {
	return APIResponse[T]{
		Success: false,
		Error:   errMsg,
	}
}

// ErrorResponse represents an error response structure.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// CatalogEvent represents a catalog change sent over the WebSocket feed.
type CatalogEvent struct {
	Type      string    `json:"type"`
	Book      Book      `json:"book"`
	Timestamp time.Time `json:"timestamp"`
}

// Catalog event types.
const (
	EventBookCreated  = "book_created"
	EventBookReplaced = "book_replaced"
	EventBookRemoved  = "book_removed"
)

// NewCatalogEvent creates a catalog change event for the given book.
func NewCatalogEvent(eventType string, book Book) CatalogEvent {
	return CatalogEvent{
		Type:      eventType,
		Book:      book,
		Timestamp: time.Now().UTC(),
	}
}
