package model

import (
	"errors"
	"testing"
)

func validBook() Book {
	return Book{
		ID:     1,
		Title:  "The Go Programming Language",
		Author: "Alan A. A. Donovan",
		Year:   2015,
		ISBN:   "9780134190440",
	}
}

func TestBook_Validate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(b *Book)
		wantField string
	}{
		{
			name:   "valid book",
			modify: func(_ *Book) {},
		},
		{
			name:   "valid book with 10 char isbn",
			modify: func(b *Book) { b.ISBN = "0134190440" },
		},
		{
			// 10 characters but 11 bytes; length is counted in characters.
			name:   "multi-byte 10 char isbn",
			modify: func(b *Book) { b.ISBN = "é234567890" },
		},
		{
			name:   "multi-byte 13 char isbn",
			modify: func(b *Book) { b.ISBN = "é234567890123" },
		},
		{
			name:   "empty author is allowed",
			modify: func(b *Book) { b.Author = "" },
		},
		{
			name:   "year at lower bound",
			modify: func(b *Book) { b.Year = 1000 },
		},
		{
			name:   "year at upper bound",
			modify: func(b *Book) { b.Year = 2026 },
		},
		{
			name:      "empty title",
			modify:    func(b *Book) { b.Title = "" },
			wantField: "title",
		},
		{
			name:      "year below lower bound",
			modify:    func(b *Book) { b.Year = 999 },
			wantField: "year",
		},
		{
			name:      "year above upper bound",
			modify:    func(b *Book) { b.Year = 2027 },
			wantField: "year",
		},
		{
			name:      "negative year",
			modify:    func(b *Book) { b.Year = -100 },
			wantField: "year",
		},
		{
			name:      "isbn too short",
			modify:    func(b *Book) { b.ISBN = "123456789" },
			wantField: "isbn",
		},
		{
			name:      "isbn between valid lengths",
			modify:    func(b *Book) { b.ISBN = "12345678901" },
			wantField: "isbn",
		},
		{
			name:      "isbn too long",
			modify:    func(b *Book) { b.ISBN = "12345678901234" },
			wantField: "isbn",
		},
		{
			name:      "empty isbn",
			modify:    func(b *Book) { b.ISBN = "" },
			wantField: "isbn",
		},
		{
			// 10 bytes but only 9 characters.
			name:      "multi-byte isbn short by characters",
			modify:    func(b *Book) { b.ISBN = "é23456789" },
			wantField: "isbn",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			book := validBook()
			tt.modify(&book)

			// Act
			err := book.Validate()

			// Assert
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}

			if err == nil {
				t.Fatal("Validate() expected error, got nil")
			}

			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("Validate() error type = %T, want *ValidationError", err)
			}
			if vErr.Field != tt.wantField {
				t.Errorf("Field = %s, want %s", vErr.Field, tt.wantField)
			}
			if vErr.Reason == "" {
				t.Error("Reason should not be empty")
			}
		})
	}
}

func TestBook_Validate_FirstFailureWins(t *testing.T) {
	// Arrange: every field invalid at once
	book := Book{
		ID:    1,
		Title: "",
		Year:  0,
		ISBN:  "bad",
	}

	// Act
	err := book.Validate()

	// Assert: title is checked first
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("Validate() error type = %T, want *ValidationError", err)
	}
	if vErr.Field != "title" {
		t.Errorf("Field = %s, want title", vErr.Field)
	}
}

func TestBook_Validate_NoTrimming(t *testing.T) {
	// A whitespace-only title has non-zero length and must be accepted as-is.
	book := validBook()
	book.Title = "   "

	if err := book.Validate(); err != nil {
		t.Fatalf("Validate() unexpected error: %v", err)
	}
}

func TestValidationError_Error(t *testing.T) {
	// Arrange
	err := &ValidationError{Field: "year", Reason: "must be between 1000 and 2026"}

	// Assert
	want := "year must be between 1000 and 2026"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestNewSuccessResponse(t *testing.T) {
	// Act
	resp := NewSuccessResponse(validBook())

	// Assert
	if !resp.Success {
		t.Error("Success should be true")
	}
	if resp.Error != "" {
		t.Errorf("Error = %q, want empty", resp.Error)
	}
	if resp.Data.ID != 1 {
		t.Errorf("Data.ID = %d, want 1", resp.Data.ID)
	}
}

func TestNewErrorResponse(t *testing.T) {
	// Act
	resp := NewErrorResponse[Book]("something failed")

	// Assert
	if resp.Success {
		t.Error("Success should be false")
	}
	if resp.Error != "something failed" {
		t.Errorf("Error = %q, want %q", resp.Error, "something failed")
	}
}

func TestNewCatalogEvent(t *testing.T) {
	// Act
	event := NewCatalogEvent(EventBookCreated, validBook())

	// Assert
	if event.Type != EventBookCreated {
		t.Errorf("Type = %s, want %s", event.Type, EventBookCreated)
	}
	if event.Book.ID != 1 {
		t.Errorf("Book.ID = %d, want 1", event.Book.ID)
	}
	if event.Timestamp.IsZero() {
		t.Error("Timestamp should be set")
	}
}
