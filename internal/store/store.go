// Package store provides catalog storage interfaces and implementations.
package store

import (
	"context"
	"fmt"

	"github.com/vyrodovalexey/library-api/internal/model"
)

// NotFoundError is returned when no record with the requested ID exists.
type NotFoundError struct {
	ID int
}

// Error returns the not-found message with the requested ID.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("book with id %d not found", e.ID)
}

// DuplicateIDError is returned when adding a record whose ID is already taken.
type DuplicateIDError struct {
	ID int
}

// Error returns the duplicate-id message with the conflicting ID.
func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("book with id %d already exists", e.ID)
}

// Catalog defines the interface for book storage operations. Every record
// handed to Add or Replace must already have passed validation; the catalog
// never holds an invalid record.
type Catalog interface {
	// Add appends a new book to the catalog and returns the stored record.
	// Fails with *DuplicateIDError when the ID is already taken.
	Add(ctx context.Context, book model.Book) (*model.Book, error)

	// List returns all books in insertion order.
	List(ctx context.Context) ([]model.Book, error)

	// Get retrieves a book by its ID.
	Get(ctx context.Context, id int) (*model.Book, error)

	// Replace substitutes the book with the given ID in place and returns
	// the replacement.
	Replace(ctx context.Context, id int, book model.Book) (*model.Book, error)

	// Remove deletes the book with the given ID from the catalog and
	// returns the removed record.
	Remove(ctx context.Context, id int) (*model.Book, error)
}
