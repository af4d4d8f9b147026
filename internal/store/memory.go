package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/vyrodovalexey/library-api/internal/model"
)

// MemoryCatalog implements Catalog with in-memory storage. Records are kept
// in insertion order in a slice and looked up by linear scan; the mutex
// covers every scan-and-mutate sequence so duplicate checks and replacements
// stay atomic under concurrent requests.
type MemoryCatalog struct {
	mu    sync.RWMutex
	books []model.Book
}

// NewMemoryCatalog creates an empty MemoryCatalog instance.
func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{
		books: make([]model.Book, 0),
	}
}

// Add appends a new book to the catalog. The catalog is left unchanged when
// the ID is already taken.
func (c *MemoryCatalog) Add(ctx context.Context, book model.Book) (*model.Book, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("add book: %w", ctx.Err())
	default:
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, existing := range c.books {
		if existing.ID == book.ID {
			return nil, &DuplicateIDError{ID: book.ID}
		}
	}

	c.books = append(c.books, book)

	return &book, nil
}

// List returns a copy of all books in insertion order. An empty catalog
// yields an empty slice, not an error.
func (c *MemoryCatalog) List(ctx context.Context) ([]model.Book, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("list books: %w", ctx.Err())
	default:
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	books := make([]model.Book, len(c.books))
	copy(books, c.books)

	return books, nil
}

// Get retrieves a book by its ID.
func (c *MemoryCatalog) Get(ctx context.Context, id int) (*model.Book, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("get book: %w", ctx.Err())
	default:
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, book := range c.books {
		if book.ID == id {
			found := book
			return &found, nil
		}
	}

	return nil, &NotFoundError{ID: id}
}

// Replace substitutes the book with the given ID in place, preserving its
// position in the ordering. The replacement's ID is stored as submitted and
// may differ from id. The catalog is left unchanged when no record matches.
func (c *MemoryCatalog) Replace(ctx context.Context, id int, book model.Book) (*model.Book, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("replace book: %w", ctx.Err())
	default:
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i, existing := range c.books {
		if existing.ID == id {
			c.books[i] = book
			return &book, nil
		}
	}

	return nil, &NotFoundError{ID: id}
}

// Remove deletes the book with the given ID, preserving the order of the
// remaining records, and returns the removed record. The catalog is left
// unchanged when no record matches.
func (c *MemoryCatalog) Remove(ctx context.Context, id int) (*model.Book, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("remove book: %w", ctx.Err())
	default:
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i, book := range c.books {
		if book.ID == id {
			removed := book
			c.books = append(c.books[:i], c.books[i+1:]...)
			return &removed, nil
		}
	}

	return nil, &NotFoundError{ID: id}
}
