package store

import "github.com/vyrodovalexey/library-api/internal/model"

// SeedBooks returns example books to pre-populate the catalog.
func SeedBooks() []model.Book {
	return []model.Book{
		{
			ID:     1,
			Title:  "The Go Programming Language",
			Author: "Alan A. A. Donovan",
			Year:   2015,
			ISBN:   "9780134190440",
		},
		{
			ID:     2,
			Title:  "Introducing Go",
			Author: "Caleb Doxsey",
			Year:   2016,
			ISBN:   "9781491941959",
		},
		{
			ID:     3,
			Title:  "Concurrency in Go",
			Author: "Katherine Cox-Buday",
			Year:   2017,
			ISBN:   "9781491941195",
		},
	}
}
