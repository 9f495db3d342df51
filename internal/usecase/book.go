package usecase

import (
	"context"

	"bookshelf/internal/entity"
)

// BookStore is the durable collection behind the shelf.
// Duplicate policy is not enforced here; callers own it.
type BookStore interface {
	// List returns every stored book in insertion order. An absent or
	// unreadable slot yields an empty slice, not an error.
	List(ctx context.Context) ([]entity.Book, error)
	Add(ctx context.Context, b entity.Book) error
	// Remove drops every book with the given ISBN.
	Remove(ctx context.Context, isbn string) error
	// Update replaces, in place, every book whose ISBN equals oldISBN.
	Update(ctx context.Context, b entity.Book, oldISBN string) error
	// Clear deletes the whole collection.
	Clear(ctx context.Context) error
}

// Form is what the user typed into the three shelf fields.
type Form struct {
	Title  string `validate:"required"`
	Author string `validate:"required"`
	ISBN   string `validate:"required"`
}

// Book converts the form into a shelf entry.
func (f Form) Book() entity.Book {
	return entity.Book{Title: f.Title, Author: f.Author, ISBN: f.ISBN}
}

// FormFromBook pre-fills a form, as the edit action does.
func FormFromBook(b entity.Book) Form {
	return Form{Title: b.Title, Author: b.Author, ISBN: b.ISBN}
}
