package store

import (
	"context"
	"encoding/json"
	"fmt"

	"bookshelf/internal/entity"
)

// Shelf is the book collection kept in a single Slot. Every mutation reads
// the whole collection and writes it back in full.
type Shelf struct {
	slot Slot
}

func NewShelf(slot Slot) *Shelf {
	return &Shelf{slot: slot}
}

func (s *Shelf) List(ctx context.Context) ([]entity.Book, error) {
	raw, ok, err := s.slot.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	if !ok {
		return []entity.Book{}, nil
	}
	return decodeBooks(raw), nil
}

func (s *Shelf) Add(ctx context.Context, b entity.Book) error {
	books, err := s.List(ctx)
	if err != nil {
		return err
	}
	return s.write(ctx, append(books, b))
}

func (s *Shelf) Remove(ctx context.Context, isbn string) error {
	books, err := s.List(ctx)
	if err != nil {
		return err
	}
	kept := make([]entity.Book, 0, len(books))
	for _, b := range books {
		if b.ISBN != isbn {
			kept = append(kept, b)
		}
	}
	if len(kept) == len(books) {
		return nil
	}
	return s.write(ctx, kept)
}

// Update leaves the slot untouched when no book carries oldISBN.
func (s *Shelf) Update(ctx context.Context, b entity.Book, oldISBN string) error {
	books, err := s.List(ctx)
	if err != nil {
		return err
	}
	matched := false
	for i := range books {
		if books[i].ISBN == oldISBN {
			books[i] = b
			matched = true
		}
	}
	if !matched {
		return nil
	}
	return s.write(ctx, books)
}

// Clear deletes the slot rather than writing an empty collection.
func (s *Shelf) Clear(ctx context.Context) error {
	if err := s.slot.Delete(ctx); err != nil {
		return fmt.Errorf("clear books: %w", err)
	}
	return nil
}

func (s *Shelf) write(ctx context.Context, books []entity.Book) error {
	raw, err := json.Marshal(books)
	if err != nil {
		return fmt.Errorf("encode books: %w", err)
	}
	if err := s.slot.Set(ctx, string(raw)); err != nil {
		return fmt.Errorf("write books: %w", err)
	}
	return nil
}

// decodeBooks treats anything that is not a JSON array of book objects as an
// empty collection.
func decodeBooks(raw string) []entity.Book {
	var books []entity.Book
	if err := json.Unmarshal([]byte(raw), &books); err != nil || books == nil {
		return []entity.Book{}
	}
	return books
}
