// Package controller reacts to shelf events (page load, submit, delete, edit,
// clear-all), applies validation and the duplicate policy, and drives the
// store and the view in lockstep.
package controller

import (
	"context"
	"errors"
	"fmt"

	"bookshelf/internal/entity"
	"bookshelf/internal/usecase"

	"github.com/go-playground/validator/v10"
)

// User-facing messages.
const (
	MsgFillAllFields = "Please fill all the fields"
	MsgDuplicate     = "Book with same title and isbn already exists"
	MsgAdded         = "Book Added"
	MsgUpdated       = "Book Updated"
	MsgDeleted       = "Book Deleted"
	MsgCleared       = "All books cleared"
)

var (
	// ErrValidation is returned by Submit when a field is empty.
	ErrValidation = errors.New("please fill all the fields")
	// ErrDuplicate is returned by Submit when a book with the same title or
	// ISBN is already listed.
	ErrDuplicate = errors.New("book with same title or isbn already exists")
)

// Mode is the state of the form.
type Mode int

const (
	ModeAdding Mode = iota
	ModeEditing
)

func (m Mode) String() string {
	switch m {
	case ModeAdding:
		return "adding"
	case ModeEditing:
		return "editing"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Session is the edit state of the single form.
type Session struct {
	Mode        Mode
	EditingISBN string
}

// Row pairs a rendered row with the book it shows.
type Row struct {
	Handle usecase.RowHandle
	Book   entity.Book
}

// Controller is not safe for concurrent use; run its methods on one
// goroutine (see package loop).
type Controller struct {
	store    usecase.BookStore
	view     usecase.View
	validate *validator.Validate

	session Session
	rows    []Row
}

func New(store usecase.BookStore, view usecase.View) *Controller {
	return &Controller{
		store:    store,
		view:     view,
		validate: validator.New(),
	}
}

// Session returns the current edit state.
func (c *Controller) Session() Session {
	return c.session
}

// Rows returns the books currently on the page, in order.
func (c *Controller) Rows() []Row {
	return append([]Row(nil), c.rows...)
}

// RowsByISBN returns the rows showing a book with the given ISBN.
func (c *Controller) RowsByISBN(isbn string) []Row {
	var out []Row
	for _, r := range c.rows {
		if r.Book.ISBN == isbn {
			out = append(out, r)
		}
	}
	return out
}

// Load renders every stored book, replacing whatever the page showed.
func (c *Controller) Load(ctx context.Context) error {
	return c.reload(ctx)
}

// Submit handles the form. Validation and duplicate failures are shown to
// the user and returned as ErrValidation and ErrDuplicate.
func (c *Controller) Submit(ctx context.Context, form usecase.Form) error {
	c.view.FillInputs(form)

	if err := c.validate.Struct(form); err != nil {
		c.view.Notify(MsgFillAllFields, usecase.SeverityDanger)
		return ErrValidation
	}

	if c.session.Mode == ModeEditing {
		return c.submitEdit(ctx, form.Book())
	}
	return c.submitAdd(ctx, form.Book())
}

func (c *Controller) submitEdit(ctx context.Context, b entity.Book) error {
	if err := c.store.Update(ctx, b, c.session.EditingISBN); err != nil {
		return fmt.Errorf("update book %q: %w", c.session.EditingISBN, err)
	}
	if err := c.reload(ctx); err != nil {
		return err
	}
	c.view.Notify(MsgUpdated, usecase.SeveritySuccess)
	c.session = Session{Mode: ModeAdding}
	c.view.ClearInputs()
	return nil
}

func (c *Controller) submitAdd(ctx context.Context, b entity.Book) error {
	if c.listed(b) {
		c.view.Notify(MsgDuplicate, usecase.SeverityDanger)
		return ErrDuplicate
	}
	handle := c.view.RenderAppend(b)
	c.rows = append(c.rows, Row{Handle: handle, Book: b})
	if err := c.store.Add(ctx, b); err != nil {
		// Take the unsaved row back off the page so a retry is not a duplicate.
		c.view.RemoveRow(handle)
		c.rows = c.rows[:len(c.rows)-1]
		return fmt.Errorf("add book %q: %w", b.ISBN, err)
	}
	c.view.Notify(MsgAdded, usecase.SeveritySuccess)
	c.view.ClearInputs()
	return nil
}

// listed reports whether a book with b's title or ISBN is on the page.
func (c *Controller) listed(b entity.Book) bool {
	for _, r := range c.rows {
		if r.Book.Title == b.Title || r.Book.ISBN == b.ISBN {
			return true
		}
	}
	return false
}

// Delete removes the row behind h and its book from the store. Unknown
// handles are ignored.
func (c *Controller) Delete(ctx context.Context, h usecase.RowHandle) error {
	i := c.rowIndex(h)
	if i < 0 {
		return nil
	}
	isbn := c.rows[i].Book.ISBN
	c.view.RemoveRow(h)
	c.rows = append(c.rows[:i], c.rows[i+1:]...)
	if err := c.store.Remove(ctx, isbn); err != nil {
		err = fmt.Errorf("remove book %q: %w", isbn, err)
		// Show what the store still holds.
		if reloadErr := c.reload(ctx); reloadErr != nil {
			return errors.Join(err, reloadErr)
		}
		return err
	}
	c.view.Notify(MsgDeleted, usecase.SeveritySuccess)
	return nil
}

// Edit loads the row behind h into the form and switches to edit mode.
// Nothing is persisted until the next Submit.
func (c *Controller) Edit(_ context.Context, h usecase.RowHandle) error {
	i := c.rowIndex(h)
	if i < 0 {
		return nil
	}
	b := c.rows[i].Book
	c.view.FillInputs(usecase.FormFromBook(b))
	c.session = Session{Mode: ModeEditing, EditingISBN: b.ISBN}
	return nil
}

// ClearAll empties the page and deletes the stored collection.
func (c *Controller) ClearAll(ctx context.Context) error {
	c.view.ClearList()
	c.rows = nil
	if err := c.store.Clear(ctx); err != nil {
		err = fmt.Errorf("clear books: %w", err)
		if reloadErr := c.reload(ctx); reloadErr != nil {
			return errors.Join(err, reloadErr)
		}
		return err
	}
	c.view.Notify(MsgCleared, usecase.SeveritySuccess)
	return nil
}

func (c *Controller) reload(ctx context.Context) error {
	books, err := c.store.List(ctx)
	if err != nil {
		return fmt.Errorf("load books: %w", err)
	}
	c.view.ClearList()
	c.rows = make([]Row, 0, len(books))
	for _, b := range books {
		c.rows = append(c.rows, Row{Handle: c.view.RenderAppend(b), Book: b})
	}
	return nil
}

func (c *Controller) rowIndex(h usecase.RowHandle) int {
	for i, r := range c.rows {
		if r.Handle == h {
			return i
		}
	}
	return -1
}
