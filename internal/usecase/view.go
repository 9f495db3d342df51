package usecase

import "bookshelf/internal/entity"

// Severity tags a notification.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityDanger  Severity = "danger"
)

// RowHandle identifies one rendered row on the page.
type RowHandle string

// View is the rendering side of the shelf. It never reads or writes the store.
type View interface {
	RenderAppend(b entity.Book) RowHandle
	RemoveRow(h RowHandle)
	ClearList()
	ClearInputs()
	FillInputs(f Form)
	Notify(message string, severity Severity)
}
