// Package presenter projects shelf books onto the page document and owns the
// form fields and the transient notification area. It never touches the
// store.
package presenter

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"bookshelf/internal/dom"
	"bookshelf/internal/entity"
	"bookshelf/internal/usecase"

	"golang.org/x/net/html"
)

//go:embed assets/index.html
var pageHTML []byte

//go:embed assets
var Assets embed.FS

// DefaultNotifyDelay is how long a notification stays on the page.
const DefaultNotifyDelay = 3 * time.Second

// Element ids and classes the page must provide.
const (
	IDTitle    = "title"
	IDAuthor   = "author"
	IDISBN     = "isbn"
	IDBookList = "book-list"

	classAlertBox = "show-alert"
	classAlert    = "alert"
	rowIDPrefix   = "book-row-"
)

// ErrIncompletePage is returned when a document lacks one of the required
// elements.
var ErrIncompletePage = errors.New("page is missing required elements")

// Scheduler runs fn after d. cancel stops fn from running.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) (cancel func())
}

type Presenter struct {
	doc       *dom.Document
	list      *html.Node
	alertBox  *html.Node
	scheduler Scheduler
	delay     time.Duration

	nextRow     int
	alertSeq    int
	cancelAlert func()
}

var _ usecase.View = (*Presenter)(nil)

// New binds a presenter to doc. A nil scheduler keeps each notification until
// the next one replaces it.
func New(doc *dom.Document, scheduler Scheduler, delay time.Duration) (*Presenter, error) {
	list := doc.ByID(IDBookList)
	boxes := doc.ByClass(classAlertBox)
	if list == nil || len(boxes) == 0 {
		return nil, ErrIncompletePage
	}
	for _, id := range []string{IDTitle, IDAuthor, IDISBN} {
		if doc.ByID(id) == nil {
			return nil, fmt.Errorf("%w: #%s", ErrIncompletePage, id)
		}
	}
	if delay <= 0 {
		delay = DefaultNotifyDelay
	}
	return &Presenter{
		doc:       doc,
		list:      list,
		alertBox:  boxes[0],
		scheduler: scheduler,
		delay:     delay,
	}, nil
}

// NewPage parses the built-in page and binds a presenter to it.
func NewPage(scheduler Scheduler, delay time.Duration) (*Presenter, error) {
	doc, err := dom.Parse(bytes.NewReader(pageHTML))
	if err != nil {
		return nil, err
	}
	return New(doc, scheduler, delay)
}

// Document exposes the underlying page.
func (p *Presenter) Document() *dom.Document {
	return p.doc
}

// RenderAppend adds a row for b with delete and edit actions and returns its
// handle.
func (p *Presenter) RenderAppend(b entity.Book) usecase.RowHandle {
	p.nextRow++
	handle := usecase.RowHandle(fmt.Sprintf("%s%d", rowIDPrefix, p.nextRow))

	tr := dom.CreateElement("tr", dom.A("id", string(handle)))
	for _, text := range []string{b.Title, b.Author, b.ISBN} {
		td := dom.CreateElement("td")
		dom.SetText(td, text)
		dom.AppendChild(tr, td)
	}
	dom.AppendChild(tr, actionCell("delete", "/books/delete", handle, "btn btn-danger", "X"))
	dom.AppendChild(tr, actionCell("edit", "/books/edit", handle, "btn btn-warning", "Edit"))

	dom.AppendChild(p.list, tr)
	return handle
}

func actionCell(class, action string, handle usecase.RowHandle, btnClass, label string) *html.Node {
	td := dom.CreateElement("td", dom.A("class", class))
	form := dom.CreateElement("form", dom.A("method", "post"), dom.A("action", action))
	dom.AppendChild(form, dom.CreateElement("input",
		dom.A("type", "hidden"), dom.A("name", "row"), dom.A("value", string(handle))))
	btn := dom.CreateElement("button", dom.A("type", "submit"), dom.A("class", btnClass))
	dom.SetText(btn, label)
	dom.AppendChild(form, btn)
	dom.AppendChild(td, form)
	return td
}

// RemoveRow removes exactly the row behind h. Unknown handles are ignored.
func (p *Presenter) RemoveRow(h usecase.RowHandle) {
	for _, tr := range dom.Children(p.list) {
		if id, _ := dom.Attr(tr, "id"); id == string(h) {
			dom.Remove(tr)
			return
		}
	}
}

func (p *Presenter) ClearList() {
	dom.ClearChildren(p.list)
}

func (p *Presenter) ClearInputs() {
	p.FillInputs(usecase.Form{})
}

func (p *Presenter) FillInputs(f usecase.Form) {
	p.doc.SetValue(IDTitle, f.Title)
	p.doc.SetValue(IDAuthor, f.Author)
	p.doc.SetValue(IDISBN, f.ISBN)
}

// Inputs reads the three form fields.
func (p *Presenter) Inputs() usecase.Form {
	return usecase.Form{
		Title:  p.doc.Value(IDTitle),
		Author: p.doc.Value(IDAuthor),
		ISBN:   p.doc.Value(IDISBN),
	}
}

// RowCount is the number of rendered rows.
func (p *Presenter) RowCount() int {
	return len(dom.Children(p.list))
}

// Notify shows message, replacing any visible notification and its pending
// auto-clear.
func (p *Presenter) Notify(message string, severity usecase.Severity) {
	if p.cancelAlert != nil {
		p.cancelAlert()
		p.cancelAlert = nil
	}
	p.clearAlerts()

	div := dom.CreateElement("div", dom.A("class", classAlert+" "+classAlert+"-"+string(severity)))
	dom.SetText(div, message)
	dom.AppendChild(p.alertBox, div)

	if p.scheduler == nil {
		return
	}
	p.alertSeq++
	seq := p.alertSeq
	p.cancelAlert = p.scheduler.AfterFunc(p.delay, func() {
		// Only ever removes the alert this call created.
		dom.Remove(div)
		if p.alertSeq == seq {
			p.cancelAlert = nil
		}
	})
}

// Notification reports the visible notification, if any.
func (p *Presenter) Notification() (message string, severity usecase.Severity, ok bool) {
	alerts := dom.QueryClass(p.alertBox, classAlert)
	if len(alerts) == 0 {
		return "", "", false
	}
	n := alerts[0]
	class, _ := dom.Attr(n, "class")
	for _, c := range strings.Fields(class) {
		if s, found := strings.CutPrefix(c, classAlert+"-"); found {
			severity = usecase.Severity(s)
		}
	}
	return dom.Text(n), severity, true
}

func (p *Presenter) clearAlerts() {
	for _, n := range dom.QueryClass(p.alertBox, classAlert) {
		dom.Remove(n)
	}
}

// Render writes the whole page.
func (p *Presenter) Render(w io.Writer) error {
	return p.doc.Render(w)
}
