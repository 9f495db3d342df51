package http

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"

	"bookshelf/internal/controller"
	"bookshelf/internal/entity"
	"bookshelf/internal/httpx"
	"bookshelf/internal/presenter"
	"bookshelf/internal/usecase"
)

// Runner executes fn on the shelf's event loop.
type Runner interface {
	Do(ctx context.Context, fn func()) error
}

// ShelfHandler serves the bookshelf page. Each POST becomes one controller
// event and answers with a redirect back to the page.
type ShelfHandler struct {
	loop   Runner
	ctrl   *controller.Controller
	page   *presenter.Presenter
	books  usecase.BookStore
	logger *slog.Logger
}

func NewShelfHandler(loop Runner, ctrl *controller.Controller, page *presenter.Presenter, books usecase.BookStore, logger *slog.Logger) *ShelfHandler {
	return &ShelfHandler{loop: loop, ctrl: ctrl, page: page, books: books, logger: logger}
}

// Routes registers the page, its form actions, the JSON listing and the
// stylesheet on mux.
func (h *ShelfHandler) Routes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.Page)
	mux.HandleFunc("POST /books", h.Submit)
	mux.HandleFunc("POST /books/delete", h.Delete)
	mux.HandleFunc("POST /books/edit", h.Edit)
	mux.HandleFunc("POST /clear", h.Clear)
	mux.HandleFunc("GET /api/books", h.List)

	static, err := fs.Sub(presenter.Assets, "assets")
	if err != nil {
		panic(err)
	}
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(static)))
}

// Page handles GET /
func (h *ShelfHandler) Page(w http.ResponseWriter, r *http.Request) {
	var (
		buf       bytes.Buffer
		renderErr error
	)
	if err := h.loop.Do(r.Context(), func() { renderErr = h.page.Render(&buf) }); err != nil {
		h.unavailable(w, r, err)
		return
	}
	if renderErr != nil {
		h.logger.ErrorContext(r.Context(), "render page", "err", renderErr, "request_id", httpx.RequestIDFrom(r))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(buf.Bytes())
}

// Submit handles POST /books
func (h *ShelfHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	form := usecase.Form{
		Title:  r.PostForm.Get("title"),
		Author: r.PostForm.Get("author"),
		ISBN:   r.PostForm.Get("isbn"),
	}
	h.dispatch(w, r, "submit", func(ctx context.Context) error {
		return h.ctrl.Submit(ctx, form)
	})
}

// Delete handles POST /books/delete
func (h *ShelfHandler) Delete(w http.ResponseWriter, r *http.Request) {
	row, ok := rowHandle(w, r)
	if !ok {
		return
	}
	h.dispatch(w, r, "delete", func(ctx context.Context) error {
		return h.ctrl.Delete(ctx, row)
	})
}

// Edit handles POST /books/edit
func (h *ShelfHandler) Edit(w http.ResponseWriter, r *http.Request) {
	row, ok := rowHandle(w, r)
	if !ok {
		return
	}
	h.dispatch(w, r, "edit", func(ctx context.Context) error {
		return h.ctrl.Edit(ctx, row)
	})
}

// Clear handles POST /clear
func (h *ShelfHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, r, "clear", h.ctrl.ClearAll)
}

// List handles GET /api/books
func (h *ShelfHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		books   []entity.Book
		listErr error
	)
	if err := h.loop.Do(r.Context(), func() { books, listErr = h.books.List(r.Context()) }); err != nil {
		h.unavailable(w, r, err)
		return
	}
	if listErr != nil {
		h.logger.ErrorContext(r.Context(), "list books", "err", listErr, "request_id", httpx.RequestIDFrom(r))
		httpx.JSONErrorWithRequest(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccessWithRequest(r, w, books, map[string]any{"total": len(books)})
}

func (h *ShelfHandler) dispatch(w http.ResponseWriter, r *http.Request, event string, fn func(context.Context) error) {
	var eventErr error
	if err := h.loop.Do(r.Context(), func() { eventErr = fn(r.Context()) }); err != nil {
		h.unavailable(w, r, err)
		return
	}
	switch {
	case eventErr == nil:
	case errors.Is(eventErr, controller.ErrValidation), errors.Is(eventErr, controller.ErrDuplicate):
		// Already on the page as a notification.
		h.logger.DebugContext(r.Context(), "shelf event rejected", "event", event, "err", eventErr)
	default:
		h.logger.ErrorContext(r.Context(), "shelf event failed", "event", event, "err", eventErr, "request_id", httpx.RequestIDFrom(r))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *ShelfHandler) unavailable(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.WarnContext(r.Context(), "event loop unavailable", "err", err, "request_id", httpx.RequestIDFrom(r))
	http.Error(w, "service unavailable", http.StatusServiceUnavailable)
}

func rowHandle(w http.ResponseWriter, r *http.Request) (usecase.RowHandle, bool) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return "", false
	}
	row := r.PostForm.Get("row")
	if row == "" {
		http.Error(w, "missing row", http.StatusBadRequest)
		return "", false
	}
	return usecase.RowHandle(row), true
}
