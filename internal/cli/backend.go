package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"bookshelf/internal/config"
	"bookshelf/internal/controller"
	"bookshelf/internal/presenter"
	"bookshelf/internal/store"
	"bookshelf/internal/usecase"

	"github.com/charmbracelet/lipgloss"
)

// backend is the shelf plus whatever connection it holds open.
type backend struct {
	shelf *store.Shelf
	close func()
}

func (b *backend) Close() {
	if b.close != nil {
		b.close()
	}
}

func openBackend(ctx context.Context, cfg config.Config) (*backend, error) {
	switch cfg.Store {
	case config.StoreMemory:
		return &backend{shelf: store.NewShelf(store.NewMemorySlot())}, nil
	case config.StoreFile:
		return &backend{shelf: store.NewShelf(store.NewFileSlot(cfg.Path))}, nil
	case config.StoreSQLite:
		db, err := store.OpenSQLite(ctx, cfg.Path)
		if err != nil {
			return nil, err
		}
		return &backend{
			shelf: store.NewShelf(store.NewSQLiteSlot(db, cfg.Slot)),
			close: func() { _ = db.Close() },
		}, nil
	case config.StorePostgres:
		pool, err := store.OpenPostgres(ctx, cfg.DSN)
		if err != nil {
			return nil, err
		}
		return &backend{
			shelf: store.NewShelf(store.NewPostgresSlot(pool, cfg.Slot, cfg.DBTimeout)),
			close: pool.Close,
		}, nil
	default:
		return nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}

// shelfSession drives the controller against a headless page. The page has
// no scheduler, so the last notification stays put for printing.
type shelfSession struct {
	backend *backend
	page    *presenter.Presenter
	ctrl    *controller.Controller
}

func openSession(ctx context.Context, cfg config.Config) (*shelfSession, error) {
	be, err := openBackend(ctx, cfg)
	if err != nil {
		return nil, err
	}
	page, err := presenter.NewPage(nil, 0)
	if err != nil {
		be.Close()
		return nil, err
	}
	ctrl := controller.New(be.shelf, page)
	if err := ctrl.Load(ctx); err != nil {
		be.Close()
		return nil, err
	}
	return &shelfSession{backend: be, page: page, ctrl: ctrl}, nil
}

func (s *shelfSession) Close() {
	s.backend.Close()
}

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	dangerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Faint(true)
)

// report prints the page notification and passes err through. Validation
// and duplicate failures already explain themselves, so they are returned
// silenced to keep cobra from printing them twice.
func (s *shelfSession) report(w io.Writer, err error) error {
	if msg, sev, ok := s.page.Notification(); ok {
		style := successStyle
		if sev == usecase.SeverityDanger {
			style = dangerStyle
		}
		fmt.Fprintln(w, style.Render(msg))
	}
	if errors.Is(err, controller.ErrValidation) || errors.Is(err, controller.ErrDuplicate) {
		return errSilent{err}
	}
	return err
}

// errSilent marks an error the user has already seen.
type errSilent struct{ err error }

func (e errSilent) Error() string { return e.err.Error() }
func (e errSilent) Unwrap() error { return e.err }

// IsSilent reports whether err was already shown to the user.
func IsSilent(err error) bool {
	var s errSilent
	return errors.As(err, &s)
}
