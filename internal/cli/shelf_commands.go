package cli

import (
	"encoding/json"
	"fmt"

	"bookshelf/internal/usecase"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show every book on the shelf",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			be, err := openBackend(ctx, rootOpts.cfg)
			if err != nil {
				return err
			}
			defer be.Close()

			books, err := be.shelf.List(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(books)
			}
			if len(books) == 0 {
				fmt.Fprintln(out, mutedStyle.Render("The shelf is empty."))
				return nil
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("TITLE", "AUTHOR", "ISBN")
			for _, b := range books {
				t.Row(b.Title, b.Author, b.ISBN)
			}
			fmt.Fprintln(out, t.Render())
			fmt.Fprintln(out, mutedStyle.Render(fmt.Sprintf("%d book(s)", len(books))))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the stored JSON array")
	return cmd
}

func addBookFlags(cmd *cobra.Command, form *usecase.Form) {
	cmd.Flags().StringVarP(&form.Title, "title", "t", "", "book title")
	cmd.Flags().StringVarP(&form.Author, "author", "a", "", "book author")
	cmd.Flags().StringVarP(&form.ISBN, "isbn", "i", "", "book ISBN")
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	var form usecase.Form

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a book",
		Long: `Add a book to the shelf.

All three fields are required. A book whose title or ISBN is already on
the shelf is rejected.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := openSession(ctx, rootOpts.cfg)
			if err != nil {
				return err
			}
			defer s.Close()

			return s.report(cmd.OutOrStdout(), s.ctrl.Submit(ctx, form))
		},
	}

	addBookFlags(cmd, &form)
	return cmd
}

// NewRemoveCommand creates the remove command.
func NewRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <isbn>",
		Short: "Remove every book with the given ISBN",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := openSession(ctx, rootOpts.cfg)
			if err != nil {
				return err
			}
			defer s.Close()

			rows := s.ctrl.RowsByISBN(args[0])
			if len(rows) == 0 {
				return fmt.Errorf("no book with isbn %q", args[0])
			}
			for _, r := range rows {
				if err := s.ctrl.Delete(ctx, r.Handle); err != nil {
					return s.report(cmd.OutOrStdout(), err)
				}
			}
			return s.report(cmd.OutOrStdout(), nil)
		},
	}
}

// NewUpdateCommand creates the update command.
func NewUpdateCommand(rootOpts *RootOptions) *cobra.Command {
	var form usecase.Form

	cmd := &cobra.Command{
		Use:   "update <old-isbn>",
		Short: "Replace every book with the given ISBN",
		Long: `Replace every book stored under old-isbn.

Fields not given keep the value of the first matching book.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := openSession(ctx, rootOpts.cfg)
			if err != nil {
				return err
			}
			defer s.Close()

			rows := s.ctrl.RowsByISBN(args[0])
			if len(rows) == 0 {
				return fmt.Errorf("no book with isbn %q", args[0])
			}
			if err := s.ctrl.Edit(ctx, rows[0].Handle); err != nil {
				return err
			}

			current := s.page.Inputs()
			flags := cmd.Flags()
			if !flags.Changed("title") {
				form.Title = current.Title
			}
			if !flags.Changed("author") {
				form.Author = current.Author
			}
			if !flags.Changed("isbn") {
				form.ISBN = current.ISBN
			}
			return s.report(cmd.OutOrStdout(), s.ctrl.Submit(ctx, form))
		},
	}

	addBookFlags(cmd, &form)
	return cmd
}

// NewClearCommand creates the clear command.
func NewClearCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every book and the stored list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := openSession(ctx, rootOpts.cfg)
			if err != nil {
				return err
			}
			defer s.Close()

			return s.report(cmd.OutOrStdout(), s.ctrl.ClearAll(ctx))
		},
	}
}
