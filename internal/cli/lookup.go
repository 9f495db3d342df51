package cli

import (
	"fmt"

	"bookshelf/internal/platform/openlibrary"
	"bookshelf/internal/usecase"

	"github.com/spf13/cobra"
)

// NewLookupCommand creates the lookup command.
func NewLookupCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		add     bool
		baseURL string
		retries int
	)

	cmd := &cobra.Command{
		Use:   "lookup <isbn>",
		Short: "Fetch title and author for an ISBN from Open Library",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client := openlibrary.NewClient(rootOpts.cfg.OpenLibraryUserAgent, 1, retries, openlibrary.WithBaseURL(baseURL))

			book, err := client.Lookup(ctx, args[0])
			if err != nil {
				return err
			}
			rootOpts.logger.Debug("lookup", "isbn", book.ISBN, "title", book.Title)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", mutedStyle.Render("Title: "), book.Title)
			fmt.Fprintf(out, "%s %s\n", mutedStyle.Render("Author:"), book.Author)
			fmt.Fprintf(out, "%s %s\n", mutedStyle.Render("ISBN:  "), book.ISBN)
			if !add {
				return nil
			}

			s, err := openSession(ctx, rootOpts.cfg)
			if err != nil {
				return err
			}
			defer s.Close()
			return s.report(out, s.ctrl.Submit(ctx, usecase.FormFromBook(book)))
		},
	}

	cmd.Flags().BoolVar(&add, "add", false, "add the book to the shelf")
	cmd.Flags().StringVar(&baseURL, "base-url", openlibrary.DefaultBaseURL, "Open Library base URL")
	cmd.Flags().IntVar(&retries, "retries", 2, "retries on 429 and 5xx responses")
	_ = cmd.Flags().MarkHidden("base-url")
	return cmd
}
