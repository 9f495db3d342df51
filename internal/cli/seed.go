package cli

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"bookshelf/internal/controller"
	"bookshelf/internal/usecase"

	"github.com/spf13/cobra"
)

var (
	seedWords   = []string{"Shadow", "River", "Empire", "Garden", "Winter", "Signal", "Harbor", "Machine", "Orchard", "Compass"}
	seedAuthors = []string{"Ada Lane", "Noor Haddad", "Kenji Mori", "Lucia Ferreira", "Tom Okafor", "Mira Novak"}
)

// NewSeedCommand creates the seed command.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Add generated sample books",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count <= 0 {
				return fmt.Errorf("--count must be positive, got %d", count)
			}
			ctx := cmd.Context()
			s, err := openSession(ctx, rootOpts.cfg)
			if err != nil {
				return err
			}
			defer s.Close()

			offset := len(s.ctrl.Rows())
			added, skipped := 0, 0
			for i := 0; i < count; i++ {
				n := offset + i + 1
				form := usecase.Form{
					Title:  fmt.Sprintf("Book Title %d - %s", n, seedWords[rand.IntN(len(seedWords))]),
					Author: seedAuthors[rand.IntN(len(seedAuthors))],
					ISBN:   fmt.Sprintf("978-%08d", n),
				}
				err := s.ctrl.Submit(ctx, form)
				switch {
				case errors.Is(err, controller.ErrDuplicate):
					skipped++
				case err != nil:
					return err
				default:
					added++
				}
			}

			rootOpts.logger.Info("seeded shelf", "added", added, "skipped", skipped)
			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(fmt.Sprintf("Seeded %d book(s), skipped %d duplicate(s)", added, skipped)))
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 10, "number of books to add")
	return cmd
}
