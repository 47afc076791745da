package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"daily-quotes/internal/config"
	"daily-quotes/internal/domain"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	session domain.SessionService
	quotes  domain.QuoteStore
	out     io.Writer
	asJSON  bool

	// wait blocks until background contribution work is done.
	wait  func()
	close func() error
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a := &app{out: os.Stdout}
	root := newRootCmd(a)
	err := root.ExecuteContext(ctx)
	if a.close != nil {
		if cerr := a.close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "quotes",
		Short: "Browse, favorite and translate the bundled quote collection",
		Long: `quotes is the command line front end of the daily quotes viewer.

Favorites, user translations and the language preference are kept in the
configured storage backend (STORAGE_BACKEND), so they survive between runs
and are shared with the HTTP server using the same SESSION_ID.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.session != nil {
				return nil
			}
			_ = godotenv.Load()

			container, err := config.NewContainer(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to initialize: %w", err)
			}
			a.session = container.Session
			a.quotes = container.Quotes
			a.wait = container.Session.Wait
			a.close = container.Close
			return nil
		},
	}
	root.PersistentFlags().BoolVar(&a.asJSON, "json", false, "Print machine readable JSON")

	root.AddCommand(
		newRandomCmd(a),
		newListCmd(a),
		newAuthorsCmd(a),
		newShowCmd(a),
		newFavoritesCmd(a),
		newExportCmd(a),
		newLanguageCmd(a),
		newContributeCmd(a),
	)
	return root
}
