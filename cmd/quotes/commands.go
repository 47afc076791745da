package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"daily-quotes/internal/domain"

	"github.com/spf13/cobra"
)

func newRandomCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "random",
		Short: "Show a random quote",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view := a.session.RandomView()
			if view == nil {
				return fmt.Errorf("no quotes loaded")
			}
			if a.asJSON {
				return a.printJSON(view)
			}
			a.printQuote(*view)
			return nil
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	var (
		query     string
		author    string
		favorites bool
		page      int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List quotes page by page",
		Long: `List quotes matching an optional text query and author, ten per page.

The query matches the quote text, the author and the tags, case-insensitively.

Examples:
  quotes list --query pain
  quotes list --author "Seneca" --page 2
  quotes list --favorites`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.session.SetMode(domain.ModeAll)
			q := domain.ListQuery{Query: &query, AuthorFilter: &author, FavoritesOnly: &favorites}
			if cmd.Flags().Changed("page") {
				q.Page = &page
			}
			list, err := a.session.List(q)
			if err != nil {
				return err
			}
			if a.asJSON {
				return a.printJSON(list)
			}
			if list.Results == 0 {
				fmt.Fprintln(a.out, "No quotes found.")
				return nil
			}
			for _, item := range list.Items {
				a.printQuote(item)
			}
			fmt.Fprintf(a.out, "Page %d of %d (%d results)\n", list.Page, list.TotalPages, list.Results)
			return nil
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "Text to search for")
	cmd.Flags().StringVarP(&author, "author", "a", "", "Only quotes by this author")
	cmd.Flags().BoolVarP(&favorites, "favorites", "f", false, "Only favorite quotes")
	cmd.Flags().IntVarP(&page, "page", "p", 1, "Page number")
	return cmd
}

func newAuthorsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "authors",
		Short: "List the distinct authors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			authors := a.session.Authors()
			if a.asJSON {
				return a.printJSON(authors)
			}
			for _, author := range authors {
				fmt.Fprintln(a.out, author)
			}
			return nil
		},
	}
}

type quoteDetail struct {
	domain.Quote
	UserTranslations []string `json:"user_translations"`
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one quote with every known translation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			q, ok := a.quotes.FindByID(id)
			if !ok {
				return fmt.Errorf("quote %d not found", id)
			}
			detail := quoteDetail{Quote: q, UserTranslations: a.session.UserTranslations(id)}
			if a.asJSON {
				return a.printJSON(detail)
			}
			fmt.Fprintf(a.out, "#%d %s\n   ~ %s\n", q.ID, q.Text, domain.NormalizeAuthor(q.Author))
			if len(q.Tags) > 0 {
				fmt.Fprintf(a.out, "   tags: %s\n", strings.Join(q.Tags, ", "))
			}
			if q.Translated != "" {
				fmt.Fprintf(a.out, "   translation: %s\n", q.Translated)
			}
			for i, t := range detail.UserTranslations {
				fmt.Fprintf(a.out, "   contribution %d: %s\n", i+1, t)
			}
			return nil
		},
	}
}

func newFavoritesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "fav",
		Aliases: []string{"favorites"},
		Short:   "Manage favorite quotes",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.listFavorites()
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List favorite quotes",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.listFavorites()
			},
		},
		&cobra.Command{
			Use:   "toggle <id>",
			Short: "Add or remove a quote from the favorites",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				fav, err := a.session.ToggleFavorite(cmd.Context(), id)
				if err != nil {
					return err
				}
				if a.asJSON {
					return a.printJSON(map[string]interface{}{"id": id, "favorite": fav})
				}
				if fav {
					fmt.Fprintf(a.out, "Added quote %d to favorites\n", id)
				} else {
					fmt.Fprintf(a.out, "Removed quote %d from favorites\n", id)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Remove every favorite",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				a.session.ClearFavorites(cmd.Context())
				fmt.Fprintln(a.out, "Favorites cleared")
				return nil
			},
		},
	)
	return cmd
}

func (a *app) listFavorites() error {
	favs := a.session.Favorites()
	if a.asJSON {
		return a.printJSON(favs)
	}
	if len(favs) == 0 {
		fmt.Fprintln(a.out, "No favorites yet.")
		return nil
	}
	for _, q := range favs {
		fmt.Fprintf(a.out, "#%d %s\n   ~ %s\n", q.ID, q.Text, domain.NormalizeAuthor(q.Author))
	}
	return nil
}

func newExportCmd(a *app) *cobra.Command {
	var (
		format string
		output string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the favorites as JSON or Markdown",
		Long: `Export the favorite quotes.

Without --out the document is written to stdout. With --out set to a
directory the default file name of the format is used.

Examples:
  quotes export --format json
  quotes export --format md --out ./favorites.md`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := a.session.ExportFavorites(format)
			if err != nil {
				return err
			}
			if output == "" {
				_, err := a.out.Write(file.Data)
				return err
			}
			path := output
			if info, err := os.Stat(output); err == nil && info.IsDir() {
				path = strings.TrimRight(output, string(os.PathSeparator)) + string(os.PathSeparator) + file.FileName
			}
			if err := os.WriteFile(path, file.Data, 0o644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			fmt.Fprintf(a.out, "Wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "json", "Export format (json, markdown, md)")
	cmd.Flags().StringVarP(&output, "out", "o", "", "File or directory to write to")
	return cmd
}

func newLanguageCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "lang",
		Aliases: []string{"language"},
		Short:   "Show or toggle the preferred display language",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printLanguage(a.session.Language())
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the preferred display language",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printLanguage(a.session.Language())
		},
	}, &cobra.Command{
		Use:   "toggle",
		Short: "Switch between original and translated",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printLanguage(a.session.ToggleLanguage(cmd.Context()))
		},
	})
	return cmd
}

func (a *app) printLanguage(lang domain.Language) error {
	if a.asJSON {
		return a.printJSON(map[string]domain.Language{"language": lang})
	}
	fmt.Fprintln(a.out, lang)
	return nil
}

func newContributeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "contribute <id> <translation>",
		Short: "Contribute a translation for a quote",
		Long: `Record a translation for a quote and send it to the contribution endpoint.

The translation is kept locally even when the endpoint cannot be reached.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if _, err := a.session.OpenContribution(id); err != nil {
				return err
			}
			if _, err := a.session.SetContributionDraft(strings.Join(args[1:], " ")); err != nil {
				return err
			}
			_, done, err := a.session.SubmitContribution(cmd.Context())
			if err != nil {
				a.session.CloseContribution()
				return err
			}

			var status domain.SubmissionStatus
			select {
			case status = <-done:
			case <-cmd.Context().Done():
				return cmd.Context().Err()
			}
			draft := a.session.Contribution()
			a.session.CloseContribution()
			if a.wait != nil {
				a.wait()
			}

			if a.asJSON {
				return a.printJSON(map[string]interface{}{"quote_id": id, "status": status, "message": draft.Message})
			}
			fmt.Fprintln(a.out, draft.Message)
			return nil
		},
	}
}

func (a *app) printQuote(v domain.QuoteView) {
	marker := " "
	if v.Favorite {
		marker = "*"
	}
	fmt.Fprintf(a.out, "%s#%d %s\n", marker, v.ID, v.Text)
	if v.Translation != "" {
		fmt.Fprintf(a.out, "   %s\n", v.Translation)
	}
	fmt.Fprintf(a.out, "   ~ %s\n", v.Author)
}

func (a *app) printJSON(v interface{}) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid quote id %q", s)
	}
	return id, nil
}
