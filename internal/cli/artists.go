package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	apperr "github.com/matzehuels/metgallery/pkg/errors"
	"github.com/matzehuels/metgallery/pkg/gallery"
)

// artistsCommand creates the "artists" command.
func (c *CLI) artistsCommand() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "artists",
		Short: "List artists found by sampling the collection",
		Long: `List artist names found by sampling six departments and a few well-known
names. The list is a sample, not a complete index of the collection.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			env, err := c.newGallery(ctx)
			if err != nil {
				return err
			}
			defer env.Close()

			catalog, err := c.loadCatalog(ctx, env)
			if err != nil {
				return err
			}

			names := catalog.Filter(filter)
			if len(names) == 0 {
				printWarning("No artists match %q", filter)
				return nil
			}
			printNames(names)
			printNewline()
			printDetail("%d of %d artists", len(names), catalog.Len())
			printNextStep("Show an artist's works", appName+` works "`+names[0]+`"`)
			return nil
		},
	}

	cmd.Flags().StringVarP(&filter, "filter", "f", "", "only show names containing this text")
	return cmd
}

// loadCatalog builds the artist catalog behind a spinner. On failure it
// prints a retry hint and returns a CATALOG_UNAVAILABLE error.
func (c *CLI) loadCatalog(ctx context.Context, env *galleryEnv) (*gallery.Catalog, error) {
	builder := gallery.NewCatalogBuilder(env.coll, gallery.NewCatalog(), gallery.CatalogOptions{})

	spinner := newSpinner(ctx, "Sampling the collection for artists...")
	spinner.Start()
	prog := newProgress(c.Logger)
	catalog, err := builder.Load(ctx)
	spinner.Stop()

	if errors.Is(err, gallery.ErrCatalogUnavailable) {
		printError("Could not load artists")
		printNextStep("The collection API did not answer, try again", appName+" artists")
		return nil, gallery.AppError(err)
	}
	if err != nil {
		return nil, err
	}
	prog.done("artist catalog loaded", "artists", catalog.Len())
	return catalog, nil
}

// worksCommand creates the "works" command.
func (c *CLI) worksCommand() *cobra.Command {
	opts := searchOpts{pages: 1}

	cmd := &cobra.Command{
		Use:   "works <artist>",
		Short: "Find artworks by an artist",
		Long: `Find artworks attributed to an artist. The collection search matches any
field, so candidates are fetched and kept only when their artist name matches.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := apperr.ValidateQuery(strings.Join(args, " "))
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			env, err := c.newGallery(ctx)
			if err != nil {
				return err
			}
			defer env.Close()

			return c.runWorks(ctx, env, name, opts.pages)
		},
	}

	cmd.Flags().IntVarP(&opts.pages, "pages", "p", opts.pages, "number of result pages to load")
	return cmd
}

func (c *CLI) runWorks(ctx context.Context, env *galleryEnv, name string, pages int) error {
	session := gallery.NewSession(env.coll, env.resolver, gallery.DefaultPageSize)

	spinner := newSpinner(ctx, fmt.Sprintf("Looking for works by %s...", name))
	spinner.Start()
	prog := newProgress(c.Logger)
	page, res, err := session.ShowArtist(ctx, name)
	spinner.Stop()
	if err != nil {
		return gallery.AppError(err)
	}
	prog.done("artist resolved", "artist", name, "candidates", res.Candidates, "checked", res.Checked)

	if page == nil {
		if res.NoCandidates() {
			printWarning("Nothing in the collection mentions %q", name)
		} else {
			printWarning("No works with images by %q among %d candidates", name, res.Candidates)
		}
		printNextStep("Browse known artists", appName+" artists --filter "+lastWord(name))
		return nil
	}
	return c.printPages(ctx, session, page, pages, "works")
}

// lastWord returns the final word of a name, usually the surname.
func lastWord(s string) string {
	if f := strings.Fields(s); len(f) > 0 {
		return f[len(f)-1]
	}
	return s
}
