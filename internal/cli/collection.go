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

// featuredCommand creates the "featured" command.
func (c *CLI) featuredCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "featured",
		Short: "Show a handful of highlights from the collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runFeatured(cmd.Context())
		},
	}
}

func (c *CLI) runFeatured(ctx context.Context) error {
	env, err := c.newGallery(ctx)
	if err != nil {
		return err
	}
	defer env.Close()

	spinner := newSpinner(ctx, "Loading featured artworks...")
	spinner.Start()
	artworks := gallery.Featured(ctx, env.coll)
	spinner.Stop()
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(artworks) == 0 {
		printWarning("No featured artworks could be loaded")
		return nil
	}
	printArtworks(artworks)
	return nil
}

// searchOpts holds the flags of the search command.
type searchOpts struct {
	pages int // pages to load, 12 IDs each
}

// searchCommand creates the "search" command.
func (c *CLI) searchCommand() *cobra.Command {
	opts := searchOpts{pages: 1}

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the collection for artworks with images",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query, err := apperr.ValidateQuery(strings.Join(args, " "))
			if err != nil {
				return err
			}
			return c.runSearch(cmd.Context(), query, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.pages, "pages", "p", opts.pages, "number of result pages to load")
	return cmd
}

func (c *CLI) runSearch(ctx context.Context, query string, opts searchOpts) error {
	env, err := c.newGallery(ctx)
	if err != nil {
		return err
	}
	defer env.Close()

	session := gallery.NewSession(env.coll, env.resolver, gallery.DefaultPageSize)

	spinner := newSpinner(ctx, fmt.Sprintf("Searching for %q...", query))
	spinner.Start()
	page, err := session.Search(ctx, query)
	spinner.Stop()
	if err != nil {
		return gallery.AppError(err)
	}

	if page.NoResults() {
		printWarning("No artworks found for %q", query)
		return nil
	}
	return c.printPages(ctx, session, page, opts.pages, "search")
}

// printPages prints page and keeps loading until pages have been shown or
// the list runs out. command names the subcommand suggested for more.
func (c *CLI) printPages(ctx context.Context, session *gallery.Session, page *gallery.Page, pages int, command string) error {
	fmt.Fprintln(stdout, StyleTitle.Render(page.Title))
	printNewline()
	printPage(page)

	for n := 1; n < pages && page.HasMore; n++ {
		var err error
		page, err = session.LoadMore(ctx)
		if errors.Is(err, gallery.ErrNoMorePages) {
			break
		}
		if err != nil {
			return gallery.AppError(err)
		}
		printNewline()
		printPage(page)
	}

	if page.HasMore {
		printNewline()
		printNextStep("Show more", fmt.Sprintf("%s %s %q --pages %d", appName, command, page.Title, max(pages, 1)+1))
	}
	return nil
}

// objectCommand creates the "object" command.
func (c *CLI) objectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "object <id>",
		Short: "Show one artwork record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := apperr.ValidateObjectID(args[0])
			if err != nil {
				return err
			}
			return c.runObject(cmd.Context(), id)
		},
	}
}

func (c *CLI) runObject(ctx context.Context, id int) error {
	env, err := c.newGallery(ctx)
	if err != nil {
		return err
	}
	defer env.Close()

	obj, err := env.client.Object(ctx, id, c.refresh)
	if err != nil {
		return gallery.AppError(err)
	}
	printArtworkDetail(obj)
	if !obj.HasImage() {
		printDetail("No public-domain image is available for this record")
	}
	return nil
}

// departmentsCommand creates the "departments" command.
func (c *CLI) departmentsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "departments",
		Short: "List the museum's curatorial departments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			env, err := c.newGallery(ctx)
			if err != nil {
				return err
			}
			defer env.Close()

			depts, err := env.client.Departments(ctx, c.refresh)
			if err != nil {
				return gallery.AppError(err)
			}
			for _, d := range depts {
				fmt.Fprintf(stdout, "%s  %s\n", StyleNumber.Render(fmt.Sprintf("%3d", d.ID)), StyleValue.Render(d.DisplayName))
			}
			return nil
		},
	}
}
