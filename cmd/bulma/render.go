package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pthm/bulma/lib/logger"
	"github.com/pthm/bulma/lib/showcase"
)

type renderOptions struct {
	out string
	dir string
	all bool
}

func newRenderCmd(flags *rootFlags) *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render [page]",
		Short: "Write a showcase page as static HTML",
		Example: `  bulma render forms
  bulma render forms --out forms.html
  bulma render --all --dir site`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(flags)
			if err != nil {
				return err
			}
			if opts.all {
				return renderAll(cmd.Context(), app, opts.dir)
			}
			if len(args) == 0 {
				return fmt.Errorf("page name required, one of %v", pageSlugs(app))
			}
			html, err := renderPage(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			if opts.out == "" {
				_, err = cmd.OutOrStdout().Write(html)
				return err
			}
			return os.WriteFile(opts.out, html, 0o644)
		},
	}

	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Write to a file instead of stdout")
	cmd.Flags().BoolVar(&opts.all, "all", false, "Render every page into --dir")
	cmd.Flags().StringVar(&opts.dir, "dir", ".", "Output directory for --all")

	return cmd
}

// newApp builds a showcase for offline rendering. Nothing is logged.
func newApp(flags *rootFlags) (*showcase.Showcase, error) {
	cfg, err := flags.loadConfig()
	if err != nil {
		return nil, err
	}
	return showcase.New(cfg, logger.Nop(), nil)
}

func pageSlugs(app *showcase.Showcase) []string {
	var slugs []string
	for _, p := range app.Pages() {
		slugs = append(slugs, p.Slug)
	}
	return slugs
}

func renderPage(ctx context.Context, app *showcase.Showcase, slug string) ([]byte, error) {
	c, err := app.Page(slug)
	if err != nil {
		return nil, fmt.Errorf("%w, want one of %v", err, pageSlugs(app))
	}
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", slug, err)
	}
	return buf.Bytes(), nil
}

func renderAll(ctx context.Context, app *showcase.Showcase, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, slug := range pageSlugs(app) {
		html, err := renderPage(ctx, app, slug)
		if err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(dir, slug+".html"), html, 0o644); err != nil {
			return err
		}
	}
	return nil
}
