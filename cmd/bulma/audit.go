package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pthm/bulma/lib/audit"
)

type auditOptions struct {
	css    string
	pages  bool
	ignore []string
}

func newAuditCmd(flags *rootFlags) *cobra.Command {
	opts := auditOptions{}

	cmd := &cobra.Command{
		Use:   "audit [packages]",
		Short: "Check emitted class tokens against a Bulma stylesheet",
		Long: `Check the class tokens the components can emit against a Bulma
stylesheet. Packages (e.g. ./...) are scanned for class literals, and
--pages renders the showcase and checks every class it uses.

Exits non-zero when a token is missing.`,
		Example: `  curl -sL https://cdn.jsdelivr.net/npm/bulma@1.0.0/css/bulma.css -o bulma.css
  bulma audit --css bulma.css ./...`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAudit(cmd, flags, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.css, "css", "", `Stylesheet to check against ("-" for stdin)`)
	cmd.Flags().BoolVar(&opts.pages, "pages", false, "Also check the rendered showcase pages")
	cmd.Flags().StringSliceVar(&opts.ignore, "ignore", []string{"fas", "fa-*"}, "Tokens to skip; a trailing * matches a prefix")
	_ = cmd.MarkFlagRequired("css")

	return cmd
}

func runAudit(cmd *cobra.Command, flags *rootFlags, opts auditOptions, packages []string) error {
	var css io.Reader
	if opts.css == "-" {
		css = cmd.InOrStdin()
	} else {
		f, err := os.Open(opts.css)
		if err != nil {
			return err
		}
		defer f.Close()
		css = f
	}

	var pages map[string]io.Reader
	if opts.pages {
		app, err := newApp(flags)
		if err != nil {
			return err
		}
		pages = make(map[string]io.Reader)
		for _, slug := range pageSlugs(app) {
			html, err := renderPage(cmd.Context(), app, slug)
			if err != nil {
				return err
			}
			pages[slug] = bytes.NewReader(html)
		}
	}

	rep, err := audit.Run(audit.Options{
		Stylesheet: css,
		Packages:   packages,
		Pages:      pages,
		Ignore:     opts.ignore,
	})
	if err != nil {
		return err
	}
	if err := rep.Write(cmd.OutOrStdout()); err != nil {
		return err
	}
	if !rep.OK() {
		return fmt.Errorf("audit: %d missing, %d not in vocabulary", len(rep.Missing), len(rep.Unlisted))
	}
	return nil
}
