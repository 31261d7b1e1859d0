package main

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/Sternrassler/pagelinks/pkg/dom"
	"github.com/Sternrassler/pagelinks/pkg/location"
	"github.com/Sternrassler/pagelinks/pkg/pagination"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type renderOptions struct {
	page      int
	pageCount int
	links     int
	base      string
	params    []string
	parse     bool
}

func newRenderCmd() *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the pagination markup for a page",
		Example: `  pagelinks render --page 5 --page-count 20
  pagelinks render --page 2 --page-count 9 --base https://h/orders --param filter=open`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.page, "page", 1, "current page")
	f.IntVar(&opts.pageCount, "page-count", 1, "total number of pages")
	f.IntVar(&opts.links, "links", pagination.DefaultNumberOfLinks, "size of the numbered window")
	f.StringVar(&opts.base, "base", "http://localhost:8080/items", "base URL the links point at")
	f.StringArrayVar(&opts.params, "param", nil, "request parameter as key=value (repeatable)")
	f.BoolVar(&opts.parse, "parse", false, "parse the markup and bind click handlers before printing")

	return cmd
}

func runRender(cmd *cobra.Command, opts renderOptions) error {
	params, err := parseParams(opts.params)
	if err != nil {
		return err
	}

	logger := zerolog.Nop()
	cfg := pagination.DefaultConfig(location.Static(opts.base))
	cfg.NumberOfLinks = opts.links
	cfg.Logger = &logger

	p, err := pagination.New(cfg)
	if err != nil {
		return err
	}
	p.SetRequestParams(params).SetPage(opts.page).SetPageCount(opts.pageCount)

	out := cmd.OutOrStdout()

	if !opts.parse {
		markup, err := p.ParsePaginationTemplate()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, strings.TrimSpace(markup))
		return err
	}

	root, err := p.ParsePagination()
	if err != nil {
		return err
	}
	if root == nil {
		return nil
	}

	markup, err := dom.Render(root)
	if err != nil {
		return err
	}
	anchors := p.Document().FindAnchors(root)
	_, err = fmt.Fprintf(out, "%s\n%d anchors bound\n", markup, len(anchors))
	return err
}

// parseParams turns key=value pairs into request parameters.
func parseParams(pairs []string) (url.Values, error) {
	params := url.Values{}
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --param %q: want key=value", pair)
		}
		params.Add(key, value)
	}
	return params, nil
}

func newWindowCmd() *cobra.Command {
	var page, pageCount, links int

	cmd := &cobra.Command{
		Use:   "window",
		Short: "Print the range of numbered pages shown for a page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := pagination.CalculateWindow(page, pageCount, links)
			out := cmd.OutOrStdout()

			if w.Len() == 0 {
				_, err := fmt.Fprintln(out, "empty")
				return err
			}

			pages := make([]string, 0, w.Len())
			for _, n := range w.Pages() {
				pages = append(pages, fmt.Sprint(n))
			}
			_, err := fmt.Fprintf(out, "%d..%d [%s]\n", w.First, w.Last, strings.Join(pages, " "))
			return err
		},
	}

	f := cmd.Flags()
	f.IntVar(&page, "page", 1, "current page")
	f.IntVar(&pageCount, "page-count", 1, "total number of pages")
	f.IntVar(&links, "links", pagination.DefaultNumberOfLinks, "size of the numbered window")

	return cmd
}
