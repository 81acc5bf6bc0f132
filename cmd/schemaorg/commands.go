package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/brochurekit/schemaorg-go"
	"github.com/brochurekit/schemaorg-go/conformance"
	"github.com/brochurekit/schemaorg-go/internal/recordfile"
	"github.com/brochurekit/schemaorg-go/jsonld"
)

func (a *app) renderCmd() *cobra.Command {
	var (
		file    string
		strict  bool
		country string
		check   bool
	)
	kinds := make([]string, 0, 7)
	for _, k := range recordfile.Kinds() {
		kinds = append(kinds, string(k))
	}

	cmd := &cobra.Command{
		Use:   "render <kind>",
		Short: "Render a record file as a JSON-LD script element",
		Long: `Reads one YAML or JSON record from --file or stdin and prints the
rendered script element.

Kinds: local-business, attorney, organization, website, breadcrumbs, faq, service.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: kinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := recordfile.ParseKind(args[0])
			if err != nil {
				return err
			}
			in, done, err := readInput(cmd, file)
			if err != nil {
				return err
			}
			defer done()
			data, err := recordfile.ToJSON(in)
			if err != nil {
				return err
			}

			opts := append(a.cfg.RenderOptions(), schemaorg.WithLogger(a.logger))
			if strict {
				opts = append(opts, schemaorg.WithValidation(
					schemaorg.WithStrictHours(),
					schemaorg.WithRejectUnknownFields(),
				))
			}
			if country != "" {
				opts = append(opts, schemaorg.WithDefaultCountry(country))
			}

			out, err := recordfile.Render(schemaorg.NewRenderer(opts...), kind, data)
			if err != nil {
				return err
			}
			if check {
				if err := conformance.CheckScript(out); err != nil {
					return err
				}
			}
			a.logger.Debug("rendered record", zap.String("kind", string(kind)), zap.Int("bytes", len(out)))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "record file (default stdin)")
	cmd.Flags().BoolVar(&strict, "strict", false, "reject unknown fields and unparseable hours")
	cmd.Flags().StringVar(&country, "country", "", "override render.default_country")
	cmd.Flags().BoolVar(&check, "check", false, "check the output against the bundled schemas")
	return cmd
}

func (a *app) checkCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check every JSON-LD script element in an HTML document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, done, err := readInput(cmd, file)
			if err != nil {
				return err
			}
			defer done()
			src, err := io.ReadAll(in)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			blocks, err := jsonld.Extract(string(src))
			if err != nil {
				return err
			}
			if err := conformance.CheckBlocks(blocks); err != nil {
				return err
			}
			a.logger.Debug("checked document", zap.Int("blocks", len(blocks)))
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "ok: %d document(s) conform\n", len(blocks))
			return err
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "HTML file (default stdin)")
	return cmd
}

func (a *app) typesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List business categories and their Schema.org types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CATEGORY\tTYPE")
			for _, c := range schemaorg.BusinessCategories() {
				fmt.Fprintf(w, "%s\t%s\n", c, schemaorg.BusinessType(c))
			}
			fmt.Fprintf(w, "(other)\t%s\n", schemaorg.DefaultBusinessType)
			return w.Flush()
		},
	}
}
