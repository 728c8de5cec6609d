package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"finhistory/internal/gedcom"
	"finhistory/pkg/types"
)

// Output formats of the events command.
const (
	formatGEDCOM = "gedcom"
	formatJSON   = "json"
	formatTable  = "table"
)

func newIdentityCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "identity",
		Short:   "Print the module identity as JSON",
		Example: "  finhistory identity",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, p, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), p.Identity())
		},
	}
}

func newEventsCmd(opts *rootOptions) *cobra.Command {
	var lang, format string
	cmd := &cobra.Command{
		Use:     "events",
		Short:   "Print the historic events",
		Example: "  finhistory events\n  finhistory events --format table\n  finhistory --variant events_v2_single_dates events --format json",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, p, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			switch strings.ToLower(format) {
			case formatGEDCOM:
				_, err := fmt.Fprintln(out, strings.Join(p.HistoricEventsAll(lang), "\n\n"))
				return err
			case formatJSON:
				return writeJSON(out, eventsResponse(p.Identity().Variant, lang, p.HistoricEvents(lang)))
			case formatTable:
				renderEvents(out, p.HistoricEvents(lang))
				return nil
			default:
				return fmt.Errorf("unsupported format: %s (want gedcom|json|table)", format)
			}
		},
	}
	cmd.Flags().StringVar(&lang, "lang", "fi", "Language tag passed to the provider")
	cmd.Flags().StringVar(&format, "format", formatGEDCOM, "Output format: gedcom|json|table")
	return cmd
}

func newTranslationsCmd(opts *rootOptions) *cobra.Command {
	var lang string
	cmd := &cobra.Command{
		Use:     "translations",
		Short:   "Print the translation catalog of a locale as JSON",
		Example: "  finhistory translations --lang fi",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, p, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			tr, err := p.CustomTranslations(lang)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), types.TranslationsResponse{Lang: lang, Translations: tr})
		},
	}
	cmd.Flags().StringVar(&lang, "lang", "fi", "Locale to print")
	return cmd
}

func newLocalesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "locales",
		Short:   "List the translation catalogs in the resources folder",
		Example: "  finhistory locales\n  finhistory --resources-dir ./resources locales",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, p, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			renderLocales(cmd.OutOrStdout(), p.ResourcesFolder(), p.Locales())
			return nil
		},
	}
}

func eventsResponse(variant, lang string, recs []gedcom.Record) types.EventsResponse {
	resp := types.EventsResponse{Variant: variant, Lang: lang, Count: len(recs)}
	resp.Records = make([]string, 0, len(recs))
	resp.Events = make([]types.Event, 0, len(recs))
	for _, r := range recs {
		resp.Records = append(resp.Records, r.String())
		resp.Events = append(resp.Events, types.Event{Title: r.Title, Type: r.Type, Date: r.Date.String(), Note: r.Note})
	}
	return resp
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// newTable creates a table with the standard styling.
func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	return t
}

func renderEvents(w io.Writer, recs []gedcom.Record) {
	t := newTable()
	t.AppendHeader(table.Row{"#", "TITLE", "TYPE", "DATE"})
	for i, r := range recs {
		t.AppendRow(table.Row{i + 1, r.Title, r.Type, r.Date.String()})
	}
	t.AppendFooter(table.Row{"", "Total", len(recs), ""})
	fmt.Fprintln(w, t.Render())
}

func renderLocales(w io.Writer, folder string, cats []types.Catalog) {
	if len(cats) == 0 {
		fmt.Fprintf(w, "%s %s\n", text.FgYellow.Sprint("No catalogs found in"), folder)
		return
	}
	t := newTable()
	t.SetTitle(folder)
	t.AppendHeader(table.Row{"LOCALE", "PATH", "SUPPORTED"})
	for _, c := range cats {
		t.AppendRow(table.Row{c.Locale, c.Path, c.Supported})
	}
	fmt.Fprintln(w, t.Render())
}
