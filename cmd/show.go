package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/chris-regnier/caldiary/internal/day"
	"github.com/chris-regnier/caldiary/internal/storage"
	"github.com/chris-regnier/caldiary/internal/ui"
)

const defaultRenderWidth = 80

var showRaw bool

var showCmd = &cobra.Command{
	Use:   "show <date>",
	Short: "Show a diary entry",
	Long:  "Render the entry for a date (YYYY-MM-DD, today, yesterday or tomorrow) as markdown.",
	Example: `  caldiary show 2025-03-15
  caldiary show yesterday --raw
  caldiary show today --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := parseDateArg(args[0], day.Today())
		if err != nil {
			return err
		}
		if jsonOutput {
			return showJSON(cmd.OutOrStdout(), store, d)
		}
		return showRun(cmd.OutOrStdout(), store, d, showRaw, ui.ResolveTheme(appConfig.Theme), appConfig.MaxWidth)
	},
}

func init() {
	showCmd.Flags().BoolVar(&showRaw, "raw", false, "print the markdown source without rendering")
	rootCmd.AddCommand(showCmd)
}

func loadEntry(s storage.Store, d day.Date) (string, error) {
	content, err := s.Load(d)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", fmt.Errorf("no entry for %s", d)
		}
		return "", fmt.Errorf("loading %s: %w", d, err)
	}
	return content, nil
}

func showJSON(w io.Writer, s storage.Store, d day.Date) error {
	content, err := loadEntry(s, d)
	if err != nil {
		return err
	}
	return ui.FormatJSON(w, ui.EntryJSON{Date: d.String(), Content: content})
}

func showRun(w io.Writer, s storage.Store, d day.Date, raw bool, theme ui.Theme, maxWidth int) error {
	content, err := loadEntry(s, d)
	if err != nil {
		return err
	}

	if raw {
		_, err := fmt.Fprintln(w, content)
		return err
	}

	width := defaultRenderWidth
	if maxWidth > 0 {
		width = maxWidth
	}
	rendered := ui.RenderMarkdown(content, width, theme.MarkdownStyle)
	title := d.Time().Format("Monday, January 2 2006")
	return ui.PageOutput(w, title, rendered, maxWidth, theme)
}
