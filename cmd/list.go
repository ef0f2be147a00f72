package cmd

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/chris-regnier/caldiary/internal/day"
	"github.com/chris-regnier/caldiary/internal/storage"
	"github.com/chris-regnier/caldiary/internal/ui"
)

const previewWidth = 50

var listMonth string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List diary entries",
	Long:  "List the dates that have an entry, newest first, with size and a preview.",
	Example: `  caldiary list
  caldiary list --month 2025-03
  caldiary list --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listRun(cmd.OutOrStdout(), store, listMonth, jsonOutput)
	},
}

func init() {
	listCmd.Flags().StringVar(&listMonth, "month", "", "only list entries in this month (YYYY-MM)")
	rootCmd.AddCommand(listCmd)
}

func listRun(w io.Writer, s storage.Store, month string, asJSON bool) error {
	dates, err := s.Scan()
	if err != nil {
		return fmt.Errorf("scanning entries: %w", err)
	}

	if month != "" {
		t, err := time.Parse("2006-01", month)
		if err != nil {
			return fmt.Errorf("invalid month %q (use YYYY-MM)", month)
		}
		dates = slices.DeleteFunc(dates, func(d day.Date) bool {
			return d.Year != t.Year() || d.Month != t.Month()
		})
	}

	slices.Reverse(dates)

	if asJSON {
		summaries := make([]ui.EntrySummary, 0, len(dates))
		for _, d := range dates {
			content, err := s.Load(d)
			if err != nil {
				return fmt.Errorf("loading %s: %w", d, err)
			}
			summaries = append(summaries, ui.Summarize(d, content))
		}
		return ui.FormatJSON(w, summaries)
	}

	if len(dates) == 0 {
		_, err := fmt.Fprintln(w, "No entries found.")
		return err
	}

	bold := color.New(color.Bold)
	muted := color.New(color.FgHiBlack)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("DATE"), bold.Sprint("DAY"), bold.Sprint("SIZE"), bold.Sprint("PREVIEW"))
	for _, d := range dates {
		content, err := s.Load(d)
		if err != nil {
			return fmt.Errorf("loading %s: %w", d, err)
		}
		tbl.AddRow(
			d.String(),
			d.Weekday().String()[:3],
			humanize.Bytes(uint64(len(content))),
			muted.Sprint(ui.Preview(content, previewWidth)),
		)
	}
	tbl.RightAlign(2)

	_, err = fmt.Fprintln(w, tbl)
	return err
}
