package cmd

import (
	"fmt"
	"io"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/chris-regnier/caldiary/internal/app"
	"github.com/chris-regnier/caldiary/internal/day"
	"github.com/chris-regnier/caldiary/internal/storage"
	"github.com/chris-regnier/caldiary/internal/ui"
)

const (
	todayIcon   = "✓"
	noTodayIcon = "✗"
	streakIcon  = "d"
)

// statusData holds the template data for status formatting.
type statusData struct {
	TodayIcon  string `json:"-"`
	HasToday   bool   `json:"has_today"`
	Streak     int    `json:"streak"`
	StreakIcon string `json:"-"`
	Entries    int    `json:"entries"`
	Backend    string `json:"backend"`
}

var (
	statusEnv    bool
	statusFormat string
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show diary prompt status",
	Long: `Show whether today has an entry and the current streak of consecutive days,
for shell prompt integration.

Use --env to output shell environment variable assignments.
Use --format with a Go template for custom output.`,
	Example: `  caldiary status
  caldiary status --env
  caldiary status --format "{{.TodayIcon}} {{.Streak}}{{.StreakIcon}}"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := computeStatus(store, day.Today(), appConfig.Storage)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		switch {
		case jsonOutput:
			return ui.FormatJSON(w, data)
		case statusEnv:
			return outputEnv(w, data)
		case statusFormat != "":
			return outputTemplate(w, data, statusFormat)
		}
		_, err = fmt.Fprintf(w, "%s %d%s\n", data.TodayIcon, data.Streak, data.StreakIcon)
		return err
	},
}

func init() {
	statusCmd.Flags().BoolVar(&statusEnv, "env", false, "output shell environment variable assignments")
	statusCmd.Flags().StringVar(&statusFormat, "format", "", "Go template format string")
	rootCmd.AddCommand(statusCmd)
}

func computeStatus(s storage.Store, today day.Date, backend string) (statusData, error) {
	dates, err := s.Scan()
	if err != nil {
		return statusData{}, fmt.Errorf("scanning entries: %w", err)
	}
	idx := app.NewDiaryIndex(dates)

	data := statusData{
		TodayIcon:  noTodayIcon,
		HasToday:   idx.Has(today),
		Streak:     idx.Streak(today),
		StreakIcon: streakIcon,
		Entries:    idx.Len(),
		Backend:    backend,
	}
	if data.HasToday {
		data.TodayIcon = todayIcon
	}
	return data, nil
}

func outputEnv(w io.Writer, data statusData) error {
	_, err := fmt.Fprintf(w, "export CALDIARY_TODAY=%q\nexport CALDIARY_STREAK=%q\nexport CALDIARY_ENTRIES=%q\n",
		data.TodayIcon, fmt.Sprint(data.Streak), fmt.Sprint(data.Entries))
	return err
}

func outputTemplate(w io.Writer, data statusData, format string) error {
	tmpl, err := template.New("status").Parse(format)
	if err != nil {
		return fmt.Errorf("invalid format template: %w", err)
	}
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("executing format template: %w", err)
	}
	_, err = fmt.Fprintln(w)
	return err
}
