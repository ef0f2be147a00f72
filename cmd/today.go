package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/chris-regnier/caldiary/internal/day"
	"github.com/chris-regnier/caldiary/internal/storage"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Print today's entry",
	Long:  "Print today's entry as plain markdown. Running caldiary with stdout redirected does the same.",
	Example: `  caldiary today
  caldiary today > today.md`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return todayRun(cmd.OutOrStdout(), store, day.Today())
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
}

// todayRun prints the entry for d.
func todayRun(w io.Writer, s storage.Store, d day.Date) error {
	content, err := s.Load(d)
	if errors.Is(err, storage.ErrNotFound) {
		_, err = fmt.Fprintf(w, "No entry for %s.\n", d)
		return err
	}
	if err != nil {
		return fmt.Errorf("loading %s: %w", d, err)
	}
	_, err = fmt.Fprintln(w, content)
	return err
}
