package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/chris-regnier/caldiary/internal/day"
	"github.com/chris-regnier/caldiary/internal/storage"
	"github.com/chris-regnier/caldiary/internal/ui"
)

var forceDelete bool

// confirmFunc asks the user a yes/no question.
type confirmFunc func(prompt string) (bool, error)

var deleteCmd = &cobra.Command{
	Use:   "delete <date>",
	Short: "Delete a diary entry",
	Long:  "Permanently delete the entry for a date. Requires confirmation unless --force is used.",
	Example: `  caldiary delete 2025-03-15
  caldiary delete yesterday --force`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := parseDateArg(args[0], day.Today())
		if err != nil {
			return err
		}
		theme := ui.ResolveTheme(appConfig.Theme)
		confirm := func(prompt string) (bool, error) {
			return ui.Confirm(prompt, theme)
		}
		if forceDelete {
			confirm = nil
		}
		return deleteRun(cmd.OutOrStdout(), store, d, confirm, jsonOutput)
	},
}

func init() {
	deleteCmd.Flags().BoolVar(&forceDelete, "force", false, "skip confirmation prompt")
	rootCmd.AddCommand(deleteCmd)
}

// deleteRun deletes the entry for d. A nil confirm deletes without asking.
func deleteRun(w io.Writer, s storage.Store, d day.Date, confirm confirmFunc, asJSON bool) error {
	content, err := loadEntry(s, d)
	if err != nil {
		return err
	}

	if confirm != nil {
		fmt.Fprintf(w, "Entry: %s\n", d)
		fmt.Fprintf(w, "Preview: %s\n\n", ui.Preview(content, previewWidth))

		ok, err := confirm("Delete this entry? This cannot be undone.")
		if err != nil {
			return err
		}
		if !ok {
			_, err := fmt.Fprintln(w, "Cancelled.")
			return err
		}
	}

	if err := s.Delete(d); err != nil {
		return fmt.Errorf("deleting %s: %w", d, err)
	}
	if asJSON {
		return ui.FormatJSON(w, ui.DeleteResult{Date: d.String(), Deleted: true})
	}
	_, err = fmt.Fprintf(w, "Deleted entry for %s.\n", color.New(color.Bold).Sprint(d))
	return err
}
