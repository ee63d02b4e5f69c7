package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the local database",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		dbPath, err := resolveDBPath(cmd, "")
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}

		if _, err := os.Stat(dbPath); errors.Is(err, fs.ErrNotExist) {
			fmt.Printf("Nothing to reset: %s does not exist.\n", dbPath)
			return nil
		}

		if !force {
			fmt.Printf("This deletes all progress and history in %s.\n", dbPath)
			fmt.Println("Re-run with --force to confirm.")
			return nil
		}

		if err := os.Remove(dbPath); err != nil {
			return fmt.Errorf("remove database: %w", err)
		}
		// WAL journaling leaves sidecar files that would shadow a
		// recreated database.
		for _, sidecar := range []string{dbPath + "-wal", dbPath + "-shm"} {
			if err := os.Remove(sidecar); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("remove %s: %w", sidecar, err)
			}
		}
		fmt.Printf("Deleted %s.\n", dbPath)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Actually delete, no prompt")
}
