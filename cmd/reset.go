package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all learner data",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Printf("This will permanently delete %s.\n", dbPath)
			fmt.Println("Re-run with --yes to confirm.")
			return nil
		}

		// WAL mode leaves sidecar files next to the database.
		removed := false
		for _, p := range []string{dbPath, dbPath + "-wal", dbPath + "-shm"} {
			err := os.Remove(p)
			if err == nil {
				removed = true
				continue
			}
			if !os.IsNotExist(err) {
				return fmt.Errorf("remove %s: %w", p, err)
			}
		}

		if !removed {
			fmt.Println("Nothing to reset.")
			return nil
		}
		fmt.Println("Learner data deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
}
