package cmd

import (
	"context"
	"fmt"

	"github.com/abhisek/sciquest/internal/store"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the full history as a JSON document",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("output")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		if err := store.WriteExport(context.Background(), s.EventRepo(), out); err != nil {
			return err
		}
		fmt.Println("Exported history to", out)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("output", "o", "sciquest-export.json", "Output file path")
}
