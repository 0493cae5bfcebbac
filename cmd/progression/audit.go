package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-progression/internal/errors"
	progressionrepo "github.com/KirkDiggler/rpg-progression/internal/repositories/progression"
)

var auditFix bool

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Check the Redis store for corrupted mobiles and index drift",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newApp(settings)
		if err != nil {
			return err
		}
		defer func() {
			if err := a.Close(); err != nil {
				a.logger.Warn("failed to close store", "error", err)
			}
		}()

		if a.redis == nil {
			return errors.FailedPrecondition("audit needs the redis store")
		}

		report, err := progressionrepo.Audit(cmd.Context(), a.redis, auditFix)
		if err != nil {
			return err
		}

		fmt.Printf("Checked %d mobiles\n", report.Checked)
		printIDs("corrupted", report.Corrupted)
		printIDs("orphaned index entries", report.Orphaned)
		printIDs("unindexed", report.Unindexed)

		switch {
		case report.Clean():
			fmt.Println("No problems found")
		case report.Repaired:
			fmt.Println("Repaired")
		default:
			fmt.Println("Run with --fix to repair")
		}
		return nil
	},
}

func init() {
	auditCmd.Flags().BoolVar(&auditFix, "fix", false, "delete corrupted mobiles and reconcile the index")
}

func printIDs(label string, ids []string) {
	if len(ids) == 0 {
		return
	}
	fmt.Printf("%s:\n", label)
	for _, id := range ids {
		fmt.Printf("  - %s\n", id)
	}
}
