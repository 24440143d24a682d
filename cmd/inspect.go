package cmd

import (
	"fmt"

	"country-info/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Check the geonames source schema and the built artifacts",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := setupPipeline()
		if err != nil {
			return err
		}
		defer p.close()

		svc := integrity.NewService(p.db, p.store, p.logg)

		fmt.Println("\n=== Source ===")
		if report, err := svc.CheckSource(); err != nil {
			p.logg.Error("Source check failed", zap.Error(err))
		} else {
			fmt.Printf("Driver: %s\n", report.Driver)
			fmt.Printf("Matched: %t\n", report.Matched)
			for name, tbl := range report.Tables {
				if tbl.Status == "ok" {
					continue
				}
				if !tbl.Exists {
					fmt.Printf("  %s: table missing\n", name)
					continue
				}
				fmt.Printf("  %s: missing columns %v\n", name, tbl.MissingColumns)
			}
			for _, e := range report.Errors {
				fmt.Printf("  error: %s\n", e)
			}
		}

		fmt.Println("\n=== Artifacts ===")
		report, err := svc.CheckArtifacts(cmd.Context())
		if err != nil {
			return fmt.Errorf("artifact check failed: %w", err)
		}
		fmt.Printf("Status: %s\n", report.Status)
		fmt.Printf("Countries: %d\n", report.Countries)
		fmt.Printf("Aliases: %d\n", report.Aliases)
		if len(report.Dangling) > 0 {
			fmt.Printf("Dangling aliases: %v\n", report.Dangling)
		}
		if len(report.Unindexed) > 0 {
			fmt.Printf("Unindexed geo ids: %v\n", report.Unindexed)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(inspectCmd)
}
