package cmd

import (
	"fmt"
	"time"

	"country-info/feature/countryinfo"

	"github.com/spf13/cobra"
)

var forceFlag bool

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the country records and lookup index",
	Long: `Aggregates every country of the geonames database into the record and lookup
artifacts. Existing artifacts are kept unless --force is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := setupPipeline()
		if err != nil {
			return err
		}
		defer p.close()

		var report *countryinfo.BuildReport
		if forceFlag {
			report, err = p.cache.Rebuild(cmd.Context())
		} else {
			report, err = p.cache.Build(cmd.Context())
		}
		if err != nil {
			return fmt.Errorf("build failed: %w", err)
		}

		if report.Skipped {
			fmt.Println("Country artifacts already exist, nothing to do (use --force to rebuild)")
			return nil
		}

		fmt.Println("\n=== Country Build ===")
		fmt.Printf("Countries: %d\n", report.Countries)
		fmt.Printf("Aliases: %d\n", report.Aliases)
		fmt.Printf("Execution Time: %s\n", (time.Duration(report.Duration) * time.Millisecond).String())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(buildCmd)
	buildCmd.Flags().BoolVar(&forceFlag, "force", false, "Re-aggregate and replace existing artifacts")
}
