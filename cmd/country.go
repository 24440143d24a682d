package cmd

import (
	"encoding/json"
	"fmt"

	"country-info/core/utils"
	"country-info/feature/countryinfo"

	"github.com/spf13/cobra"
)

var fieldFlag string

// countryCmd represents the country command
var countryCmd = &cobra.Command{
	Use:   "country <alias>",
	Short: "Look up one country by code, name or alternate name",
	Long: `Resolves an ISO2 or ISO3 code, a name or an alternate name (any case, with or
without diacritics) and prints the country as JSON. --field prints one field.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := setupPipeline()
		if err != nil {
			return err
		}
		defer p.close()

		svc := countryinfo.NewService(p.cache, p.logg)
		country, err := svc.Country(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if !country.Found() {
			return fmt.Errorf("%w: %q", countryinfo.ErrNotFound, args[0])
		}

		if fieldFlag == "" {
			info, _ := country.Info()
			return printJSON(info)
		}

		value, _, err := country.Field(fieldFlag)
		if err != nil {
			return fmt.Errorf("%w (available: %v)", err, countryinfo.Fields)
		}
		switch value.(type) {
		case string, []string:
			// Plain text for scalar and list fields
			fmt.Println(utils.ToString(value))
			return nil
		default:
			return printJSON(value)
		}
	},
}

// countriesCmd represents the countries command
var countriesCmd = &cobra.Command{
	Use:   "countries",
	Short: "Print every country record as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := setupPipeline()
		if err != nil {
			return err
		}
		defer p.close()

		all, err := countryinfo.NewService(p.cache, p.logg).All(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(all)
	},
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func init() {
	RootCmd.AddCommand(countryCmd, countriesCmd)
	countryCmd.Flags().StringVar(&fieldFlag, "field", "", "Print only this field (name, capital, continent, currency, ...)")
}
