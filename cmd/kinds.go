package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sahidursuman/measured/internal/measurable"
	"github.com/sahidursuman/measured/internal/presentation"
)

var kindsUnit string

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List the registered quantity kinds",
	Long: `List the registered quantity kinds and their base units.

Use --unit to show only the kinds that define a unit or alias.

Examples:
  measured kinds
  measured kinds --unit ft
  measured kinds -o json | jq -r '.[].name'`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var kinds []*measurable.Kind
		if cmd.Flags().Changed("unit") {
			kinds = measurable.Default().FindByUnit(kindsUnit)
		} else {
			for _, name := range measurable.Kinds() {
				k, err := measurable.Lookup(name)
				if err != nil {
					return err
				}
				kinds = append(kinds, k)
			}
		}

		dtos, err := presentation.FromKinds(kinds, false)
		if err != nil {
			return err
		}
		return formatter(cmd).FormatKinds(dtos)
	},
}

func init() {
	kindsCmd.Flags().StringVarP(&kindsUnit, "unit", "u", "", "Only kinds defining this unit")
	rootCmd.AddCommand(kindsCmd)
}
