package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sahidursuman/measured/internal/measurable"
	"github.com/sahidursuman/measured/internal/presentation"
)

var (
	unitsAliases bool
	unitsNames   bool
)

var unitsCmd = &cobra.Command{
	Use:   "units [kind]",
	Short: "List the units of one or all kinds",
	Long: `List units with their factor relative to the base unit.

Without a kind, every registered kind is listed.
Use --aliases to show the aliases of each unit.
Use --names for a flat, sorted list of the names accepted on input.

Examples:
  # List all units of all kinds
  measured units

  # List the units of one kind, with aliases
  measured units weight --aliases
  measured units weight -a

  # Every accepted unit name, one per line
  measured units length --names --aliases

  # Parse specific fields with jq
  measured units -o json | jq '.[].units[].name'`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := formatter(cmd)

		if len(args) == 0 {
			kinds := make([]*measurable.Kind, 0)
			for _, name := range measurable.Kinds() {
				k, err := measurable.Lookup(name)
				if err != nil {
					return err
				}
				kinds = append(kinds, k)
			}
			if unitsNames {
				var names []string
				for _, k := range kinds {
					names = append(names, unitNames(k)...)
				}
				return out.FormatNames(names)
			}
			dtos, err := presentation.FromKinds(kinds, true)
			if err != nil {
				return err
			}
			return out.FormatAllUnits(dtos, unitsAliases)
		}

		kind, err := measurable.Lookup(args[0])
		if err != nil {
			return err
		}
		if unitsNames {
			return out.FormatNames(unitNames(kind))
		}
		dto, err := presentation.FromKind(kind, true)
		if err != nil {
			return err
		}
		return out.FormatUnits(dto, unitsAliases)
	},
}

func init() {
	unitsCmd.Flags().BoolVarP(&unitsAliases, "aliases", "a", false, "Include unit aliases")
	unitsCmd.Flags().BoolVar(&unitsNames, "names", false, "Print only the sorted unit names")
	rootCmd.AddCommand(unitsCmd)
}

func unitNames(k *measurable.Kind) []string {
	if unitsAliases {
		return k.UnitsWithAliases()
	}
	return k.Units()
}
