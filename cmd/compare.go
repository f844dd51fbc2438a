package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sahidursuman/measured/internal/presentation"
)

var compareKind string

var compareCmd = &cobra.Command{
	Use:   "compare <value> <unit> <value> <unit>",
	Short: "Compare two amounts of the same kind",
	Long: `Compare two amounts, which may be in different units of the same kind.

Prints the relation (<, = or >) between the first and the second amount.
Put -- before the arguments when the first amount is negative.

Examples:
  measured compare 1 mi 1600 m
  measured compare 16 oz 1 lb
  measured compare 1 ultima 40 fire --kind magic -o json
  measured compare -- -1 ft -12 in`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := resolveKind(compareKind, args[1], args[3])
		if err != nil {
			return err
		}

		left, err := kind.New(args[0], args[1])
		if err != nil {
			return err
		}
		right, err := kind.New(args[2], args[3])
		if err != nil {
			return err
		}
		result, err := left.Compare(right)
		if err != nil {
			return err
		}

		return formatter(cmd).FormatComparison(presentation.FromComparison(left, right, result))
	},
}

func init() {
	compareCmd.Flags().StringVarP(&compareKind, "kind", "k", "", "Kind to compare within (e.g., length)")
	rootCmd.AddCommand(compareCmd)
}
