package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/sahidursuman/measured/internal/log"
	"github.com/sahidursuman/measured/internal/measurable"
	"github.com/sahidursuman/measured/internal/presentation"
)

var convertKind string

var convertCmd = &cobra.Command{
	Use:   "convert <value> <from> <to> | convert - <to>",
	Short: "Convert an amount to another unit",
	Long: `Convert an exact amount from one unit to another unit of the same kind.

Units may be given by name or alias, in any case. The kind is found from the
units; use --kind when more than one kind defines them.

With "-" in place of the value and unit, a JSON amount such as
{"kind":"Weight","value":"1000","unit":"g"} is read from stdin. The kind
comes from the JSON and --kind is ignored.

Put -- before a negative amount so it is not read as a flag.

Examples:
  measured convert 1 kg lb
  measured convert 2.5 miles km
  measured convert 10 fire ultima --kind magic
  measured convert -- -40 ft m

  # Parse the result with jq
  measured convert 1 kg g -o json | jq -r '.to.value'

  # Chain conversions
  measured convert 1 mi ft -o json | jq .to | measured convert - yd`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) == 2 && args[0] == "-" {
			return nil
		}
		return cobra.ExactArgs(3)(cmd, args)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		target := args[len(args)-1]

		var from *measurable.Measurable
		var err error
		if args[0] == "-" && len(args) == 2 {
			from, err = readQuantity(cmd.InOrStdin())
		} else {
			from, err = newQuantity(convertKind, args[0], args[1], target)
		}
		if err != nil {
			return err
		}

		to, err := from.ConvertTo(target)
		if err != nil {
			return err
		}
		log.Debug(log.CatCLI, "converted", "kind", from.Kind().Name(), "from", from.String(), "to", to.String())

		return formatter(cmd).FormatConversion(presentation.FromConversion(from, to))
	},
}

func newQuantity(kindName, amount, unitName, target string) (*measurable.Measurable, error) {
	kind, err := resolveKind(kindName, unitName, target)
	if err != nil {
		return nil, err
	}
	return kind.New(amount, unitName)
}

// readQuantity decodes one JSON amount, resolving its kind through the
// process-wide catalog.
func readQuantity(r io.Reader) (*measurable.Measurable, error) {
	var m measurable.Measurable
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("reading amount from stdin: %w", err)
	}
	return &m, nil
}

func init() {
	convertCmd.Flags().StringVarP(&convertKind, "kind", "k", "", "Kind to convert within (e.g., weight)")
	rootCmd.AddCommand(convertCmd)
}
