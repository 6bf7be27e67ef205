package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cognicore/lexiscan/pkg/lexiscan/taxonomy"
)

// taxonomyCmd loads and validates a taxonomy file.
var taxonomyCmd = &cobra.Command{
	Use:   "taxonomy <file>",
	Short: "Validate a taxonomy file and print its structure",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tax, err := taxonomy.Load(args[0])
		if err != nil {
			return err
		}

		for _, module := range tax.Modules() {
			fmt.Printf("%s (%d categories)\n", module.Name, len(module.Categories))
			for _, cat := range module.Categories {
				fmt.Printf("  %s: %s\n", cat.Name, strings.Join(cat.Terms, ", "))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(taxonomyCmd)
}
