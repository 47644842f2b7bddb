package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/wellgraded/cmd/wellgraded/commands"
	"github.com/teranos/wellgraded/config"
	"github.com/teranos/wellgraded/errors"
	"github.com/teranos/wellgraded/logger"
)

var rootCmd = &cobra.Command{
	Use:   "wellgraded [filename]",
	Short: "Well-graded union-closed family example",
	Long: `wellgraded — construct and verify a well-graded union-closed family.

Builds the example family F over {1..13} with designated subset X = {1,2,3},
verifies that F is union-closed, well-graded, and X-closed, and reports how
often each element of X occurs. The family is engineered so that no element
of X is abundant (present in at least half the sets).

With a filename argument the family is also written to that file, one set
per line, elements comma-separated in ascending order.

Examples:
  wellgraded                   # verify and print the frequency table
  wellgraded family.txt        # additionally store the family
  wellgraded verify family.txt # re-check a stored family
  wellgraded freq family.txt   # frequency table for a stored family`,
	Args:         cobra.MaximumNArgs(1),
	RunE:         commands.RunExample,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return errors.Wrap(err, "failed to load configuration")
		}
		verbosity, _ := cmd.Flags().GetCount("verbose")
		if verbosity == 0 {
			verbosity = cfg.Log.Verbosity
		}
		jsonLogs, _ := cmd.Flags().GetBool("json")
		if err := logger.Initialize(jsonLogs || cfg.Log.JSON, verbosity); err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "Machine-readable JSON output")

	rootCmd.AddCommand(commands.VerifyCmd)
	rootCmd.AddCommand(commands.FreqCmd)
	rootCmd.AddCommand(commands.GraphCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()

	if err := rootCmd.Execute(); err != nil {
		if errors.IsConstructionError(err) {
			fmt.Fprintf(os.Stderr, "internal consistency error: %v\n", err)
		}
		os.Exit(1)
	}
}
