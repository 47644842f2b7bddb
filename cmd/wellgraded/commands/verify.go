package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/wellgraded/check"
	"github.com/teranos/wellgraded/family"
	"github.com/teranos/wellgraded/logger"
)

var verifyX string

// VerifyCmd re-checks a stored family file.
var VerifyCmd = &cobra.Command{
	Use:   "verify <file>",
	Short: "Verify closure properties of a stored family",
	Long: `Verify that a stored family is union-closed, well-graded, and X-closed.

The file holds one set per line, elements comma-separated. The designated
subset defaults to {1,2,3} and can be overridden with --x.

Examples:
  wellgraded verify family.txt
  wellgraded verify family.txt --x 2,5`,
	Args: cobra.ExactArgs(1),
	RunE: runVerifyCommand,
}

func init() {
	VerifyCmd.Flags().StringVar(&verifyX, "x", "1,2,3", "Designated subset X, comma-separated elements")
}

func runVerifyCommand(cmd *cobra.Command, args []string) error {
	x, err := parseDesignated(verifyX)
	if err != nil {
		return err
	}

	fam, err := family.ReadFile(args[0])
	if err != nil {
		return err
	}
	logger.Infow("family loaded", "path", args[0], "sets", fam.Size())

	if err := check.Verify(fam, x); err != nil {
		return err
	}

	fmt.Printf("The family is union-closed, well-graded, and X-closed for X = %s.\n", x)
	fmt.Printf("Number of sets = %d\n", fam.Size())
	return nil
}
