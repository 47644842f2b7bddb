package commands

import (
	"github.com/spf13/cobra"

	"github.com/teranos/wellgraded/check"
	"github.com/teranos/wellgraded/family"
)

var freqX string

// FreqCmd prints the element frequency table for a stored family.
var FreqCmd = &cobra.Command{
	Use:   "freq <file>",
	Short: "Frequency table for the designated subset",
	Long: `Count, for each element of the designated subset X, how many sets of a
stored family contain it, and flag elements occurring in at least half the
sets as abundant.

Examples:
  wellgraded freq family.txt
  wellgraded freq family.txt --x 4,5,6 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runFreqCommand,
}

func init() {
	FreqCmd.Flags().StringVar(&freqX, "x", "1,2,3", "Designated subset X, comma-separated elements")
}

func runFreqCommand(cmd *cobra.Command, args []string) error {
	x, err := parseDesignated(freqX)
	if err != nil {
		return err
	}

	fam, err := family.ReadFile(args[0])
	if err != nil {
		return err
	}

	jsonOut, _ := cmd.Flags().GetBool("json")
	jsonOut, err = outputFormat(jsonOut)
	if err != nil {
		return err
	}
	return renderFrequencies(check.Frequencies(fam, x), jsonOut)
}
