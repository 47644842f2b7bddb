package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/wellgraded/check"
	"github.com/teranos/wellgraded/config"
	"github.com/teranos/wellgraded/errors"
	"github.com/teranos/wellgraded/example"
	"github.com/teranos/wellgraded/family"
	"github.com/teranos/wellgraded/logger"
)

// RunExample is the root command: build the example family, verify every
// required property, report frequencies, and optionally persist the family.
// A property failure here is an internal-consistency bug, not user error.
func RunExample(cmd *cobra.Command, args []string) error {
	fam, x := example.Build()
	logger.Infow("example family built", "sets", fam.Size(), "x", x.String())

	if err := check.Verify(fam, x); err != nil {
		return errors.MarkConstruction(err, "example verification")
	}

	table := check.Frequencies(fam, x)
	if err := check.NoAbundant(table); err != nil {
		return errors.MarkConstruction(err, "example abundance")
	}

	jsonOut, _ := cmd.Flags().GetBool("json")
	jsonOut, err := outputFormat(jsonOut)
	if err != nil {
		return err
	}

	if !jsonOut {
		fmt.Println("The family is union-closed, well-graded, and X-closed.")
		fmt.Printf("Number of sets = %d\n", fam.Size())
	}
	if err := renderFrequencies(table, jsonOut); err != nil {
		return err
	}

	if path := resolveOutputPath(args); path != "" {
		if err := family.WriteFile(path, fam); err != nil {
			return err
		}
		logger.Infow("family written", "path", path, "sets", fam.Size())
		if !jsonOut {
			fmt.Printf("Family written to %s\n", path)
		}
	}
	return nil
}

// resolveOutputPath prefers the positional filename, falling back to the
// configured default path.
func resolveOutputPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	if cfg, err := config.Load(); err == nil {
		return cfg.Output.Path
	}
	return ""
}
