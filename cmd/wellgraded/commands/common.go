// Package commands implements the wellgraded CLI commands.
package commands

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/teranos/wellgraded/check"
	"github.com/teranos/wellgraded/config"
	"github.com/teranos/wellgraded/errors"
	"github.com/teranos/wellgraded/family"
)

// parseDesignated parses an --x flag value like "1,2,3" into a Set.
func parseDesignated(text string) (family.Set, error) {
	x, err := family.ParseSet(text)
	if err != nil {
		return family.Set{}, errors.Wrapf(err, "invalid designated subset %q", text)
	}
	if x.IsEmpty() {
		return family.Set{}, errors.Newf("designated subset must not be empty")
	}
	return x, nil
}

// renderFrequencies prints the frequency table, as a pterm table for humans
// or as JSON for machines.
func renderFrequencies(table check.FrequencyTable, jsonOut bool) error {
	if jsonOut {
		out, err := json.MarshalIndent(table, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to marshal frequency table")
		}
		fmt.Println(string(out))
		return nil
	}

	data := pterm.TableData{{"Element", "Count", "Fraction", "Abundant"}}
	for _, row := range table {
		data = append(data, []string{
			strconv.Itoa(row.Element),
			strconv.Itoa(row.Count),
			fmt.Sprintf("%.4f", row.Fraction),
			strconv.FormatBool(row.Abundant),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// outputFormat resolves the effective output mode from the --json flag and
// the configured default.
func outputFormat(jsonFlag bool) (bool, error) {
	if jsonFlag {
		return true, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return false, err
	}
	return cfg.Output.Format == config.FormatJSON, nil
}
