package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/wellgraded/family"
	"github.com/teranos/wellgraded/graph"
	"github.com/teranos/wellgraded/logger"
)

// GraphCmd exports the single-element-difference graph of a stored family
// as JSON, for inspection or visualization.
var GraphCmd = &cobra.Command{
	Use:   "graph <file>",
	Short: "Export the one-element-difference graph as JSON",
	Long: `Build the graph whose nodes are the sets of a stored family and whose
edges connect sets differing by exactly one element, and print it as JSON.
Well-gradedness constrains shortest paths in this graph.

Example:
  wellgraded graph family.txt > graph.json`,
	Args: cobra.ExactArgs(1),
	RunE: runGraphCommand,
}

func runGraphCommand(cmd *cobra.Command, args []string) error {
	fam, err := family.ReadFile(args[0])
	if err != nil {
		return err
	}

	g := graph.Build(fam)
	logger.Infow("graph built",
		"nodes", g.Meta.Stats.TotalNodes,
		"edges", g.Meta.Stats.TotalEdges)

	out, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
