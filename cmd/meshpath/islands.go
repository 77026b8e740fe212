package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/meshpath/internal/render"
	"github.com/philipparndt/meshpath/pkg/topology"
	"github.com/spf13/cobra"
)

var (
	islandsKind  string
	islandsCount int
)

var islandsCmd = &cobra.Command{
	Use:   "islands [mesh]",
	Short: "List the connected parts of a mesh",
	Long:  "A path can never leave the island of its first control point. This lists every island with its size and first elements.",
	Args:  cobra.ExactArgs(1),
	Run:   runIslands,
}

func init() {
	rootCmd.AddCommand(islandsCmd)

	islandsCmd.Flags().StringVarP(&islandsKind, "kind", "k", "vertex", "Element kind: vertex or face")
	islandsCmd.Flags().IntVarP(&islandsCount, "count", "n", 8, "Number of elements to show per island")
}

func runIslands(cmd *cobra.Command, args []string) {
	kind, err := topology.ParseKind(islandsKind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	m, err := loadMesh(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading mesh: %v\n", err)
		os.Exit(1)
	}

	islands := m.Islands(kind)
	fmt.Printf("%d %s islands\n", len(islands), kind)
	for i, island := range islands {
		shown := island
		more := ""
		if islandsCount >= 0 && len(shown) > islandsCount {
			shown = shown[:islandsCount]
			more = " ..."
		}
		fmt.Printf("  %d: %d elements: %s%s\n", i, len(island), render.Elements(shown), more)
	}
}
