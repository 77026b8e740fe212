package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/meshpath/internal/render"
	"github.com/philipparndt/meshpath/pkg/path"
	"github.com/philipparndt/meshpath/pkg/topology"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var pathGap bool

var pathCmd = &cobra.Command{
	Use:   "path [mesh] [element] [element...]",
	Short: "Fill the shortest path through a list of control points",
	Long: `Place the given control points (v<n> or f<n>) in order and print every fill,
the gap fill and the resolved path, without an interactive session.`,
	Args: cobra.MinimumNArgs(2),
	Run:  runPath,
}

func init() {
	rootCmd.AddCommand(pathCmd)

	pathCmd.Flags().BoolVarP(&pathGap, "gap", "g", false, "Close the path from the last point back to the first")
}

func runPath(cmd *cobra.Command, args []string) {
	m, err := loadMesh(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading mesh: %v\n", err)
		os.Exit(1)
	}

	points := make([]topology.ElementRef, 0, len(args)-1)
	for _, arg := range args[1:] {
		e, err := topology.ParseElement(arg)
		if err == nil && !m.Contains(e) {
			err = errors.Errorf("%s is not in the mesh", e)
		}
		if err == nil && e.Kind != firstKind(points, e) {
			err = errors.Errorf("%s: all control points must be of one kind", e)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		points = append(points, e)
	}

	kind := points[0].Kind
	island := topology.NewIsland(kind, m.ConnectedComponent(points[0]))
	model := path.NewModel(m, kind, island)
	model.SetGapFill(pathGap)
	for _, p := range points {
		if !island.Contains(p) {
			fmt.Printf("Skipping %s: on another part of the mesh\n", p)
			continue
		}
		if model.Insert(p) < 0 {
			fmt.Printf("Skipping %s: already a control point\n", p)
		}
	}

	fmt.Printf("Control points: %s\n", render.Elements(model.Points()))
	for i, fill := range model.Fills() {
		if len(fill) == 0 {
			fmt.Printf("  fill %d: no route\n", i)
			continue
		}
		fmt.Printf("  fill %d: %s\n", i, render.Elements(fill))
	}
	if gap := model.GapFill(); len(gap) > 0 {
		fmt.Printf("  gap: %s\n", render.Elements(gap))
	}

	resolved := model.ResolvedPath()
	fmt.Printf("Path (%d elements): %s\n", len(resolved.Elements), render.Elements(resolved.Elements))
	fmt.Printf("Shortest path queries: %d\n", model.Queries())
}

// firstKind is the kind every control point must share.
func firstKind(points []topology.ElementRef, e topology.ElementRef) topology.Kind {
	if len(points) == 0 {
		return e.Kind
	}
	return points[0].Kind
}
