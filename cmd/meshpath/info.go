package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/meshpath/pkg/mesh"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [mesh]",
	Short: "Display general information about a mesh",
	Long: `Show vertex, face and edge counts after welding, the number of islands,
dimensions, surface area and edge length statistics.`,
	Args: cobra.ExactArgs(1),
	Run:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	source := args[0]

	m, err := loadMesh(source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading mesh: %v\n", err)
		os.Exit(1)
	}

	result := mesh.Analyze(m)

	fmt.Println("Mesh Information")
	fmt.Println("================")
	if m.Name != "" {
		fmt.Printf("Name: %s\n", m.Name)
	}
	fmt.Printf("Source: %s\n\n", source)

	fmt.Println("Topology:")
	fmt.Printf("  Vertices: %d\n", result.Vertices)
	fmt.Printf("  Faces: %d\n", result.Faces)
	fmt.Printf("  Edges: %d (%d on a boundary)\n", result.Edges, result.BoundaryEdges)
	fmt.Printf("  Islands: %d\n\n", result.Islands)

	if result.Vertices == 0 {
		return
	}

	fmt.Println("Bounding Box:")
	fmt.Printf("  Min: %s\n", mesh.FormatVector(result.BoundingBox.Min))
	fmt.Printf("  Max: %s\n\n", mesh.FormatVector(result.BoundingBox.Max))

	fmt.Println("Dimensions:")
	fmt.Printf("  Width (X): %.6f units\n", result.Dimensions.X)
	fmt.Printf("  Depth (Y): %.6f units\n", result.Dimensions.Y)
	fmt.Printf("  Height (Z): %.6f units\n", result.Dimensions.Z)
	fmt.Printf("  Surface Area: %.6f square units\n\n", result.SurfaceArea)

	fmt.Println("Edge Lengths:")
	fmt.Printf("  Minimum: %.6f units\n", result.MinEdgeLength)
	fmt.Printf("  Maximum: %.6f units\n", result.MaxEdgeLength)
	fmt.Printf("  Average: %.6f units\n", result.AvgEdgeLength)
}
