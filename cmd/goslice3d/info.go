package main

import (
	"fmt"
	"os"

	"github.com/smasonuk/goslice3d"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display general information about a PLY mesh",
	Long:  "Show triangle and vertex counts, the bounding box and the mesh dimensions.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	mesh, err := goslice3d.LoadMeshFromPLYFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading PLY file: %v\n", err)
		os.Exit(1)
	}

	min, max := mesh.Bounds()
	x, y, z := mesh.Extents()
	center := mesh.Center()

	fmt.Println("Mesh Information")
	fmt.Println("================")
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Statistics:")
	fmt.Printf("  Vertices: %d\n", len(mesh.Vertices))
	fmt.Printf("  Triangles: %d\n\n", mesh.TriangleCount())

	fmt.Println("Bounding Box:")
	fmt.Printf("  Min: (%.6f, %.6f, %.6f)\n", min[0], min[1], min[2])
	fmt.Printf("  Max: (%.6f, %.6f, %.6f)\n", max[0], max[1], max[2])
	fmt.Printf("  Center: (%.6f, %.6f, %.6f)\n\n", center[0], center[1], center[2])

	fmt.Println("Dimensions:")
	fmt.Printf("  Width (X): %.6f units\n", x)
	fmt.Printf("  Height (Y): %.6f units\n", y)
	fmt.Printf("  Depth (Z): %.6f units\n", z)
}
