package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "goslice3d",
	Short: "A command-line tool for slicing textured triangle meshes with a plane",
	Long: `goslice3d cuts a triangulated mesh with an infinite plane and writes the
two resulting hulls as ASCII PLY files. Texture coordinates are interpolated
across the cut and normals are recomputed on both halves.`,
	Version: "1.0.0",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
