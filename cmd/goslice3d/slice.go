package main

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/smasonuk/goslice3d"
	"github.com/spf13/cobra"
)

var (
	sliceNormal   []float64
	sliceDistance float64
	sliceUpperOut string
	sliceLowerOut string
	sliceSmooth   bool
)

var sliceCmd = &cobra.Command{
	Use:   "slice [file]",
	Short: "Cut a PLY mesh with a plane and write the two hulls",
	Long: `Slice cuts the mesh with the plane n.x = d, where n is --normal and d is
--distance. The hull on the normal side of the plane goes to --upper, the
other to --lower; a hull with no geometry is skipped. Texture coordinates
are carried through the cut.`,
	Args: cobra.ExactArgs(1),
	Run:  runSlice,
}

func init() {
	rootCmd.AddCommand(sliceCmd)

	sliceCmd.Flags().Float64SliceVarP(&sliceNormal, "normal", "n", []float64{0, 1, 0}, "Plane normal as x,y,z")
	sliceCmd.Flags().Float64VarP(&sliceDistance, "distance", "d", 0, "Plane distance from the origin along the normal")
	sliceCmd.Flags().StringVarP(&sliceUpperOut, "upper", "u", "upper.ply", "Output file for the hull above the plane")
	sliceCmd.Flags().StringVarP(&sliceLowerOut, "lower", "l", "lower.ply", "Output file for the hull below the plane")
	sliceCmd.Flags().BoolVar(&sliceSmooth, "smooth", false, "Smooth the recomputed normals instead of keeping them flat")
}

func runSlice(cmd *cobra.Command, args []string) {
	filename := args[0]

	if len(sliceNormal) != 3 {
		fmt.Fprintln(os.Stderr, "Error: --normal needs exactly three components")
		os.Exit(1)
	}
	normal := mgl64.Vec3{sliceNormal[0], sliceNormal[1], sliceNormal[2]}
	if normal.Len() == 0 {
		fmt.Fprintln(os.Stderr, "Error: --normal must be a non-zero vector")
		os.Exit(1)
	}

	mesh, err := goslice3d.LoadMeshFromPLYFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading PLY file: %v\n", err)
		os.Exit(1)
	}

	slicer := goslice3d.NewSlicer()
	if sliceSmooth {
		slicer.SetNormalRecomputer(goslice3d.RecomputeSmoothNormals)
	}

	result := slicer.Slice(mesh, goslice3d.NewPlane(normal, sliceDistance))
	if result == nil {
		fmt.Fprintln(os.Stderr, "Error: mesh has no triangles")
		os.Exit(1)
	}

	fmt.Printf("Sliced %s (%d triangles)\n", filename, mesh.TriangleCount())
	fmt.Printf("Cross-section points: %d\n", len(result.CrossSection))

	writeHull := func(hull *goslice3d.TriangleMesh, name, out string) {
		if hull == nil {
			fmt.Printf("%s hull: empty, skipped\n", name)
			return
		}
		if err := goslice3d.SaveMeshToPLYFile(hull, out); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s hull: %v\n", name, err)
			os.Exit(1)
		}
		fmt.Printf("%s hull: %d triangles -> %s\n", name, hull.TriangleCount(), out)
	}
	writeHull(result.Upper, "Upper", sliceUpperOut)
	writeHull(result.Lower, "Lower", sliceLowerOut)
}
