package main

import (
	"fmt"

	"github.com/davesmith10/stereodepth/internal/colormap"
	"github.com/davesmith10/stereodepth/internal/imgio"
	"github.com/davesmith10/stereodepth/internal/pipeline"
	"github.com/davesmith10/stereodepth/internal/stereo"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a jet-colored disparity map to a PNG file",
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringP("left", "l", "", "Path to the left image")
	renderCmd.Flags().StringP("right", "r", "", "Path to the right image")
	renderCmd.Flags().StringP("output", "o", "", "Output PNG file")
	renderCmd.Flags().IntP("mindisp", "m", 0, "Minimum disparity")
	renderCmd.Flags().UintP("numdisp", "n", stereo.DefaultNumDisparities, "Number of disparities")
	renderCmd.Flags().UintP("blocksize", "b", stereo.DefaultBlockSize, "Block size (must be an odd number)")
	renderCmd.MarkFlagRequired("left")
	renderCmd.MarkFlagRequired("right")
	renderCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	leftPath, _ := cmd.Flags().GetString("left")
	rightPath, _ := cmd.Flags().GetString("right")
	outputPath, _ := cmd.Flags().GetString("output")

	result, err := pipeline.Run(pipeline.Options{
		LeftPath:  leftPath,
		RightPath: rightPath,
		Params:    searchParams(cmd),
	})
	if err != nil {
		return err
	}

	colored := colormap.Apply(colormap.Normalize(result.Map))
	if err := imgio.SavePNG(outputPath, colored); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	fmt.Printf("Rendered %dx%d disparity map → %s\n", result.Width, result.Height, outputPath)
	return nil
}
