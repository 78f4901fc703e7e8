package main

import (
	"fmt"

	"github.com/davesmith10/stereodepth/internal/display"
	"github.com/davesmith10/stereodepth/internal/pipeline"
	"github.com/davesmith10/stereodepth/internal/stereo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.Flags().StringP("left", "l", "", "Path to the left image")
	rootCmd.Flags().StringP("right", "r", "", "Path to the right image")
	rootCmd.Flags().IntP("mindisp", "m", 0, "Minimum disparity")
	rootCmd.Flags().UintP("numdisp", "n", stereo.DefaultNumDisparities, "Number of disparities")
	rootCmd.Flags().UintP("blocksize", "b", stereo.DefaultBlockSize, "Block size (must be an odd number)")
	rootCmd.MarkFlagRequired("left")
	rootCmd.MarkFlagRequired("right")
}

func searchParams(cmd *cobra.Command) stereo.Params {
	minDisp, _ := cmd.Flags().GetInt("mindisp")
	numDisp, _ := cmd.Flags().GetUint("numdisp")
	blockSize, _ := cmd.Flags().GetUint("blocksize")
	return stereo.Params{
		MinDisparity:   minDisp,
		NumDisparities: int(numDisp),
		BlockSize:      int(blockSize),
	}
}

func runView(cmd *cobra.Command, args []string) error {
	leftPath, _ := cmd.Flags().GetString("left")
	rightPath, _ := cmd.Flags().GetString("right")

	result, err := pipeline.Run(pipeline.Options{
		LeftPath:  leftPath,
		RightPath: rightPath,
		Params:    searchParams(cmd),
	})
	if err != nil {
		return err
	}

	fmt.Printf("Computed %dx%d disparity map\n", result.Width, result.Height)
	return display.Show(result.Map, "disparity_map")
}
