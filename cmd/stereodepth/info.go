package main

import (
	"fmt"
	"os"

	"github.com/davesmith10/stereodepth/internal/imgio"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Inspect image geometry and format",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	path := args[0]
	info, err := imgio.GetInfo(path)
	if err != nil {
		return err
	}

	st, err := os.Stat(path)
	if err != nil {
		return err
	}

	fmt.Printf("File:       %s\n", path)
	fmt.Printf("Format:     %s\n", info.Format)
	fmt.Printf("Dimensions: %d x %d\n", info.Width, info.Height)
	fmt.Printf("File size:  %d bytes\n", st.Size())
	return nil
}
