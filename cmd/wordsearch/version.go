package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

func init() {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, args []string) {
			info, ok := debug.ReadBuildInfo()
			if !ok {
				fmt.Println("wordsearch (unknown build)")
				return
			}
			fmt.Printf("wordsearch %s (%s)\n", info.Main.Version, info.GoVersion)
		},
	}

	rootCmd.AddCommand(versionCmd)
}
