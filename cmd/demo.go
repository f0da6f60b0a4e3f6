package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsphweid/partgen/sample"
	"github.com/jsphweid/partgen/scorefile"
)

func init() {
	rootCmd.AddCommand(demoCmd)
}

var demoCmd = &cobra.Command{
	Use:   "demo [output.yaml]",
	Short: "Writes the demo score",
	Long:  `Writes a small partial band score to try the generate pipeline on`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		out := "demo.yaml"
		if len(args) == 1 {
			out = args[0]
		}
		if err := scorefile.Save(out, sample.Score(), loadRegistry()); err != nil {
			panic("Could not save demo score: " + err.Error())
		}
		fmt.Printf("Wrote %v\n", out)
	},
}
