package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsphweid/partgen/midifile"
	"github.com/jsphweid/partgen/scorefile"
)

func init() {
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <score.yaml> [output.mid]",
	Short: "Exports a score as a MIDI file",
	Long:  `Exports a score as a MIDI file at sounding pitch, one track per part`,
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		in := args[0]
		out := strings.TrimSuffix(in, ".yaml") + ".mid"
		if len(args) == 2 {
			out = args[1]
		}
		export(in, out)
	},
}

func export(in, out string) {
	s, reg, err := scorefile.Load(in, loadRegistry())
	if err != nil {
		panic("Could not load score: " + err.Error())
	}
	if err := midifile.Export(out, s, reg); err != nil {
		panic("Export failed: " + err.Error())
	}
	fmt.Printf("Wrote %v\n", out)
}
