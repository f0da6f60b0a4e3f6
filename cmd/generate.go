package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsphweid/partgen/generate"
	"github.com/jsphweid/partgen/model"
	"github.com/jsphweid/partgen/scorefile"
)

func init() {
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate <score.yaml> [output.yaml]",
	Short: "Generates all derivable parts",
	Long:  `Generates all derivable parts and writes the completed score`,
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		in := args[0]
		out := strings.TrimSuffix(in, ".yaml") + ".complete.yaml"
		if len(args) == 2 {
			out = args[1]
		}
		runGenerate(in, out)
	},
}

func runGenerate(in, out string) {
	reg := loadRegistry()
	s, reg, err := scorefile.Load(in, reg)
	if err != nil {
		panic("Could not load score: " + err.Error())
	}

	gen := generate.New(reg)
	completed, report, err := gen.Complete(s)
	if err != nil {
		panic("Generation failed: " + err.Error())
	}
	printReport(report)

	if err := completed.Validate(); err != nil {
		fmt.Printf("Validation: %v\n", err)
	}
	if err := scorefile.Save(out, completed, reg); err != nil {
		panic("Could not save score: " + err.Error())
	}
	fmt.Printf("Wrote %v parts to %v\n", completed.Len(), out)
}

func printReport(report *model.GenerationReport) {
	fmt.Printf("Generated %v parts: %v\n", len(report.Generated), strings.Join(report.Generated, ", "))
	for _, sk := range report.Skipped {
		fmt.Printf("Skipped %v, missing sources: %v\n", sk.Part, strings.Join(sk.MissingSources, ", "))
	}
	for _, u := range report.Unresolved {
		fmt.Printf("Could not resolve instrument %q for %v\n", u.Instrument, u.Part)
	}
	for _, w := range report.Warnings {
		fmt.Printf("Out of range: %v measure %v has %v (range %v-%v)\n",
			w.Part, w.MeasureIndex, w.Pitch, w.RangeLow, w.RangeHigh)
	}
}
