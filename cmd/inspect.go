package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsphweid/partgen/scorefile"
	"github.com/jsphweid/partgen/util"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <score.yaml>",
	Short: "Prints a score summary",
	Long:  `Prints a score summary`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inspect(args[0])
	},
}

func inspect(path string) {
	s, reg, err := scorefile.Load(path, loadRegistry())
	if err != nil {
		panic("Could not load score: " + err.Error())
	}

	fmt.Printf("%v by %v\n", s.Title, s.Composer)
	fmt.Printf("%v parts, %v measures\n", s.Len(), s.NumMeasures())

	counts := make(map[string]int)
	for _, p := range s.Parts() {
		counts[p.Name] = len(p.Measures)
		d, ok := reg.Lookup(p.Instrument)
		clef := string(p.Clef)
		if ok {
			fmt.Printf("  %-28v %v clef %v, %v measures\n", p.Name, d.ShortName, clef, len(p.Measures))
		} else {
			fmt.Printf("  %-28v (unknown instrument %q), %v measures\n", p.Name, p.Instrument, len(p.Measures))
		}
	}

	if err := s.Validate(); err != nil {
		fmt.Printf("INVALID: %v\n", err)
		for _, name := range util.SortedKeys(counts) {
			fmt.Printf("  %v: %v\n", name, counts[name])
		}
		return
	}
	fmt.Println("Measure counts agree")
}
