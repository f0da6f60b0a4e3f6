package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(instrumentsCmd)
}

var instrumentsCmd = &cobra.Command{
	Use:   "instruments",
	Short: "Lists the instrument catalog",
	Long:  `Lists the instrument catalog`,
	Run: func(cmd *cobra.Command, args []string) {
		listInstruments()
	},
}

func listInstruments() {
	reg := loadRegistry()
	fmt.Printf("%v instruments:\n", reg.Len())
	for _, name := range reg.Names() {
		d, _ := reg.Lookup(name)
		trans := "concert pitch"
		if d.Transposition.Semitones != 0 {
			trans = fmt.Sprintf("sounds %+d semitones", d.Transposition.Semitones)
		}
		fmt.Printf("  %-24v (%v) clef %v, %v, range %v-%v\n",
			d.Name, d.ShortName, d.Clef, trans, d.RangeLow, d.RangeHigh)
	}
}
