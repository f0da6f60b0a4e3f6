package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jsphweid/partgen/constants"
	"github.com/jsphweid/partgen/instrument"
)

var rootCmd = &cobra.Command{
	Use:   "partgen",
	Short: "Derived part generation for band scores",
	Long:  `Completes a partially recognized band score by transposing and synthesizing the missing instrumental parts.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

// loadRegistry returns the built-in catalog, or the CATALOG_PATH override.
func loadRegistry() instrument.Registry {
	if path := constants.GetCatalogPath(); path != "" {
		reg, err := instrument.LoadCatalog(path)
		if err != nil {
			panic("Could not load instrument catalog: " + err.Error())
		}
		return reg
	}
	return instrument.Default()
}
