package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/oreworks/orecalc/internal/oredata"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the built-in compressed ore catalog",
	Run: func(cmd *cobra.Command, args []string) {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ORE\tPRICE\tVOLUME\tYIELDS (per unit)")
		for _, ore := range oredata.CompressedOres() {
			minerals := make([]string, 0, len(ore.BatchYields))
			for m := range ore.BatchYields {
				minerals = append(minerals, m)
			}
			sort.Strings(minerals)

			yields := ""
			for i, m := range minerals {
				if i > 0 {
					yields += ", "
				}
				yields += fmt.Sprintf("%s %.1f", m, oredata.PerUnitYield(ore.BatchYields[m]))
			}
			fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%s\n", ore.Name, ore.UnitPrice, ore.UnitVolume, yields)
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}
