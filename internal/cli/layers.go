package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/emmetio/snippets-registry/internal/registry"
	"github.com/spf13/cobra"
)

var layersCmd = &cobra.Command{
	Use:   "layers",
	Short: "Show the snippet layers in priority order",
	RunE:  runLayers,
}

func init() {
	rootCmd.AddCommand(layersCmd)
}

func runLayers(cmd *cobra.Command, args []string) error {
	reg, results, err := loadRegistry()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "LEVEL\tSOURCE\tENTRIES\tSTATUS\tPATH")
	for _, l := range reg.Layers() {
		src, _ := registry.Find(results, l.Level)
		status := "enabled"
		if l.Store.Disabled() {
			status = "disabled"
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n", l.Level, src.Name, l.Store.Len(), status, src.Path)
	}
	for _, r := range results {
		if r.Missing {
			fmt.Fprintf(w, "%d\t%s\t-\tmissing\t%s\n", r.Source.Level, r.Source.Name, r.Source.Path)
		}
	}
	return w.Flush()
}
