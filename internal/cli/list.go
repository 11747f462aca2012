package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/emmetio/snippets-registry/internal/config"
	"github.com/emmetio/snippets-registry/internal/snippets"
	"github.com/spf13/cobra"
)

var (
	listTypeFilter string
	listJSON       bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all snippets visible across layers",
	Long: `List every snippet key from all enabled layers. When several layers define
the same key only the highest one is shown. Use --type to show only exact
("string") or pattern ("regexp") keys.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listTypeFilter, "type", "", "Filter by key type (string, regexp)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// listEntry represents a snippet for display.
type listEntry struct {
	Key   string `json:"key"`
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

func runList(cmd *cobra.Command, args []string) error {
	reg, _, err := loadRegistry()
	if err != nil {
		return err
	}

	filter := listTypeFilter
	if filter == "" {
		filter = config.Get(config.KeyListType)
	}

	snap := reg.All(snippets.AllOptions{Type: snippets.ParseKind(filter)})
	entries := make([]listEntry, 0, snap.Len())
	for _, e := range snap.Entries() {
		entries = append(entries, listEntry{
			Key:   e.Key().String(),
			Kind:  e.Key().Kind().String(),
			Value: e.Value(),
		})
	}

	if listJSON {
		return printListJSON(cmd, entries)
	}
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No snippets found.")
		return nil
	}
	return printListTable(cmd, entries)
}

func printListTable(cmd *cobra.Command, entries []listEntry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "KEY\tKIND\tVALUE")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Key, e.Kind, preview(e.Value, 60))
	}
	return w.Flush()
}

func printListJSON(cmd *cobra.Command, entries []listEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

// preview flattens a body to one line and truncates it to limit runes.
func preview(s string, limit int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-3]) + "..."
}
