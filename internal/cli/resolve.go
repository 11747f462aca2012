package cli

import (
	"encoding/json"
	"fmt"

	"github.com/emmetio/snippets-registry/internal/registry"
	"github.com/emmetio/snippets-registry/internal/snippets"
	"github.com/spf13/cobra"
)

var resolveJSON bool

var resolveCmd = &cobra.Command{
	Use:   "resolve <name>",
	Short: "Print the snippet body a name resolves to",
	Long: `Resolve a snippet name against all layers. The highest layer with a match
wins; within a layer an exact key beats any pattern, and patterns are tried
in file order.`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().BoolVar(&resolveJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(resolveCmd)
}

// resolveResult describes a resolved snippet for JSON output.
type resolveResult struct {
	Name   string `json:"name"`
	Key    string `json:"key"`
	Kind   string `json:"kind"`
	Level  int    `json:"level"`
	Source string `json:"source"`
	Value  string `json:"value"`
}

func runResolve(cmd *cobra.Command, args []string) error {
	name := args[0]

	reg, results, err := loadRegistry()
	if err != nil {
		return err
	}

	entry, ok := reg.Resolve(name)
	if !ok {
		return fmt.Errorf("snippet %q not found in any layer", name)
	}

	if !resolveJSON {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), entry.Value())
		return err
	}

	res := describeResolved(reg, results, name, entry)
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

// describeResolved finds the layer that produced entry.
func describeResolved(reg *snippets.Registry[string], results []registry.LoadResult, name string, entry *snippets.Entry[string]) resolveResult {
	res := resolveResult{
		Name:   name,
		Key:    entry.Key().String(),
		Kind:   entry.Key().Kind().String(),
		Value:  entry.Value(),
		Source: "-",
	}
	for _, l := range reg.Layers() {
		if e, ok := l.Store.Get(name); ok && e == entry {
			res.Level = int(l.Level)
			res.Source = sourceName(results, l.Level)
			break
		}
	}
	return res
}
