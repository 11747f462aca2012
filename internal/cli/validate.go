package cli

import (
	"fmt"

	"github.com/emmetio/snippets-registry/internal/snippetfile"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check snippet files against the schema",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	failed := 0

	for _, path := range args {
		result, err := snippetfile.ValidateFile(path)
		if err != nil {
			fmt.Fprintf(out, "FAIL %s: %v\n", path, err)
			failed++
			continue
		}
		if !result.Valid {
			fmt.Fprintf(out, "FAIL %s\n", path)
			for _, issue := range result.Issues {
				fmt.Fprintf(out, "  %s\n", issue)
			}
			failed++
			continue
		}
		// Schema-valid files can still carry an unsupported format version.
		if _, err := snippetfile.Parse(path); err != nil {
			fmt.Fprintf(out, "FAIL %s: %v\n", path, err)
			failed++
			continue
		}
		fmt.Fprintf(out, "ok   %s\n", path)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d snippet files failed validation", failed, len(args))
	}
	return nil
}
