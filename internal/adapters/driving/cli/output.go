package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Output formats accepted by --output.
const (
	outputAuto = "auto"
	outputJSON = "json"
	outputText = "text"
)

// addOutputFlag registers --output on cmd, bound to target.
func addOutputFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "output", "o", outputAuto, "output format: auto, json or text")
}

// wantJSON resolves an --output value. auto picks text on a terminal and JSON otherwise.
func wantJSON(cmd *cobra.Command, format string) (bool, error) {
	switch format {
	case outputJSON:
		return true, nil
	case outputText:
		return false, nil
	case outputAuto, "":
		return !isTerminal(cmd.OutOrStdout()), nil
	default:
		return false, fmt.Errorf("unknown output format %q (want auto, json or text)", format)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
