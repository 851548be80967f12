package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/deanlue0801/alliance-war-planner/internal/tabular"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Convert two-column CSV data to roster token text",
	Long: `Convert reads CSV rows and prints a space-separated token stream of
(id, power) values suitable as roster text. Rows missing either of the
first two numeric cells are skipped. Reads stdin when no file is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	var src io.Reader = cmd.InOrStdin()
	if len(args) == 1 {
		file, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", args[0], err)
		}
		defer file.Close()
		src = file
	}

	text, err := tabular.Convert(src)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}
