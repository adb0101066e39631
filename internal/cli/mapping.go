package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/vkbd/pkg/vkbd"
)

var mappingCmd = &cobra.Command{
	Use:   "mapping <file>",
	Short: "Write the default SDL input mapping as JSON",
	Long: `Write the built-in SDL input mapping to a JSON file. Edit it and point
input.mapping_path (or INPUT_MAPPING_PATH) at it to remap keys and buttons.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := vkbd.SaveDefaultInputMapping(args[0]); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mappingCmd)
}
