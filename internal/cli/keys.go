package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/vkbd/pkg/vkbd/layout"
	"github.com/BrandonKowalski/vkbd/pkg/vkbd/modifier"
	"github.com/BrandonKowalski/vkbd/pkg/vkbd/tui"
)

var (
	keysLang  string
	keysShift bool
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Print a key map",
	Long: `Print one of the four key maps (base or shifted, English or Russian).

Without --lang the remembered keyboard language is used.

Examples:
  vkbd keys
  vkbd keys --lang ru --shift`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := GetApp()

		lang := modifier.New(cmd.Context(), app.Store, app.Logger).State().Language
		if keysLang != "" {
			var err error
			if lang, err = layout.ParseLanguage(keysLang); err != nil {
				return err
			}
		}

		sel := layout.Selector{Language: lang, Shifted: keysShift}
		fmt.Fprintln(cmd.OutOrStdout(), tui.RenderLayout(tui.NewTheme(app.Config.Display.AccentColor), sel))
		return nil
	},
}

func init() {
	keysCmd.Flags().StringVar(&keysLang, "lang", "", "language: en or ru")
	keysCmd.Flags().BoolVar(&keysShift, "shift", false, "show the shifted map")
	rootCmd.AddCommand(keysCmd)
}
