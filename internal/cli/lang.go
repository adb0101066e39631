package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/vkbd/pkg/vkbd/layout"
	"github.com/BrandonKowalski/vkbd/pkg/vkbd/modifier"
)

var langCmd = &cobra.Command{
	Use:   "lang",
	Short: "Print the remembered keyboard language",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := GetApp()
		state := modifier.New(cmd.Context(), app.Store, app.Logger).State()
		fmt.Fprintln(cmd.OutOrStdout(), state.Language)
		return nil
	},
}

var langSetCmd = &cobra.Command{
	Use:       "set en|ru",
	Short:     "Set the language the keyboard starts in",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(layout.English), string(layout.Russian)},
	RunE: func(cmd *cobra.Command, args []string) error {
		lang, err := layout.ParseLanguage(args[0])
		if err != nil {
			return err
		}

		app := GetApp()
		if app.StoreErr != nil {
			return fmt.Errorf("save language: %w", app.StoreErr)
		}
		if err := app.Store.Set(cmd.Context(), modifier.LanguageKey, string(lang)); err != nil {
			return fmt.Errorf("save language: %w", err)
		}
		app.Logger.Info("Keyboard language set", "language", lang)
		return nil
	},
}

func init() {
	langCmd.AddCommand(langSetCmd)
	rootCmd.AddCommand(langCmd)
}
