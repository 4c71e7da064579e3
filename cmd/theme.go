// Package cmd implements the command-line interface for folio.
package cmd

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/p09s/folio/color"
	"github.com/p09s/folio/icon"
	"github.com/p09s/folio/style"
	"github.com/p09s/folio/theme"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func errUnknownMode(raw string) error {
	closest := lo.MinBy(theme.Modes(), func(a string, b string) bool {
		return levenshtein.Distance(raw, a) < levenshtein.Distance(raw, b)
	})

	return fmt.Errorf(
		"unknown theme mode %s, did you mean %s?",
		style.Fg(color.Red)(raw),
		style.Fg(color.Yellow)(closest),
	)
}

func init() {
	rootCmd.AddCommand(themeCmd)
}

// themeCmd serves as the parent command for managing the persisted theme preference.
var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Manage the persisted light/dark theme preference",
}

func init() {
	themeCmd.AddCommand(themeGetCmd)
}

// themeGetCmd prints the mode the interface would start with right now.
var themeGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Display the currently resolved theme mode",
	Run: func(cmd *cobra.Command, args []string) {
		manager := theme.NewManager()
		fmt.Println(manager.Load())
	},
}

func init() {
	themeCmd.AddCommand(themeSetCmd)
}

// themeSetCmd persists an explicit theme mode.
var themeSetCmd = &cobra.Command{
	Use:   "set [mode]",
	Short: "Persist a theme mode",
	Args:  cobra.MaximumNArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return theme.Modes(), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		var raw string

		if len(args) == 1 {
			raw = args[0]
		} else {
			prompt := survey.Select{
				Message: "Which theme should the portfolio use?",
				Options: theme.Modes(),
			}
			handleErr(survey.AskOne(&prompt, &raw))
		}

		mode, err := theme.ParseMode(raw)
		if err != nil {
			handleErr(errUnknownMode(raw))
		}

		manager := theme.NewManager()
		manager.Load()
		manager.Set(mode)

		fmt.Printf(
			"%s theme set to %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(string(mode)),
		)
	},
}

func init() {
	themeCmd.AddCommand(themeToggleCmd)
}

// themeToggleCmd flips the persisted theme mode.
var themeToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Flip the persisted theme mode",
	Run: func(cmd *cobra.Command, args []string) {
		manager := theme.NewManager()
		manager.Load()
		mode := manager.Toggle()

		fmt.Printf(
			"%s theme toggled to %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(string(mode)),
		)
	},
}
