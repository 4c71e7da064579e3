// Package cmd implements the command-line interface for folio.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/p09s/folio/color"
	"github.com/p09s/folio/constant"
	"github.com/p09s/folio/icon"
	"github.com/p09s/folio/key"
	"github.com/p09s/folio/log"
	"github.com/p09s/folio/section"
	"github.com/p09s/folio/style"
	"github.com/p09s/folio/theme"
	"github.com/p09s/folio/tui"
	"github.com/p09s/folio/util"
	"github.com/p09s/folio/version"
	"github.com/p09s/folio/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, plain)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.Flags().StringP("theme", "t", "", "Override the persisted theme for this run (light, dark)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("theme", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return theme.Modes(), cobra.ShellCompDirectiveDefault
	}))

	rootCmd.Flags().StringP("section", "s", "", "Open the page at the given section")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("section", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return section.Default().IDs(), cobra.ShellCompDirectiveDefault
	}))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})

	// Initialize cleanup of localized temporary files on application startup.
	go func() {
		_ = util.Delete(where.Temp())
	}()
}

// rootCmd defines the entry point for the folio application.
var rootCmd = &cobra.Command{
	Use:   constant.Folio,
	Short: "A scrollable terminal portfolio",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiPurple).Render("    - A scrollable terminal portfolio with synchronized section navigation"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		options := tui.Options{}

		if flag := lo.Must(cmd.Flags().GetString("theme")); flag != "" {
			mode, err := theme.ParseMode(flag)
			handleErr(err)
			options.Theme = mo.Some(mode)
		}

		if flag := lo.Must(cmd.Flags().GetString("section")); flag != "" {
			if !section.Default().Contains(flag) {
				handleErr(errUnknownSection(flag))
			}
			options.StartSection = mo.Some(flag)
		}

		handleErr(tui.Run(&options))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func errUnknownSection(id string) error {
	ids := section.Default().IDs()
	closest := lo.MinBy(ids, func(a string, b string) bool {
		return levenshtein.Distance(id, a) < levenshtein.Distance(id, b)
	})

	return fmt.Errorf(
		"unknown section %s, did you mean %s?",
		style.Fg(color.Red)(id),
		style.Fg(color.Yellow)(closest),
	)
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
