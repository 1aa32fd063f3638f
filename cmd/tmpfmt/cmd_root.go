// Root command configuration for the tmpfmt CLI.
// Defines global flags, help output, and top-level command metadata.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sandover/tmpfmt/internal/app"
)

var globalOpts app.GlobalOptions

var rootCmd = &cobra.Command{
	Use:   "tmpfmt",
	Short: "Build TextMeshPro rich-text markup.",
	Long: `tmpfmt wraps text in TextMeshPro rich-text tags.
Style one string from flags, render JSON/YAML/Markdown documents,
preview them in the terminal, or serve renders over HTTP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&globalOpts.ConfigPath, "config", "", "Config file (default .tmpfmt.yml when present)")
	rootCmd.PersistentFlags().BoolVar(&globalOpts.Strict, "strict", false, "Validate style arguments")
	rootCmd.PersistentFlags().BoolVar(&globalOpts.JSON, "json", false, "Output JSON")
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.Quiet, "quiet", "q", false, "Suppress output")
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.Verbose, "verbose", "v", false, "Debug logging on stderr")
	rootCmd.PersistentFlags().StringVar(&globalOpts.Color, "color", "auto", "Color output: auto|always|never")

	rootCmd.Version = version

	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		isTTY := term.IsTerminal(int(os.Stdout.Fd()))
		fmt.Println(app.UsageText(isTTY && globalOpts.Color != "never"))
	})
}

func execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		exitErr(err, &globalOpts)
	}
}
