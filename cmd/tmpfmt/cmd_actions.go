// Purpose: Wire cobra subcommands to internal app.RunX implementations.
// Exports: none.
// Role: CLI composition layer for user-facing commands.
// Invariants: Flags and command names align with help/quickstart docs.
// Notes: init functions register commands and their flags.
package main

import (
	"github.com/spf13/cobra"

	"github.com/sandover/tmpfmt/internal/app"
)

func init() {
	rootCmd.AddCommand(wrapCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(examplesCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(quickstartCmd)
	rootCmd.AddCommand(versionCmd)
}

// -- wrap --
var wrapOpts app.WrapOptions

var wrapCmd = &cobra.Command{
	Use:   "wrap [text...]",
	Short: "Style one fragment from flags",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := wrapOpts
		flags := cmd.Flags()
		opts.SetSize = flags.Changed("size")
		opts.SetRotate = flags.Changed("rotate")
		opts.SetOpacity = flags.Changed("opacity")
		opts.SetSprite = flags.Changed("sprite")
		return app.RunWrap(args, opts, globalOpts)
	},
}

func init() {
	f := wrapCmd.Flags()
	f.BoolVar(&wrapOpts.Stdin, "stdin", false, "Read text from stdin")
	f.BoolVar(&wrapOpts.Uppercase, "uppercase", false, "Upper-case the text")
	f.BoolVar(&wrapOpts.Bold, "bold", false, "Bold")
	f.BoolVar(&wrapOpts.Italic, "italic", false, "Italic")
	f.BoolVar(&wrapOpts.Underline, "underline", false, "Underline")
	f.BoolVar(&wrapOpts.Strikethrough, "strike", false, "Strikethrough")
	f.StringVar(&wrapOpts.Font, "font", "", "Font asset name")
	f.IntVar(&wrapOpts.Size, "size", 0, "Point size")
	// Shadows the global --color; wrap never colors its own output.
	f.StringVar(&wrapOpts.Color, "color", "", "Color name or RRGGBB hex")
	f.StringVar(&wrapOpts.Gradient, "gradient", "", "Gradient FROM,TO (names or hex)")
	f.Float32Var(&wrapOpts.Rotate, "rotate", 0, "Rotation in degrees")
	f.StringVar(&wrapOpts.Align, "align", "", "left|right|center|justified")
	f.Float32Var(&wrapOpts.Opacity, "opacity", 1, "Opacity 0..1")
	f.IntVar(&wrapOpts.Sprite, "sprite", 0, "Append sprite index")
}

// -- render --
var renderOpts app.RenderOptions

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render a document to markup",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := renderOpts
		if len(args) == 1 {
			opts.Path = args[0]
		}
		return app.RunRender(cmd.Context(), opts, globalOpts)
	},
}

func init() {
	f := renderCmd.Flags()
	f.StringVar(&renderOpts.Format, "format", "auto", "auto|json|yaml|markdown")
	f.StringVar(&renderOpts.Out, "out", "", "Write markup to this file")
	f.BoolVar(&renderOpts.Append, "append", false, "Append to --out instead of replacing it")
	f.BoolVar(&renderOpts.Watch, "watch", false, "Re-render when the file changes")
}

// -- preview --
var previewOpts app.PreviewOptions

var previewCmd = &cobra.Command{
	Use:   "preview [file]",
	Short: "Show a document on the terminal",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := previewOpts
		if len(args) == 1 {
			opts.Path = args[0]
		}
		return app.RunPreview(opts, globalOpts)
	},
}

func init() {
	previewCmd.Flags().StringVar(&previewOpts.Format, "format", "auto", "auto|json|yaml|markdown")
}

// -- examples --
var examplesCmd = &cobra.Command{
	Use:   "examples [name]",
	Short: "Show the built-in example compositions",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) == 1 {
			name = args[0]
		}
		return app.RunExamples(name, globalOpts)
	},
}

// -- serve --
var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP render service",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.RunServe(cmd.Context(), serveAddr, globalOpts)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config, localhost:8088)")
}

// -- quickstart --
var quickstartCmd = &cobra.Command{
	Use:   "quickstart",
	Short: "Show the quickstart guide",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.RunQuickstart(globalOpts)
	},
}

// -- version --
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.RunVersion(version, globalOpts)
	},
}
