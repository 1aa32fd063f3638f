// render and preview command handlers.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/sandover/tmpfmt/internal/compose"
)

type RenderOptions struct {
	Path   string
	Format string
	Out    string
	Append bool
	Watch  bool
}

func RunRender(ctx context.Context, ropts RenderOptions, opts GlobalOptions) error {
	format, err := compose.ParseFormat(ropts.Format)
	if err != nil {
		return fmt.Errorf("usage: %w", err)
	}
	if ropts.Append && ropts.Out == "" {
		return errors.New("usage: --append requires --out")
	}
	if ropts.Watch && (ropts.Path == "" || ropts.Path == "-") {
		return errors.New("usage: --watch requires a file argument")
	}
	cfg, err := LoadConfig(opts)
	if err != nil {
		return err
	}
	logger := NewLogger(opts)

	renderOnce := func() error {
		doc, err := loadDocument(ropts.Path, format, cfg)
		if err != nil {
			return err
		}
		markup, err := renderDocument(doc, cfg)
		if err != nil {
			return err
		}
		debugf(logger, "rendered document", "path", ropts.Path, "fragments", len(doc.Fragments), "bytes", len(markup))
		return emitMarkup(markup, ropts, opts)
	}

	if !ropts.Watch {
		return renderOnce()
	}

	// Report the first render like a normal run, then keep going on errors.
	if err := renderOnce(); err != nil {
		reportDocumentError(err, opts)
	}
	var mu sync.Mutex
	return watchFile(ctx, ropts.Path, cfg.Watch.Debounce, logger, func() {
		mu.Lock()
		defer mu.Unlock()
		if err := renderOnce(); err != nil {
			reportDocumentError(err, opts)
		}
	})
}

func emitMarkup(markup string, ropts RenderOptions, opts GlobalOptions) error {
	if ropts.Out != "" {
		if err := writeOutputFile(ropts.Out, []byte(markup), ropts.Append); err != nil {
			return fmt.Errorf("write %s: %w", ropts.Out, err)
		}
	}
	if opts.Quiet {
		return nil
	}
	if opts.JSON {
		return writeJSON(os.Stdout, renderOutput{Markup: markup, Out: ropts.Out})
	}
	if ropts.Out != "" {
		return nil
	}
	fmt.Println(markup)
	return nil
}

// reportDocumentError prints an error without exiting, for watch mode.
func reportDocumentError(err error, opts GlobalOptions) {
	if verr, ok := ValidationDetails(err); ok && opts.JSON {
		_ = verr.WriteJSON(os.Stdout)
		return
	}
	fmt.Fprintln(os.Stderr, "error:", err)
}

type PreviewOptions struct {
	Path   string
	Format string
}

func RunPreview(popts PreviewOptions, opts GlobalOptions) error {
	format, err := compose.ParseFormat(popts.Format)
	if err != nil {
		return fmt.Errorf("usage: %w", err)
	}
	color, err := useColor(opts)
	if err != nil {
		return err
	}
	cfg, err := LoadConfig(opts)
	if err != nil {
		return err
	}
	doc, err := loadDocument(popts.Path, format, cfg)
	if err != nil {
		return err
	}
	if verr := doc.Validate(cfg.renderOptions()); verr != nil {
		return &documentError{verr: verr}
	}
	if opts.Quiet {
		return nil
	}
	fmt.Println(compose.Preview(doc, compose.PreviewOptions{Palette: cfg.palette(), Color: color}))
	return nil
}
