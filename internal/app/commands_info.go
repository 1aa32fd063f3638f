// quickstart and version handlers.
package app

import (
	"fmt"
	"os"
)

func RunQuickstart(opts GlobalOptions) error {
	if opts.Quiet {
		return nil
	}
	color, err := useColor(opts)
	if err != nil {
		return err
	}
	fmt.Println(QuickstartText(color, min(terminalWidth(80), 100)))
	return nil
}

func RunVersion(version string, opts GlobalOptions) error {
	if opts.JSON {
		return writeJSON(os.Stdout, versionOutput{Version: version})
	}
	fmt.Println(version)
	return nil
}
