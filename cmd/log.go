package cmd

import (
	colorable "github.com/mattn/go-colorable"
	logging "github.com/shenwei356/go-logging"
)

var log = logging.MustGetLogger("alignkit")

// setupLogging wires a colorable stderr backend, matching LexicMap's own
// cmd package. Verbose mode drops the leveled floor from NOTICE to INFO.
func setupLogging(verbose bool) {
	backend := logging.NewLogBackend(colorable.NewColorableStderr(), "", 0)
	format := logging.MustStringFormatter(`%{color}[%{level:.4s}]%{color:reset} %{message}`)
	formatted := logging.NewBackendFormatter(backend, format)

	level := logging.NOTICE
	if verbose {
		level = logging.INFO
	}
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(level, "")
	logging.SetBackend(leveled)
}
