// Package build wires up subsystem-tagged loggers for the qram CLI, in
// the same shape lnd's build/contractcourt packages use: every subsystem
// gets its own btclog.Logger, all disabled by default, until the CLI
// calls UseLogger with a real backend.
//
// Nothing in fountain or envelope imports this package: logging is a
// host-level concern, never the core codec's.
package build

import (
	"io"
	"os"

	"github.com/btcsuite/btclog"
)

// Subsystem tags, one per CLI-facing component that wants its own log
// line prefix.
const (
	SubsystemCLI     = "CLI"
	SubsystemEncoder = "ENC"
	SubsystemDecoder = "DEC"
)

// loggers holds every subsystem's logger, keyed by tag. Until InitBackend
// is called they are all btclog.Disabled, so a library-style import of
// this package is silent by default.
var loggers = map[string]btclog.Logger{
	SubsystemCLI:     btclog.Disabled,
	SubsystemEncoder: btclog.Disabled,
	SubsystemDecoder: btclog.Disabled,
}

// SubLogger returns the logger registered for tag, or a disabled logger
// if tag is unrecognized.
func SubLogger(tag string) btclog.Logger {
	if l, ok := loggers[tag]; ok {
		return l
	}
	return btclog.Disabled
}

// UseLogger overrides the logger registered for tag. Primarily useful in
// tests that want to capture or silence a specific subsystem.
func UseLogger(tag string, l btclog.Logger) {
	loggers[tag] = l
}

// DisableAll reverts every subsystem to btclog.Disabled.
func DisableAll() {
	for tag := range loggers {
		loggers[tag] = btclog.Disabled
	}
}

// InitBackend points every registered subsystem at a single btclog
// backend writing to w, all set to level. Called from cmd/qram's
// loadConfig, right after the config has been loaded.
func InitBackend(w io.Writer, level string) error {
	if w == nil {
		w = os.Stderr
	}
	backend := btclog.NewBackend(w)

	lvl, ok := btclog.LevelFromString(level)
	if !ok {
		lvl = btclog.LevelInfo
	}

	for tag := range loggers {
		l := backend.Logger(tag)
		l.SetLevel(lvl)
		loggers[tag] = l
	}
	return nil
}
