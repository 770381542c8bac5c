// Package mobospec ingests motherboard spec workbooks with multi-level merged
// headers into hierarchically keyed records, and scores and compares those
// records across free-text value encodings.
package mobospec

import (
	"go.uber.org/zap"

	"github.com/am5hub/mobospec-go/pkg/mobospec/config"
)

// Options configures workbook extraction.
type Options struct {
	// Config supplies sheet selection, header detection bounds, and the
	// scoring lookup tables. Nil means config.Default().
	Config *config.Config
	// KeepFlat retains the raw flat record on each board in addition to the
	// normalized nested specs.
	KeepFlat bool
	// Logger receives per-sheet progress and warnings. Nil means no logging.
	Logger *zap.Logger
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{KeepFlat: true}
}

func (o Options) config() config.Config {
	if o.Config != nil {
		return *o.Config
	}
	return config.Default()
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}
