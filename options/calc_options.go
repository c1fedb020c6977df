package options

import (
	log "github.com/sirupsen/logrus"
)

// CalcOptions controls how the evaluators apply point arithmetic.
type CalcOptions struct {
	// Checked makes add, sub, scale, dot and neg fail on int32 overflow
	// instead of wrapping.
	Checked bool
	Debug   bool
}

func NewCalcOptions(options *CalcOptions) *CalcOptions {

	opt := &CalcOptions{}
	if options != nil {
		opt.Checked = options.Checked
		opt.Debug = options.Debug
	}
	return opt
}

// ApplyLogLevel raises the logrus level to debug when Debug is set. It never
// lowers the level.
func (o *CalcOptions) ApplyLogLevel() {
	if o.Debug {
		log.SetLevel(log.DebugLevel)
	}
}
