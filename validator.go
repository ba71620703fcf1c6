package quickdirective

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Validator runs directive validation passes. The zero value is ready to use:
// default limits and no logging.
//
// A Validator holds no per-pass state, so one value may run passes from
// several goroutines as long as each pass has its own DiagnosticList.
type Validator struct {
	Limits ValidationLimits

	// Logger receives debug/warn entries about cycles and depth limits. Nil
	// discards them.
	Logger logrus.FieldLogger
}

var discardLogger = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()

func (v *Validator) logger() logrus.FieldLogger {
	if v.Logger == nil {
		return discardLogger
	}
	return v.Logger
}
