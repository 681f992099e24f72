// Package trace is the diagnostic logging hub. The classifier reports the
// paths it cannot serve (unsupported types, failing coercion hooks) here;
// the command line front end installs the process logger with Init.
package trace

import (
	"sync"

	"go.uber.org/zap"
)

// Tracer wraps the logger used for classifier diagnostics
type Tracer struct {
	logger *zap.Logger
}

var (
	mu           sync.RWMutex
	globalTracer = &Tracer{logger: zap.NewNop()}
)

// Init installs the global tracer. A nil logger disables tracing.
func Init(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	mu.Lock()
	defer mu.Unlock()
	globalTracer = &Tracer{logger: logger.Named("classify")}
}

// IsEnabled returns whether anything is listening at debug level
func IsEnabled() bool {
	return current().logger.Core().Enabled(zap.DebugLevel)
}

// Logger returns the logger of the global tracer
func Logger() *zap.Logger {
	return current().logger
}

func current() *Tracer {
	mu.RLock()
	defer mu.RUnlock()
	return globalTracer
}

// Unsupported logs a value the classifier has no rule for
func (t *Tracer) Unsupported(typeName string) {
	t.logger.Warn("Not implemented for type", zap.String("type", typeName))
}

// CoercionFailure logs a primitive hook that failed or returned an object
func (t *Tracer) CoercionFailure(typeName string, err error) {
	t.logger.Debug("Failed to invoke Symbol.toPrimitive",
		zap.String("type", typeName),
		zap.Error(err))
}

// Invariant logs a broken precedence chain
func (t *Tracer) Invariant(typeName, detail string) {
	t.logger.Error("Classifier invariant violated",
		zap.String("type", typeName),
		zap.String("detail", detail))
}

// Classified logs the outcome of a classification at debug level
func (t *Tracer) Classified(typeName, class string, examples int, infinite bool) {
	if ce := t.logger.Check(zap.DebugLevel, "Classified value"); ce != nil {
		ce.Write(
			zap.String("type", typeName),
			zap.String("class", class),
			zap.Int("examples", examples),
			zap.Bool("infinite", infinite))
	}
}

// Global convenience functions

// Unsupported logs an unsupported type using the global tracer
func Unsupported(typeName string) {
	current().Unsupported(typeName)
}

// CoercionFailure logs a coercion failure using the global tracer
func CoercionFailure(typeName string, err error) {
	current().CoercionFailure(typeName, err)
}

// Invariant logs an invariant violation using the global tracer
func Invariant(typeName, detail string) {
	current().Invariant(typeName, detail)
}

// Classified logs a classification using the global tracer
func Classified(typeName, class string, examples int, infinite bool) {
	current().Classified(typeName, class, examples, infinite)
}
