package quickdirective

import "runtime"

// ValidationLimits defines optional limits for a validation pass.
// All limits are optional - zero values select the defaults.
type ValidationLimits struct {
	// MaxRecursionDepth bounds the directive/type path followed while looking
	// for self-referential directive definitions (0 = DefaultMaxRecursionDepth).
	// Definitions whose graph is deeper get a DeeplyNestedType diagnostic.
	MaxRecursionDepth int

	// MaxConcurrency limits the goroutines used by
	// ValidateDirectiveDefinitionsConcurrently (0 = GOMAXPROCS)
	MaxConcurrency int
}

func (l ValidationLimits) recursionDepth() int {
	if l.MaxRecursionDepth <= 0 {
		return DefaultMaxRecursionDepth
	}
	return l.MaxRecursionDepth
}

func (l ValidationLimits) concurrency() int {
	if l.MaxConcurrency <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return l.MaxConcurrency
}
