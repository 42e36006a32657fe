package series

// ─────────────────────────────────────────────────────────────────────────────
// Reference Configuration
// ─────────────────────────────────────────────────────────────────────────────

const (
	// DefaultIterations is the iteration count of the reference run.
	DefaultIterations = 100_000_000

	// DefaultParamA is the multiplier applied to the loop index.
	DefaultParamA = 4

	// DefaultParamB is the offset added to and subtracted from i*a.
	DefaultParamB = 1

	// DefaultScale is the factor the reference harness applies to the
	// accumulator output. With the default shape parameters the scaled
	// result approximates π.
	DefaultScale = 4.0

	// InitialValue is the accumulator value before the first iteration.
	InitialValue = 1.0
)
