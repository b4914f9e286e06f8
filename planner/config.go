package planner

// Config carries the tunables a plan call uses. There is no config-file
// or env-var layer: a plain struct with documented defaults, passed to New
// through WithConfig, is the idiomatic fit for a small set of tunables.
type Config struct {
	// Epsilon is the tolerance Plan uses to decide whether start and
	// finish coincide. The obstacle predicates use geometry.DefaultEpsilon.
	Epsilon float64

	// CandidateWarnThreshold logs a warning, never a cap, when the
	// candidate-vertex count for a plan call exceeds this value.
	CandidateWarnThreshold int
}

func DefaultConfig() Config {
	return Config{
		Epsilon:                1e-3,
		CandidateWarnThreshold: 200,
	}
}
