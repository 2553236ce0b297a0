package metrics

// Process-wide metrics. All live in DefaultRegistry.

var (
	// SetupsGenerated counts reference strings derived from a secret.
	SetupsGenerated = DefaultRegistry.Counter("kzg.setups_generated")
	// BasisSize is the G1 basis length of the most recently generated setup.
	BasisSize = DefaultRegistry.Gauge("kzg.basis_size")

	// Commitments counts successful commitments.
	Commitments = DefaultRegistry.Counter("kzg.commitments")
	// CommitErrors counts rejected commitment requests.
	CommitErrors = DefaultRegistry.Counter("kzg.commit_errors")
	// TruncatedCoefficients counts coefficients dropped because the basis
	// was shorter than the polynomial.
	TruncatedCoefficients = DefaultRegistry.Counter("kzg.truncated_coefficients")
	// CommitTime records commitment latency in milliseconds.
	CommitTime = DefaultRegistry.Histogram("kzg.commit_ms")

	// Evaluations counts polynomial evaluations.
	Evaluations = DefaultRegistry.Counter("kzg.evaluations")
	// EvaluationErrors counts evaluations rejected for an empty polynomial.
	EvaluationErrors = DefaultRegistry.Counter("kzg.evaluation_errors")
)
