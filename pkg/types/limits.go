package types

// ============================================================================
// Decode Limits Constants
// ============================================================================
// Both parsers run on an explicit heap-backed stack, so these limits are the
// only thing bounding memory growth on adversarial input.

const (
	// DefaultRecursionLimit is the maximum container nesting depth.
	DefaultRecursionLimit = 1024

	// DefaultValueLimit is the maximum number of structural tokens
	// (scalars, container begins, and container ends) in one decode.
	DefaultValueLimit = 1 << 20

	// RelaxedRecursionLimit allows deeply nested documents.
	RelaxedRecursionLimit = 8192

	// RelaxedValueLimit allows metadata files with tens of millions of tokens.
	RelaxedValueLimit = 1 << 26

	// StrictRecursionLimit is a conservative depth for untrusted peers.
	StrictRecursionLimit = 64

	// StrictValueLimit is a conservative token budget for wire messages.
	StrictValueLimit = 1 << 14
)

// Limits bounds the resources a single decode may consume.
type Limits struct {
	// RecursionLimit is the maximum nesting depth of lists and dicts.
	// A document nested exactly this deep is accepted.
	RecursionLimit int

	// ValueLimit is the maximum number of structural tokens emitted.
	// A document with exactly this many tokens is accepted.
	ValueLimit int
}

// DefaultLimits returns the limits used when none are configured.
func DefaultLimits() Limits {
	return Limits{
		RecursionLimit: DefaultRecursionLimit,
		ValueLimit:     DefaultValueLimit,
	}
}

// RelaxedLimits returns more permissive limits for large trusted inputs.
func RelaxedLimits() Limits {
	return Limits{
		RecursionLimit: RelaxedRecursionLimit,
		ValueLimit:     RelaxedValueLimit,
	}
}

// StrictLimits returns conservative limits for untrusted network input.
func StrictLimits() Limits {
	return Limits{
		RecursionLimit: StrictRecursionLimit,
		ValueLimit:     StrictValueLimit,
	}
}

// Normalize replaces non-positive fields with their defaults.
func (l Limits) Normalize() Limits {
	if l.RecursionLimit <= 0 {
		l.RecursionLimit = DefaultRecursionLimit
	}
	if l.ValueLimit <= 0 {
		l.ValueLimit = DefaultValueLimit
	}
	return l
}
