// Package slice defines the per-axis slice descriptors consumed by the view
// engine: unbound Specs built by callers, and the bound Slices a view derives
// from them against concrete axis extents.
package slice

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind classifies a slice descriptor.
type Kind int

const (
	_ Kind = iota // skip zero value, use it as a default (invalid) value for Kind

	// KindSqueeze fixes one underlying axis to a single coordinate,
	// removing it from the output shape.
	KindSqueeze
	// KindRange keeps an axis, optionally narrowing and re-striding it.
	// Full-axis descriptors (All) bind to this kind with step 1.
	KindRange
	// KindNewAxis inserts a unit-extent output axis that consumes no
	// underlying axis.
	KindNewAxis
	// KindEllipsis marks the variable-axis-span wildcard, which the view
	// mechanism rejects at construction.
	KindEllipsis
)
