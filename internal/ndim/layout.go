package ndim

// Layout identifies the memory ordering of a strided expression.
type Layout int

// Supported layouts. Dynamic marks strides that match no dense ordering,
// and expressions that expose no strides at all.
const (
	Dynamic Layout = iota
	RowMajor
	ColumnMajor
)

// DefaultLayout is the traversal and storage order used when none is requested.
const DefaultLayout = RowMajor

// String returns a human-readable name for the layout.
func (l Layout) String() string {
	switch l {
	case Dynamic:
		return "dynamic"
	case RowMajor:
		return "row-major"
	case ColumnMajor:
		return "column-major"
	default:
		return "unknown"
	}
}
