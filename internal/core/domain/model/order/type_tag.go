package order

// TypeTag classifies an order for dispatch. The set is open: tags arrive from
// upstream systems as free-form strings, so any value outside the known
// constants is carried as-is and handled by the unrecognized arm of the
// dispatch table.
type TypeTag string

const (
	// TypeA orders are exported to a CSV artifact.
	TypeA TypeTag = "A"

	// TypeB orders are settled through the remote settlement check.
	TypeB TypeTag = "B"

	// TypeC orders complete locally based on their flag.
	TypeC TypeTag = "C"
)

// IsRecognized reports whether the tag is one of the known dispatch types.
func (t TypeTag) IsRecognized() bool {
	switch t {
	case TypeA, TypeB, TypeC:
		return true
	default:
		return false
	}
}

// String returns the raw tag value.
func (t TypeTag) String() string {
	return string(t)
}
