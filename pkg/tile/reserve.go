package tile

// Reserve governs whether an empty column (one with no windows assigned)
// consumes its share of the container's space or yields it to populated
// columns.
type Reserve int

const (
	// ReserveNone lets populated columns expand into the space an empty
	// column would otherwise have occupied.
	ReserveNone Reserve = iota
	// ReserveSpace keeps an empty column's space allocated but empty.
	ReserveSpace
	// ReserveAndCenter keeps an empty column's space allocated and shifts
	// the populated columns to center within the full span.
	ReserveAndCenter
)

// IsReserved reports whether the policy keeps space for empty columns
// (true for ReserveSpace and ReserveAndCenter).
func (r Reserve) IsReserved() bool {
	return r == ReserveSpace || r == ReserveAndCenter
}
