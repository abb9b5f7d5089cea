package repository

// ListOptions is the common pagination/visibility knob set for the
// display-ordered content entities.
type ListOptions struct {
	IncludeInactive bool
	Skip            int
	Limit           int
}
