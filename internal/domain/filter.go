package domain

// ResortFilter carries the list view's optional filters from the HTTP layer
// to the repo layer. Zero values mean "not filtering on this"; all active
// filters are combined with AND.
type ResortFilter struct {
	// Query is a case-insensitive substring matched against name, city, and notes.
	Query string

	// Region restricts to an exact region value.
	Region string

	// Status restricts to an exact status value.
	Status string

	// KeepOnly restricts to shortlisted resorts (keep_flag set).
	KeepOnly bool

	// AccessibleOnly restricts to resorts meeting the minimum-accessibility
	// rule: wheelchair access, an accessible beach bathroom, and either a
	// beach walkway or a JOB chair.
	AccessibleOnly bool
}

// IsZero reports whether no filter is active.
func (f ResortFilter) IsZero() bool {
	return f == ResortFilter{}
}
