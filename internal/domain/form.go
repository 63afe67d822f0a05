package domain

// ResortInput carries raw form values exactly as submitted, before any
// normalization. The handler fills it from the request; the service layer
// owns the normalization rules. All fields are strings because HTML forms
// submit strings — absent fields are simply empty.
type ResortInput struct {
	Name    string
	Region  string
	City    string
	Website string
	Phone   string
	Email   string

	PriceWeek   string
	PricePeriod string
	PriceNotes  string

	Status   string
	KeepFlag string

	Notes string

	// Flags holds the raw checkbox values keyed by Feature.Key.
	// A missing key means the checkbox was not ticked.
	Flags map[string]string
}
