// Package domain contains the core data types for the resort catalog.
// This package has zero external dependencies and is imported by every other
// internal package (repo, service, handler).
package domain

import "time"

// Resort statuses. The status is a free-standing review tag with no enforced
// transitions: any status may be set to any other at any time.
const (
	StatusToReview    = "valutare"
	StatusInteresting = "interessante"
	StatusDiscard     = "scartare"
)

// PlaceholderName is stored when a resort is submitted with a blank name.
const PlaceholderName = "Senza nome"

// StatusChoice pairs a stored status value with its display label.
type StatusChoice struct {
	Value string
	Label string
}

// StatusChoices lists the recognized review statuses in display order.
var StatusChoices = []StatusChoice{
	{StatusToReview, "Da valutare"},
	{StatusInteresting, "Interessante"},
	{StatusDiscard, "Scartare"},
}

// Regions lists the Italian regions offered in the region selector.
// The column is free text; this list is presentation data, not a constraint.
var Regions = []string{
	"Abruzzo", "Basilicata", "Calabria", "Campania", "Emilia-Romagna",
	"Friuli-Venezia Giulia", "Lazio", "Liguria", "Lombardia", "Marche",
	"Molise", "Piemonte", "Puglia", "Sardegna", "Sicilia", "Toscana",
	"Trentino-Alto Adige", "Umbria", "Valle d'Aosta", "Veneto",
}

// Feature pairs an accessibility flag's column key with its display label.
type Feature struct {
	Key   string
	Label string
}

// Features lists the eleven accessibility flags in display order.
// The order here matches the order of Resort.flagValues.
var Features = []Feature{
	{"wheelchair_access", "Accessibile in carrozzina"},
	{"beach_walkway", "Passerella per il mare"},
	{"beach_bathroom_h", "Bagno H (spiaggia/struttura)"},
	{"beach_job_chair", "Sedia JOB"},
	{"accessible_room", "Camera accessibile"},
	{"restaurant_accessible", "Ristorante accessibile"},
	{"pool_accessible", "Piscina accessibile"},
	{"lift", "Ascensore"},
	{"disabled_parking", "Parcheggio disabili"},
	{"step_free_paths", "Percorsi senza barriere"},
	{"staff_assistance", "Assistenza/servizi inclusivi"},
}

// Resort is a single catalogued accessible-tourism venue.
// Optional text columns are pointers: nil means the column is NULL.
type Resort struct {
	ID      int64
	Name    string // never empty in stored data; normalization substitutes PlaceholderName
	Region  *string
	City    *string
	Website *string
	Phone   *string
	Email   *string

	PriceWeek   *float64 // nil when no price was given or the input did not parse
	PricePeriod *string
	PriceNotes  *string

	Status   string // one of the StatusChoices values
	KeepFlag bool   // shortlist marker, independent of Status

	Notes *string

	WheelchairAccess     bool
	BeachWalkway         bool
	BeachBathroomH       bool
	BeachJobChair        bool
	AccessibleRoom       bool
	RestaurantAccessible bool
	PoolAccessible       bool
	Lift                 bool
	DisabledParking      bool
	StepFreePaths        bool
	StaffAssistance      bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// flagValues returns the eleven accessibility flags in Features order.
func (r Resort) flagValues() []bool {
	return []bool{
		r.WheelchairAccess,
		r.BeachWalkway,
		r.BeachBathroomH,
		r.BeachJobChair,
		r.AccessibleRoom,
		r.RestaurantAccessible,
		r.PoolAccessible,
		r.Lift,
		r.DisabledParking,
		r.StepFreePaths,
		r.StaffAssistance,
	}
}

// AccessScore returns how many of the eleven accessibility flags are set,
// and the flag count. Display-only: every flag weighs the same.
func (r Resort) AccessScore() (have, total int) {
	values := r.flagValues()
	for _, v := range values {
		if v {
			have++
		}
	}
	return have, len(values)
}

// FeatureState pairs a Feature with whether this resort has it set.
type FeatureState struct {
	Feature
	Set bool
}

// FeatureStates returns the resort's flags joined with their labels,
// in Features order, for rendering checkbox lists and detail views.
func (r Resort) FeatureStates() []FeatureState {
	values := r.flagValues()
	states := make([]FeatureState, len(Features))
	for i, f := range Features {
		states[i] = FeatureState{Feature: f, Set: values[i]}
	}
	return states
}

// ScoredResort is a list row: the resort plus its precomputed access score.
type ScoredResort struct {
	Resort
	Have  int
	Total int
}
