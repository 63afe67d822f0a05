package service

import (
	"strconv"
	"strings"

	"github.com/ptessari/resort-catalog/internal/domain"
)

// normalizeResort converts raw form input into a domain.Resort, applying the
// catalog's normalization rules. It never fails: malformed values are
// normalized away, not rejected.
//
//   - Text fields are trimmed; empty becomes NULL, except name, which becomes
//     the "Senza nome" placeholder so stored names are never empty.
//   - Checkbox fields are true only for the values an HTML form can plausibly
//     submit for a ticked box: "1", "on", "true", "yes" (case-insensitive).
//   - price_week tolerates a comma decimal separator; unparseable input is
//     silently stored as NULL.
//   - A blank status falls back to the "valutare" default.
func normalizeResort(in domain.ResortInput) domain.Resort {
	r := domain.Resort{
		Name:        strings.TrimSpace(in.Name),
		Region:      optionalText(in.Region),
		City:        optionalText(in.City),
		Website:     optionalText(in.Website),
		Phone:       optionalText(in.Phone),
		Email:       optionalText(in.Email),
		PriceWeek:   parsePrice(in.PriceWeek),
		PricePeriod: optionalText(in.PricePeriod),
		PriceNotes:  optionalText(in.PriceNotes),
		Status:      strings.TrimSpace(in.Status),
		KeepFlag:    truthy(in.KeepFlag),
		Notes:       optionalText(in.Notes),
	}

	if r.Name == "" {
		r.Name = domain.PlaceholderName
	}
	if r.Status == "" {
		r.Status = domain.StatusToReview
	}

	r.WheelchairAccess = truthy(in.Flags["wheelchair_access"])
	r.BeachWalkway = truthy(in.Flags["beach_walkway"])
	r.BeachBathroomH = truthy(in.Flags["beach_bathroom_h"])
	r.BeachJobChair = truthy(in.Flags["beach_job_chair"])
	r.AccessibleRoom = truthy(in.Flags["accessible_room"])
	r.RestaurantAccessible = truthy(in.Flags["restaurant_accessible"])
	r.PoolAccessible = truthy(in.Flags["pool_accessible"])
	r.Lift = truthy(in.Flags["lift"])
	r.DisabledParking = truthy(in.Flags["disabled_parking"])
	r.StepFreePaths = truthy(in.Flags["step_free_paths"])
	r.StaffAssistance = truthy(in.Flags["staff_assistance"])

	return r
}

// optionalText trims s and returns nil for the empty result, so blank form
// fields become NULL columns rather than empty strings.
func optionalText(s string) *string {
	t := strings.TrimSpace(s)
	if t == "" {
		return nil
	}
	return &t
}

// truthy reports whether a raw checkbox value counts as ticked.
func truthy(s string) bool {
	switch strings.ToLower(s) {
	case "1", "on", "true", "yes":
		return true
	}
	return false
}

// parsePrice parses a weekly price, accepting a comma as the decimal
// separator. Blank or unparseable input yields nil — no error surfaces.
func parsePrice(s string) *float64 {
	t := strings.TrimSpace(s)
	if t == "" {
		return nil
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(t, ",", "."), 64)
	if err != nil {
		return nil
	}
	return &v
}
