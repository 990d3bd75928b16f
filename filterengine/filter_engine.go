package filterengine

import (
	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/trip"
	"strings"
)

// Apply returns the trips of the dataset that match the month and day of the filter spec, in their original order.
// Both filters are AND-combined. When the filter spec filters neither month nor day the same dataset is returned.
func Apply(dataset *trip.Dataset, spec filter.FilterSpec) *trip.Dataset {
	if !spec.FiltersMonth() && !spec.FiltersDay() {
		return dataset
	}

	return dataset.Restrict(func(tripData *trip.TripData) bool {
		return Matches(tripData, spec)
	})
}

// Matches returns true if the trip satisfies the month and day filters of the filter spec
func Matches(tripData *trip.TripData, spec filter.FilterSpec) bool {
	if spec.FiltersMonth() && tripData.Month != spec.MonthNumber() {
		return false
	}

	if spec.FiltersDay() && !strings.EqualFold(tripData.DayOfWeek, spec.CanonicalDay()) {
		return false
	}

	return true
}
