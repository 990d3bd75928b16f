package durationaccumulator

import (
	dataErrors "bikeshare/domain/errors"
	"fmt"
)

const (
	secondsPerHour   = 3600
	secondsPerMinute = 60
)

// DurationAccumulator struct that collects the duration of trips.
// + Counter: counts the amount of trips collected
// + TotalDuration: sum of the durations in seconds
type DurationAccumulator struct {
	Counter       int     `json:"counter"`
	TotalDuration float64 `json:"total_duration"`
}

func NewDurationAccumulator() *DurationAccumulator {
	return &DurationAccumulator{}
}

func (da *DurationAccumulator) UpdateAccumulator(duration float64) {
	da.Counter += 1
	da.TotalDuration += duration
}

// GetTotalHours returns the total duration in hours, truncated
func (da *DurationAccumulator) GetTotalHours() int {
	return int(da.TotalDuration / secondsPerHour)
}

// GetAverageMinutes returns the mean duration in minutes, truncated
func (da *DurationAccumulator) GetAverageMinutes() (int, error) {
	if da.Counter == 0 {
		return 0, fmt.Errorf("%w: cannot get average duration, counter is zero", dataErrors.ErrEmptyDataset)
	}
	return int(da.TotalDuration / float64(da.Counter) / secondsPerMinute), nil
}
