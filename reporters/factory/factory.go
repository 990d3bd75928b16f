package factory

import (
	"bikeshare/domain/entities/station"
	"bikeshare/domain/entities/trip"
	"bikeshare/reporters/factory/reporter_type/durationreporter"
	"bikeshare/reporters/factory/reporter_type/stationreporter"
	"bikeshare/reporters/factory/reporter_type/timereporter"
	"bikeshare/reporters/factory/reporter_type/userreporter"
	"fmt"
	"io"
)

const (
	TimeReporterType     = "time-reporter"
	StationReporterType  = "station-reporter"
	DurationReporterType = "duration-reporter"
	UserReporterType     = "user-reporter"
)

// ReporterTypes in the order reports are shown to the user
var ReporterTypes = []string{TimeReporterType, StationReporterType, DurationReporterType, UserReporterType}

type Reporter interface {
	GetType() string
	GetTitle() string
	GenerateReport(dataset *trip.Dataset) error
	SendReport(writer io.Writer) error
}

// NewReporter initialize a reporter of some type. Stations are only used by the station reporter and can be nil.
// Possible reporter types are: time-reporter, station-reporter, duration-reporter, user-reporter
func NewReporter(reporterType string, stations map[string]station.StationData) (Reporter, error) {
	switch reporterType {
	case TimeReporterType:
		return timereporter.NewTimeReporter(), nil
	case StationReporterType:
		return stationreporter.NewStationReporter(stations), nil
	case DurationReporterType:
		return durationreporter.NewDurationReporter(), nil
	case UserReporterType:
		return userreporter.NewUserReporter(), nil
	default:
		return nil, fmt.Errorf("[method: NewReporter][status: error] Invalid reporter type %s", reporterType)
	}
}

// NewReporters returns one reporter of each type, in ReporterTypes order
func NewReporters(stations map[string]station.StationData) ([]Reporter, error) {
	reporters := make([]Reporter, 0, len(ReporterTypes))
	for _, reporterType := range ReporterTypes {
		reporter, err := NewReporter(reporterType, stations)
		if err != nil {
			return nil, err
		}
		reporters = append(reporters, reporter)
	}
	return reporters, nil
}
