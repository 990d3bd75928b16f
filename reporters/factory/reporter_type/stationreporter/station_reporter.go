package stationreporter

import (
	"bikeshare/domain/business/distanceaccumulator"
	"bikeshare/domain/business/tripcounter"
	"bikeshare/domain/entities/station"
	"bikeshare/domain/entities/trip"
	dataErrors "bikeshare/domain/errors"
	"errors"
	"fmt"
	log "github.com/sirupsen/logrus"
	"io"
)

const (
	reporterType = "station-reporter"
	title        = "Calculating the most popular stations and trip..."
)

// StationStats most popular stations of the trips
// + MostCommonTrip: the (start station, end station) pair with most trips, counted jointly
// + MostCommonTripDistance: straight-line distance of MostCommonTrip, only set when HasTripDistance
// + AverageDistance: mean straight-line distance over MeasuredTrips, the trips whose both stations have coordinates
type StationStats struct {
	MostCommonStartStation string           `json:"most_common_start_station"`
	StartStationCount      int              `json:"start_station_count"`
	MostCommonEndStation   string           `json:"most_common_end_station"`
	EndStationCount        int              `json:"end_station_count"`
	MostCommonTrip         trip.StationPair `json:"most_common_trip"`
	TripCount              int              `json:"trip_count"`
	HasTripDistance        bool             `json:"has_trip_distance"`
	MostCommonTripDistance float64          `json:"most_common_trip_distance"`
	MeasuredTrips          int              `json:"measured_trips"`
	AverageDistance        float64          `json:"average_distance"`
}

type StationReporter struct {
	stations       map[string]station.StationData
	distancesCache map[trip.StationPair]float64
	stats          *StationStats
}

func NewStationReporter(stations map[string]station.StationData) *StationReporter {
	return &StationReporter{
		stations:       stations,
		distancesCache: make(map[trip.StationPair]float64),
	}
}

func (sr *StationReporter) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[reporter: %s][method: %s][status: ERROR] %s: %s", reporterType, method, message, err.Error())
	}
	return fmt.Sprintf("[reporter: %s][method: %s][status: OK] %s", reporterType, method, message)
}

func (sr *StationReporter) GetType() string {
	return reporterType
}

func (sr *StationReporter) GetTitle() string {
	return title
}

func (sr *StationReporter) GetStats() *StationStats {
	return sr.stats
}

// GenerateReport counts trips per start station, end station and station pair. If the coordinates
// of the stations are known, the distance of the trips is calculated too.
func (sr *StationReporter) GenerateReport(dataset *trip.Dataset) error {
	if dataset.IsEmpty() {
		err := fmt.Errorf("%s: %w", reporterType, dataErrors.ErrEmptyDataset)
		log.Debug(sr.getLogMessage("GenerateReport", "nothing to report", err))
		return err
	}

	startCounter := tripcounter.NewTripCounter[string]()
	endCounter := tripcounter.NewTripCounter[string]()
	pairCounter := tripcounter.NewTripCounter[trip.StationPair]()
	distanceAccumulator := distanceaccumulator.NewDistanceAccumulator()
	for _, tripData := range dataset.GetTrips() {
		startCounter.UpdateCounter(tripData.StartStation)
		endCounter.UpdateCounter(tripData.EndStation)
		pairCounter.UpdateCounter(tripData.GetStationPair())

		if distance, ok := sr.getDistance(tripData.GetStationPair()); ok {
			distanceAccumulator.UpdateAccumulator(distance)
		}
	}

	stats := &StationStats{}
	stats.MostCommonStartStation, stats.StartStationCount, _ = startCounter.MostCommon()
	stats.MostCommonEndStation, stats.EndStationCount, _ = endCounter.MostCommon()
	stats.MostCommonTrip, stats.TripCount, _ = pairCounter.MostCommon()
	stats.MostCommonTripDistance, stats.HasTripDistance = sr.getDistance(stats.MostCommonTrip)

	averageDistance, err := distanceAccumulator.GetAverageDistance()
	if err != nil && !errors.Is(err, dataErrors.ErrEmptyDataset) {
		return err
	}
	stats.AverageDistance = averageDistance
	stats.MeasuredTrips = distanceAccumulator.Counter
	sr.stats = stats

	log.Debug(sr.getLogMessage("GenerateReport", fmt.Sprintf("%v distinct trips, %v trips measured", pairCounter.Len(), stats.MeasuredTrips), nil))
	return nil
}

func (sr *StationReporter) SendReport(writer io.Writer) error {
	if sr.stats == nil {
		return fmt.Errorf("%s: %w", reporterType, dataErrors.ErrReportNotGenerated)
	}

	_, err := fmt.Fprintf(writer,
		"Most common start station: %s (%v trips)\nMost common end station: %s (%v trips)\nMost frequent trip: %s (%v trips)\n",
		sr.stats.MostCommonStartStation, sr.stats.StartStationCount,
		sr.stats.MostCommonEndStation, sr.stats.EndStationCount,
		sr.stats.MostCommonTrip, sr.stats.TripCount,
	)
	if err != nil {
		return err
	}

	if sr.stats.HasTripDistance {
		_, err = fmt.Fprintf(writer, "Most frequent trip distance: %.2f km\n", sr.stats.MostCommonTripDistance)
		if err != nil {
			return err
		}
	}

	if sr.stats.MeasuredTrips > 0 {
		_, err = fmt.Fprintf(writer, "Average straight-line distance: %.2f km (%v trips with known stations)\n", sr.stats.AverageDistance, sr.stats.MeasuredTrips)
	}
	return err
}

// getDistance returns the distance between both stations of the pair, false if any of them has no coordinates
func (sr *StationReporter) getDistance(pair trip.StationPair) (float64, bool) {
	if distance, ok := sr.distancesCache[pair]; ok {
		return distance, true
	}

	startStation, ok := sr.stations[pair.StartStation]
	if !ok {
		return 0, false
	}
	endStation, ok := sr.stations[pair.EndStation]
	if !ok {
		return 0, false
	}

	distance := distanceaccumulator.CalculateDistance(startStation, endStation)
	sr.distancesCache[pair] = distance
	return distance, true
}
