package durationreporter

import (
	"bikeshare/domain/business/durationaccumulator"
	"bikeshare/domain/entities/trip"
	dataErrors "bikeshare/domain/errors"
	"fmt"
	log "github.com/sirupsen/logrus"
	"io"
)

const (
	reporterType = "duration-reporter"
	title        = "Calculating trip duration..."
)

// DurationStats total travel time in hours and mean travel time in minutes, both truncated
type DurationStats struct {
	Trips       int `json:"trips"`
	TotalHours  int `json:"total_hours"`
	MeanMinutes int `json:"mean_minutes"`
}

type DurationReporter struct {
	stats *DurationStats
}

func NewDurationReporter() *DurationReporter {
	return &DurationReporter{}
}

func (dr *DurationReporter) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[reporter: %s][method: %s][status: ERROR] %s: %s", reporterType, method, message, err.Error())
	}
	return fmt.Sprintf("[reporter: %s][method: %s][status: OK] %s", reporterType, method, message)
}

func (dr *DurationReporter) GetType() string {
	return reporterType
}

func (dr *DurationReporter) GetTitle() string {
	return title
}

func (dr *DurationReporter) GetStats() *DurationStats {
	return dr.stats
}

func (dr *DurationReporter) GenerateReport(dataset *trip.Dataset) error {
	if dataset.IsEmpty() {
		err := fmt.Errorf("%s: %w", reporterType, dataErrors.ErrEmptyDataset)
		log.Debug(dr.getLogMessage("GenerateReport", "nothing to report", err))
		return err
	}

	accumulator := durationaccumulator.NewDurationAccumulator()
	for _, tripData := range dataset.GetTrips() {
		accumulator.UpdateAccumulator(tripData.Duration)
	}

	meanMinutes, err := accumulator.GetAverageMinutes()
	if err != nil {
		log.Error(dr.getLogMessage("GenerateReport", "error getting mean duration", err))
		return fmt.Errorf("%s: %w", reporterType, err)
	}

	dr.stats = &DurationStats{
		Trips:       accumulator.Counter,
		TotalHours:  accumulator.GetTotalHours(),
		MeanMinutes: meanMinutes,
	}
	log.Debug(dr.getLogMessage("GenerateReport", fmt.Sprintf("%+v", *dr.stats), nil))
	return nil
}

func (dr *DurationReporter) SendReport(writer io.Writer) error {
	if dr.stats == nil {
		return fmt.Errorf("%s: %w", reporterType, dataErrors.ErrReportNotGenerated)
	}

	_, err := fmt.Fprintf(writer, "Total travel time: %v hours\nMean travel time: %v minutes\n", dr.stats.TotalHours, dr.stats.MeanMinutes)
	return err
}
