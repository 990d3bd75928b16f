package timereporter

import (
	"bikeshare/domain/business/tripcounter"
	"bikeshare/domain/entities/trip"
	dataErrors "bikeshare/domain/errors"
	"fmt"
	log "github.com/sirupsen/logrus"
	"io"
	"time"
)

const (
	reporterType = "time-reporter"
	title        = "Calculating the most frequent times of travel..."
)

// TimeStats most frequent month, day of week and hour of the trips, with their amount of trips
type TimeStats struct {
	MostCommonMonth int    `json:"most_common_month"`
	MonthCount      int    `json:"month_count"`
	MostCommonDay   string `json:"most_common_day"`
	DayCount        int    `json:"day_count"`
	MostCommonHour  int    `json:"most_common_hour"`
	HourCount       int    `json:"hour_count"`
}

type TimeReporter struct {
	stats *TimeStats
}

func NewTimeReporter() *TimeReporter {
	return &TimeReporter{}
}

func (tr *TimeReporter) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[reporter: %s][method: %s][status: ERROR] %s: %s", reporterType, method, message, err.Error())
	}
	return fmt.Sprintf("[reporter: %s][method: %s][status: OK] %s", reporterType, method, message)
}

func (tr *TimeReporter) GetType() string {
	return reporterType
}

func (tr *TimeReporter) GetTitle() string {
	return title
}

func (tr *TimeReporter) GetStats() *TimeStats {
	return tr.stats
}

// GenerateReport counts trips per month, day of week and hour
func (tr *TimeReporter) GenerateReport(dataset *trip.Dataset) error {
	if dataset.IsEmpty() {
		err := fmt.Errorf("%s: %w", reporterType, dataErrors.ErrEmptyDataset)
		log.Debug(tr.getLogMessage("GenerateReport", "nothing to report", err))
		return err
	}

	monthCounter := tripcounter.NewTripCounter[int]()
	dayCounter := tripcounter.NewTripCounter[string]()
	hourCounter := tripcounter.NewTripCounter[int]()
	for _, tripData := range dataset.GetTrips() {
		monthCounter.UpdateCounter(tripData.Month)
		dayCounter.UpdateCounter(tripData.DayOfWeek)
		hourCounter.UpdateCounter(tripData.Hour)
	}

	stats := &TimeStats{}
	stats.MostCommonMonth, stats.MonthCount, _ = monthCounter.MostCommon()
	stats.MostCommonDay, stats.DayCount, _ = dayCounter.MostCommon()
	stats.MostCommonHour, stats.HourCount, _ = hourCounter.MostCommon()
	tr.stats = stats

	log.Debug(tr.getLogMessage("GenerateReport", fmt.Sprintf("%+v", *stats), nil))
	return nil
}

func (tr *TimeReporter) SendReport(writer io.Writer) error {
	if tr.stats == nil {
		return fmt.Errorf("%s: %w", reporterType, dataErrors.ErrReportNotGenerated)
	}

	_, err := fmt.Fprintf(writer,
		"Most common month: %s (%v trips)\nMost common day: %s (%v trips)\nMost common start hour: %v (%v trips)\n",
		time.Month(tr.stats.MostCommonMonth), tr.stats.MonthCount,
		tr.stats.MostCommonDay, tr.stats.DayCount,
		tr.stats.MostCommonHour, tr.stats.HourCount,
	)
	return err
}
