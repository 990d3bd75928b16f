package userreporter

import (
	"bikeshare/domain/business/tripcounter"
	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/trip"
	dataErrors "bikeshare/domain/errors"
	"fmt"
	log "github.com/sirupsen/logrus"
	"io"
	"text/tabwriter"
)

const (
	reporterType = "user-reporter"
	title        = "Calculating user stats..."

	genderNotAvailable    = "Gender information is not available for %s.\n"
	birthYearNotAvailable = "Birth year information is not available for %s.\n"
)

// UserStats demographics of the users of the trips
// + UserTypes: amount of trips per user type, most frequent first
// + Genders: amount of trips per gender, only when HasGender
// + EarliestBirthYear, MostRecentBirthYear, MostCommonBirthYear: only when HasBirthYear and KnownBirthYears > 0
type UserStats struct {
	City                string                      `json:"city"`
	UserTypes           []tripcounter.Entry[string] `json:"user_types"`
	HasGender           bool                        `json:"has_gender"`
	Genders             []tripcounter.Entry[string] `json:"genders"`
	HasBirthYear        bool                        `json:"has_birth_year"`
	KnownBirthYears     int                         `json:"known_birth_years"`
	EarliestBirthYear   int                         `json:"earliest_birth_year"`
	MostRecentBirthYear int                         `json:"most_recent_birth_year"`
	MostCommonBirthYear int                         `json:"most_common_birth_year"`
}

type UserReporter struct {
	stats *UserStats
}

func NewUserReporter() *UserReporter {
	return &UserReporter{}
}

func (ur *UserReporter) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[reporter: %s][method: %s][status: ERROR] %s: %s", reporterType, method, message, err.Error())
	}
	return fmt.Sprintf("[reporter: %s][method: %s][status: OK] %s", reporterType, method, message)
}

func (ur *UserReporter) GetType() string {
	return reporterType
}

func (ur *UserReporter) GetTitle() string {
	return title
}

func (ur *UserReporter) GetStats() *UserStats {
	return ur.stats
}

// GenerateReport counts user types, and genders and birth years when the dataset has them.
// Unknown values are skipped.
func (ur *UserReporter) GenerateReport(dataset *trip.Dataset) error {
	if dataset.IsEmpty() {
		err := fmt.Errorf("%s: %w", reporterType, dataErrors.ErrEmptyDataset)
		log.Debug(ur.getLogMessage("GenerateReport", "nothing to report", err))
		return err
	}

	stats := &UserStats{
		City:         dataset.City,
		HasGender:    dataset.Capabilities.HasGender,
		HasBirthYear: dataset.Capabilities.HasBirthYear,
	}

	userTypeCounter := tripcounter.NewTripCounter[string]()
	genderCounter := tripcounter.NewTripCounter[string]()
	birthYearCounter := tripcounter.NewTripCounter[int]()
	for _, tripData := range dataset.GetTrips() {
		if tripData.UserType != "" {
			userTypeCounter.UpdateCounter(tripData.UserType)
		}

		if stats.HasGender && tripData.HasGender() {
			genderCounter.UpdateCounter(tripData.Gender)
		}

		if stats.HasBirthYear && tripData.HasBirthYear() {
			ur.updateBirthYears(stats, tripData.BirthYear)
			birthYearCounter.UpdateCounter(tripData.BirthYear)
		}
	}

	stats.UserTypes = userTypeCounter.Ranked()
	stats.Genders = genderCounter.Ranked()
	stats.MostCommonBirthYear, _, _ = birthYearCounter.MostCommon()
	ur.stats = stats

	log.Debug(ur.getLogMessage("GenerateReport", fmt.Sprintf("%v user types, %v genders, %v known birth years",
		len(stats.UserTypes), len(stats.Genders), stats.KnownBirthYears), nil))
	return nil
}

func (ur *UserReporter) updateBirthYears(stats *UserStats, birthYear int) {
	if stats.KnownBirthYears == 0 || birthYear < stats.EarliestBirthYear {
		stats.EarliestBirthYear = birthYear
	}
	if stats.KnownBirthYears == 0 || birthYear > stats.MostRecentBirthYear {
		stats.MostRecentBirthYear = birthYear
	}
	stats.KnownBirthYears += 1
}

func (ur *UserReporter) SendReport(writer io.Writer) error {
	if ur.stats == nil {
		return fmt.Errorf("%s: %w", reporterType, dataErrors.ErrReportNotGenerated)
	}
	cityName := filter.Title(ur.stats.City)

	fmt.Fprintln(writer, "Counts of user types:")
	if err := writeCounts(writer, ur.stats.UserTypes); err != nil {
		return err
	}

	fmt.Fprintln(writer)
	if !ur.stats.HasGender {
		fmt.Fprintf(writer, genderNotAvailable, cityName)
	} else if len(ur.stats.Genders) == 0 {
		fmt.Fprintln(writer, "No gender data for this selection.")
	} else {
		fmt.Fprintln(writer, "Counts of gender:")
		if err := writeCounts(writer, ur.stats.Genders); err != nil {
			return err
		}
	}

	fmt.Fprintln(writer)
	if !ur.stats.HasBirthYear {
		_, err := fmt.Fprintf(writer, birthYearNotAvailable, cityName)
		return err
	}
	if ur.stats.KnownBirthYears == 0 {
		_, err := fmt.Fprintln(writer, "No birth year data for this selection.")
		return err
	}

	_, err := fmt.Fprintf(writer, "Earliest year of birth: %v\nMost recent year of birth: %v\nMost common year of birth: %v\n",
		ur.stats.EarliestBirthYear, ur.stats.MostRecentBirthYear, ur.stats.MostCommonBirthYear)
	return err
}

// writeCounts prints one aligned "value count" line per entry
func writeCounts(writer io.Writer, entries []tripcounter.Entry[string]) error {
	tw := tabwriter.NewWriter(writer, 0, 0, 4, ' ', 0)
	for _, entry := range entries {
		fmt.Fprintf(tw, "%s\t%v\n", entry.Key, entry.Count)
	}
	return tw.Flush()
}
