package loader

import (
	"bikeshare/domain/entities/station"
	"bikeshare/domain/entities/trip"
	dataErrors "bikeshare/domain/errors"
	"bikeshare/loader/config"
	"encoding/csv"
	"errors"
	"fmt"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	loaderType    = "loader"
	byteOrderMark = "\ufeff"
)

// Loader reads the datasets of the configured cities
type Loader struct {
	config *config.LoaderConfig
}

func NewLoader(loaderConfig *config.LoaderConfig) *Loader {
	return &Loader{
		config: loaderConfig,
	}
}

func (l *Loader) getLogMessage(method string, city string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[component: %s][city: %s][method: %s][status: ERROR] %s: %s", loaderType, city, method, message, err.Error())
	}
	return fmt.Sprintf("[component: %s][city: %s][method: %s][status: OK] %s", loaderType, city, method, message)
}

// Load reads every trip of the city. Month, day of week and hour are derived from the start time
// and the capabilities of the dataset are taken from the header of the file.
// Any problem with the file is returned as ErrDataUnavailable.
func (l *Loader) Load(city string) (*trip.Dataset, error) {
	cityConfig, ok := l.config.Cities[city]
	if !ok {
		return nil, fmt.Errorf("%w: %w: %s", dataErrors.ErrDataUnavailable, dataErrors.ErrUnknownCity, city)
	}

	tripsFilepath := l.getFilePath(cityConfig.TripsFile)
	dataFile, err := os.Open(tripsFilepath)
	if err != nil {
		log.Debug(l.getLogMessage("Load", city, fmt.Sprintf("error opening %s", tripsFilepath), err))
		return nil, fmt.Errorf("%w: %w", dataErrors.ErrDataUnavailable, err)
	}

	defer func(dataFile *os.File) {
		err := dataFile.Close()
		if err != nil {
			log.Error(l.getLogMessage("Load", city, fmt.Sprintf("error closing %s", tripsFilepath), err))
		}
	}(dataFile)

	start := time.Now()
	dataset, err := l.readTrips(city, dataFile)
	if err != nil {
		log.Debug(l.getLogMessage("Load", city, fmt.Sprintf("error reading %s", tripsFilepath), err))
		return nil, fmt.Errorf("%w: %s: %w", dataErrors.ErrDataUnavailable, tripsFilepath, err)
	}

	log.Debug(l.getLogMessage("Load", city, fmt.Sprintf("%v trips loaded in %s (gender: %v, birth year: %v)",
		dataset.Len(), time.Since(start), dataset.Capabilities.HasGender, dataset.Capabilities.HasBirthYear), nil))
	return dataset, nil
}

// LoadStations reads the optional stations file of the city, indexed by station name.
// A city without stations file returns an empty map.
func (l *Loader) LoadStations(city string) (map[string]station.StationData, error) {
	stations := make(map[string]station.StationData)
	cityConfig, ok := l.config.Cities[city]
	if !ok {
		return nil, fmt.Errorf("%w: %w: %s", dataErrors.ErrDataUnavailable, dataErrors.ErrUnknownCity, city)
	}

	if cityConfig.StationsFile == "" {
		log.Debug(l.getLogMessage("LoadStations", city, "no stations file configured", nil))
		return stations, nil
	}

	stationsFilepath := l.getFilePath(cityConfig.StationsFile)
	stationsFile, err := os.Open(stationsFilepath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", dataErrors.ErrDataUnavailable, err)
	}
	defer stationsFile.Close()

	reader := newCSVReader(stationsFile)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: error reading header of %s: %w", dataErrors.ErrDataUnavailable, stationsFilepath, err)
	}

	columns := l.config.StationColumns
	indexes := getColumnIndexes(header)
	for _, column := range []string{columns.Name, columns.Latitude, columns.Longitude} {
		if !hasColumn(indexes, column) {
			return nil, fmt.Errorf("%w: %w: %q in %s", dataErrors.ErrDataUnavailable, dataErrors.ErrMissingColumn, column, stationsFilepath)
		}
	}
	nameIdx, latitudeIdx, longitudeIdx := indexes[columns.Name], indexes[columns.Latitude], indexes[columns.Longitude]

	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s line %d: %w", dataErrors.ErrDataUnavailable, stationsFilepath, line, err)
		}

		latitude, err := strconv.ParseFloat(strings.TrimSpace(row[latitudeIdx]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s line %d: %w: %w", dataErrors.ErrDataUnavailable, stationsFilepath, line, dataErrors.ErrInvalidCoordinate, dataErrors.ErrInvalidStationData)
		}
		longitude, err := strconv.ParseFloat(strings.TrimSpace(row[longitudeIdx]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s line %d: %w: %w", dataErrors.ErrDataUnavailable, stationsFilepath, line, dataErrors.ErrInvalidCoordinate, dataErrors.ErrInvalidStationData)
		}

		name := strings.TrimSpace(row[nameIdx])
		stations[name] = station.NewStationData(name, latitude, longitude)
	}

	log.Debug(l.getLogMessage("LoadStations", city, fmt.Sprintf("%v stations loaded", len(stations)), nil))
	return stations, nil
}

func (l *Loader) readTrips(city string, source io.Reader) (*trip.Dataset, error) {
	reader := newCSVReader(source)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("error reading header: %w", err)
	}

	indexes := getColumnIndexes(header)
	columns := l.config.TripColumns
	for _, required := range []string{columns.StartTime, columns.EndTime, columns.Duration, columns.StartStation, columns.EndStation, columns.UserType} {
		if !hasColumn(indexes, required) {
			return nil, fmt.Errorf("%w: %q", dataErrors.ErrMissingColumn, required)
		}
	}

	capabilities := trip.Capabilities{
		HasGender:    hasColumn(indexes, columns.Gender),
		HasBirthYear: hasColumn(indexes, columns.BirthYear),
	}

	var trips []*trip.TripData
	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		tripData, err := l.getTripData(row, indexes, capabilities)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		trips = append(trips, tripData)
	}

	return trip.NewDataset(city, capabilities, trips), nil
}

// getTripData returns a TripData from a csv row. Blank gender and birth year cells are kept as unknown values
func (l *Loader) getTripData(row []string, indexes map[string]int, capabilities trip.Capabilities) (*trip.TripData, error) {
	columns := l.config.TripColumns

	startDateStr := strings.TrimSpace(row[indexes[columns.StartTime]])
	startDate, err := time.Parse(l.config.TimestampLayout, startDateStr)
	if err != nil {
		log.Debugf("Invalid start date: %v", startDateStr)
		return nil, fmt.Errorf("%w: %w", dataErrors.ErrInvalidDate, dataErrors.ErrInvalidTripData)
	}

	endDateStr := strings.TrimSpace(row[indexes[columns.EndTime]])
	endDate, err := time.Parse(l.config.TimestampLayout, endDateStr)
	if err != nil {
		log.Debugf("Invalid end date: %v", endDateStr)
		return nil, fmt.Errorf("%w: %w", dataErrors.ErrInvalidDate, dataErrors.ErrInvalidTripData)
	}

	durationStr := strings.TrimSpace(row[indexes[columns.Duration]])
	duration, err := strconv.ParseFloat(durationStr, 64)
	if err != nil {
		log.Debugf("Invalid duration type: %v", durationStr)
		return nil, fmt.Errorf("%w: %w", dataErrors.ErrInvalidDurationType, dataErrors.ErrInvalidTripData)
	}

	tripData := trip.NewTripData(
		startDate,
		endDate,
		strings.TrimSpace(row[indexes[columns.StartStation]]),
		strings.TrimSpace(row[indexes[columns.EndStation]]),
		duration,
		strings.TrimSpace(row[indexes[columns.UserType]]),
	)

	if capabilities.HasGender {
		tripData.Gender = strings.TrimSpace(row[indexes[columns.Gender]])
	}

	if capabilities.HasBirthYear {
		birthYearStr := strings.TrimSpace(row[indexes[columns.BirthYear]])
		if birthYearStr != "" {
			// birth years are written as floats, e.g. 1989.0
			birthYear, err := strconv.ParseFloat(birthYearStr, 64)
			if err != nil {
				log.Debugf("Invalid birth year: %v", birthYearStr)
				return nil, fmt.Errorf("%w: %w", dataErrors.ErrInvalidYearType, dataErrors.ErrInvalidTripData)
			}
			tripData.BirthYear = int(birthYear)
		}
	}

	return tripData, nil
}

// getFilePath returns the path to a .csv file inside the data directory
func (l *Loader) getFilePath(filename string) string {
	return filepath.Join(l.config.DataDir, filename)
}

func newCSVReader(source io.Reader) *csv.Reader {
	reader := csv.NewReader(source)
	reader.TrimLeadingSpace = true
	return reader
}

// getColumnIndexes maps each header name to its position
func getColumnIndexes(header []string) map[string]int {
	indexes := make(map[string]int, len(header))
	for idx, column := range header {
		if idx == 0 {
			column = strings.TrimPrefix(column, byteOrderMark)
		}
		indexes[strings.TrimSpace(column)] = idx
	}
	return indexes
}

// hasColumn the first column of some files has no name, so an empty column name never matches
func hasColumn(indexes map[string]int, column string) bool {
	if column == "" {
		return false
	}
	_, ok := indexes[column]
	return ok
}
