package loader

import (
	dataErrors "bikeshare/domain/errors"
	"bikeshare/loader/config"
	"errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const chicagoCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year
1423854,2017-06-23 15:09:32,2017-06-23 15:14:53,321,Wood St & Hubbard St,Damen Ave & Chicago Ave,Subscriber,Male,1992.0
955915,2017-05-25 18:19:03,2017-05-25 18:45:53,1610,Theater on the Lake,Sheffield Ave & Waveland Ave,Subscriber,Female,1992.0
9031,2017-01-04 08:27:49,2017-01-04 08:34:45,416,May St & Taylor St,Wood St & Taylor St,Customer,,
`

const washingtonCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type
1621326,2017-06-21 08:36:34,2017-06-21 08:44:43,489.066,14th & Belmont St NW,15th & K St NW,Subscriber
482740,2017-03-11 10:40:00,2017-03-11 10:46:00,402.549,Yuma St & Tenley Circle NW,Connecticut Ave & Yuma St NW,Subscriber
`

const washingtonStationsCSV = `name,latitude,longitude
14th & Belmont St NW,38.921074,-77.031887
15th & K St NW,38.902,-77.03353
`

func newTestLoader(t *testing.T, files map[string]string) *Loader {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	cfg := &config.LoaderConfig{
		DataDir:         dir,
		TimestampLayout: "2006-01-02 15:04:05",
		Cities: map[string]config.CityConfig{
			"chicago":       {TripsFile: "chicago.csv"},
			"new york city": {TripsFile: "new_york_city.csv"},
			"washington":    {TripsFile: "washington.csv", StationsFile: "washington_stations.csv"},
		},
	}
	cfg.TripColumns.StartTime = "Start Time"
	cfg.TripColumns.EndTime = "End Time"
	cfg.TripColumns.Duration = "Trip Duration"
	cfg.TripColumns.StartStation = "Start Station"
	cfg.TripColumns.EndStation = "End Station"
	cfg.TripColumns.UserType = "User Type"
	cfg.TripColumns.Gender = "Gender"
	cfg.TripColumns.BirthYear = "Birth Year"
	cfg.StationColumns.Name = "name"
	cfg.StationColumns.Latitude = "latitude"
	cfg.StationColumns.Longitude = "longitude"

	return NewLoader(cfg)
}

func TestLoadDerivesFieldsAndCapabilities(t *testing.T) {
	loader := newTestLoader(t, map[string]string{"chicago.csv": chicagoCSV})

	dataset, err := loader.Load("chicago")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if dataset.City != "chicago" || dataset.Len() != 3 {
		t.Fatalf("got city %q with %d trips", dataset.City, dataset.Len())
	}
	if !dataset.Capabilities.HasGender || !dataset.Capabilities.HasBirthYear {
		t.Fatalf("chicago must have gender and birth year: %+v", dataset.Capabilities)
	}

	first := dataset.GetTrips()[0]
	if first.Month != 6 || first.DayOfWeek != "Friday" || first.Hour != 15 {
		t.Errorf("derived fields: month=%d day=%s hour=%d", first.Month, first.DayOfWeek, first.Hour)
	}
	if first.Duration != 321 || first.StartStation != "Wood St & Hubbard St" || first.UserType != "Subscriber" {
		t.Errorf("unexpected trip: %+v", first)
	}
	if first.Gender != "Male" || first.BirthYear != 1992 {
		t.Errorf("gender=%q birthYear=%d", first.Gender, first.BirthYear)
	}

	last := dataset.GetTrips()[2]
	if last.HasGender() || last.HasBirthYear() {
		t.Errorf("blank cells must be unknown: %+v", last)
	}
	if last.DayOfWeek != "Wednesday" || last.Hour != 8 {
		t.Errorf("derived fields: day=%s hour=%d", last.DayOfWeek, last.Hour)
	}
}

func TestLoadCityWithoutOptionalColumns(t *testing.T) {
	loader := newTestLoader(t, map[string]string{"washington.csv": washingtonCSV})

	dataset, err := loader.Load("washington")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if dataset.Capabilities.HasGender || dataset.Capabilities.HasBirthYear {
		t.Fatalf("washington has no optional columns: %+v", dataset.Capabilities)
	}
	if got := dataset.GetTrips()[0].Duration; got != 489.066 {
		t.Fatalf("duration = %v", got)
	}
}

func TestLoadDataUnavailable(t *testing.T) {
	tests := []struct {
		name  string
		city  string
		files map[string]string
	}{
		{name: "missing file", city: "new york city", files: nil},
		{name: "unknown city", city: "boston", files: nil},
		{name: "missing column", city: "chicago", files: map[string]string{
			"chicago.csv": "Start Time,End Time\n2017-01-01 00:00:00,2017-01-01 00:10:00\n",
		}},
		{name: "bad timestamp", city: "chicago", files: map[string]string{
			"chicago.csv": ",Start Time,End Time,Trip Duration,Start Station,End Station,User Type\n1,yesterday,2017-01-01 00:10:00,600,A,B,Subscriber\n",
		}},
		{name: "bad duration", city: "chicago", files: map[string]string{
			"chicago.csv": ",Start Time,End Time,Trip Duration,Start Station,End Station,User Type\n1,2017-01-01 00:00:00,2017-01-01 00:10:00,long,A,B,Subscriber\n",
		}},
		{name: "short row", city: "chicago", files: map[string]string{
			"chicago.csv": ",Start Time,End Time,Trip Duration,Start Station,End Station,User Type\n1,2017-01-01 00:00:00\n",
		}},
		{name: "empty file", city: "chicago", files: map[string]string{"chicago.csv": ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := newTestLoader(t, tt.files)
			_, err := loader.Load(tt.city)
			if !errors.Is(err, dataErrors.ErrDataUnavailable) {
				t.Fatalf("expected ErrDataUnavailable, got %v", err)
			}
		})
	}
}

func TestLoadBadTimestampIsInvalidTripData(t *testing.T) {
	loader := newTestLoader(t, map[string]string{
		"chicago.csv": ",Start Time,End Time,Trip Duration,Start Station,End Station,User Type\n1,yesterday,2017-01-01 00:10:00,600,A,B,Subscriber\n",
	})
	_, err := loader.Load("chicago")
	if !errors.Is(err, dataErrors.ErrInvalidTripData) || !errors.Is(err, dataErrors.ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate wrapped as ErrInvalidTripData, got %v", err)
	}
}

func TestLoadLogsWithCityTag(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()
	previousLevel := logrus.GetLevel()
	logrus.SetLevel(logrus.DebugLevel)
	defer logrus.SetLevel(previousLevel)

	loader := newTestLoader(t, map[string]string{"washington.csv": washingtonCSV})
	if _, err := loader.Load("washington"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	entry := hook.LastEntry()
	if entry == nil {
		t.Fatalf("expected a log entry")
	}
	want := "[component: loader][city: washington][method: Load][status: OK]"
	if !strings.HasPrefix(entry.Message, want) {
		t.Fatalf("unexpected log message: %q", entry.Message)
	}
}

func TestLoadStations(t *testing.T) {
	loader := newTestLoader(t, map[string]string{"washington_stations.csv": washingtonStationsCSV})

	stations, err := loader.LoadStations("washington")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(stations) != 2 {
		t.Fatalf("got %d stations", len(stations))
	}
	belmont := stations["14th & Belmont St NW"]
	if belmont.Latitude != 38.921074 || belmont.Longitude != -77.031887 {
		t.Fatalf("unexpected station: %+v", belmont)
	}

	none, err := loader.LoadStations("chicago")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("chicago has no stations file, got %d stations", len(none))
	}
}

func TestLoadStationsErrors(t *testing.T) {
	missing := newTestLoader(t, nil)
	if _, err := missing.LoadStations("washington"); !errors.Is(err, dataErrors.ErrDataUnavailable) {
		t.Fatalf("expected ErrDataUnavailable for missing file, got %v", err)
	}

	badCoordinate := newTestLoader(t, map[string]string{
		"washington_stations.csv": "name,latitude,longitude\nSomewhere,north,-77.0\n",
	})
	_, err := badCoordinate.LoadStations("washington")
	if !errors.Is(err, dataErrors.ErrInvalidCoordinate) || !errors.Is(err, dataErrors.ErrDataUnavailable) {
		t.Fatalf("expected ErrInvalidCoordinate, got %v", err)
	}
}
