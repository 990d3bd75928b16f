package userreporter

import (
	"bikeshare/domain/business/tripcounter"
	"bikeshare/domain/entities/trip"
	dataErrors "bikeshare/domain/errors"
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"
)

type user struct {
	userType  string
	gender    string
	birthYear int
}

func newDataset(city string, capabilities trip.Capabilities, users []user) *trip.Dataset {
	startDate := time.Date(2017, time.May, 5, 18, 0, 0, 0, time.UTC)
	var trips []*trip.TripData
	for _, u := range users {
		tripData := trip.NewTripData(startDate, startDate.Add(time.Minute), "A", "B", 60, u.userType)
		tripData.Gender = u.gender
		tripData.BirthYear = u.birthYear
		trips = append(trips, tripData)
	}
	return trip.NewDataset(city, capabilities, trips)
}

func TestGenerateReportWithAllColumns(t *testing.T) {
	dataset := newDataset("chicago", trip.Capabilities{HasGender: true, HasBirthYear: true}, []user{
		{"Customer", "", 0},
		{"Subscriber", "Male", 1989},
		{"Subscriber", "Female", 1992},
		{"Subscriber", "Male", 1989},
		{"Dependent", "Female", 1955},
		{"", "Female", 2001},
	})

	reporter := NewUserReporter()
	if err := reporter.GenerateReport(dataset); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	stats := reporter.GetStats()
	wantUserTypes := []tripcounter.Entry[string]{
		{Key: "Subscriber", Count: 3},
		{Key: "Customer", Count: 1},
		{Key: "Dependent", Count: 1},
	}
	if !reflect.DeepEqual(stats.UserTypes, wantUserTypes) {
		t.Errorf("user types = %+v, want %+v", stats.UserTypes, wantUserTypes)
	}
	wantGenders := []tripcounter.Entry[string]{{Key: "Female", Count: 3}, {Key: "Male", Count: 2}}
	if !reflect.DeepEqual(stats.Genders, wantGenders) {
		t.Errorf("genders = %+v, want %+v", stats.Genders, wantGenders)
	}
	if stats.EarliestBirthYear != 1955 || stats.MostRecentBirthYear != 2001 || stats.MostCommonBirthYear != 1989 {
		t.Errorf("birth years = %d/%d/%d", stats.EarliestBirthYear, stats.MostRecentBirthYear, stats.MostCommonBirthYear)
	}
	if stats.KnownBirthYears != 5 {
		t.Errorf("known birth years = %d, want 5", stats.KnownBirthYears)
	}

	var output bytes.Buffer
	if err := reporter.SendReport(&output); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	for _, line := range []string{
		"Subscriber    3\n",
		"Customer      1\n",
		"Counts of gender:\nFemale    3\nMale      2\n",
		"Earliest year of birth: 1955\n",
		"Most recent year of birth: 2001\n",
		"Most common year of birth: 1989\n",
	} {
		if !strings.Contains(output.String(), line) {
			t.Errorf("output %q does not contain %q", output.String(), line)
		}
	}
}

func TestGenerateReportWithoutOptionalColumns(t *testing.T) {
	dataset := newDataset("washington", trip.Capabilities{}, []user{{"Subscriber", "", 0}, {"Customer", "", 0}})

	reporter := NewUserReporter()
	if err := reporter.GenerateReport(dataset); err != nil {
		t.Fatalf("a city without gender must not fail: %v", err)
	}

	var output bytes.Buffer
	if err := reporter.SendReport(&output); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	for _, line := range []string{
		"Gender information is not available for Washington.",
		"Birth year information is not available for Washington.",
	} {
		if !strings.Contains(output.String(), line) {
			t.Errorf("output %q does not contain %q", output.String(), line)
		}
	}
	if strings.Contains(output.String(), "Counts of gender") {
		t.Errorf("no gender counts expected: %q", output.String())
	}
}

func TestCapabilitiesAreCheckedBeforeComputing(t *testing.T) {
	// values present in the trips are ignored when the dataset says the column does not exist
	dataset := newDataset("washington", trip.Capabilities{}, []user{{"Subscriber", "Male", 1980}})

	reporter := NewUserReporter()
	if err := reporter.GenerateReport(dataset); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	stats := reporter.GetStats()
	if len(stats.Genders) != 0 || stats.KnownBirthYears != 0 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestSelectionWithoutKnownValues(t *testing.T) {
	dataset := newDataset("new york city", trip.Capabilities{HasGender: true, HasBirthYear: true}, []user{{"Customer", "", 0}})

	reporter := NewUserReporter()
	if err := reporter.GenerateReport(dataset); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	var output bytes.Buffer
	if err := reporter.SendReport(&output); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(output.String(), "No gender data for this selection.") ||
		!strings.Contains(output.String(), "No birth year data for this selection.") {
		t.Fatalf("unexpected output: %q", output.String())
	}
}

func TestEmptyDataset(t *testing.T) {
	reporter := NewUserReporter()
	err := reporter.GenerateReport(newDataset("chicago", trip.Capabilities{HasGender: true}, nil))
	if !errors.Is(err, dataErrors.ErrEmptyDataset) {
		t.Fatalf("expected ErrEmptyDataset, got %v", err)
	}
}
