package trip

import (
	"time"
)

// TripData struct that contains one trip record of a city dataset
// + StartDate: date in which the trip begins
// + EndDate: date in which the trip ends
// + StartStation: name of the station in which the trip begins
// + EndStation: name of the station in which the trip ends
// + Duration: duration of the trip in seconds
// + UserType: category of the user (Subscriber, Customer, ...)
// + Gender: gender of the user, empty when unknown
// + BirthYear: birth year of the user, zero when unknown
// + Month, DayOfWeek, Hour: derived from StartDate when the trip is created
type TripData struct {
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	StartStation string    `json:"start_station"`
	EndStation   string    `json:"end_station"`
	Duration     float64   `json:"duration"`
	UserType     string    `json:"user_type"`
	Gender       string    `json:"gender,omitempty"`
	BirthYear    int       `json:"birth_year,omitempty"`
	Month        int       `json:"month"`
	DayOfWeek    string    `json:"day_of_week"`
	Hour         int       `json:"hour"`
}

// StationPair a trip seen as the combination of its start and end stations
type StationPair struct {
	StartStation string `json:"start_station"`
	EndStation   string `json:"end_station"`
}

func NewTripData(startDate time.Time, endDate time.Time, startStation string, endStation string, duration float64, userType string) *TripData {
	return &TripData{
		StartDate:    startDate,
		EndDate:      endDate,
		StartStation: startStation,
		EndStation:   endStation,
		Duration:     duration,
		UserType:     userType,
		Month:        int(startDate.Month()),
		DayOfWeek:    startDate.Weekday().String(),
		Hour:         startDate.Hour(),
	}
}

func (td *TripData) GetStationPair() StationPair {
	return StationPair{
		StartStation: td.StartStation,
		EndStation:   td.EndStation,
	}
}

func (td *TripData) HasGender() bool {
	return td.Gender != ""
}

func (td *TripData) HasBirthYear() bool {
	return td.BirthYear > 0
}

func (sp StationPair) String() string {
	return sp.StartStation + " -> " + sp.EndStation
}
