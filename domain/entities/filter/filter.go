package filter

import (
	dataErrors "bikeshare/domain/errors"
	"bikeshare/utils"
	"fmt"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"strings"
)

// AllFilter is the value that disables the month or day filter
const AllFilter = "all"

var (
	Cities = []string{"chicago", "new york city", "washington"}
	Months = []string{
		"january", "february", "march", "april", "may", "june",
		"july", "august", "september", "october", "november", "december",
	}
	Days = []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

	cityAliases = map[string]string{
		"new york": "new york city",
		"nyc":      "new york city",
	}
)

// FilterSpec the (city, month, day) triple that selects which trips to analyze.
// + City: one of Cities
// + Month: one of Months or AllFilter
// + Day: one of Days or AllFilter
type FilterSpec struct {
	City  string `json:"city"`
	Month string `json:"month"`
	Day   string `json:"day"`
}

// NewFilterSpec validates the three values and returns them in their canonical form
func NewFilterSpec(city string, month string, day string) (FilterSpec, error) {
	parsedCity, err := ParseCity(city)
	if err != nil {
		return FilterSpec{}, err
	}

	parsedMonth, err := ParseMonth(month)
	if err != nil {
		return FilterSpec{}, err
	}

	parsedDay, err := ParseDay(day)
	if err != nil {
		return FilterSpec{}, err
	}

	return FilterSpec{City: parsedCity, Month: parsedMonth, Day: parsedDay}, nil
}

func ParseCity(input string) (string, error) {
	city := utils.NormalizeInput(input)
	if alias, ok := cityAliases[city]; ok {
		city = alias
	}
	if !utils.ContainsString(city, Cities) {
		return "", fmt.Errorf("%w: unknown city %q", dataErrors.ErrInvalidFilterInput, input)
	}
	return city, nil
}

func ParseMonth(input string) (string, error) {
	month := utils.NormalizeInput(input)
	if month != AllFilter && !utils.ContainsString(month, Months) {
		return "", fmt.Errorf("%w: unknown month %q", dataErrors.ErrInvalidFilterInput, input)
	}
	return month, nil
}

func ParseDay(input string) (string, error) {
	day := utils.NormalizeInput(input)
	if day != AllFilter && !utils.ContainsString(day, Days) {
		return "", fmt.Errorf("%w: unknown day %q", dataErrors.ErrInvalidFilterInput, input)
	}
	return day, nil
}

func (fs FilterSpec) FiltersMonth() bool {
	return fs.Month != "" && fs.Month != AllFilter
}

func (fs FilterSpec) FiltersDay() bool {
	return fs.Day != "" && fs.Day != AllFilter
}

// MonthNumber returns the month as 1-12, or 0 when no month filter applies
func (fs FilterSpec) MonthNumber() int {
	for idx, month := range Months {
		if month == fs.Month {
			return idx + 1
		}
	}
	return 0
}

// CanonicalDay returns the day capitalized the way trips store it (e.g. Monday), or "" when no day filter applies
func (fs FilterSpec) CanonicalDay() string {
	if !fs.FiltersDay() {
		return ""
	}
	return Title(fs.Day)
}

func (fs FilterSpec) String() string {
	return fmt.Sprintf("city: %s, month: %s, day: %s", Title(fs.City), fs.Month, fs.Day)
}

// Title capitalizes every word of value, e.g. "new york city" becomes "New York City"
func Title(value string) string {
	return cases.Title(language.English).String(strings.TrimSpace(value))
}
