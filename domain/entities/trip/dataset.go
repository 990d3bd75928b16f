package trip

// Capabilities describes which optional columns a city dataset carries. It is a static
// property of the source file and is known as soon as its header is read.
type Capabilities struct {
	HasGender    bool `json:"has_gender"`
	HasBirthYear bool `json:"has_birth_year"`
}

// Dataset ordered trips of one city. A Dataset is never modified after being built:
// restricting it returns a new Dataset that shares the city and its capabilities.
type Dataset struct {
	City         string       `json:"city"`
	Capabilities Capabilities `json:"capabilities"`
	trips        []*TripData
}

func NewDataset(city string, capabilities Capabilities, trips []*TripData) *Dataset {
	return &Dataset{
		City:         city,
		Capabilities: capabilities,
		trips:        trips,
	}
}

func (d *Dataset) Len() int {
	return len(d.trips)
}

func (d *Dataset) IsEmpty() bool {
	return len(d.trips) == 0
}

// GetTrips returns the trips of the dataset in their original order. The slice must be treated as read-only
func (d *Dataset) GetTrips() []*TripData {
	return d.trips
}

// Restrict returns a new Dataset with the trips for which keep returns true, preserving their order
func (d *Dataset) Restrict(keep func(*TripData) bool) *Dataset {
	var kept []*TripData
	for _, tripData := range d.trips {
		if keep(tripData) {
			kept = append(kept, tripData)
		}
	}
	return NewDataset(d.City, d.Capabilities, kept)
}

// Window returns at most size trips starting at offset. An offset past the end returns nil
func (d *Dataset) Window(offset int, size int) []*TripData {
	if offset < 0 || size <= 0 || offset >= len(d.trips) {
		return nil
	}
	end := offset + size
	if end > len(d.trips) {
		end = len(d.trips)
	}
	return d.trips[offset:end]
}
