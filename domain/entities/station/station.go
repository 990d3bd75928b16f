package station

// StationData struct that contains the coordinates of a station
type StationData struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func NewStationData(name string, latitude float64, longitude float64) StationData {
	return StationData{
		Name:      name,
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// GetCoordinates returns latitude and longitude of the station
func (sd StationData) GetCoordinates() (float64, float64) {
	return sd.Latitude, sd.Longitude
}
