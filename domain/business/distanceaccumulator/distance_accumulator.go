package distanceaccumulator

import (
	"bikeshare/domain/entities/station"
	dataErrors "bikeshare/domain/errors"
	"fmt"
	"github.com/umahmood/haversine"
)

// DistanceAccumulator struct that collects the straight-line distance of trips
// + Counter: counts the amount of trips whose both stations have known coordinates
// + TotalDistance: sum of distances in kilometers
type DistanceAccumulator struct {
	Counter       int     `json:"counter"`
	TotalDistance float64 `json:"total_distance"`
}

func NewDistanceAccumulator() *DistanceAccumulator {
	return &DistanceAccumulator{}
}

func (da *DistanceAccumulator) UpdateAccumulator(newDistance float64) {
	da.Counter += 1
	da.TotalDistance += newDistance
}

func (da *DistanceAccumulator) GetAverageDistance() (float64, error) {
	if da.Counter == 0 {
		return 0, fmt.Errorf("%w: cannot get average distance, counter is zero", dataErrors.ErrEmptyDataset)
	}
	return da.TotalDistance / float64(da.Counter), nil
}

// CalculateDistance returns the distance in kilometers between two stations
func CalculateDistance(startStation station.StationData, endStation station.StationData) float64 {
	latStartStation, longStartStation := startStation.GetCoordinates()
	latEndStation, longEndStation := endStation.GetCoordinates()

	startCoordinates := haversine.Coord{Lat: latStartStation, Lon: longStartStation}
	endCoordinates := haversine.Coord{Lat: latEndStation, Lon: longEndStation}
	_, km := haversine.Distance(startCoordinates, endCoordinates)
	return km
}
