package config

import (
	"bikeshare/utils"
	"fmt"
	"gopkg.in/yaml.v3"
	"os"
)

const (
	configFilepath = "./loader/config/config.yaml"
	dataDirEnv     = "BIKESHARE_DATA_DIR"
)

// tripColumns contains the header name of each field to analyze
type tripColumns struct {
	StartTime    string `yaml:"start_time"`
	EndTime      string `yaml:"end_time"`
	Duration     string `yaml:"duration"`
	StartStation string `yaml:"start_station"`
	EndStation   string `yaml:"end_station"`
	UserType     string `yaml:"user_type"`
	Gender       string `yaml:"gender"`
	BirthYear    string `yaml:"birth_year"`
}

// stationColumns contains the header name of each field of a stations file
type stationColumns struct {
	Name      string `yaml:"name"`
	Latitude  string `yaml:"latitude"`
	Longitude string `yaml:"longitude"`
}

// CityConfig files that belong to a city. StationsFile is optional
type CityConfig struct {
	TripsFile    string `yaml:"trips_file"`
	StationsFile string `yaml:"stations_file"`
}

type LoaderConfig struct {
	DataDir         string                `yaml:"data_dir"`
	TimestampLayout string                `yaml:"timestamp_layout"`
	TripColumns     tripColumns           `yaml:"trip_columns"`
	StationColumns  stationColumns        `yaml:"station_columns"`
	Cities          map[string]CityConfig `yaml:"cities"`
}

func LoadConfig() (*LoaderConfig, error) {
	return LoadConfigFromFile(configFilepath)
}

func LoadConfigFromFile(filepath string) (*LoaderConfig, error) {
	configFile, err := utils.GetConfigFile(filepath)
	if err != nil {
		return nil, err
	}

	var loaderConfig LoaderConfig
	err = yaml.Unmarshal(configFile, &loaderConfig)
	if err != nil {
		return nil, fmt.Errorf("error parsing loader config file: %w", err)
	}

	if dataDir := os.Getenv(dataDirEnv); dataDir != "" {
		loaderConfig.DataDir = dataDir
	}

	return &loaderConfig, nil
}
