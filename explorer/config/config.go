package config

import (
	"bikeshare/utils"
	"fmt"
	"gopkg.in/yaml.v3"
	"os"
)

const (
	configFilepath        = "./explorer/config/config.yaml"
	configFilepathEnv     = "BIKESHARE_CONFIG"
	defaultPageSize       = 5
	defaultSeparatorWidth = 40
)

type ExplorerConfig struct {
	PageSize           int      `yaml:"page_size"`
	SeparatorWidth     int      `yaml:"separator_width"`
	AffirmativeAnswers []string `yaml:"affirmative_answers"`
	NegativeAnswers    []string `yaml:"negative_answers"`
}

// NewDefaultConfig returns the configuration used when no config file overrides it
func NewDefaultConfig() *ExplorerConfig {
	return &ExplorerConfig{
		PageSize:           defaultPageSize,
		SeparatorWidth:     defaultSeparatorWidth,
		AffirmativeAnswers: []string{"yes", "y"},
		NegativeAnswers:    []string{"no", "n"},
	}
}

// LoadConfig reads the explorer config from BIKESHARE_CONFIG, or from the default path when it is not set
func LoadConfig() (*ExplorerConfig, error) {
	if filepath := os.Getenv(configFilepathEnv); filepath != "" {
		return LoadConfigFromFile(filepath)
	}
	return LoadConfigFromFile(configFilepath)
}

func LoadConfigFromFile(filepath string) (*ExplorerConfig, error) {
	configFile, err := utils.GetConfigFile(filepath)
	if err != nil {
		return nil, err
	}

	explorerConfig := NewDefaultConfig()
	err = yaml.Unmarshal(configFile, explorerConfig)
	if err != nil {
		return nil, fmt.Errorf("error parsing explorer config file: %w", err)
	}

	if explorerConfig.PageSize <= 0 {
		return nil, fmt.Errorf("invalid page size %v: must be greater than 0", explorerConfig.PageSize)
	}

	return explorerConfig, nil
}
