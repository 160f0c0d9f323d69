package config

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"bikeshare/dataset"
	"bikeshare/domain/entities/filter"
	"bikeshare/utils"
)

const (
	defaultConfigFilepath = "./explorer/config/config.yaml"
	envPrefix             = "BIKESHARE"
)

// ExplorerConfig configuration of the explorer
// + DataDir: directory with the dataset of each city
// + CSVDelimiter: field delimiter of the datasets, a single character
// + PageSize: amount of trips shown each time the user asks for raw data
// + LogLevel: logrus level
// + Cities: dataset filename of each city
// + Columns: names of the columns of the datasets
type ExplorerConfig struct {
	DataDir      string            `yaml:"data_dir" validate:"required"`
	CSVDelimiter string            `yaml:"csv_delimiter" validate:"len=1"`
	PageSize     int               `yaml:"page_size" validate:"gt=0"`
	LogLevel     string            `yaml:"log_level" validate:"required"`
	Cities       map[string]string `yaml:"cities" validate:"required,min=1,dive,keys,city,endkeys,required"`
	Columns      dataset.Columns   `yaml:"columns"`
}

// envOverrides values read from BIKESHARE_* environment variables
type envOverrides struct {
	Config   string `envconfig:"CONFIG"`
	DataDir  string `envconfig:"DATA_DIR"`
	LogLevel string `envconfig:"LOG_LEVEL"`
}

// DefaultConfig returns the configuration used when there is no config file
func DefaultConfig() *ExplorerConfig {
	return &ExplorerConfig{
		DataDir:      ".",
		CSVDelimiter: ",",
		PageSize:     5,
		LogLevel:     "warn",
		Cities: map[string]string{
			"chicago":       "chicago.csv",
			"new york city": "new_york_city.csv",
			"washington":    "washington.csv",
		},
		Columns: dataset.DefaultColumns(),
	}
}

// LoadConfig builds the configuration in three layers: defaults, the YAML file and the environment.
// If configFilepath is empty BIKESHARE_CONFIG is used, and if it is not set either the default path is tried.
// A missing file is only an error if its path was given explicitly
func LoadConfig(configFilepath string) (*ExplorerConfig, error) {
	var overrides envOverrides
	if err := envconfig.Process(envPrefix, &overrides); err != nil {
		return nil, fmt.Errorf("error reading environment: %w", err)
	}

	explicitPath := true
	if configFilepath == "" {
		configFilepath = overrides.Config
	}
	if configFilepath == "" {
		configFilepath = defaultConfigFilepath
		explicitPath = false
	}

	explorerConfig := DefaultConfig()
	configFile, err := utils.GetConfigFile(configFilepath)
	switch {
	case err == nil:
		if err := explorerConfig.merge(configFile); err != nil {
			return nil, err
		}
	case errors.Is(err, os.ErrNotExist) && !explicitPath:
		// defaults only
	default:
		return nil, err
	}

	if overrides.DataDir != "" {
		explorerConfig.DataDir = overrides.DataDir
	}
	if overrides.LogLevel != "" {
		explorerConfig.LogLevel = overrides.LogLevel
	}

	if err := explorerConfig.Validate(); err != nil {
		return nil, err
	}
	return explorerConfig, nil
}

// merge overwrites the fields present in configFile. The cities of the file replace the default ones
func (ec *ExplorerConfig) merge(configFile []byte) error {
	defaultCities := ec.Cities
	ec.Cities = nil

	err := yaml.Unmarshal(configFile, ec)
	if err != nil {
		return fmt.Errorf("error parsing explorer config file: %w", err)
	}

	if ec.Cities == nil {
		ec.Cities = defaultCities
	}
	return nil
}

func (ec *ExplorerConfig) Validate() error {
	if err := filter.NewValidator().Struct(ec); err != nil {
		return fmt.Errorf("invalid explorer config: %w", err)
	}
	return nil
}

// GetLoaderConfig returns the parameters of the dataset loader.
// An empty delimiter is left as zero so the loader uses its default
func (ec *ExplorerConfig) GetLoaderConfig() dataset.LoaderConfig {
	var delimiter rune
	if ec.CSVDelimiter != "" {
		delimiter, _ = utf8.DecodeRuneInString(ec.CSVDelimiter)
	}

	return dataset.LoaderConfig{
		DataDir:   ec.DataDir,
		Delimiter: delimiter,
		Cities:    ec.Cities,
		Columns:   ec.Columns,
	}
}
