package main

import (
	"encoding/json"
	"fmt"
	"os"

	mgenergy "github.com/ess-dg/mgenergy_go/pkg"
)

func LoadConfiguration(filename string) (mgenergy.Configuration, error) {
	var config mgenergy.Configuration

	// Set default values
	config.Verbosity = 0
	config.FileOut = "energies.h5"
	config.DistanceOffset = 0
	config.Mapping = mgenergy.MappingLayout
	config.DBDriver = mgenergy.DriverMySQL
	config.Host = "localhost"
	config.User = "mgreader"
	config.Passwd = "readonly"
	config.DBName = "MultiGrid"
	config.RunNumber = 0
	config.NumWorkers = 1
	config.Parallel = false
	config.WriteDistances = true
	config.CompressionLevel = 4

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, err
	}
	err = json.Unmarshal(data, &config)
	if err != nil {
		return config, err
	}
	if err := validateConfiguration(config); err != nil {
		return config, err
	}
	return config, nil
}

func validateConfiguration(config mgenergy.Configuration) error {
	switch config.Mapping {
	case mgenergy.MappingLayout, mgenergy.MappingDatabase:
	default:
		return fmt.Errorf("unknown mapping source %q", config.Mapping)
	}
	if config.NumWorkers < 1 {
		return fmt.Errorf("num_workers must be at least 1, got %d", config.NumWorkers)
	}
	if config.CompressionLevel < 0 || config.CompressionLevel > 9 {
		return fmt.Errorf("compression_level must be in [0, 9], got %d", config.CompressionLevel)
	}
	return nil
}

func printConfiguration(config mgenergy.Configuration, logger Logger) {
	logger.Info(fmt.Sprintf("File in: %s", config.FileIn), "config")
	logger.Info(fmt.Sprintf("File out: %s", config.FileOut), "config")
	logger.Info(fmt.Sprintf("Distance offset: %g m", config.DistanceOffset), "config")
	logger.Info(fmt.Sprintf("Mapping: %s", config.Mapping), "config")
	if config.Mapping == mgenergy.MappingDatabase {
		logger.Info(fmt.Sprintf("DB driver: %s", config.DBDriver), "config")
		logger.Info(fmt.Sprintf("Host: %s", config.Host), "config")
		logger.Info(fmt.Sprintf("DB name: %s", config.DBName), "config")
		logger.Info(fmt.Sprintf("Run number: %d", config.RunNumber), "config")
	}
	logger.Info(fmt.Sprintf("Verbosity: %d", config.Verbosity), "config")
	logger.Info(fmt.Sprintf("Number of workers: %d", config.NumWorkers), "config")
	logger.Info(fmt.Sprintf("Parallel: %t", config.Parallel), "config")
	logger.Info(fmt.Sprintf("Write distances: %t", config.WriteDistances), "config")
	logger.Info(fmt.Sprintf("Compression level: %d", config.CompressionLevel), "config")
	logger.Info(fmt.Sprintf("Filters: %d", len(config.Filters)), "config")
}
