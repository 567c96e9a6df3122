// Package config loads the run configuration of the gridq command from
// environment variables, optionally read from a .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by Load
const (
	EpisodesKey     = "GRIDQ_EPISODES"
	SeedKey         = "GRIDQ_SEED"
	LearningRateKey = "GRIDQ_LEARNING_RATE"
	DiscountKey     = "GRIDQ_DISCOUNT"
	EpsilonKey      = "GRIDQ_EPSILON"
	StartKey        = "GRIDQ_START"
)

// Config holds the run configuration
type Config struct {
	Episodes     int     // Maximum number of episodes to learn for
	Seed         uint64  // Seed for action selection
	LearningRate float64 // Step size of the value update
	Discount     float64 // Discount factor
	Epsilon      float64 // Initial exploration rate
	Start        int     // 1-based index of the start cell
}

// Default returns the default configuration, seeded with the current
// time
func Default() Config {
	return Config{
		Episodes:     10_000,
		Seed:         uint64(time.Now().UnixNano()),
		LearningRate: 0.1,
		Discount:     0.5,
		Epsilon:      0.1,
		Start:        1,
	}
}

// Load returns the default configuration overridden by any environment
// variables that are set. Variables are first loaded from the given
// files, or from .env if no files are given. Missing files are
// ignored, and variables already set in the environment take
// precedence over those in files.
func Load(filenames ...string) (Config, error) {
	if err := godotenv.Load(filenames...); err != nil &&
		!errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load: %v", err)
	}

	c := Default()
	var err error

	if c.Episodes, err = getEnvAsInt(EpisodesKey, c.Episodes); err != nil {
		return Config{}, err
	}
	if c.Start, err = getEnvAsInt(StartKey, c.Start); err != nil {
		return Config{}, err
	}
	if c.Seed, err = getEnvAsUint(SeedKey, c.Seed); err != nil {
		return Config{}, err
	}
	if c.LearningRate, err = getEnvAsFloat(LearningRateKey,
		c.LearningRate); err != nil {
		return Config{}, err
	}
	if c.Discount, err = getEnvAsFloat(DiscountKey, c.Discount); err != nil {
		return Config{}, err
	}
	if c.Epsilon, err = getEnvAsFloat(EpsilonKey, c.Epsilon); err != nil {
		return Config{}, err
	}

	return c, nil
}

// getEnvAsInt retrieves the value of an environment variable as an
// integer, or returns def if it is not set
func getEnvAsInt(key string, def int) (int, error) {
	valueStr, ok := os.LookupEnv(key)
	if !ok {
		return def, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an "+
			"integer: %v", key, err)
	}
	return value, nil
}

// getEnvAsUint retrieves the value of an environment variable as an
// unsigned integer, or returns def if it is not set
func getEnvAsUint(key string, def uint64) (uint64, error) {
	valueStr, ok := os.LookupEnv(key)
	if !ok {
		return def, nil
	}
	value, err := strconv.ParseUint(valueStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an "+
			"unsigned integer: %v", key, err)
	}
	return value, nil
}

// getEnvAsFloat retrieves the value of an environment variable as a
// float, or returns def if it is not set
func getEnvAsFloat(key string, def float64) (float64, error) {
	valueStr, ok := os.LookupEnv(key)
	if !ok {
		return def, nil
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be a "+
			"number: %v", key, err)
	}
	return value, nil
}
