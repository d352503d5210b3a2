package cli

import (
	"os"
	"strconv"
)

// Config holds CLI configuration
type Config struct {
	ServerURL string
	Output    string
	NoColor   bool
	Verbose   bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL: getEnvOrDefault("FAIRYCHESS_SERVER", "http://localhost:8080"),
		Output:    getEnvOrDefault("FAIRYCHESS_OUTPUT", "text"),
		NoColor:   getEnvBool("NO_COLOR"),
		Verbose:   false,
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string) bool {
	val := os.Getenv(key)
	if val == "" {
		return false
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		// NO_COLOR is set to any non-empty value by convention
		return true
	}
	return b
}
