package config // package config loads application configuration from environment variables

import (
	"os" // os provides access to environment variables

	"github.com/joho/godotenv" // godotenv loads a local .env file into the environment
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  Every value has a default because nothing in
// the till configuration is fatal: a missing catalog file only empties its
// menu category, and the console binary does not need a port at all.
type Config struct {
	Env      string // application environment (e.g. "dev", "prod")
	Port     string // HTTP port the till server listens on
	DataDir  string // directory holding the catalog files
	Currency string // currency label shown on receipts (display only)
}

// Load reads configuration from the environment, first merging in a .env
// file when one is present in the working directory.  Unset variables
// fall back to their defaults.
func Load() Config {
	_ = godotenv.Load() // a missing .env file is not an error
	return Config{
		Env:      getenv("APP_ENV", "dev"),     // environment (dev/test/prod)
		Port:     getenv("APP_PORT", "8080"),   // port to bind the till server
		DataDir:  getenv("DATA_DIR", "./data"), // catalog file directory
		Currency: getenv("CURRENCY", "RUB"),    // receipt currency label
	}
}

// getenv retrieves an environment variable, returning the fallback when
// the variable is unset or empty.
func getenv(key, fallback string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	return v
}
