// Package env reads process configuration from the environment. Values loaded
// from a .env file by godotenv are visible here as well.
package env

import (
	"strings"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

var v = newViper()

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	return v
}

// GetString : Gets the value from env
func GetString(key string, fallback string) string {
	if val := v.GetString(key); val != "" {
		return val
	}

	return fallback
}

// GetInt returns fallback when the variable is unset or not an integer.
func GetInt(key string, fallback int) int {
	raw := v.GetString(key)
	if raw == "" {
		return fallback
	}
	n, err := cast.ToIntE(raw)
	if err != nil {
		return fallback
	}
	return n
}

// GetDuration parses values such as "90s" or "10m".
func GetDuration(key string, fallback time.Duration) time.Duration {
	raw := v.GetString(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}

// GetList splits a comma separated value and drops empty items.
func GetList(key string, fallback []string) []string {
	raw := v.GetString(key)
	if raw == "" {
		return fallback
	}

	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
