package config

import (
	"os"
	"strconv"
)

// Settings holds the runtime options read from the environment. Values not
// set fall back to defaults, so a bare launch always works.
type Settings struct {
	Seed             int64
	TelemetryEnabled bool
	SavePath         string
}

// LoadSettings reads TILEQUEST_* environment variables. main loads .env
// first so a local file can provide them.
func LoadSettings() Settings {
	s := Settings{
		Seed:     0,
		SavePath: "tilequest_save.json",
	}

	if v := os.Getenv("TILEQUEST_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			s.Seed = seed
		}
	}
	if v := os.Getenv("TILEQUEST_SAVE_PATH"); v != "" {
		s.SavePath = v
	}
	s.TelemetryEnabled = os.Getenv("TILEQUEST_TELEMETRY") == "1"

	return s
}
