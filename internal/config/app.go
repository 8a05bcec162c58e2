package config

import "time"

type AppConfig struct {
	TimeZone string `yaml:"timezone"`
}

// Location is the zone used to decide what "today" means. Falls back to UTC.
func (s *AppConfig) Location() *time.Location {
	if s.TimeZone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(s.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}
