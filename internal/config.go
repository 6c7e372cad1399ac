package internal

import (
	"conference-sim/domain"
	"fmt"
	"time"
)

type Config struct {
	BadgerFilepath         string `env:"BADGER_FILEPATH,default=./data/conference"`
	LogLevel               string `env:"LOG_LEVEL,default=WARN"`
	HistoryFile            string `env:"HISTORY_FILE,default=/tmp/conference-sim.history"`
	DefaultSpeakerPassword string `env:"DEFAULT_SPEAKER_PASSWORD,default=1234"`
	TimeLayout             string `env:"TIME_LAYOUT,default=2006-01-02 15:04"`
	Colours                bool   `env:"COLOURS,default=true"`
	DebugPort              int    `env:"DEBUG_PORT,default=8081"`

	AutosaveInterval time.Duration `env:"AUTOSAVE_INTERVAL,default=1m"`
}

// ParseEventTime reads an event time typed by a user, in the configured layout and UTC.
func ParseEventTime(layout, value string) (time.Time, error) {
	if layout == "" {
		layout = domain.TimeLayout
	}
	t, err := time.ParseInLocation(layout, value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("time must look like %q, got %q", layout, value)
	}
	return t, nil
}
