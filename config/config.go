package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"strconv"
)

// Config holds all configurable server parameters.
type Config struct {
	// WSPort is the HTTP/WebSocket listen port.
	WSPort int `json:"ws_port"`

	// HandSize is the number of cards dealt to each participant.
	HandSize int `json:"hand_size"`

	// RoundBasePoints is the base of the round score formula
	// (base minus cards on board), used for withdraw forfeits and
	// lane-control awards.
	RoundBasePoints int `json:"round_base_points"`

	// StrictTurns rejects out-of-turn plays. Off by default: the baseline
	// engine processes a play from either seat regardless of the turn
	// indicator.
	StrictTurns bool `json:"strict_turns"`

	// RedactHands replaces the opponent's hand with a count in each
	// participant's broadcast copy. Off by default: the baseline protocol
	// sends both full hands to both participants.
	RedactHands bool `json:"redact_hands"`

	// DatabaseURL enables the Postgres score-award store when set.
	DatabaseURL string `json:"database_url"`

	// AuthBaseURL enables bearer-JWT validation on the history API when set.
	AuthBaseURL string `json:"auth_base_url"`
}

// Defaults returns a Config with all default values.
func Defaults() *Config {
	return &Config{
		WSPort:          8080,
		HandSize:        6,
		RoundBasePoints: 6,
	}
}

// Load reads configuration from an optional config.json file, then
// applies environment variable overrides. Fields not set in either
// source retain their default values.
func Load() *Config {
	cfg := Defaults()

	if f, err := os.Open("config.json"); err == nil {
		defer f.Close()
		if err := json.NewDecoder(f).Decode(cfg); err != nil {
			slog.Warn("failed to parse config.json", "tag", "config", "err", err)
		}
	}

	overrideInt(&cfg.WSPort, "WS_PORT")
	overrideInt(&cfg.HandSize, "HAND_SIZE")
	overrideInt(&cfg.RoundBasePoints, "ROUND_BASE_POINTS")
	overrideBool(&cfg.StrictTurns, "STRICT_TURNS")
	overrideBool(&cfg.RedactHands, "REDACT_HANDS")
	overrideString(&cfg.DatabaseURL, "DATABASE_URL")
	overrideString(&cfg.AuthBaseURL, "AUTH_BASE_URL")

	return cfg
}

func overrideInt(field *int, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			*field = n
		} else {
			slog.Warn("invalid value for env var", "tag", "config", "key", envKey, "value", val)
		}
	}
}

func overrideBool(field *bool, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			*field = b
		} else {
			slog.Warn("invalid value for env var", "tag", "config", "key", envKey, "value", val)
		}
	}
}

func overrideString(field *string, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		*field = val
	}
}
