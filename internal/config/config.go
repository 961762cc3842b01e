package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// ErrNotFound indicates the settings file does not exist yet.
var ErrNotFound = errors.New("settings file not found")

// DefaultPath is where settings are read from when no flag overrides it.
const DefaultPath = "settings.json"

// Settings holds everything a run needs: portal credentials, Google API
// configuration, and the student group lists used when building event
// descriptions.
type Settings struct {
	MyStudio  CredentialPair `json:"myStudio"`
	Homebase  CredentialPair `json:"homebase"`
	GoogleAPI GoogleAPI      `json:"googleAPI"`
	Students  StudentGroups  `json:"students"`
	Timezone  string         `json:"timezone"`
}

// CredentialPair is a username/password login for one of the portals.
type CredentialPair struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// GoogleAPI configures OAuth and the target calendar.
type GoogleAPI struct {
	Scopes      []string `json:"scopes"`
	CalendarID  string   `json:"calendarID"`
	SecretsFile string   `json:"secretsFile"`
	TokenFile   string   `json:"tokenFile"`
}

// StudentGroups lists students that get their own section in event
// descriptions: Unity students work in a separate curriculum track and
// Focus students need extra attention.
type StudentGroups struct {
	Unity []string `json:"unity"`
	Focus []string `json:"focus"`
}

// defaults returns the settings skeleton written on first run.
func defaults() *Settings {
	return &Settings{
		GoogleAPI: GoogleAPI{
			Scopes:      []string{"https://www.googleapis.com/auth/calendar.events"},
			CalendarID:  "primary",
			SecretsFile: "credentials.json",
			TokenFile:   "token.json",
		},
		Students: StudentGroups{
			Unity: []string{},
			Focus: []string{},
		},
		Timezone: "America/Vancouver",
	}
}

// Load reads settings from the given path. A missing file returns an error
// wrapping ErrNotFound so callers can offer to create the template.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading settings: %w", err)
	}

	settings := defaults()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parsing settings: %w", err)
	}

	return settings, nil
}

// WriteTemplate writes the default settings skeleton to the given path for
// the user to fill out. It refuses to overwrite an existing file. The file
// is created owner read/write only since it will hold credentials.
func WriteTemplate(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("settings file already exists: %s", path)
	}

	data, err := json.MarshalIndent(defaults(), "", "    ")
	if err != nil {
		return fmt.Errorf("encoding settings template: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing settings template: %w", err)
	}

	return nil
}

// Validate checks that every field a run depends on has been filled out.
func (s *Settings) Validate() error {
	if s.MyStudio.Username == "" || s.MyStudio.Password == "" {
		return fmt.Errorf("myStudio username and password are required")
	}
	if s.Homebase.Username == "" || s.Homebase.Password == "" {
		return fmt.Errorf("homebase username and password are required")
	}
	if len(s.GoogleAPI.Scopes) == 0 {
		return fmt.Errorf("at least one Google API scope is required")
	}
	if s.GoogleAPI.CalendarID == "" {
		return fmt.Errorf("googleAPI calendarID is required")
	}
	if s.GoogleAPI.SecretsFile == "" {
		return fmt.Errorf("googleAPI secretsFile is required")
	}
	if s.GoogleAPI.TokenFile == "" {
		return fmt.Errorf("googleAPI tokenFile is required")
	}
	if _, err := s.Location(); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", s.Timezone, err)
	}
	return nil
}

// Location resolves the configured IANA timezone.
func (s *Settings) Location() (*time.Location, error) {
	return time.LoadLocation(s.Timezone)
}
