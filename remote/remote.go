// Package remote configures sessions on a Selenoid-compatible remote browser
// grid.
package remote

import (
	"encoding/json"
)

// CapabilitiesKey is the key for the grid options entry in the JSON structure
// representing WebDriver capabilities.
const CapabilitiesKey = "selenoid:options"

// Options are the per-session settings understood by the grid.
//
// See https://aerokube.com/selenoid/latest/#_special_capabilities for details
// of each parameter.
type Options struct {
	// Name is shown for the session in the grid UI.
	Name string `json:"name,omitempty"`

	// EnableVNC makes the browser screen viewable while the session runs.
	EnableVNC bool `json:"enableVNC,omitempty"`

	// EnableVideo records a video of the session.
	EnableVideo bool `json:"enableVideo,omitempty"`
	// VideoName is the file name of the recorded video. The grid generates
	// one if empty.
	VideoName string `json:"videoName,omitempty"`
	// VideoScreenSize is the recorded screen size, such as "1024x768".
	VideoScreenSize string `json:"videoScreenSize,omitempty"`

	// EnableLog saves the browser session log.
	EnableLog bool `json:"enableLog,omitempty"`
	// LogName is the file name of the saved session log.
	LogName string `json:"logName,omitempty"`

	// SessionTimeout is the idle time after which the grid stops the
	// session, such as "30s" or "5m".
	SessionTimeout string `json:"sessionTimeout,omitempty"`

	// ScreenResolution is the browser screen size, such as "1920x1080x24".
	ScreenResolution string `json:"screenResolution,omitempty"`
	// TimeZone is the time zone of the browser container.
	TimeZone string `json:"timeZone,omitempty"`

	// Env holds extra environment variables for the browser container, in
	// "KEY=value" form.
	Env []string `json:"env,omitempty"`
	// Labels are attached to the browser container.
	Labels map[string]string `json:"labels,omitempty"`
}

// IsZero reports whether no option is set.
func (o *Options) IsZero() bool {
	buf, err := json.Marshal(o)
	return err == nil && string(buf) == "{}"
}

// ToMap returns the options in a key/value structure.
func (o *Options) ToMap() (map[string]interface{}, error) {
	buf, err := json.Marshal(o)
	if err != nil {
		return nil, err
	}
	m := make(map[string]interface{})
	if err := json.Unmarshal(buf, &m); err != nil {
		return nil, err
	}
	return m, nil
}
