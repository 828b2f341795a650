// Package settings loads the configuration of browser test sessions from
// .env files, the environment, or YAML files.
package settings

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/blang/semver"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/tebeka/selenium"
	"github.com/tebeka/selenium/chrome"
	"github.com/tebeka/selenium/firefox"
	"github.com/wanmail/selenite/remote"
	"gopkg.in/yaml.v3"
)

// Prefix is the prefix of the environment variables read by Load, as in
// SELENITE_BROWSER_NAME.
const Prefix = "SELENITE"

// The browser names accepted in Settings.BrowserName.
const (
	Chrome   = "chrome"
	Chromium = "chromium"
	Firefox  = "firefox"
	IE       = "ie"
	Edge     = "edge"
)

// Settings configures a browser test session.
type Settings struct {
	BrowserName string `envconfig:"BROWSER_NAME" default:"chrome" yaml:"browser_name"`
	// BrowserVersion is requested from the grid when set.
	BrowserVersion string `envconfig:"BROWSER_VERSION" yaml:"browser_version"`
	// BrowserLoadStrategy is the WebDriver page load strategy: "normal",
	// "eager" or "none".
	BrowserLoadStrategy string `envconfig:"BROWSER_LOAD_STRATEGY" yaml:"browser_load_strategy"`

	BaseURL string `envconfig:"BASE_URL" yaml:"base_url"`

	// Timeout bounds the waiting assertions of page objects.
	Timeout time.Duration `envconfig:"TIMEOUT" default:"5s" yaml:"timeout"`
	// Settle is the pause after turning the page of a paginated table.
	Settle time.Duration `envconfig:"SETTLE" default:"500ms" yaml:"settle"`

	MaximizeWindow bool `envconfig:"MAXIMIZE_WINDOW" yaml:"maximize_window"`
	WindowWidth    int  `envconfig:"WINDOW_WIDTH" default:"1920" yaml:"window_width"`
	WindowHeight   int  `envconfig:"WINDOW_HEIGHT" default:"1080" yaml:"window_height"`

	Headless  bool `envconfig:"HEADLESS" yaml:"headless"`
	Incognito bool `envconfig:"INCOGNITO" yaml:"incognito"`

	// RemoteURL is the WebDriver endpoint. If empty, the selenium client's
	// default executor is used.
	RemoteURL            string `envconfig:"REMOTE_URL" yaml:"remote_url"`
	RemoteSessionTimeout string `envconfig:"REMOTE_SESSION_TIMEOUT" yaml:"remote_session_timeout"`
	RemoteEnableVNC      bool   `envconfig:"REMOTE_ENABLE_VNC" yaml:"remote_enable_vnc"`
	RemoteEnableVideo    bool   `envconfig:"REMOTE_ENABLE_VIDEO" yaml:"remote_enable_video"`
	RemoteEnableLog      bool   `envconfig:"REMOTE_ENABLE_LOG" yaml:"remote_enable_log"`
	RemoteVideoName      string `envconfig:"REMOTE_VIDEO_NAME" yaml:"remote_video_name"`

	HoldBrowserOpen         bool `envconfig:"HOLD_BROWSER_OPEN" yaml:"hold_browser_open"`
	SaveScreenshotOnFailure bool `envconfig:"SAVE_SCREENSHOT_ON_FAILURE" yaml:"save_screenshot_on_failure"`
	SavePageSourceOnFailure bool `envconfig:"SAVE_PAGE_SOURCE_ON_FAILURE" yaml:"save_page_source_on_failure"`
}

// Default returns the settings used when nothing is configured.
func Default() *Settings {
	return &Settings{
		BrowserName:  Chrome,
		Timeout:      5 * time.Second,
		Settle:       500 * time.Millisecond,
		WindowWidth:  1920,
		WindowHeight: 1080,
	}
}

// Load reads the given .env files into the environment, without overriding
// variables that are already set, and then builds Settings from the
// SELENITE_* environment variables.
func Load(envFiles ...string) (*Settings, error) {
	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			return nil, fmt.Errorf("failed to load env files: %w", err)
		}
	}
	var s Settings
	if err := envconfig.Process(Prefix, &s); err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadYAML reads settings from a YAML file. Keys missing from the file keep
// their Default values.
func LoadYAML(path string) (*Settings, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s := Default()
	if err := yaml.Unmarshal(buf, s); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the browser name, version and window size.
func (s *Settings) Validate() error {
	switch s.BrowserName {
	case Chrome, Chromium, Firefox, IE, Edge:
	default:
		return fmt.Errorf("unsupported browser %q", s.BrowserName)
	}
	if s.BrowserVersion != "" {
		if _, err := s.Version(); err != nil {
			return err
		}
	}
	if s.WindowWidth < 0 || s.WindowHeight < 0 {
		return fmt.Errorf("invalid window size %dx%d", s.WindowWidth, s.WindowHeight)
	}
	return nil
}

// Version parses BrowserVersion. Browser versions often carry a fourth
// component, as in "91.0.4472.124"; it is dropped.
func (s *Settings) Version() (semver.Version, error) {
	v := s.BrowserVersion
	if parts := strings.Split(v, "."); len(parts) > 3 {
		v = strings.Join(parts[:3], ".")
	}
	ver, err := semver.ParseTolerant(v)
	if err != nil {
		return semver.Version{}, fmt.Errorf("invalid browser version %q: %w", s.BrowserVersion, err)
	}
	return ver, nil
}

// Capabilities returns the WebDriver capabilities describing these settings.
func (s *Settings) Capabilities() (selenium.Capabilities, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	caps := selenium.Capabilities{"browserName": s.webDriverName()}
	if s.BrowserVersion != "" {
		caps["browserVersion"] = s.BrowserVersion
	}
	if s.BrowserLoadStrategy != "" {
		caps["pageLoadStrategy"] = s.BrowserLoadStrategy
	}

	switch s.BrowserName {
	case Chrome, Chromium:
		var args []string
		if s.Headless {
			args = append(args, "--headless")
		}
		if s.Incognito {
			args = append(args, "--incognito")
		}
		if s.MaximizeWindow {
			args = append(args, "--start-maximized")
		} else if s.WindowWidth > 0 && s.WindowHeight > 0 {
			args = append(args, fmt.Sprintf("--window-size=%d,%d", s.WindowWidth, s.WindowHeight))
		}
		caps.AddChrome(chrome.Capabilities{Args: args, W3C: true})
	case Firefox:
		var args []string
		if s.Headless {
			args = append(args, "-headless")
		}
		if s.Incognito {
			args = append(args, "-private")
		}
		caps.AddFirefox(firefox.Capabilities{Args: args})
	}

	if opts := s.RemoteOptions(); !opts.IsZero() {
		m, err := opts.ToMap()
		if err != nil {
			return nil, err
		}
		caps[remote.CapabilitiesKey] = m
	}
	return caps, nil
}

// RemoteOptions returns the grid options requested by the Remote* settings.
func (s *Settings) RemoteOptions() *remote.Options {
	return &remote.Options{
		EnableVNC:      s.RemoteEnableVNC,
		EnableVideo:    s.RemoteEnableVideo,
		EnableLog:      s.RemoteEnableLog,
		VideoName:      s.RemoteVideoName,
		SessionTimeout: s.RemoteSessionTimeout,
	}
}

func (s *Settings) webDriverName() string {
	switch s.BrowserName {
	case Chromium:
		return Chrome
	case IE:
		return "internet explorer"
	case Edge:
		return "MicrosoftEdge"
	}
	return s.BrowserName
}
