package adapter

import (
	"errors"
	"log/slog"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Launcher opens image and web URLs in a browser
type Launcher struct {
	command string   // configured browser command, empty for system default
	args    []string // additional arguments for the browser
	logger  *slog.Logger

	// start runs a command without waiting; run waits for it.
	// Both are replaced in tests.
	start func(name string, args ...string) error
	run   func(name string, args ...string) error
}

// macApps maps configured commands to macOS application names for 'open -a'
var macApps = map[string]string{
	"firefox":       "Firefox",
	"chrome":        "Google Chrome",
	"google-chrome": "Google Chrome",
	"chromium":      "Chromium",
	"safari":        "Safari",
	"brave":         "Brave Browser",
}

// fallbackBrowsers are tried in order when the system default handler fails
var fallbackBrowsers = map[string][]string{
	"linux":   {"firefox", "chromium", "google-chrome"},
	"windows": {"msedge", "chrome", "firefox"},
}

// NewLauncher creates a new Launcher
func NewLauncher(command string, args []string, logger *slog.Logger) *Launcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Launcher{
		command: command,
		args:    args,
		logger:  logger,
		start: func(name string, args ...string) error {
			return exec.Command(name, args...).Start()
		},
		run: func(name string, args ...string) error {
			return exec.Command(name, args...).Run()
		},
	}
}

// Open opens url in the configured browser or the system default
func (l *Launcher) Open(url string) error {
	// Tier 1: User configured a specific browser
	if l.command != "" {
		l.logger.Info("using configured browser", "command", l.command)
		return l.openConfigured(url)
	}

	// Tier 2: System default handler (open/xdg-open/start)
	err := l.openDefault(url)
	if err == nil {
		return nil
	}
	l.logger.Debug("system default handler failed", "error", err)

	// Tier 3: Known browsers on PATH
	for _, name := range fallbackBrowsers[runtime.GOOS] {
		if _, lookErr := exec.LookPath(name); lookErr != nil {
			continue
		}
		if startErr := l.start(name, url); startErr == nil {
			l.logger.Info("opened with fallback browser", "browser", name)
			return nil
		}
	}
	return errors.Join(errors.New("no browser available"), err)
}

// openConfigured launches the configured browser, using 'open -a' on macOS
// when the command is an application name rather than a binary on PATH
func (l *Launcher) openConfigured(url string) error {
	args := append(append([]string{}, l.args...), url)

	if runtime.GOOS == "darwin" {
		if _, err := exec.LookPath(l.command); err != nil {
			app := l.command
			base := strings.ToLower(strings.TrimSuffix(filepath.Base(l.command), filepath.Ext(l.command)))
			if name, ok := macApps[base]; ok {
				app = name
			}
			openArgs := []string{"-a", app, url}
			if len(l.args) > 0 {
				openArgs = append([]string{"-a", app, url, "--args"}, l.args...)
			}
			l.logger.Info("using macOS 'open -a' to launch browser", "app", app, "args", openArgs)
			return l.run("open", openArgs...)
		}
	}

	l.logger.Info("launching browser", "command", l.command, "args", args)
	return l.start(l.command, args...)
}

// openDefault opens the URL using the system default handler
func (l *Launcher) openDefault(url string) error {
	name, args := defaultOpener(runtime.GOOS, url)
	l.logger.Info("opening with system default", "os", runtime.GOOS, "url", url)
	return l.start(name, args...)
}

// defaultOpener returns the command that hands url to the desktop
func defaultOpener(goos, url string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "cmd", []string{"/c", "start", "", url}
	default:
		// Linux and other Unix-like systems
		return "xdg-open", []string{url}
	}
}
