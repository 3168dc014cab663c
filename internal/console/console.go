// Package console provides the telescope operator console collaborators:
// the installed configuration file registry, canned configuration
// documents, the live view address and raw command execution.
//
// None of these touch real hardware. They return fixed values so the
// lifecycle engine and the REPL can be exercised end to end.
package console

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

const (
	// DefaultLiveViewURL is where the telescope live view is served.
	DefaultLiveViewURL = "http://localhost:8080/telescope-live"

	defaultConfiguration = `{ "config": "default" }`
	currentConfiguration = `{ "config": "current" }`
)

// ErrEmptyCommand is returned by ExecuteCommand for blank input.
var ErrEmptyCommand = errors.New("command is required")

// Options configures a Console. Zero values get defaults.
type Options struct {
	Logger      *slog.Logger
	LiveViewURL string

	// CommandRate is the sustained commands per second. Zero disables limiting.
	CommandRate  float64
	CommandBurst int

	// MaxConcurrentCommands bounds in-flight ExecuteCommand calls. Zero means unbounded.
	MaxConcurrentCommands int
}

// Console is safe for concurrent use.
type Console struct {
	mu          sync.Mutex
	configs     []string
	logger      *slog.Logger
	liveViewURL string
	limiter     *rate.Limiter
	commandSem  *semaphore.Weighted
}

// New creates a console with no configurations installed.
func New(opts Options) *Console {
	c := &Console{
		logger:      opts.Logger,
		liveViewURL: opts.LiveViewURL,
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	if c.liveViewURL == "" {
		c.liveViewURL = DefaultLiveViewURL
	}
	if opts.CommandRate > 0 {
		burst := opts.CommandBurst
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(opts.CommandRate), burst)
	}
	if opts.MaxConcurrentCommands > 0 {
		c.commandSem = semaphore.NewWeighted(int64(opts.MaxConcurrentCommands))
	}
	return c
}

// AddConfiguration installs a configuration file path. It returns false
// when the path is blank or already installed.
func (c *Console) AddConfiguration(path string) bool {
	path = strings.TrimSpace(path)
	if path == "" {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, existing := range c.configs {
		if existing == path {
			return false
		}
	}
	c.configs = append(c.configs, path)
	c.logger.Info("configuration installed", "path", path, "index", len(c.configs)-1)
	return true
}

// RemoveConfiguration uninstalls the configuration at the zero-based index.
func (c *Console) RemoveConfiguration(index int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 || index >= len(c.configs) {
		return false
	}
	path := c.configs[index]
	c.configs = append(c.configs[:index:index], c.configs[index+1:]...)
	c.logger.Info("configuration removed", "path", path, "index", index)
	return true
}

// Configurations returns the installed paths in installation order.
func (c *Console) Configurations() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.configs...)
}

// ConfigurationsSummary is the operator listing: the comma-joined paths,
// or a notice when none are installed.
func (c *Console) ConfigurationsSummary() string {
	configs := c.Configurations()
	if len(configs) == 0 {
		return "No configurations installed."
	}
	return strings.Join(configs, ",")
}

// DefaultConfiguration returns the factory configuration document.
func (c *Console) DefaultConfiguration() string {
	return defaultConfiguration
}

// CurrentConfiguration returns the active configuration document.
func (c *Console) CurrentConfiguration() string {
	return currentConfiguration
}

// UpdateConfiguration applies the installed configurations.
func (c *Console) UpdateConfiguration() string {
	c.logger.Info("configuration updated", "installed", len(c.Configurations()))
	return "Configuration updated successfully."
}

// LiveViewURL returns the telescope live view address.
func (c *Console) LiveViewURL() string {
	return c.liveViewURL
}

// ExecuteCommand sends a raw command to the telescope. Calls wait for the
// command rate limit and the concurrency bound, honoring ctx.
func (c *Console) ExecuteCommand(ctx context.Context, command string) (string, error) {
	command = strings.TrimSpace(command)
	if command == "" {
		return "", ErrEmptyCommand
	}

	if c.commandSem != nil {
		if err := c.commandSem.Acquire(ctx, 1); err != nil {
			return "", fmt.Errorf("failed to acquire command slot: %w", err)
		}
		defer c.commandSem.Release(1)
	}
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("command rate limit: %w", err)
		}
	}

	upper := strings.ToUpper(command)
	c.logger.Info("telescope command executed", "command", upper)
	return "Executed command: " + upper, nil
}
