package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/linuxsim/internal/shell"
	"github.com/vvka-141/linuxsim/internal/vfs"
	"github.com/vvka-141/linuxsim/pkg/linuxsim"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

const ConfigFileName = "linuxsim.yaml"

// Environment variables that override file values.
const (
	EnvUser     = "LINUXSIM_USER"
	EnvHostname = "LINUXSIM_HOSTNAME"
	EnvAddr     = "LINUXSIM_ADDR"
)

type SystemConfig struct {
	Name string `yaml:"name,omitempty"`
	Info string `yaml:"info,omitempty"`
}

type ServerConfig struct {
	Addr        string `yaml:"addr"`
	SessionTTL  string `yaml:"session_ttl"`
	MaxSessions int    `yaml:"max_sessions"`
}

type Config struct {
	User     string          `yaml:"user"`
	Hostname string          `yaml:"hostname"`
	Home     string          `yaml:"home"`
	System   SystemConfig    `yaml:"system"`
	Hosts    []shell.Host    `yaml:"hosts,omitempty"`
	Seed     []vfs.SeedEntry `yaml:"seed,omitempty"`
	Server   ServerConfig    `yaml:"server"`
}

// Defaults returns the configuration used when no file is present.
func Defaults() *Config {
	return &Config{
		User:     linuxsim.DefaultUser,
		Hostname: linuxsim.DefaultHostname,
		Home:     linuxsim.DefaultHome,
		System: SystemConfig{
			Name: linuxsim.DefaultSystemName,
			Info: linuxsim.DefaultSystemInfo,
		},
		Hosts: shell.DefaultHosts(),
		Server: ServerConfig{
			Addr:        linuxsim.DefaultServerAddr,
			SessionTTL:  linuxsim.DefaultSessionTTL.String(),
			MaxSessions: linuxsim.DefaultMaxSessions,
		},
	}
}

// Load reads linuxsim.yaml from dir. Fields the file leaves out keep their
// default values.
func Load(dir string) (*Config, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", linuxsim.ErrInvalidConfig, configPath, err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, falling back to Defaults when the file is absent.
func LoadOrDefault(dir string) (*Config, error) {
	cfg, err := Load(dir)
	if errors.Is(err, ErrConfigNotFound) {
		return Defaults(), nil
	}
	return cfg, err
}

// ApplyEnv overrides fields from LINUXSIM_* variables. lookup is usually
// os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvUser); ok && v != "" {
		c.User = v
	}
	if v, ok := lookup(EnvHostname); ok && v != "" {
		c.Hostname = v
	}
	if v, ok := lookup(EnvAddr); ok && v != "" {
		c.Server.Addr = v
	}
}

// Validate reports every problem found, joined into one ErrInvalidConfig.
func (c *Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.User) == "" {
		problems = append(problems, "user must not be empty")
	}
	if !strings.HasPrefix(c.Home, "/") {
		problems = append(problems, fmt.Sprintf("home %q must be an absolute path", c.Home))
	}
	for _, h := range c.Hosts {
		if net.ParseIP(h.IP) == nil {
			problems = append(problems, fmt.Sprintf("host %q has invalid ip %q", h.Name, h.IP))
		}
	}
	for _, e := range c.Seed {
		if !strings.HasPrefix(e.Path, "/") {
			problems = append(problems, fmt.Sprintf("seed path %q must be absolute", e.Path))
		}
	}
	if strings.TrimSpace(c.Server.Addr) == "" {
		problems = append(problems, "server.addr must not be empty")
	}
	if ttl, err := time.ParseDuration(c.Server.SessionTTL); err != nil || ttl <= 0 {
		problems = append(problems, fmt.Sprintf("server.session_ttl %q must be a positive duration", c.Server.SessionTTL))
	}
	if c.Server.MaxSessions <= 0 {
		problems = append(problems, "server.max_sessions must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", linuxsim.ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// SessionTTL returns the parsed idle timeout, or the default when it does
// not parse.
func (c *Config) SessionTTL() time.Duration {
	ttl, err := time.ParseDuration(c.Server.SessionTTL)
	if err != nil || ttl <= 0 {
		return linuxsim.DefaultSessionTTL
	}
	return ttl
}

// Environment converts the config into the interpreter's view of the host.
func (c *Config) Environment() shell.Environment {
	return shell.Environment{
		User:       c.User,
		Hostname:   c.Hostname,
		Home:       vfs.Clean(c.Home),
		SystemName: c.System.Name,
		SystemInfo: c.System.Info,
		Hosts:      c.Hosts,
	}
}

// NewFileSystem builds a filesystem from the configured seed, or the
// default tree when none is configured. The home directory always exists.
func (c *Config) NewFileSystem(opts ...vfs.Option) (*vfs.FileSystem, error) {
	if len(c.Seed) == 0 {
		fsys := vfs.NewDefault(opts...)
		if err := fsys.MkdirAll(vfs.Clean(c.Home)); err != nil {
			return nil, fmt.Errorf("home %s: %w", c.Home, err)
		}
		return fsys, nil
	}

	fsys := vfs.New(opts...)
	if err := fsys.Seed(c.Seed); err != nil {
		return nil, err
	}
	if err := fsys.MkdirAll(vfs.Clean(c.Home)); err != nil {
		return nil, fmt.Errorf("home %s: %w", c.Home, err)
	}
	return fsys, nil
}
