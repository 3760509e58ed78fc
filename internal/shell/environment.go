package shell

import (
	"time"

	"github.com/vvka-141/linuxsim/internal/vfs"
	"github.com/vvka-141/linuxsim/pkg/linuxsim"
)

// Host is a simulated machine reachable with ping.
type Host struct {
	Name   string `yaml:"name"`
	IP     string `yaml:"ip"`
	Online bool   `yaml:"online"`
}

// Environment is the read-only machine description commands consult.
// It never holds session state such as the working directory.
type Environment struct {
	User       string
	Hostname   string
	Home       string
	SystemName string
	SystemInfo string
	Hosts      []Host

	// Now is the clock used by date and ls -l.
	Now func() time.Time
}

// DefaultHosts is the simulated network.
func DefaultHosts() []Host {
	return []Host{
		{Name: "localhost", IP: "127.0.0.1", Online: true},
		{Name: "web-server", IP: "192.168.1.10", Online: true},
		{Name: "db-server", IP: "192.168.1.20", Online: true},
		{Name: "dev-machine", IP: "192.168.1.30", Online: false},
	}
}

// DefaultEnvironment describes the stock LinuxSim machine.
func DefaultEnvironment() Environment {
	return Environment{
		User:       linuxsim.DefaultUser,
		Hostname:   linuxsim.DefaultHostname,
		Home:       linuxsim.DefaultHome,
		SystemName: linuxsim.DefaultSystemName,
		SystemInfo: linuxsim.DefaultSystemInfo,
		Hosts:      DefaultHosts(),
		Now:        time.Now,
	}
}

// withDefaults fills zero fields from DefaultEnvironment and cleans Home.
func (e Environment) withDefaults() Environment {
	d := DefaultEnvironment()
	if e.User == "" {
		e.User = d.User
	}
	if e.Hostname == "" {
		e.Hostname = d.Hostname
	}
	if e.Home == "" {
		e.Home = d.Home
	}
	e.Home = vfs.Clean(e.Home)
	if e.SystemName == "" {
		e.SystemName = d.SystemName
	}
	if e.SystemInfo == "" {
		e.SystemInfo = d.SystemInfo
	}
	if e.Hosts == nil {
		e.Hosts = d.Hosts
	}
	if e.Now == nil {
		e.Now = d.Now
	}
	return e
}

// Sigil is the prompt terminator: "#" for root, "$" for everyone else.
func (e Environment) Sigil() string {
	if e.User == "root" {
		return "#"
	}
	return "$"
}

// Prompt renders the shell prompt for cwd, e.g. "user@linuxsim:/tmp$ ".
func (e Environment) Prompt(cwd string) string {
	return e.User + "@" + e.Hostname + ":" + cwd + e.Sigil() + " "
}
