package shell

import (
	"fmt"
	"net"

	"github.com/vvka-141/linuxsim/pkg/linuxsim"
)

func (in *Interpreter) clear(invocation) linuxsim.Result {
	return linuxsim.Result{Class: linuxsim.ClassClear}
}

func (in *Interpreter) whoami(invocation) linuxsim.Result {
	var res linuxsim.Result
	res.Append(in.env.User)
	return res
}

func (in *Interpreter) hostname(invocation) linuxsim.Result {
	var res linuxsim.Result
	res.Append(in.env.Hostname)
	return res
}

func (in *Interpreter) date(invocation) linuxsim.Result {
	var res linuxsim.Result
	res.Append(in.env.Now().Format("Mon Jan _2 15:04:05 MST 2006"))
	return res
}

func (in *Interpreter) uname(inv invocation) linuxsim.Result {
	var res linuxsim.Result
	for _, arg := range inv.args[1:] {
		if arg == "-a" {
			res.Append(in.env.SystemInfo)
			return res
		}
	}
	res.Append(in.env.SystemName)
	return res
}

func (in *Interpreter) ping(inv invocation) linuxsim.Result {
	var res linuxsim.Result
	if len(inv.args) < 2 {
		res.Fail("ping: missing host operand")
		return res
	}

	arg := inv.args[1]
	host, known := in.findHost(arg)
	ip := host.IP
	if !known {
		if net.ParseIP(arg) == nil {
			res.Fail("ping: %s: Name or service not known", arg)
			return res
		}
		ip = arg
	}

	res.Append(fmt.Sprintf("PING %s (%s) 56(84) bytes of data.", arg, ip))
	if known && host.Online {
		res.Append(fmt.Sprintf("64 bytes from %s: icmp_seq=1 ttl=64 time=0.042 ms", ip))
		res.Class = linuxsim.ClassSuccess
		return res
	}
	res.Append("From 127.0.0.1 icmp_seq=1 Destination Host Unreachable")
	res.Class = linuxsim.ClassWarning
	return res
}

func (in *Interpreter) findHost(nameOrIP string) (Host, bool) {
	for _, h := range in.env.Hosts {
		if h.IP == nameOrIP || h.Name == nameOrIP {
			return h, true
		}
	}
	return Host{}, false
}

func (in *Interpreter) help(invocation) linuxsim.Result {
	res := linuxsim.Result{Class: linuxsim.ClassInfo}
	res.Append("Available commands:", "")
	for _, name := range in.order {
		c := in.commands[name]
		res.Append(fmt.Sprintf("%-26s - %s", c.usage, c.summary))
	}
	res.Append(
		"",
		"Use arrow up/down to navigate command history",
		"Use tab for command completion",
	)
	return res
}

func (in *Interpreter) exit(invocation) linuxsim.Result {
	return linuxsim.Result{Exit: true}
}
