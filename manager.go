package main

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/sirupsen/logrus"
)

var errNotRoot = errors.New("superuser privileges required")

type invalidInterfaceError struct {
	name string
}

func (e *invalidInterfaceError) Error() string {
	return fmt.Sprintf("invalid interface: %s", e.name)
}

// Options selects the operation the Manager performs on one invocation.
type Options struct {
	Interface string
	MAC       string // literal address to set; empty means generate one
	Reset     bool   // restore the permanent address instead
}

// Manager changes and restores the hardware address of a network interface
// by invoking the OS utilities through its Runner. It prints status to its
// Console and reports failures as errors; the caller decides the exit code.
type Manager struct {
	run Runner
	out *Console
	log *logrus.Logger
}

func NewManager(run Runner, out *Console, log *logrus.Logger) *Manager {
	return &Manager{run: run, out: out, log: log}
}

// Run drives one invocation: privilege check, interface validation, then
// the reset or set path.
func (m *Manager) Run(opts Options) error {
	if err := m.checkPrivileges(); err != nil {
		m.out.Print("{!} Execute this tool with root privileges")
		return err
	}

	valid := m.ValidInterfaces()
	if !containsString(valid, opts.Interface) {
		m.out.Print("{!} Invalid interface: " + opts.Interface)
		m.out.Print("{*} Valid interfaces:")
		for _, name := range valid {
			m.out.Plain("\t" + name)
		}
		return &invalidInterfaceError{name: opts.Interface}
	}

	if opts.Reset {
		return m.Reset(opts.Interface)
	}
	return m.Set(opts.Interface, opts.MAC)
}

// checkPrivileges verifies the invoking user is the superuser. The numeric
// id is asked of the OS rather than the process environment, matching the
// rest of the tool's command surface.
func (m *Manager) checkPrivileges() error {
	out, err := m.run.Output("id", "-u")
	if err != nil {
		return fmt.Errorf("%w: %w", errNotRoot, err)
	}
	if strings.TrimSpace(out) != "0" {
		return errNotRoot
	}
	return nil
}

// ValidInterfaces returns the names of the link-layer interfaces that carry
// an Ethernet-style hardware address, in the order `ip link show` reports
// them. A failing query yields an empty list, not an error: the caller
// treats "not in the list" as the actionable condition.
func (m *Manager) ValidInterfaces() []string {
	out, err := m.run.Output("ip", "link", "show")
	if err != nil {
		m.log.WithError(err).Debug("interface enumeration failed")
		return nil
	}
	return parseLinkList(out)
}

// parseLinkList extracts interface names from `ip link show` output.
// Entries are numbered lines; only those whose following line carries a
// link/ether annotation qualify (loopback and MAC-less virtual links drop
// out).
func parseLinkList(output string) []string {
	lines := strings.Split(output, "\n")

	var names []string
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || !unicode.IsDigit(rune(trimmed[0])) {
			continue
		}
		if i+1 >= len(lines) || !strings.Contains(lines[i+1], "link/ether") {
			continue
		}
		fields := strings.SplitN(line, ":", 3)
		if len(fields) < 2 {
			continue
		}
		names = append(names, strings.TrimSpace(fields[1]))
	}
	return names
}

// PermanentMAC queries the NIC driver for the factory-programmed address
// via `ethtool -P`. An empty string means the command succeeded but
// reported no permanent address.
func (m *Manager) PermanentMAC(iface string) (string, error) {
	out, err := m.run.Output("ethtool", "-P", iface)
	if err != nil {
		return "", err
	}
	return parsePermanentAddress(out), nil
}

func parsePermanentAddress(output string) string {
	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		if !strings.Contains(line, "Permanent address") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) >= 3 {
			return fields[2]
		}
	}
	return ""
}

// Apply performs the three-step address change: bring the interface down,
// set the new hardware address, bring it back up. The steps are strictly
// sequential; the NIC must be administratively down before its address can
// be changed on most drivers. The first failing step aborts the sequence
// with no rollback, so a failed set leaves the interface down.
func (m *Manager) Apply(iface, mac string) error {
	steps := [][]string{
		{"ifconfig", iface, "down"},
		{"ifconfig", iface, "hw", "ether", mac},
		{"ifconfig", iface, "up"},
	}
	for _, step := range steps {
		if err := m.run.Run(step[0], step[1:]...); err != nil {
			m.out.Print("{!} Error executing command: " + err.Error())
			return err
		}
	}
	return nil
}

// Reset restores the interface's permanent address. When the lookup
// succeeds but yields no address, a warning is printed and the empty
// string is still handed to Apply; the resulting ifconfig failure is what
// aborts. This mirrors the original tool's behavior and is deliberately
// preserved rather than short-circuited.
func (m *Manager) Reset(iface string) error {
	permanent, err := m.PermanentMAC(iface)
	if err != nil {
		m.out.Print("{!} Error executing command: " + err.Error())
		return err
	}

	if permanent != "" {
		m.out.Print("{+} Permanent MAC address: " + permanent)
	} else {
		m.out.Print("{!} Failed to {R}retrieve{W} the permanent MAC address.")
	}

	if err := m.Apply(iface, permanent); err != nil {
		return err
	}
	m.out.Print("{+} MAC address {G}reset{W} to default.")
	return nil
}

// Set applies mac to the interface, generating a random unicast address
// when mac is empty.
func (m *Manager) Set(iface, mac string) error {
	if mac == "" {
		mac = randomMAC()
	}
	m.out.Print("{+} Generated MAC address: " + mac)

	if err := m.Apply(iface, mac); err != nil {
		return err
	}
	m.out.Print("{+} MAC address changed {G}successfully{W} !")
	return nil
}

func containsString(list []string, want string) bool {
	for _, item := range list {
		if item == want {
			return true
		}
	}
	return false
}
