package device

import "strings"

type State string

const (
	StateReady        State = "ready"
	StateUnauthorized State = "unauthorized"
	StateOffline      State = "offline"
	StateUnknown      State = "unknown"
)

// Device is one row of an adb listing. Raw keeps adb's own status word.
type Device struct {
	Serial string
	State  State
	Raw    string
}

// Snapshot is a point-in-time device listing.
type Snapshot struct {
	Devices []Device
}

// Ready returns the devices in the ready state.
func (s Snapshot) Ready() []Device {
	var out []Device
	for _, d := range s.Devices {
		if d.State == StateReady {
			out = append(out, d)
		}
	}
	return out
}

// ParseListing parses `adb devices` output: a header line followed by
// tab-separated serial/status pairs. Daemon chatter ("* daemon ...") and
// blank lines are ignored.
func ParseListing(listing string) Snapshot {
	var snap Snapshot
	for _, line := range strings.Split(listing, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "*") || strings.HasPrefix(line, "List of devices") {
			continue
		}
		serial, rest, ok := strings.Cut(line, "\t")
		if !ok {
			continue
		}
		raw := strings.TrimSpace(rest)
		// `adb devices -l` appends key:value details after the status
		if f := strings.Fields(raw); len(f) > 0 && !strings.HasPrefix(raw, "no permissions") {
			raw = f[0]
		}
		snap.Devices = append(snap.Devices, Device{Serial: strings.TrimSpace(serial), State: stateOf(raw), Raw: raw})
	}
	return snap
}

func stateOf(raw string) State {
	switch raw {
	case "device":
		return StateReady
	case "unauthorized":
		return StateUnauthorized
	case "offline":
		return StateOffline
	default:
		return StateUnknown
	}
}
