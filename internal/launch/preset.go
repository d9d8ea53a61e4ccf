// Package launch maps the menu presets to scrcpy arguments and runs scrcpy
// in the foreground.
package launch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Preset is one of the fixed scrcpy argument combinations.
type Preset int

const (
	AudioOnly Preset = iota + 1
	AudioMirror
	MirrorOnly
)

// Presets lists every preset in menu order.
var Presets = []Preset{AudioOnly, AudioMirror, MirrorOnly}

// ErrUnknownPreset is returned by Resolve for unrecognized names.
var ErrUnknownPreset = errors.New("modo desconhecido")

// Args returns the scrcpy arguments for p. Nothing is derived from user input.
func Args(p Preset) []string {
	switch p {
	case AudioOnly:
		// no window and no input forwarding; audio uses scrcpy's defaults
		return []string{"--no-video", "--no-control"}
	case MirrorOnly:
		return []string{"--no-audio"}
	default:
		// window + control + audio where the device supports it (Android 11+)
		return []string{}
	}
}

// Name is the stable identifier used on the command line.
func (p Preset) Name() string {
	switch p {
	case AudioOnly:
		return "audio"
	case AudioMirror:
		return "audio-mirror"
	case MirrorOnly:
		return "mirror"
	}
	return fmt.Sprintf("preset(%d)", int(p))
}

// Title is the banner printed when the preset starts.
func (p Preset) Title() string {
	switch p {
	case AudioOnly:
		return "Iniciando modo SOMENTE ÁUDIO..."
	case AudioMirror:
		return "Iniciando ÁUDIO + ESPELHAMENTO..."
	case MirrorOnly:
		return "Iniciando SOMENTE ESPELHAMENTO (sem áudio)..."
	}
	return "Iniciando scrcpy..."
}

func (p Preset) String() string { return p.Name() }

var aliases = map[string]Preset{
	"1":            AudioOnly,
	"audio":        AudioOnly,
	"audio-only":   AudioOnly,
	"audio_only":   AudioOnly,
	"som":          AudioOnly,
	"2":            AudioMirror,
	"audio-mirror": AudioMirror,
	"both":         AudioMirror,
	"all":          AudioMirror,
	"3":            MirrorOnly,
	"mirror":       MirrorOnly,
	"mirror-only":  MirrorOnly,
	"video":        MirrorOnly,
	"screen":       MirrorOnly,
}

// Resolve maps a preset name or alias to a Preset. Unknown names yield
// ErrUnknownPreset, with the closest known name suggested when one exists.
func Resolve(name string) (Preset, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if p, ok := aliases[key]; ok {
		return p, nil
	}
	if key != "" {
		names := make([]string, 0, len(Presets))
		for _, p := range Presets {
			names = append(names, p.Name())
		}
		if matches := fuzzy.Find(key, names); len(matches) > 0 {
			return 0, fmt.Errorf("%w: %q (você quis dizer %q?)", ErrUnknownPreset, name, matches[0].Str)
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}
