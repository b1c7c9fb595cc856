package easing

import (
	"slices"
	"strings"
)

// The keyword timing functions defined by CSS.
var (
	Linear    = NewTimingCurve(0, 0, 1, 1)
	Ease      = NewTimingCurve(0.25, 0.1, 0.25, 1)
	EaseIn    = NewTimingCurve(0.42, 0, 1, 1)
	EaseOut   = NewTimingCurve(0, 0, 0.58, 1)
	EaseInOut = NewTimingCurve(0.42, 0, 0.58, 1)
)

var presets = map[string]TimingCurve{
	"linear":      Linear,
	"ease":        Ease,
	"ease-in":     EaseIn,
	"ease-out":    EaseOut,
	"ease-in-out": EaseInOut,
}

// presetKey folds the spellings "ease-in-out", "ease_in_out", "easeInOut" and
// "EASE IN OUT" onto the same key.
func presetKey(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ':
			return -1
		}
		return r
	}, strings.ToLower(name))
}

var presetsByKey = func() map[string]TimingCurve {
	m := make(map[string]TimingCurve, len(presets))
	for name, c := range presets {
		m[presetKey(name)] = c
	}
	return m
}()

// Preset returns the CSS keyword timing function with the given name, such as
// "ease-in-out". Names are matched case-insensitively, and dashes, underscores
// and spaces are ignored.
func Preset(name string) (TimingCurve, bool) {
	c, ok := presetsByKey[presetKey(name)]
	return c, ok
}

// PresetNames returns the canonical names of all presets, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
