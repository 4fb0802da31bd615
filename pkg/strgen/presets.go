package strgen

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	hexPreset   = strings.Split("0123456789abcdef", "")
	digitPreset = strings.Split("0123456789", "")
	lowerPreset = strings.Split("abcdefghijklmnopqrstuvwxyz", "")
	upperPreset = strings.Split("ABCDEFGHIJKLMNOPQRSTUVWXYZ", "")
	greekPreset = []string{
		"alpha", "beta", "gamma", "delta", "epsilon", "zeta",
		"eta", "theta", "iota", "kappa", "lambda", "mu",
		"nu", "xi", "omicron", "pi", "rho", "sigma",
		"tau", "upsilon", "phi", "chi", "psi", "omega",
	}
)

// builtin presets, by name.
var builtin = map[string][]string{
	"hex":    hexPreset,
	"digits": digitPreset,
	"lower":  lowerPreset,
	"upper":  upperPreset,
	"alpha":  slices.Concat(lowerPreset, upperPreset),
	"alnum":  slices.Concat(digitPreset, lowerPreset, upperPreset),
	"greek":  greekPreset,
}

// Preset returns a copy of the built-in preset with the given name.
func Preset(name string) ([]string, bool) {
	p, ok := builtin[name]
	if !ok {
		return nil, false
	}
	return slices.Clone(p), true
}

// MustPreset is like Preset but panics on an unknown name.
func MustPreset(name string) []string {
	p, ok := Preset(name)
	if !ok {
		panic(fmt.Errorf("%w: %q", ErrUnknownPreset, name))
	}
	return p
}

// PresetNames returns the names of the built-in presets, sorted.
func PresetNames() []string {
	return slices.Sorted(maps.Keys(builtin))
}

// Presets returns the built-in presets merged with extra. Entries in extra
// replace built-ins of the same name.
func Presets(extra map[string][]string) map[string][]string {
	out := make(map[string][]string, len(builtin)+len(extra))
	for name, p := range builtin {
		out[name] = slices.Clone(p)
	}
	for name, p := range extra {
		out[name] = slices.Clone(p)
	}
	return out
}

// presetList accepts either a YAML sequence of substrings or a scalar whose
// characters become single-character elements.
type presetList []string

func (p *presetList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*p = strings.Split(value.Value, "")
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := value.Decode(&items); err != nil {
			return err
		}
		*p = items
		return nil
	default:
		return fmt.Errorf("line %d: preset must be a string or a list of strings", value.Line)
	}
}

// LoadPresets reads a YAML document mapping preset names to their elements:
//
//	vowels: [a, e, i, o, u]
//	binary: "01"
//	syllables:
//	  - ka
//	  - ri
//	  - to
//
// A scalar value is split into single characters. Empty presets are rejected.
func LoadPresets(r io.Reader) (map[string][]string, error) {
	var raw map[string]presetList
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string][]string{}, nil
		}
		return nil, errors.Join(ErrInvalidPresetFile, err)
	}

	out := make(map[string][]string, len(raw))
	for name, list := range raw {
		if name == "" {
			return nil, fmt.Errorf("%w: empty preset name", ErrInvalidPresetFile)
		}
		if len(list) == 0 {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidPresetFile, name, ErrEmptyPreset)
		}
		out[name] = []string(list)
	}
	return out, nil
}
