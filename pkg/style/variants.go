package style

import "sort"

// Compound adds Class when every prop in When has the given value.
type Compound struct {
	When  map[string]string
	Class string
}

// Variants resolves class strings from props. It is a pure function of its
// configuration and the props passed to Resolve.
type Variants struct {
	Base     string
	Variants map[string]map[string]string
	Defaults map[string]string
	Compound []Compound
}

// Resolve returns the base classes, the class of each variant selected by
// props (falling back to Defaults), matching compound classes, then extra.
// Variants are applied in name order so the result is stable.
func (v Variants) Resolve(props map[string]string, extra ...string) string {
	selected := v.selected(props)

	names := make([]string, 0, len(v.Variants))
	for name := range v.Variants {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := []string{v.Base}
	for _, name := range names {
		parts = append(parts, v.Variants[name][selected[name]])
	}
	for _, c := range v.Compound {
		if matches(c.When, selected) {
			parts = append(parts, c.Class)
		}
	}
	parts = append(parts, extra...)
	return CN(parts...)
}

// Options returns the values a variant accepts, sorted.
func (v Variants) Options(name string) []string {
	opts := make([]string, 0, len(v.Variants[name]))
	for k := range v.Variants[name] {
		opts = append(opts, k)
	}
	sort.Strings(opts)
	return opts
}

func (v Variants) selected(props map[string]string) map[string]string {
	out := make(map[string]string, len(v.Variants))
	for name, options := range v.Variants {
		value := props[name]
		if _, ok := options[value]; !ok {
			value = v.Defaults[name]
		}
		out[name] = value
	}
	return out
}

func matches(when, selected map[string]string) bool {
	for k, want := range when {
		if selected[k] != want {
			return false
		}
	}
	return true
}
