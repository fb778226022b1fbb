package registry

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/mod/semver"

	"github.com/vango-dev/elements/internal/config"
	"github.com/vango-dev/elements/internal/errors"
	"github.com/vango-dev/elements/pkg/element"
)

// ManifestVersion is the schema version written by Build.
const ManifestVersion = 1

// Manifest represents registry.json.
type Manifest struct {
	ManifestVersion int                  `json:"manifestVersion" validate:"eq=1"`
	Name            string               `json:"name" validate:"required"`
	Version         string               `json:"version" validate:"required,semver"`
	Registry        string               `json:"registry" validate:"required,url"`
	Components      map[string]Component `json:"components" validate:"required,min=1,dive"`
}

// Component represents one entry of the manifest.
type Component struct {
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty" validate:"dive,contains=-"`
	Attributes  []string `json:"attributes,omitempty"`
	Events      []string `json:"events,omitempty"`
	Files       []string `json:"files" validate:"required,min=1,dive,required"`
	DependsOn   []string `json:"dependsOn"`
	Internal    bool     `json:"internal,omitempty"`
}

// core lists the internal packages public components depend on.
var core = map[string]Component{
	"dom": {
		Files: []string{
			"pkg/dom/element.go", "pkg/dom/tree.go", "pkg/dom/event.go", "pkg/dom/keys.go",
			"pkg/dom/document.go", "pkg/dom/scheduler.go", "pkg/dom/layout.go", "pkg/dom/form.go",
			"pkg/dom/build.go",
		},
	},
	"style": {
		Files: []string{"pkg/style/cn.go", "pkg/style/variants.go", "pkg/style/theme.go", "pkg/style/sheet.go"},
	},
	"element": {
		Files:     []string{"pkg/element/element.go", "pkg/element/info.go"},
		DependsOn: []string{"dom", "style"},
	},
	"state": {
		Files: []string{"pkg/state/cell.go"},
	},
	"owner": {
		Files:     []string{"pkg/owner/owner.go", "pkg/owner/intent.go", "pkg/owner/topic.go", "pkg/owner/label.go"},
		DependsOn: []string{"dom"},
	},
	"disclosure": {
		Files: []string{"pkg/disclosure/machine.go"},
	},
	"selection": {
		Files:     []string{"pkg/selection/selection.go"},
		DependsOn: []string{"state"},
	},
	"roving": {
		Files:     []string{"pkg/roving/roving.go"},
		DependsOn: []string{"dom"},
	},
}

// Build creates the manifest for catalog, described by cfg.
func Build(cfg *config.Config, catalog []element.Info) *Manifest {
	m := &Manifest{
		ManifestVersion: ManifestVersion,
		Name:            cfg.Name,
		Version:         cfg.Version,
		Registry:        cfg.Registry.URL,
		Components:      make(map[string]Component, len(core)+len(catalog)),
	}
	for name, c := range core {
		c.Internal = true
		if c.DependsOn == nil {
			c.DependsOn = []string{}
		}
		m.Components[name] = c
	}
	for _, info := range catalog {
		files := make([]string, len(info.Files))
		for i, f := range info.Files {
			files[i] = path.Join("pkg/components", info.Name, f)
		}
		deps := append([]string{}, info.DependsOn...)
		m.Components[info.Name] = Component{
			Description: info.Description,
			Tags:        info.Tags,
			Attributes:  info.Attributes,
			Events:      info.Events,
			Files:       files,
			DependsOn:   deps,
		}
	}
	return m
}

// Names returns the component names, sorted. Internal components are
// included only when internal is true.
func (m *Manifest) Names(internal bool) []string {
	names := make([]string, 0, len(m.Components))
	for name, c := range m.Components {
		if c.Internal && !internal {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks the manifest schema, that every dependency exists and
// that dependencies are acyclic.
func (m *Manifest) Validate() error {
	if err := config.Validator().Struct(m); err != nil {
		if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
			return errors.New("E140").
				WithDetail(fmt.Sprintf("%s: failed %q validation", ves[0].Namespace(), ves[0].Tag()))
		}
		return errors.New("E140").Wrap(err)
	}
	for _, name := range m.Names(true) {
		for _, dep := range m.Components[name].DependsOn {
			if _, ok := m.Components[dep]; !ok {
				return errors.New("E141").
					WithDetail(fmt.Sprintf("%q depends on unknown component %q", name, dep))
			}
		}
	}
	_, err := m.Resolve(m.Names(true)...)
	return err
}

// Resolve returns names and everything they depend on, each once, with
// dependencies before their dependents.
func (m *Manifest) Resolve(names ...string) ([]string, error) {
	const (
		visiting = 1
		done     = 2
	)
	marks := make(map[string]int)
	var order, stack []string

	var visit func(name string) error
	visit = func(name string) error {
		switch marks[name] {
		case done:
			return nil
		case visiting:
			return errors.New("E142").
				WithDetail(strings.Join(append(stack, name), " -> "))
		}
		comp, ok := m.Components[name]
		if !ok {
			return errors.New("E141").
				WithDetail("Component '" + name + "' not found in registry").
				WithSuggestion("Run 'elements registry list' to see available components")
		}
		marks[name] = visiting
		stack = append(stack, name)
		for _, dep := range comp.DependsOn {
			if err := visit(dep); err != nil {
				return err
			}
		}
		stack = stack[:len(stack)-1]
		marks[name] = done
		order = append(order, name)
		return nil
	}

	for _, name := range names {
		if err := visit(name); err != nil {
			return nil, err
		}
	}
	return order, nil
}

// Newer reports whether m has a higher version than other.
func (m *Manifest) Newer(other *Manifest) bool {
	return semver.Compare(canonical(m.Version), canonical(other.Version)) > 0
}

func canonical(v string) string {
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return semver.Canonical(v)
}

// Encode writes the manifest as indented JSON.
func (m *Manifest) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(m)
}

// Bytes returns the encoded manifest.
func (m *Manifest) Bytes() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Checksum returns the hex SHA-256 of the encoded manifest.
func (m *Manifest) Checksum() (string, error) {
	data, err := m.Bytes()
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// WriteFile writes the manifest to path, creating parent directories.
func (m *Manifest) WriteFile(path string) error {
	data, err := m.Bytes()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Decode reads and validates a manifest.
func Decode(r io.Reader) (*Manifest, error) {
	var m Manifest
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, errors.New("E140").
			WithDetail("Invalid registry manifest: " + err.Error())
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// ReadFile reads and validates the manifest at path.
func ReadFile(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.New("E140").Wrap(err).
			WithSuggestion("Run 'elements registry build' first")
	}
	defer f.Close()
	return Decode(f)
}
