// Package stories loads the story definitions the docs site, the playground
// and the terminal playground mount: named markup trees, one or more per
// component.
package stories

import (
	"bytes"
	_ "embed"
	stderrors "errors"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/elements/internal/errors"
	"github.com/vango-dev/elements/pkg/dom"
)

//go:embed stories.yaml
var builtin []byte

// Story is one named markup tree.
type Story struct {
	Name        string   `yaml:"name" json:"name"`
	Component   string   `yaml:"component" json:"component"`
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Markup      dom.Markup `yaml:"markup" json:"markup"`
}

// Set is an ordered collection of stories.
type Set struct {
	stories []Story
	byName  map[string]int
}

type file struct {
	Stories []Story `yaml:"stories"`
}

// Builtin returns the stories shipped with the library.
func Builtin() *Set {
	set, err := Parse("stories.yaml", builtin)
	if err != nil {
		panic("stories: builtin stories are invalid: " + err.Error())
	}
	return set
}

// Load reads the stories at path, or returns the builtin stories when path is
// empty.
func Load(path string) (*Set, error) {
	if path == "" {
		return Builtin(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("E120").Wrap(err)
	}
	return Parse(path, data)
}

var lineRe = regexp.MustCompile(`line (\d+)`)

// Parse decodes a stories file. Unknown fields are rejected. name is used in
// error locations.
func Parse(name string, data []byte) (*Set, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f file
	if err := dec.Decode(&f); err != nil {
		ee := errors.New("E120").Wrap(err)
		if m := lineRe.FindStringSubmatch(err.Error()); m != nil {
			line, _ := strconv.Atoi(m[1])
			ee.WithLocation(name, line, 0)
		}
		var te *yaml.TypeError
		if stderrors.As(err, &te) && len(te.Errors) > 0 {
			ee.WithDetail(te.Errors[0])
		}
		return nil, ee
	}

	set := &Set{byName: make(map[string]int, len(f.Stories))}
	for i, s := range f.Stories {
		switch {
		case s.Name == "" || s.Component == "":
			return nil, errors.New("E120").
				WithDetail(name + ": story " + strconv.Itoa(i+1) + " needs a name and a component")
		case s.Markup.Tag == "":
			return nil, errors.New("E120").
				WithDetail("story " + strconv.Quote(s.Name) + " has no markup tag")
		}
		if _, dup := set.byName[s.Name]; dup {
			return nil, errors.New("E120").
				WithDetail("duplicate story " + strconv.Quote(s.Name))
		}
		set.byName[s.Name] = len(set.stories)
		set.stories = append(set.stories, s)
	}
	return set, nil
}

// All returns the stories in file order.
func (s *Set) All() []Story {
	return append([]Story(nil), s.stories...)
}

// Names returns the story names in file order.
func (s *Set) Names() []string {
	names := make([]string, len(s.stories))
	for i, st := range s.stories {
		names[i] = st.Name
	}
	return names
}

// Get returns the story called name.
func (s *Set) Get(name string) (Story, error) {
	i, ok := s.byName[name]
	if !ok {
		return Story{}, errors.New("E121").
			WithDetail("No story named " + strconv.Quote(name)).
			WithSuggestion("Available: " + strings.Join(s.Names(), ", "))
	}
	return s.stories[i], nil
}

// ForComponent returns the stories of a component in file order.
func (s *Set) ForComponent(component string) []Story {
	var out []Story
	for _, st := range s.stories {
		if st.Component == component {
			out = append(out, st)
		}
	}
	return out
}

// Components returns the components that have stories, sorted.
func (s *Set) Components() []string {
	seen := make(map[string]bool)
	var out []string
	for _, st := range s.stories {
		if !seen[st.Component] {
			seen[st.Component] = true
			out = append(out, st.Component)
		}
	}
	sort.Strings(out)
	return out
}

// Tags returns every custom element tag the story uses, sorted.
func (st Story) Tags() []string {
	seen := make(map[string]bool)
	var walk func(s dom.Markup)
	walk = func(s dom.Markup) {
		if strings.Contains(s.Tag, "-") {
			seen[s.Tag] = true
		}
		for _, c := range s.Children {
			walk(c)
		}
	}
	walk(st.Markup)

	tags := make([]string, 0, len(seen))
	for t := range seen {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}
