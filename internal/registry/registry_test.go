package registry

import (
	"bytes"
	"context"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vango-dev/elements/internal/config"
	"github.com/vango-dev/elements/internal/errors"
	"github.com/vango-dev/elements/pkg/components"
)

func code(err error) string {
	var ee *errors.ElementsError
	if stderrors.As(err, &ee) {
		return ee.Code
	}
	return ""
}

func buildManifest(t *testing.T) *Manifest {
	t.Helper()
	cfg := config.New()
	cfg.Version = "0.3.0"
	return Build(cfg, components.Catalog())
}

func TestBuild(t *testing.T) {
	m := buildManifest(t)
	if err := m.Validate(); err != nil {
		t.Fatalf("catalog manifest invalid: %v", err)
	}

	public := m.Names(false)
	want := []string{"button", "checkbox", "collapsible", "input", "tabs", "toggle"}
	if !slices.Equal(public, want) {
		t.Errorf("Names(false) = %v, want %v", public, want)
	}
	if len(m.Names(true)) <= len(public) {
		t.Error("internal components missing")
	}

	tabs := m.Components["tabs"]
	if !slices.Contains(tabs.Files, "pkg/components/tabs/tabs.go") {
		t.Errorf("tabs files = %v", tabs.Files)
	}
	if !m.Components["owner"].Internal {
		t.Error("owner not internal")
	}
}

func TestResolve(t *testing.T) {
	m := buildManifest(t)
	order, err := m.Resolve("tabs")
	if err != nil {
		t.Fatal(err)
	}

	pos := make(map[string]int, len(order))
	for i, name := range order {
		if _, dup := pos[name]; dup {
			t.Fatalf("%s resolved twice: %v", name, order)
		}
		pos[name] = i
	}
	for _, name := range order {
		for _, dep := range m.Components[name].DependsOn {
			if pos[dep] > pos[name] {
				t.Errorf("%s installed before its dependency %s: %v", name, dep, order)
			}
		}
	}
	if order[len(order)-1] != "tabs" {
		t.Errorf("order = %v, want tabs last", order)
	}
	if slices.Contains(order, "disclosure") {
		t.Errorf("tabs pulled in disclosure: %v", order)
	}
}

func TestResolveErrors(t *testing.T) {
	m := &Manifest{Components: map[string]Component{
		"a": {Files: []string{"a.go"}, DependsOn: []string{"b"}},
		"b": {Files: []string{"b.go"}, DependsOn: []string{"a"}},
		"c": {Files: []string{"c.go"}, DependsOn: []string{"missing"}},
	}}

	_, err := m.Resolve("a")
	if code(err) != "E142" || !strings.Contains(err.Error(), "a -> b -> a") {
		t.Errorf("cycle err = %v", err)
	}
	if _, err := m.Resolve("c"); code(err) != "E141" {
		t.Errorf("missing dep err = %v", err)
	}
	if _, err := m.Resolve("zzz"); code(err) != "E141" {
		t.Errorf("unknown err = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(m *Manifest)
		code   string
	}{
		{name: "bad version", mutate: func(m *Manifest) { m.Version = "latest" }, code: "E140"},
		{name: "bad schema", mutate: func(m *Manifest) { m.ManifestVersion = 2 }, code: "E140"},
		{name: "no files", mutate: func(m *Manifest) {
			c := m.Components["button"]
			c.Files = nil
			m.Components["button"] = c
		}, code: "E140"},
		{name: "tag without hyphen", mutate: func(m *Manifest) {
			c := m.Components["button"]
			c.Tags = []string{"button"}
			m.Components["button"] = c
		}, code: "E140"},
		{name: "unknown dependency", mutate: func(m *Manifest) {
			c := m.Components["button"]
			c.DependsOn = []string{"ghost"}
			m.Components["button"] = c
		}, code: "E141"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := buildManifest(t)
			tt.mutate(m)
			if err := m.Validate(); code(err) != tt.code {
				t.Errorf("Validate() = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestNewer(t *testing.T) {
	a, b := buildManifest(t), buildManifest(t)
	b.Version = "0.2.9"
	if !a.Newer(b) || b.Newer(a) || a.Newer(a) {
		t.Error("Newer compares versions incorrectly")
	}
	b.Version = "v0.10.0"
	if a.Newer(b) {
		t.Error("0.3.0 newer than v0.10.0")
	}
}

func TestFileRoundTrip(t *testing.T) {
	m := buildManifest(t)
	path := filepath.Join(t.TempDir(), "dist", "registry.json")
	if err := m.WriteFile(path); err != nil {
		t.Fatal(err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Version != m.Version || len(got.Components) != len(m.Components) {
		t.Errorf("round trip lost data: %+v", got)
	}

	if _, err := ReadFile(filepath.Join(t.TempDir(), "none.json")); code(err) != "E140" {
		t.Errorf("missing file err = %v", err)
	}
}

func TestFetch(t *testing.T) {
	m := buildManifest(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/registry.json" {
			http.NotFound(w, r)
			return
		}
		_ = m.Encode(w)
	}))
	defer srv.Close()

	got, err := Fetch(context.Background(), srv.Client(), srv.URL+"/registry.json")
	if err != nil {
		t.Fatal(err)
	}
	if got.Version != "0.3.0" {
		t.Errorf("Version = %q", got.Version)
	}

	if _, err := Fetch(context.Background(), srv.Client(), srv.URL+"/nope"); code(err) != "E140" {
		t.Errorf("404 err = %v", err)
	}
}

type fakeS3 struct {
	puts []*s3.PutObjectInput
	body [][]byte
	err  error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	var b bytes.Buffer
	_, _ = b.ReadFrom(in.Body)
	f.puts = append(f.puts, in)
	f.body = append(f.body, b.Bytes())
	return &s3.PutObjectOutput{}, nil
}

func TestPublish(t *testing.T) {
	m := buildManifest(t)
	fake := &fakeS3{}
	p := NewPublisher(fake, "bucket", "ui", nil)

	if err := p.Publish(context.Background(), m); err != nil {
		t.Fatal(err)
	}
	if len(fake.puts) != 2 {
		t.Fatalf("puts = %d", len(fake.puts))
	}
	if *fake.puts[0].Key != "ui/v0.3.0/registry.json" || *fake.puts[1].Key != "ui/registry.json" {
		t.Errorf("keys = %q, %q", *fake.puts[0].Key, *fake.puts[1].Key)
	}
	sum, _ := m.Checksum()
	if fake.puts[1].Metadata["checksum"] != sum {
		t.Error("checksum metadata missing")
	}
	want, _ := m.Bytes()
	if !bytes.Equal(fake.body[1], want) {
		t.Error("uploaded body differs from manifest")
	}
}

func TestPublishErrors(t *testing.T) {
	m := buildManifest(t)
	p := NewPublisher(&fakeS3{err: stderrors.New("access denied")}, "bucket", "", nil)
	if err := p.Publish(context.Background(), m); code(err) != "E144" {
		t.Errorf("upload failure err = %v", err)
	}

	m.Version = "nope"
	fake := &fakeS3{}
	if err := NewPublisher(fake, "bucket", "", nil).Publish(context.Background(), m); code(err) != "E140" || len(fake.puts) != 0 {
		t.Errorf("invalid manifest err = %v, puts = %d", err, len(fake.puts))
	}
}
