package errors

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"io/fs"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{name: "story error", code: "E120", wantMsg: "Invalid story file", wantCat: CategoryStory},
		{name: "registry error", code: "E141", wantMsg: "Component not found", wantCat: CategoryRegistry},
		{name: "session error", code: "E061", wantMsg: "Invalid playground frame", wantCat: CategorySession},
		{name: "unknown error code", code: "E999", wantMsg: "Unknown error", wantCat: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
		})
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		err  *ElementsError
		want string
	}{
		{err: New("E141"), want: "E141: Component not found"},
		{err: New("E141").WithDetail("tabz"), want: "E141: Component not found: tabz"},
		{err: &ElementsError{Message: "plain"}, want: "plain"},
		{err: Newf(CategoryCLI, "port %d busy", 8080), want: "port 8080 busy"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestWrap(t *testing.T) {
	outer := New("E120").Wrap(fs.ErrNotExist)

	if !stderrors.Is(outer, fs.ErrNotExist) {
		t.Error("errors.Is does not see the wrapped error")
	}
	if outer.Detail != fs.ErrNotExist.Error() {
		t.Errorf("Detail = %q", outer.Detail)
	}

	kept := New("E120").WithDetail("custom").Wrap(fs.ErrNotExist)
	if kept.Detail != "custom" {
		t.Errorf("Wrap overwrote Detail: %q", kept.Detail)
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "E120") != nil {
		t.Error("FromError(nil, ...) should return nil")
	}

	ee := New("E120")
	if FromError(ee, "E141") != ee {
		t.Error("FromError should return an ElementsError as-is")
	}

	std := stderrors.New("boom")
	if got := FromError(std, "E120"); got.Wrapped != std || got.Code != "E120" {
		t.Errorf("FromError = %+v", got)
	}
}

func TestLocationString(t *testing.T) {
	tests := []struct {
		name string
		loc  *Location
		want string
	}{
		{name: "nil location", loc: nil, want: ""},
		{name: "with column", loc: &Location{File: "stories.yaml", Line: 10, Column: 5}, want: "stories.yaml:10:5"},
		{name: "without column", loc: &Location{File: "stories.yaml", Line: 10}, want: "stories.yaml:10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.loc.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	formatted := New("E120").
		WithLocation("stories.yaml", 14, 5).
		WithDetail(`unknown field "childs"`).
		WithSuggestion(`Use "children" for nested elements`).
		Format()

	for _, want := range []string{
		"ERROR E120: Invalid story file",
		"stories.yaml:14:5",
		`unknown field "childs"`,
		"Hint: Use",
		"Learn more: https://elements.vango.dev/docs/errors/E120",
	} {
		if !strings.Contains(formatted, want) {
			t.Errorf("Format() missing %q:\n%s", want, formatted)
		}
	}
	if strings.Contains(formatted, "\033[") {
		t.Error("Format() emitted colors while disabled")
	}
}

func TestFormatCompact(t *testing.T) {
	got := New("E120").WithLocation("stories.yaml", 10, 5).FormatCompact()
	want := "stories.yaml:10:5: E120: Invalid story file"
	if got != want {
		t.Errorf("FormatCompact() = %q, want %q", got, want)
	}
}

func TestMarshalJSON(t *testing.T) {
	data, err := json.Marshal(New("E141").WithLocation("registry.json", 3, 0).WithDetail("tabz"))
	if err != nil {
		t.Fatal(err)
	}

	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got["code"] != "E141" || got["category"] != "registry" || got["detail"] != "tabz" {
		t.Errorf("json = %s", data)
	}
	if _, ok := got["suggestion"]; ok {
		t.Errorf("empty suggestion encoded: %s", data)
	}
}

func TestFprint(t *testing.T) {
	DisableColors()
	defer EnableColors()

	var b bytes.Buffer
	Fprint(&b, stderrors.New("plain failure"))
	if !strings.Contains(b.String(), "ERROR: plain failure") {
		t.Errorf("Fprint = %q", b.String())
	}

	b.Reset()
	Fprint(&b, New("E160"))
	if !strings.Contains(b.String(), "E160: Terminal required") {
		t.Errorf("Fprint = %q", b.String())
	}
}

func TestRegistry(t *testing.T) {
	codes := GetAllCodes()
	for i := 1; i < len(codes); i++ {
		if codes[i-1] >= codes[i] {
			t.Fatalf("codes not sorted: %v", codes)
		}
	}
	for _, code := range codes {
		tmpl, _ := GetTemplate(code)
		if tmpl.Message == "" || tmpl.Category == "" || !strings.HasSuffix(tmpl.DocURL, code) {
			t.Errorf("%s: incomplete template %+v", code, tmpl)
		}
	}

	Register("E999", ErrorTemplate{Category: CategoryCLI, Message: "Custom test error"})
	defer delete(registry, "E999")
	if got := New("E999").Message; got != "Custom test error" {
		t.Errorf("Message = %q", got)
	}
}

func TestWrapText(t *testing.T) {
	if got := wrapText("short text", 100); len(got) != 1 || got[0] != "short text" {
		t.Errorf("short text: %v", got)
	}
	if got := wrapText("this is a longer text that should be wrapped", 20); len(got) != 3 {
		t.Errorf("expected 3 lines, got %d: %v", len(got), got)
	}
	if got := wrapText("", 10); len(got) != 0 {
		t.Errorf("empty: %v", got)
	}
}

func TestColorFunctions(t *testing.T) {
	EnableColors()
	if !strings.Contains(red("test"), "\033[31m") {
		t.Error("red should contain ANSI code when colors enabled")
	}

	DisableColors()
	if strings.Contains(red("test"), "\033[") {
		t.Error("red should not contain ANSI code when colors disabled")
	}
	EnableColors()
}
