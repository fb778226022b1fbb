package style

import (
	"strings"
	"sync"
)

// Sheet is an immutable style sheet that can be adopted by any number of
// shadow roots.
type Sheet struct {
	css string
}

// NewSheet creates a sheet from rules.
func NewSheet(rules ...string) *Sheet {
	return &Sheet{css: strings.Join(rules, "\n")}
}

// CSSText returns the sheet's CSS.
func (s *Sheet) CSSText() string { return s.css }

// baseRules style the reflected presentation state shared by every element.
var baseRules = []string{
	`:host{box-sizing:border-box;font-family:var(--font-sans)}`,
	`:host([hidden]){display:none}`,
	`:host([data-disabled]){pointer-events:none;opacity:.5}`,
	`:host(:focus-visible){outline:2px solid hsl(var(--ring));outline-offset:2px}`,
	`:host([data-state=opening]){animation:collapsible-down var(--transition-duration) var(--transition-easing)}`,
	`:host([data-state=closing]){animation:collapsible-up var(--transition-duration) var(--transition-easing)}`,
	`@keyframes collapsible-down{from{height:0}to{height:var(--collapsible-content-height)}}`,
	`@keyframes collapsible-up{from{height:var(--collapsible-content-height)}to{height:0}}`,
}

// ThemeSheet builds the shared sheet for a theme.
func ThemeSheet(t Theme) *Sheet {
	rules := append([]string{":host{" + t.CustomProperties() + "}"}, baseRules...)
	return NewSheet(rules...)
}

var (
	sharedMu    sync.RWMutex
	sharedSheet *Sheet
)

// Shared returns the process-wide sheet, built from the default theme unless
// SetSharedTheme has been called.
func Shared() *Sheet {
	sharedMu.RLock()
	s := sharedSheet
	sharedMu.RUnlock()
	if s != nil {
		return s
	}

	sharedMu.Lock()
	defer sharedMu.Unlock()
	if sharedSheet == nil {
		sharedSheet = ThemeSheet(DefaultTheme())
	}
	return sharedSheet
}

// SetSharedTheme replaces the process-wide sheet. Elements created
// afterwards adopt the new sheet.
func SetSharedTheme(t Theme) {
	sharedMu.Lock()
	sharedSheet = ThemeSheet(t)
	sharedMu.Unlock()
}
