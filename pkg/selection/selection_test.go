package selection

import "testing"

type fakeItem struct {
	key      string
	selected bool
	writes   int
}

func (f *fakeItem) Key() string { return f.key }
func (f *fakeItem) SetSelected(s bool) {
	f.selected = s
	f.writes++
}

func TestAdopt(t *testing.T) {
	var c Controller
	if !c.Adopt("account") {
		t.Fatal("Adopt reported no change")
	}
	if c.Adopt("password") {
		t.Error("second Adopt changed the selection")
	}
	if got := c.Selected(); got != "account" {
		t.Errorf("Selected = %q", got)
	}

	var controlled Controller
	controlled.SetControlled("password")
	controlled.Adopt("account")
	if got := controlled.Selected(); got != "password" {
		t.Errorf("controlled Selected = %q", got)
	}
}

func TestSetDefault(t *testing.T) {
	var c Controller
	c.Adopt("account")
	if !c.SetDefault("password") || c.Selected() != "password" {
		t.Errorf("SetDefault: Selected = %q, want password", c.Selected())
	}

	c.SetControlled("billing")
	c.SetDefault("account")
	if got := c.Selected(); got != "billing" {
		t.Errorf("controlled Selected = %q, want billing", got)
	}
	c.ClearControlled()
	if got := c.Selected(); got != "account" {
		t.Errorf("after release Selected = %q, want account", got)
	}
}

func TestRequestIsIdempotent(t *testing.T) {
	var c Controller
	c.Adopt("account")

	var events []string
	emit := func(k string) { events = append(events, k) }

	if c.Request("account", emit) {
		t.Error("re-selecting reported a change")
	}
	if len(events) != 0 {
		t.Errorf("re-selecting emitted %v", events)
	}

	if !c.Request("password", emit) {
		t.Error("Request(password) reported no change")
	}
	if c.Request("", emit) {
		t.Error("empty key accepted")
	}
	if len(events) != 1 || events[0] != "password" {
		t.Errorf("events = %v", events)
	}
}

func TestControlledRequestIsVetoed(t *testing.T) {
	var c Controller
	c.SetControlled("account")

	var events []string
	if c.Request("password", func(k string) { events = append(events, k) }) {
		t.Error("controlled selection changed")
	}
	if c.Selected() != "account" || len(events) != 1 {
		t.Errorf("selected %q events %v", c.Selected(), events)
	}

	c.ClearControlled()
	if c.Selected() != "" {
		t.Errorf("uncontrolled fallback = %q, want empty", c.Selected())
	}
}

func TestPush(t *testing.T) {
	account := &fakeItem{key: "account"}
	password := &fakeItem{key: "password"}
	orphan := &fakeItem{key: "billing"}
	items := []*fakeItem{account, password, orphan}

	Push("password", items...)

	active := 0
	for _, it := range items {
		if it.selected {
			active++
		}
		if it.writes != 1 {
			t.Errorf("%s written %d times", it.key, it.writes)
		}
	}
	if active != 1 || !password.selected {
		t.Errorf("active = %d, password selected = %v", active, password.selected)
	}

	Push("", items...)
	for _, it := range items {
		if it.selected {
			t.Errorf("%s selected for empty key", it.key)
		}
	}
}
