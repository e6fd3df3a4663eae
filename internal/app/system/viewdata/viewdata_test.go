package viewdata

import (
	"net/http/httptest"
	"testing"
)

func TestNav_MarksActiveEntry(t *testing.T) {
	items := Nav("/kurse")
	active := 0
	for _, it := range items {
		if it.Active {
			active++
			if it.Href != "/kurse" {
				t.Errorf("active entry: got %q, want /kurse", it.Href)
			}
		}
	}
	if active != 1 {
		t.Errorf("active entries: got %d, want 1", active)
	}
}

func TestNav_SubpathsStayActive(t *testing.T) {
	for _, it := range Nav("/dashboard/overview") {
		if it.Href == "/dashboard" && !it.Active {
			t.Error("dashboard entry should be active for /dashboard/overview")
		}
	}
}

func TestNav_DoesNotMutateDefaults(t *testing.T) {
	_ = Nav("/raeume")
	for _, it := range navItems {
		if it.Active {
			t.Errorf("navItems[%q] was mutated", it.Href)
		}
	}
}

func TestNewBaseVM(t *testing.T) {
	r := httptest.NewRequest("GET", "/teilnehmer?start=51", nil)
	vm := NewBaseVM(r, "Teilnehmer", "/dashboard")

	if vm.SiteName != SiteName {
		t.Errorf("SiteName: got %q, want %q", vm.SiteName, SiteName)
	}
	if vm.Title != "Teilnehmer" {
		t.Errorf("Title: got %q, want %q", vm.Title, "Teilnehmer")
	}
	if len(vm.Nav) != len(navItems) {
		t.Errorf("Nav: got %d entries, want %d", len(vm.Nav), len(navItems))
	}
}
