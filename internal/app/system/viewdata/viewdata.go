// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/httpnav"
)

// SiteName is shown in the page header and title.
const SiteName = "KursManager"

// NavItem is one entry of the sidebar navigation.
type NavItem struct {
	Label  string
	Href   string
	Active bool
}

// navItems lists the sidebar entries in display order.
var navItems = []NavItem{
	{Label: "Dashboard", Href: "/dashboard"},
	{Label: "Kurse", Href: "/kurse"},
	{Label: "Anmeldungen", Href: "/anmeldungen"},
	{Label: "Teilnehmer", Href: "/teilnehmer"},
	{Label: "Dozenten", Href: "/dozenten"},
	{Label: "Räume", Href: "/raeume"},
}

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(r, "Page Title", "/dashboard"),
//	}
type BaseVM struct {
	SiteName string

	// Page context
	Title       string
	BackURL     string
	CurrentPath string

	Nav []NavItem
}

// NewBaseVM creates a populated BaseVM for a page.
//
// Parameters:
//   - r: the HTTP request
//   - title: the page title
//   - backDefault: default URL for the back button if none in request
func NewBaseVM(r *http.Request, title, backDefault string) BaseVM {
	current := httpnav.CurrentPath(r)
	return BaseVM{
		SiteName:    SiteName,
		Title:       title,
		BackURL:     httpnav.ResolveBackURL(r, backDefault),
		CurrentPath: current,
		Nav:         Nav(current),
	}
}

// Nav returns the sidebar entries with the one matching path marked active.
func Nav(path string) []NavItem {
	out := make([]NavItem, len(navItems))
	copy(out, navItems)
	for i := range out {
		if path == out[i].Href || strings.HasPrefix(path, out[i].Href+"/") {
			out[i].Active = true
		}
	}
	return out
}
