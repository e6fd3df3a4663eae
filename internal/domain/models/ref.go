package models

import "strings"

// Ref is a record reference as the data service emits it: either a bare
// record ID or a record URL whose last path segment is the ID
// (e.g. "https://host/rest/apps/<app>/records/<id>").
type Ref string

// ID returns the record ID the reference points at, or "" for an empty reference.
func (r Ref) ID() string {
	s := strings.TrimRight(strings.TrimSpace(string(r)), "/")
	if i := strings.LastIndexByte(s, '/'); i >= 0 {
		s = s[i+1:]
	}
	return s
}

// References reports whether the reference points at the record with the given ID.
func (r Ref) References(id string) bool {
	return id != "" && r.ID() == id
}
