package models

import (
	"fmt"
	"sort"
)

// MiscData holds the dropdown value lists used by the entry forms. It is a
// singleton per installation: the relational backend serializes it into the
// app_configs table under the "dropdown_values" key, the document backend
// keeps one document with that fixed _id.
type MiscData struct {
	Projects     []string `json:"projects" bson:"projects"`
	TownTypes    []string `json:"town_types" bson:"town_types"`
	Requesters   []string `json:"requesters" bson:"requesters"`
	Designations []string `json:"designations" bson:"designations"`
	Modules      []string `json:"modules" bson:"modules"`
	Issues       []string `json:"issues" bson:"issues"`
	Solutions    []string `json:"solutions" bson:"solutions"`
	SolvedOn     []string `json:"solved_on" bson:"solved_on"`
	CallOn       []string `json:"call_on" bson:"call_on"`
	Types        []string `json:"types" bson:"types"`
}

// field maps the wire name of a dropdown field to its slice.
func (m *MiscData) field(name string) (*[]string, bool) {
	switch name {
	case "projects":
		return &m.Projects, true
	case "town_types":
		return &m.TownTypes, true
	case "requesters":
		return &m.Requesters, true
	case "designations":
		return &m.Designations, true
	case "modules":
		return &m.Modules, true
	case "issues":
		return &m.Issues, true
	case "solutions":
		return &m.Solutions, true
	case "solved_on":
		return &m.SolvedOn, true
	case "call_on":
		return &m.CallOn, true
	case "types":
		return &m.Types, true
	}
	return nil, false
}

// AddValue appends value to the named dropdown field, dropping duplicates and
// keeping the list sorted. Returns an error for an unknown field name and
// reports whether the value was actually new.
func (m *MiscData) AddValue(field, value string) (bool, error) {
	list, ok := m.field(field)
	if !ok {
		return false, fmt.Errorf("unknown dropdown field %q", field)
	}
	for _, v := range *list {
		if v == value {
			return false, nil
		}
	}
	*list = append(*list, value)
	sort.Strings(*list)
	return true, nil
}

// EnsureLists replaces nil slices with empty ones so the JSON response always
// carries every field as an array.
func (m *MiscData) EnsureLists() {
	for _, name := range []string{
		"projects", "town_types", "requesters", "designations", "modules",
		"issues", "solutions", "solved_on", "call_on", "types",
	} {
		list, _ := m.field(name)
		if *list == nil {
			*list = []string{}
		}
	}
}
