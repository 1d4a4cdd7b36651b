// Package content models the content-structure document attached to
// full-page projects: an ordered list of tagged sections persisted as
// schema-less JSON, plus the editable form state and save pipeline the
// admin panel drives it with.
package content

import "encoding/json"

// Kind tags a section variant.
type Kind string

const (
	KindLanding Kind = "landing"
	KindPanels  Kind = "paneles"
	KindRoles   Kind = "roles"
	KindAuth    Kind = "auth"

	// KindUnknown marks a section whose tag this version does not know.
	// Unknown sections are kept in memory with their raw bytes, excluded
	// from rendering and hydration, and dropped on the next save.
	KindUnknown Kind = "unknown"
)

// Role is a sub-entry of a roles section, carrying its own image gallery.
type Role struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}

// Section is one content block of a full-page project. Which fields are
// meaningful depends on Kind: landing and auth use Images positionally
// (landing: 0=desktop 1=mobile; auth: 0=login 1=registration), paneles uses
// Images as an ordered gallery, roles uses Roles.
type Section struct {
	Kind            Kind
	Enabled         bool
	Text            string
	Images          []string
	Roles           []Role
	HasRegistration bool

	// Raw holds the original bytes of an unknown section.
	Raw json.RawMessage
}

// Document is the persisted content structure: an ordered sequence of
// sections. Order is meaningful and preserved.
type Document struct {
	Sections []Section `json:"sections"`
}

// wireSection is the storage-boundary shape of a section.
type wireSection struct {
	Type            string   `json:"type"`
	Enabled         *bool    `json:"enabled,omitempty"`
	Text            string   `json:"text,omitempty"`
	Images          []string `json:"images,omitempty"`
	Roles           []Role   `json:"roles,omitempty"`
	HasRegistration bool     `json:"has_registration,omitempty"`
}

func knownKind(tag string) bool {
	switch Kind(tag) {
	case KindLanding, KindPanels, KindRoles, KindAuth:
		return true
	}
	return false
}

func (s Section) MarshalJSON() ([]byte, error) {
	if s.Kind == KindUnknown {
		// Unknown sections are filtered by Document.MarshalJSON; if one is
		// marshaled directly, pass its original bytes back out.
		if len(s.Raw) > 0 {
			return s.Raw, nil
		}
		return []byte(`{"type":"unknown"}`), nil
	}

	enabled := s.Enabled
	w := wireSection{
		Type:    string(s.Kind),
		Enabled: &enabled,
	}
	switch s.Kind {
	case KindRoles:
		w.Roles = nonNilRoles(s.Roles)
	case KindAuth:
		w.Text = s.Text
		w.Images = nonNilStrings(s.Images)
		w.HasRegistration = s.HasRegistration
	default:
		w.Text = s.Text
		w.Images = nonNilStrings(s.Images)
	}
	return json.Marshal(w)
}

func (s *Section) UnmarshalJSON(data []byte) error {
	var w wireSection
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	if !knownKind(w.Type) {
		*s = Section{Kind: KindUnknown, Raw: append(json.RawMessage(nil), data...)}
		return nil
	}

	// Documents written before the enabled flag existed omit it; a section
	// present in such a document was always rendered.
	enabled := true
	if w.Enabled != nil {
		enabled = *w.Enabled
	}

	*s = Section{
		Kind:            Kind(w.Type),
		Enabled:         enabled,
		Text:            w.Text,
		Images:          nonNilStrings(w.Images),
		Roles:           nonNilRoles(w.Roles),
		HasRegistration: w.HasRegistration,
	}
	return nil
}

func (d Document) MarshalJSON() ([]byte, error) {
	kept := make([]Section, 0, len(d.Sections))
	for _, s := range d.Sections {
		if s.Kind != KindUnknown {
			kept = append(kept, s)
		}
	}
	type wireDocument struct {
		Sections []Section `json:"sections"`
	}
	return json.Marshal(wireDocument{Sections: kept})
}

func (d *Document) UnmarshalJSON(data []byte) error {
	type wireDocument struct {
		Sections []Section `json:"sections"`
	}
	var w wireDocument
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	d.Sections = w.Sections
	return nil
}

// Empty reports whether the document has no sections at all.
func (d Document) Empty() bool {
	return len(d.Sections) == 0
}

// First returns the first section tagged kind. Documents produced by this
// code never contain duplicate tags, but hand-edited rows might; the first
// match wins and the rest are ignored.
func (d Document) First(kind Kind) (Section, bool) {
	for _, s := range d.Sections {
		if s.Kind == kind {
			return s, true
		}
	}
	return Section{}, false
}

// RenderSections returns the sections an audience-facing page should show:
// known kinds with the enabled flag set, in document order. Enabled is a
// visibility flag, not a deletion flag, so disabled sections stay persisted
// but are excluded here.
func RenderSections(d Document) []Section {
	out := make([]Section, 0, len(d.Sections))
	for _, s := range d.Sections {
		if s.Kind == KindUnknown || !s.Enabled {
			continue
		}
		out = append(out, s)
	}
	return out
}

func nonNilStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

func nonNilRoles(in []Role) []Role {
	if in == nil {
		return []Role{}
	}
	out := make([]Role, len(in))
	for i, r := range in {
		r.Images = nonNilStrings(r.Images)
		out[i] = r
	}
	return out
}
