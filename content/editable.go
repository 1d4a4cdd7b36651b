package content

// LandingState is the editable form state of the landing section.
type LandingState struct {
	Enabled      bool   `json:"enabled"`
	Text         string `json:"text"`
	DesktopImage string `json:"desktop_image"`
	MobileImage  string `json:"mobile_image"`
}

// PanelsState is the editable form state of the paneles gallery section.
type PanelsState struct {
	Enabled bool     `json:"enabled"`
	Text    string   `json:"text"`
	Images  []string `json:"images"`
}

// RoleState is the editable form state of one role entry.
type RoleState struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}

// RolesState is the editable form state of the roles section.
type RolesState struct {
	Enabled bool        `json:"enabled"`
	Roles   []RoleState `json:"roles"`
}

// AuthState is the editable form state of the auth section.
type AuthState struct {
	Enabled         bool   `json:"enabled"`
	Text            string `json:"text"`
	LoginImage      string `json:"login_image"`
	RegisterImage   string `json:"register_image"`
	HasRegistration bool   `json:"has_registration"`
}

// EditableDocument aggregates the full-page editor's form state for all four
// fixed section types. Update methods return modified copies so save, cancel
// and reset never share slices with stale state.
type EditableDocument struct {
	Landing LandingState `json:"landing"`
	Panels  PanelsState  `json:"panels"`
	Roles   RolesState   `json:"roles"`
	Auth    AuthState    `json:"auth"`
}

// NewEditableDocument returns the empty editor state: blank text, no images,
// exactly one blank role, every section enabled.
func NewEditableDocument() EditableDocument {
	return EditableDocument{
		Landing: LandingState{Enabled: true},
		Panels:  PanelsState{Enabled: true, Images: []string{}},
		Roles:   RolesState{Enabled: true, Roles: []RoleState{blankRole()}},
		Auth:    AuthState{Enabled: true},
	}
}

func blankRole() RoleState {
	return RoleState{Name: "", Description: "", Images: []string{}}
}

// Hydrate rebuilds editor state from a persisted document. Each section type
// is looked up by tag, first match wins; a missing section resets its editor
// state to defaults, so legacy documents and projects saved before a section
// type existed always load cleanly.
func Hydrate(doc Document) EditableDocument {
	out := NewEditableDocument()

	if s, ok := doc.First(KindLanding); ok {
		out.Landing = LandingState{
			Enabled:      s.Enabled,
			Text:         s.Text,
			DesktopImage: imageAt(s.Images, 0),
			MobileImage:  imageAt(s.Images, 1),
		}
	}
	if s, ok := doc.First(KindPanels); ok {
		out.Panels = PanelsState{
			Enabled: s.Enabled,
			Text:    s.Text,
			Images:  copyStrings(s.Images),
		}
	}
	if s, ok := doc.First(KindRoles); ok {
		roles := make([]RoleState, 0, len(s.Roles))
		for _, r := range s.Roles {
			roles = append(roles, RoleState{
				Name:        r.Name,
				Description: r.Description,
				Images:      copyStrings(r.Images),
			})
		}
		if len(roles) == 0 {
			roles = []RoleState{blankRole()}
		}
		out.Roles = RolesState{Enabled: s.Enabled, Roles: roles}
	}
	if s, ok := doc.First(KindAuth); ok {
		out.Auth = AuthState{
			Enabled:         s.Enabled,
			Text:            s.Text,
			LoginImage:      imageAt(s.Images, 0),
			RegisterImage:   imageAt(s.Images, 1),
			HasRegistration: s.HasRegistration,
		}
	}

	return out
}

// Serialize converts editor state into the persisted document. The section
// order is fixed (landing, paneles, roles, auth) regardless of which
// sections carry content.
func (d EditableDocument) Serialize() Document {
	roles := make([]Role, 0, len(d.Roles.Roles))
	for _, r := range d.Roles.Roles {
		roles = append(roles, Role{
			Name:        r.Name,
			Description: r.Description,
			Images:      copyStrings(r.Images),
		})
	}

	return Document{Sections: []Section{
		{
			Kind:    KindLanding,
			Enabled: d.Landing.Enabled,
			Text:    d.Landing.Text,
			Images:  positionalImages(d.Landing.DesktopImage, d.Landing.MobileImage),
		},
		{
			Kind:    KindPanels,
			Enabled: d.Panels.Enabled,
			Text:    d.Panels.Text,
			Images:  copyStrings(d.Panels.Images),
		},
		{
			Kind:    KindRoles,
			Enabled: d.Roles.Enabled,
			Roles:   roles,
		},
		{
			Kind:            KindAuth,
			Enabled:         d.Auth.Enabled,
			Text:            d.Auth.Text,
			Images:          positionalImages(d.Auth.LoginImage, d.Auth.RegisterImage),
			HasRegistration: d.Auth.HasRegistration,
		},
	}}
}

// WithLandingText returns a copy with the landing section text replaced.
func (d EditableDocument) WithLandingText(text string) EditableDocument {
	d.Landing.Text = text
	return d
}

// WithPanelsText returns a copy with the paneles section text replaced.
func (d EditableDocument) WithPanelsText(text string) EditableDocument {
	d.Panels.Text = text
	return d
}

// WithAuthText returns a copy with the auth section text replaced.
func (d EditableDocument) WithAuthText(text string) EditableDocument {
	d.Auth.Text = text
	return d
}

// WithSectionEnabled returns a copy with the named section's visibility flag
// set. Unknown kinds are ignored.
func (d EditableDocument) WithSectionEnabled(kind Kind, enabled bool) EditableDocument {
	switch kind {
	case KindLanding:
		d.Landing.Enabled = enabled
	case KindPanels:
		d.Panels.Enabled = enabled
	case KindRoles:
		d.Roles.Enabled = enabled
	case KindAuth:
		d.Auth.Enabled = enabled
	}
	return d
}

// WithPanelImage returns a copy with url appended to the paneles gallery.
func (d EditableDocument) WithPanelImage(url string) EditableDocument {
	d.Panels.Images = append(copyStrings(d.Panels.Images), url)
	return d
}

// WithPanelImageRemoved returns a copy with the gallery image at index i
// removed; the relative order of the remaining images is preserved. An
// out-of-range index is a no-op.
func (d EditableDocument) WithPanelImageRemoved(i int) EditableDocument {
	d.Panels.Images = RemoveAt(d.Panels.Images, i)
	return d
}

// WithRoleAdded returns a copy with one more blank role at the end.
func (d EditableDocument) WithRoleAdded() EditableDocument {
	d.Roles.Roles = append(copyRoles(d.Roles.Roles), blankRole())
	return d
}

// WithRoleRemoved returns a copy with the role at index i removed. The last
// remaining role cannot be removed; the editor always shows at least one.
func (d EditableDocument) WithRoleRemoved(i int) EditableDocument {
	if len(d.Roles.Roles) <= 1 || i < 0 || i >= len(d.Roles.Roles) {
		return d
	}
	roles := copyRoles(d.Roles.Roles)
	d.Roles.Roles = append(roles[:i], roles[i+1:]...)
	return d
}

// WithRoleName returns a copy with role i renamed. Out of range is a no-op.
func (d EditableDocument) WithRoleName(i int, name string) EditableDocument {
	if i < 0 || i >= len(d.Roles.Roles) {
		return d
	}
	roles := copyRoles(d.Roles.Roles)
	roles[i].Name = name
	d.Roles.Roles = roles
	return d
}

// WithRoleDescription returns a copy with role i's description replaced.
func (d EditableDocument) WithRoleDescription(i int, description string) EditableDocument {
	if i < 0 || i >= len(d.Roles.Roles) {
		return d
	}
	roles := copyRoles(d.Roles.Roles)
	roles[i].Description = description
	d.Roles.Roles = roles
	return d
}

// WithRoleImage returns a copy with url appended to role i's gallery.
func (d EditableDocument) WithRoleImage(i int, url string) EditableDocument {
	if i < 0 || i >= len(d.Roles.Roles) {
		return d
	}
	roles := copyRoles(d.Roles.Roles)
	roles[i].Images = append(roles[i].Images, url)
	d.Roles.Roles = roles
	return d
}

// WithRoleImageRemoved returns a copy with role i's gallery image at index j
// removed, preserving the order of the rest.
func (d EditableDocument) WithRoleImageRemoved(i, j int) EditableDocument {
	if i < 0 || i >= len(d.Roles.Roles) {
		return d
	}
	roles := copyRoles(d.Roles.Roles)
	roles[i].Images = RemoveAt(roles[i].Images, j)
	d.Roles.Roles = roles
	return d
}

// RemoveAt returns a copy of list without the element at index i. The
// relative order of the remaining elements is unchanged. An out-of-range
// index returns an unmodified copy.
func RemoveAt(list []string, i int) []string {
	out := copyStrings(list)
	if i < 0 || i >= len(out) {
		return out
	}
	return append(out[:i], out[i+1:]...)
}

// positionalImages builds a slot-indexed image list, trimming trailing empty
// slots so an untouched section serializes to an empty list.
func positionalImages(slots ...string) []string {
	end := len(slots)
	for end > 0 && slots[end-1] == "" {
		end--
	}
	out := make([]string, end)
	copy(out, slots[:end])
	return out
}

func imageAt(images []string, i int) string {
	if i < 0 || i >= len(images) {
		return ""
	}
	return images[i]
}

func copyStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func copyRoles(in []RoleState) []RoleState {
	out := make([]RoleState, len(in))
	for i, r := range in {
		r.Images = copyStrings(r.Images)
		out[i] = r
	}
	return out
}
