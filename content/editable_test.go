package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEditableDocumentDefaults(t *testing.T) {
	d := NewEditableDocument()

	assert.True(t, d.Landing.Enabled)
	assert.True(t, d.Panels.Enabled)
	assert.True(t, d.Roles.Enabled)
	assert.True(t, d.Auth.Enabled)
	assert.Empty(t, d.Panels.Images)
	require.Len(t, d.Roles.Roles, 1)
	assert.Equal(t, blankRole(), d.Roles.Roles[0])
}

func TestHydrateSerializeRoundTrip(t *testing.T) {
	d := NewEditableDocument().
		WithLandingText("hello").
		WithPanelsText("shots").
		WithPanelImage("p1.png").
		WithPanelImage("p2.png").
		WithRoleName(0, "Admin").
		WithRoleDescription(0, "runs the place").
		WithRoleImage(0, "r1.png").
		WithAuthText("sign in").
		WithSectionEnabled(KindPanels, false)
	d.Landing.DesktopImage = "desk.png"
	d.Landing.MobileImage = "mob.png"
	d.Auth.LoginImage = "login.png"
	d.Auth.HasRegistration = true

	hydrated := Hydrate(d.Serialize())

	assert.Equal(t, d, hydrated)
}

func TestHydrateEmptyDocumentYieldsDefaults(t *testing.T) {
	assert.Equal(t, NewEditableDocument(), Hydrate(Document{}))
}

func TestHydrateMissingRolesGetsOneBlankRole(t *testing.T) {
	doc := Document{Sections: []Section{
		{Kind: KindRoles, Enabled: true, Roles: []Role{}},
	}}

	d := Hydrate(doc)

	require.Len(t, d.Roles.Roles, 1)
	assert.Equal(t, blankRole(), d.Roles.Roles[0])
}

func TestHydrateUsesFirstDuplicateSection(t *testing.T) {
	doc := Document{Sections: []Section{
		{Kind: KindLanding, Enabled: true, Text: "first"},
		{Kind: KindLanding, Enabled: false, Text: "second"},
	}}

	d := Hydrate(doc)

	assert.Equal(t, "first", d.Landing.Text)
	assert.True(t, d.Landing.Enabled)
}

func TestHydrateIgnoresUnknownSections(t *testing.T) {
	doc := Document{Sections: []Section{
		{Kind: KindUnknown},
		{Kind: KindLanding, Enabled: true, Text: "kept"},
	}}

	assert.Equal(t, "kept", Hydrate(doc).Landing.Text)
}

func TestSerializeFixedSectionOrder(t *testing.T) {
	doc := NewEditableDocument().Serialize()

	require.Len(t, doc.Sections, 4)
	assert.Equal(t, KindLanding, doc.Sections[0].Kind)
	assert.Equal(t, KindPanels, doc.Sections[1].Kind)
	assert.Equal(t, KindRoles, doc.Sections[2].Kind)
	assert.Equal(t, KindAuth, doc.Sections[3].Kind)
}

func TestSerializeTrimsTrailingEmptyImageSlots(t *testing.T) {
	d := NewEditableDocument()
	doc := d.Serialize()
	landing, _ := doc.First(KindLanding)
	assert.Empty(t, landing.Images)

	d.Landing.DesktopImage = "desk.png"
	landing, _ = d.Serialize().First(KindLanding)
	assert.Equal(t, []string{"desk.png"}, landing.Images)

	// A mobile image alone still needs its desktop slot to hold position.
	d.Landing.DesktopImage = ""
	d.Landing.MobileImage = "mob.png"
	landing, _ = d.Serialize().First(KindLanding)
	assert.Equal(t, []string{"", "mob.png"}, landing.Images)
}

func TestWithSectionEnabledTogglesOnlyNamedSection(t *testing.T) {
	d := NewEditableDocument().WithSectionEnabled(KindRoles, false)

	assert.False(t, d.Roles.Enabled)
	assert.True(t, d.Landing.Enabled)
	assert.True(t, d.Panels.Enabled)
	assert.True(t, d.Auth.Enabled)
}

func TestWithPanelImageDoesNotMutateReceiver(t *testing.T) {
	base := NewEditableDocument().WithPanelImage("a.png")
	updated := base.WithPanelImage("b.png")

	assert.Equal(t, []string{"a.png"}, base.Panels.Images)
	assert.Equal(t, []string{"a.png", "b.png"}, updated.Panels.Images)
}

func TestWithPanelImageRemovedPreservesOrder(t *testing.T) {
	d := NewEditableDocument().
		WithPanelImage("a.png").
		WithPanelImage("b.png").
		WithPanelImage("c.png")

	assert.Equal(t, []string{"a.png", "c.png"}, d.WithPanelImageRemoved(1).Panels.Images)
}

func TestWithRoleRemovedKeepsAtLeastOne(t *testing.T) {
	d := NewEditableDocument()

	assert.Len(t, d.WithRoleRemoved(0).Roles.Roles, 1)

	d = d.WithRoleAdded().WithRoleName(0, "first").WithRoleName(1, "second")
	removed := d.WithRoleRemoved(0)
	require.Len(t, removed.Roles.Roles, 1)
	assert.Equal(t, "second", removed.Roles.Roles[0].Name)
}

func TestWithRoleUpdatesDoNotMutateReceiver(t *testing.T) {
	base := NewEditableDocument().WithRoleName(0, "original")
	updated := base.WithRoleName(0, "changed").WithRoleImage(0, "img.png")

	assert.Equal(t, "original", base.Roles.Roles[0].Name)
	assert.Empty(t, base.Roles.Roles[0].Images)
	assert.Equal(t, "changed", updated.Roles.Roles[0].Name)
	assert.Equal(t, []string{"img.png"}, updated.Roles.Roles[0].Images)
}

func TestWithRoleOutOfRangeIsNoOp(t *testing.T) {
	d := NewEditableDocument()

	assert.Equal(t, d, d.WithRoleName(5, "ghost"))
	assert.Equal(t, d, d.WithRoleDescription(-1, "ghost"))
	assert.Equal(t, d, d.WithRoleImage(2, "ghost.png"))
}

func TestRemoveAt(t *testing.T) {
	list := []string{"a", "b", "c", "d"}

	assert.Equal(t, []string{"b", "c", "d"}, RemoveAt(list, 0))
	assert.Equal(t, []string{"a", "b", "c"}, RemoveAt(list, 3))
	assert.Equal(t, []string{"a", "c", "d"}, RemoveAt(list, 1))

	// Out of range leaves the list untouched.
	assert.Equal(t, list, RemoveAt(list, -1))
	assert.Equal(t, list, RemoveAt(list, 4))

	// The input slice is never mutated.
	assert.Equal(t, []string{"a", "b", "c", "d"}, list)
}
