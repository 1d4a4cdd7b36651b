package content

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleDocument uses the canonical in-memory shape: slices are always
// non-nil, the way UnmarshalJSON normalizes them.
func sampleDocument() Document {
	return Document{Sections: []Section{
		{Kind: KindLanding, Enabled: true, Text: "welcome", Images: []string{"desktop.png", "mobile.png"}, Roles: []Role{}},
		{Kind: KindPanels, Enabled: false, Text: "gallery", Images: []string{"a.png", "b.png", "c.png"}, Roles: []Role{}},
		{Kind: KindRoles, Enabled: true, Images: []string{}, Roles: []Role{
			{Name: "Admin", Description: "manages everything", Images: []string{"admin.png"}},
			{Name: "Viewer", Description: "read only", Images: []string{}},
		}},
		{Kind: KindAuth, Enabled: true, Text: "sign in", Images: []string{"login.png"}, Roles: []Role{}, HasRegistration: true},
	}}
}

func TestDocumentRoundTrip(t *testing.T) {
	original := sampleDocument()

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Document
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, original, decoded)
}

func TestDocumentRoundTripPreservesOrder(t *testing.T) {
	original := Document{Sections: []Section{
		{Kind: KindAuth, Enabled: true, Images: []string{}, Roles: []Role{}},
		{Kind: KindLanding, Enabled: true, Images: []string{}, Roles: []Role{}},
		{Kind: KindPanels, Enabled: true, Images: []string{}, Roles: []Role{}},
	}}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Document
	require.NoError(t, json.Unmarshal(data, &decoded))

	require.Len(t, decoded.Sections, 3)
	assert.Equal(t, KindAuth, decoded.Sections[0].Kind)
	assert.Equal(t, KindLanding, decoded.Sections[1].Kind)
	assert.Equal(t, KindPanels, decoded.Sections[2].Kind)
}

func TestSectionMissingEnabledDefaultsToVisible(t *testing.T) {
	raw := `{"sections":[{"type":"landing","text":"old row"}]}`

	var doc Document
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	require.Len(t, doc.Sections, 1)
	assert.True(t, doc.Sections[0].Enabled)
	assert.Equal(t, "old row", doc.Sections[0].Text)
}

func TestSectionExplicitDisabledSurvives(t *testing.T) {
	raw := `{"sections":[{"type":"paneles","enabled":false,"images":["a.png"]}]}`

	var doc Document
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	require.Len(t, doc.Sections, 1)
	assert.False(t, doc.Sections[0].Enabled)
}

func TestUnknownSectionKeptOnReadDroppedOnWrite(t *testing.T) {
	raw := `{"sections":[{"type":"landing","enabled":true},{"type":"testimonials","quotes":["great"]}]}`

	var doc Document
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	require.Len(t, doc.Sections, 2)
	assert.Equal(t, KindUnknown, doc.Sections[1].Kind)
	assert.JSONEq(t, `{"type":"testimonials","quotes":["great"]}`, string(doc.Sections[1].Raw))

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	var written Document
	require.NoError(t, json.Unmarshal(data, &written))
	require.Len(t, written.Sections, 1)
	assert.Equal(t, KindLanding, written.Sections[0].Kind)
}

func TestFirstReturnsFirstMatchOnDuplicateTags(t *testing.T) {
	doc := Document{Sections: []Section{
		{Kind: KindLanding, Enabled: true, Text: "first"},
		{Kind: KindLanding, Enabled: true, Text: "second"},
	}}

	s, ok := doc.First(KindLanding)
	require.True(t, ok)
	assert.Equal(t, "first", s.Text)
}

func TestFirstMissingKind(t *testing.T) {
	doc := Document{Sections: []Section{{Kind: KindLanding, Enabled: true}}}

	_, ok := doc.First(KindAuth)
	assert.False(t, ok)
}

func TestRenderSectionsExcludesDisabledAndUnknown(t *testing.T) {
	doc := Document{Sections: []Section{
		{Kind: KindLanding, Enabled: true, Text: "shown"},
		{Kind: KindPanels, Enabled: false, Text: "hidden"},
		{Kind: KindUnknown, Raw: json.RawMessage(`{"type":"mystery"}`)},
		{Kind: KindAuth, Enabled: true, Text: "also shown"},
	}}

	rendered := RenderSections(doc)

	require.Len(t, rendered, 2)
	assert.Equal(t, KindLanding, rendered[0].Kind)
	assert.Equal(t, KindAuth, rendered[1].Kind)
}

func TestRenderSectionsAllDisabled(t *testing.T) {
	doc := Document{Sections: []Section{
		{Kind: KindLanding, Enabled: false},
		{Kind: KindPanels, Enabled: false},
	}}

	assert.Empty(t, RenderSections(doc))
}

func TestDocumentEmpty(t *testing.T) {
	assert.True(t, Document{}.Empty())
	assert.False(t, sampleDocument().Empty())
}

func TestSectionMarshalAlwaysCarriesEnabled(t *testing.T) {
	data, err := json.Marshal(Section{Kind: KindPanels, Enabled: true})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"enabled":true`)

	data, err = json.Marshal(Section{Kind: KindPanels, Enabled: false})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"enabled":false`)
}
