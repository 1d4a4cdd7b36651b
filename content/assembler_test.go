package content

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUploader returns one URL per file, derived from the file name, and can
// be told to fail from the nth batch onward.
type fakeUploader struct {
	batches   [][]PendingFile
	failAfter int
}

func newFakeUploader() *fakeUploader {
	return &fakeUploader{failAfter: -1}
}

func (u *fakeUploader) UploadBatch(_ context.Context, files []PendingFile) ([]string, error) {
	if u.failAfter >= 0 && len(u.batches) >= u.failAfter {
		return nil, errors.New("bucket unreachable")
	}
	u.batches = append(u.batches, files)

	urls := make([]string, len(files))
	for i, f := range files {
		urls[i] = fmt.Sprintf("https://cdn.example.com/%s", f.Name)
	}
	return urls, nil
}

func pending(name string) PendingFile {
	return PendingFile{Name: name, ContentType: "image/png", Data: []byte{0x89, 0x50}}
}

func TestAssembleNoPendingFiles(t *testing.T) {
	uploader := newFakeUploader()
	a := NewAssembler(uploader)

	doc, err := a.Assemble(context.Background(), SaveInput{Doc: NewEditableDocument().WithLandingText("hi")})
	require.NoError(t, err)

	assert.Empty(t, uploader.batches)
	landing, ok := doc.First(KindLanding)
	require.True(t, ok)
	assert.Equal(t, "hi", landing.Text)
}

func TestAssembleLandingSlots(t *testing.T) {
	a := NewAssembler(newFakeUploader())

	desktop := pending("desk.png")
	mobile := pending("mob.png")
	doc, err := a.Assemble(context.Background(), SaveInput{
		Doc:            NewEditableDocument(),
		LandingDesktop: &desktop,
		LandingMobile:  &mobile,
	})
	require.NoError(t, err)

	landing, _ := doc.First(KindLanding)
	assert.Equal(t, []string{
		"https://cdn.example.com/desk.png",
		"https://cdn.example.com/mob.png",
	}, landing.Images)
}

func TestAssembleMobileOnlyKeepsDesktopSlot(t *testing.T) {
	a := NewAssembler(newFakeUploader())

	mobile := pending("mob.png")
	doc, err := a.Assemble(context.Background(), SaveInput{
		Doc:           NewEditableDocument(),
		LandingMobile: &mobile,
	})
	require.NoError(t, err)

	landing, _ := doc.First(KindLanding)
	assert.Equal(t, []string{"", "https://cdn.example.com/mob.png"}, landing.Images)
}

func TestAssemblePanelFilesAppendAfterExisting(t *testing.T) {
	a := NewAssembler(newFakeUploader())

	doc, err := a.Assemble(context.Background(), SaveInput{
		Doc:        NewEditableDocument().WithPanelImage("https://cdn.example.com/old.png"),
		PanelFiles: []PendingFile{pending("new1.png"), pending("new2.png")},
	})
	require.NoError(t, err)

	panels, _ := doc.First(KindPanels)
	assert.Equal(t, []string{
		"https://cdn.example.com/old.png",
		"https://cdn.example.com/new1.png",
		"https://cdn.example.com/new2.png",
	}, panels.Images)
}

func TestAssembleRoleFilesLandOnTheirRoles(t *testing.T) {
	a := NewAssembler(newFakeUploader())

	editor := NewEditableDocument().
		WithRoleName(0, "Admin").
		WithRoleAdded().
		WithRoleName(1, "Viewer")

	doc, err := a.Assemble(context.Background(), SaveInput{
		Doc: editor,
		RoleFiles: map[int][]PendingFile{
			1: {pending("viewer.png")},
			0: {pending("admin.png")},
		},
	})
	require.NoError(t, err)

	roles, _ := doc.First(KindRoles)
	require.Len(t, roles.Roles, 2)
	assert.Equal(t, []string{"https://cdn.example.com/admin.png"}, roles.Roles[0].Images)
	assert.Equal(t, []string{"https://cdn.example.com/viewer.png"}, roles.Roles[1].Images)
}

func TestAssembleRoleIndexOutOfRangeFailsWholeSave(t *testing.T) {
	a := NewAssembler(newFakeUploader())

	doc, err := a.Assemble(context.Background(), SaveInput{
		Doc:       NewEditableDocument(),
		RoleFiles: map[int][]PendingFile{3: {pending("ghost.png")}},
	})

	require.Error(t, err)
	assert.True(t, doc.Empty())
}

func TestAssembleUploadFailureAbortsWholeSave(t *testing.T) {
	uploader := newFakeUploader()
	uploader.failAfter = 1 // landing succeeds, paneles fails
	a := NewAssembler(uploader)

	desktop := pending("desk.png")
	doc, err := a.Assemble(context.Background(), SaveInput{
		Doc:            NewEditableDocument(),
		LandingDesktop: &desktop,
		PanelFiles:     []PendingFile{pending("panel.png")},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "paneles section")
	assert.True(t, doc.Empty())
}

func TestAssembleFirstBatchFailure(t *testing.T) {
	uploader := newFakeUploader()
	uploader.failAfter = 0
	a := NewAssembler(uploader)

	login := pending("login.png")
	doc, err := a.Assemble(context.Background(), SaveInput{
		Doc:       NewEditableDocument(),
		AuthLogin: &login,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "auth section")
	assert.True(t, doc.Empty())
}

func TestAssembleReturnsSerializedOrder(t *testing.T) {
	a := NewAssembler(newFakeUploader())

	doc, err := a.Assemble(context.Background(), SaveInput{Doc: NewEditableDocument()})
	require.NoError(t, err)

	require.Len(t, doc.Sections, 4)
	assert.Equal(t, KindLanding, doc.Sections[0].Kind)
	assert.Equal(t, KindPanels, doc.Sections[1].Kind)
	assert.Equal(t, KindRoles, doc.Sections[2].Kind)
	assert.Equal(t, KindAuth, doc.Sections[3].Kind)
}
