package content

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// PendingFile is a locally selected image that has not been uploaded yet.
type PendingFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// Uploader stores a batch of files and returns their public URLs in
// submission order. Implementations must be all-or-nothing: on any failure
// they return no URLs.
type Uploader interface {
	UploadBatch(ctx context.Context, files []PendingFile) ([]string, error)
}

// SaveInput carries the editor state plus the files still pending upload for
// each section. Landing and auth slots take at most one file each; paneles
// and role galleries take ordered batches appended after the already
// persisted URLs.
type SaveInput struct {
	Doc EditableDocument

	LandingDesktop *PendingFile
	LandingMobile  *PendingFile
	PanelFiles     []PendingFile
	RoleFiles      map[int][]PendingFile
	AuthLogin      *PendingFile
	AuthRegister   *PendingFile
}

// Assembler turns editor state with pending uploads into a persistable
// document. Uploads run section by section in fixed order (landing, paneles,
// roles, auth); any individual failure aborts the whole save so the project
// record is never updated with a partially uploaded document. Objects
// already uploaded by earlier sections are left behind in the bucket, which
// is an accepted inconsistency window.
type Assembler struct {
	uploader Uploader
	logger   zerolog.Logger
}

func NewAssembler(uploader Uploader) Assembler {
	return Assembler{
		uploader: uploader,
		logger:   log.With().Str("component", "contentAssembler").Logger(),
	}
}

// Assemble uploads every pending file and returns the final document. The
// returned document is only valid when err is nil.
func (a Assembler) Assemble(ctx context.Context, in SaveInput) (Document, error) {
	doc := in.Doc

	landingURLs, err := a.uploadSlots(ctx, "landing", in.LandingDesktop, in.LandingMobile)
	if err != nil {
		return Document{}, err
	}
	if landingURLs[0] != "" {
		doc.Landing.DesktopImage = landingURLs[0]
	}
	if landingURLs[1] != "" {
		doc.Landing.MobileImage = landingURLs[1]
	}

	if len(in.PanelFiles) > 0 {
		urls, err := a.uploader.UploadBatch(ctx, in.PanelFiles)
		if err != nil {
			return Document{}, fmt.Errorf("paneles section: %w", err)
		}
		doc.Panels.Images = append(copyStrings(doc.Panels.Images), urls...)
	}

	// Role batches run in ascending role order so uploaded URL ordering is
	// deterministic; one failed role aborts the whole roles section.
	for _, i := range sortedRoleIndexes(in.RoleFiles) {
		files := in.RoleFiles[i]
		if len(files) == 0 {
			continue
		}
		if i < 0 || i >= len(doc.Roles.Roles) {
			return Document{}, fmt.Errorf("roles section: no role at index %d", i)
		}
		urls, err := a.uploader.UploadBatch(ctx, files)
		if err != nil {
			return Document{}, fmt.Errorf("roles section, role %d: %w", i, err)
		}
		for _, url := range urls {
			doc = doc.WithRoleImage(i, url)
		}
	}

	authURLs, err := a.uploadSlots(ctx, "auth", in.AuthLogin, in.AuthRegister)
	if err != nil {
		return Document{}, err
	}
	if authURLs[0] != "" {
		doc.Auth.LoginImage = authURLs[0]
	}
	if authURLs[1] != "" {
		doc.Auth.RegisterImage = authURLs[1]
	}

	a.logger.Debug().
		Int("panelImages", len(doc.Panels.Images)).
		Int("roles", len(doc.Roles.Roles)).
		Msg("assembled content document")

	return doc.Serialize(), nil
}

// uploadSlots uploads up to two fixed-slot files in one batch and maps the
// returned URLs back to their slots. Missing slots come back as "".
func (a Assembler) uploadSlots(ctx context.Context, section string, slots ...*PendingFile) ([]string, error) {
	out := make([]string, len(slots))

	var batch []PendingFile
	var positions []int
	for i, f := range slots {
		if f != nil {
			batch = append(batch, *f)
			positions = append(positions, i)
		}
	}
	if len(batch) == 0 {
		return out, nil
	}

	urls, err := a.uploader.UploadBatch(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("%s section: %w", section, err)
	}
	for i, url := range urls {
		out[positions[i]] = url
	}
	return out, nil
}

func sortedRoleIndexes(files map[int][]PendingFile) []int {
	indexes := make([]int, 0, len(files))
	for i := range files {
		indexes = append(indexes, i)
	}
	sort.Ints(indexes)
	return indexes
}
