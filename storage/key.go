package storage

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ObjectKey generates a collision-resistant bucket key for an uploaded file:
// millisecond timestamp prefix, random suffix, original extension. The
// bucket is a flat namespace, so the key must never collide with an
// existing object.
func ObjectKey(fileName string) string {
	return objectKeyAt(time.Now(), randomSuffix(), fileName)
}

func objectKeyAt(t time.Time, suffix, fileName string) string {
	ext := strings.ToLower(path.Ext(fileName))
	return fmt.Sprintf("%d-%s%s", t.UnixMilli(), suffix, ext)
}

func randomSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}
