package screenshots

import (
	"testing"
	"testing/fstest"

	"github.com/piper-lan/piper-site/internal/ui/features"
)

func fixtureFile(t *testing.T) *fstest.MapFile {
	t.Helper()
	return &fstest.MapFile{Data: features.PNG(t, 8, 5)}
}
