package prefabs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

// TuningFile is the default gameplay tuning spec.
const TuningFile = "tuning.yaml"

// Dir is the on-disk directory checked before the embedded copy.
var Dir = "prefabs"

//go:embed tuning.yaml
var PrefabsFS embed.FS

// Load returns the named spec, preferring a copy on disk under prefabs/ so
// edits can be picked up without rebuilding.
func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
		return data, nil
	}
	return PrefabsFS.ReadFile(clean)
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		return after
	}
	return s
}

func diskPrefabPath(clean string) string {
	return filepath.Join(Dir, filepath.FromSlash(clean))
}
