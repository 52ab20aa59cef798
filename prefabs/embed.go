package prefabs

import (
	"embed"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

const (
	PlayerFile     = "player.yaml"
	EnemyFile      = "enemy.yaml"
	ProjectileFile = "projectile.yaml"
	ParticleFile   = "particle.yaml"
	BackgroundFile = "background.yaml"
)

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

//go:embed *.yaml
var PrefabsFS embed.FS

// Load returns a prefab by name. A copy under prefabs/ on disk wins over the
// embedded one so tuning can be edited without a rebuild.
func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return PrefabsFS.ReadFile(clean)
}

// LoadScript returns a script by name, with the same disk override as Load.
func LoadScript(name string) ([]byte, error) {
	clean := cleanScriptPath(name)
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return ScriptsFS.ReadFile(clean)
}

// ModTime reports the modification time of the on-disk override, if any.
func ModTime(name string) (time.Time, bool) {
	info, err := os.Stat(diskPath(cleanPrefabPath(name)))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

// cleanPrefabPath reduces "prefabs/x.yaml", "./x.yaml" and "x.yaml" to the
// embedded name.
func cleanPrefabPath(name string) string {
	s := path.Clean(filepath.ToSlash(name))
	s = strings.TrimPrefix(s, "prefabs/")
	if s == "." {
		return ""
	}
	return s
}

func cleanScriptPath(name string) string {
	s := cleanPrefabPath(name)
	s = strings.TrimPrefix(s, "scripts/")
	return path.Join("scripts", s)
}

func diskPath(clean string) string {
	return filepath.Join("prefabs", filepath.FromSlash(clean))
}
