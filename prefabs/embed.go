package prefabs

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/milk9111/hover/hover"
)

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

//go:embed *.yaml
var PrefabsFS embed.FS

// diskRoot is checked before the embedded files so edits show up without a rebuild.
var diskRoot = "prefabs"

// SetDiskRoot changes the directory searched before the embedded files.
// An empty dir disables disk overrides.
func SetDiskRoot(dir string) {
	diskRoot = dir
}

func DiskRoot() string {
	return diskRoot
}

func LoadScript(name string) ([]byte, error) {
	clean := cleanScriptPath(name)
	if data, ok := readDisk(clean); ok {
		return data, nil
	}
	return ScriptsFS.ReadFile(clean)
}

func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if data, ok := readDisk(clean); ok {
		return data, nil
	}
	return PrefabsFS.ReadFile(clean)
}

// LoadHoverConfig reads the tracker options from hover.yaml.
func LoadHoverConfig() (hover.Config, error) {
	data, err := Load("hover.yaml")
	if err != nil {
		return hover.DefaultConfig(), fmt.Errorf("prefabs: load hover.yaml: %w", err)
	}
	return hover.ParseConfig(data)
}

func readDisk(clean string) ([]byte, bool) {
	if diskRoot == "" || clean == "" {
		return nil, false
	}
	data, err := os.ReadFile(filepath.Join(diskRoot, filepath.FromSlash(clean)))
	if err != nil {
		return nil, false
	}
	return data, true
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "prefabs/") {
		return strings.TrimPrefix(s, "prefabs/")
	}
	return s
}

func cleanScriptPath(path string) string {
	if path == "" {
		return ""
	}

	s := filepath.ToSlash(path)

	if after, ok := strings.CutPrefix(s, "prefabs/scripts/"); ok {
		s = after
	}

	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		s = after
	}

	if after, ok := strings.CutPrefix(s, "scripts/"); ok {
		s = after
	}

	return fmt.Sprintf("scripts/%s", s)
}
