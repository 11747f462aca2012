//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir    string // SNIPREG_HOME, holds config.yaml and the user file
	GlobalFile string // SNIPREG_GLOBAL_FILE
	ProjectDir string // working directory for the project layer
}

// setupTestEnv creates isolated temp directories and sets environment
// variables so config and snippet lookups are sandboxed. The working
// directory is switched to the project directory for the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:    t.TempDir(),
		GlobalFile: filepath.Join(t.TempDir(), "global.yaml"),
		ProjectDir: t.TempDir(),
	}

	t.Setenv("SNIPREG_HOME", env.HomeDir)
	t.Setenv("SNIPREG_GLOBAL_FILE", env.GlobalFile)
	t.Chdir(env.ProjectDir)

	viper.Reset()
	t.Cleanup(viper.Reset)
	return env
}

// UserFile is the default user snippet file under SNIPREG_HOME.
func (e *testEnv) UserFile() string {
	return filepath.Join(e.HomeDir, "snippets.yaml")
}

// ProjectFile is the default project snippet file.
func (e *testEnv) ProjectFile() string {
	return filepath.Join(e.ProjectDir, ".snippets.yaml")
}

// writeSnippets writes a snippet file, creating parent directories.
func writeSnippets(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}
