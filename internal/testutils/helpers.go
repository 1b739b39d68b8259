package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteProject writes content as project.json in a fresh temporary directory.
// It returns the project path and the (not yet existing) snapshot path next to it.
// An empty content leaves the project file absent.
func WriteProject(t *testing.T, content string) (input, output string) {
	t.Helper()

	dir := t.TempDir()
	input = filepath.Join(dir, "project.json")
	output = filepath.Join(dir, "static-project.json")
	if content != "" {
		require.NoError(t, os.WriteFile(input, []byte(content), 0644), "Failed to write project")
	}
	return input, output
}

// SetupSiteLayout recreates the directory structure the default paths expect:
//
//	<root>/projects/final_project/project.json
//	<root>/static/
//	<root>/scripts/   (working directory)
//
// and changes into the scripts directory for the rest of the test.
// It returns the absolute project and snapshot paths. An empty content leaves the project file absent.
func SetupSiteLayout(t *testing.T, content string) (input, output string) {
	t.Helper()

	root := t.TempDir()
	workdir := filepath.Join(root, "scripts")
	input = filepath.Join(root, "projects", "final_project", "project.json")
	output = filepath.Join(root, "static", "static-project.json")

	for _, dir := range []string{workdir, filepath.Dir(input), filepath.Dir(output)} {
		require.NoError(t, os.MkdirAll(dir, 0755), "Failed to create %s", dir)
	}
	if content != "" {
		require.NoError(t, os.WriteFile(input, []byte(content), 0644), "Failed to write project")
	}

	Chdir(t, workdir)
	return input, output
}

// Chdir changes the working directory to dir and restores it when the test ends.
// It stands in for testing.T.Chdir, which needs Go 1.24.
func Chdir(t *testing.T, dir string) {
	t.Helper()

	prev, err := os.Getwd()
	require.NoError(t, err, "Failed to get working directory")
	require.NoError(t, os.Chdir(dir), "Failed to change directory to %s", dir)
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("Failed to restore working directory: %v", err)
		}
	})
}
