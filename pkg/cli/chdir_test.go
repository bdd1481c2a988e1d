package cli

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// chdir changes the working directory for the duration of the test and
// restores it afterwards. It mirrors testing.T.Chdir, which needs a newer
// Go toolchain than this module targets.
func chdir(t *testing.T, dir string) {
	t.Helper()

	oldwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	switch runtime.GOOS {
	case "windows", "plan9":
		// These platforms do not use the PWD variable.
	default:
		if !filepath.IsAbs(dir) {
			dir, err = os.Getwd()
			if err != nil {
				t.Fatal(err)
			}
		}
		t.Setenv("PWD", dir)
	}
	t.Cleanup(func() {
		// Not safe to continue the test run if the original working
		// directory cannot be restored.
		if err := os.Chdir(oldwd); err != nil {
			panic("chdir: restore working directory: " + err.Error())
		}
	})
}
