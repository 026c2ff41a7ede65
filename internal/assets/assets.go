// Package assets holds the notes bundled with the binary.
package assets

import (
	"embed"
	"fmt"
	"os"

	"github.com/spf13/afero"
)

// Files contains every category folder under "files/".
//
//go:embed files
var Files embed.FS

// Bundle returns the embedded notes as a read-only filesystem.
func Bundle() afero.Fs {
	return afero.NewReadOnlyFs(&afero.FromIOFS{FS: Files})
}

// Dir returns a read-only filesystem rooted at dir. The directory must use
// the same layout as the embedded bundle.
func Dir(dir string) (afero.Fs, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open assets directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("assets path %s is not a directory", dir)
	}
	return afero.NewReadOnlyFs(afero.NewBasePathFs(afero.NewOsFs(), dir)), nil
}
