// Package target contains the structs describing the file a battery of
// checks runs against.
package target

import "github.com/spf13/afero"

// Reference holds all things target-related. The engine resolves a Reference
// once per run and passes it to every check.
type Reference struct {
	// Path is the location of the file under test, as provided by the caller.
	Path string
	// Contents is the full text of the file. It is only populated when the
	// file exists; content checks operate on this value and never re-read
	// the file.
	Contents []byte
	// ScratchDir is the per-run scratch directory managed by the engine.
	ScratchDir string
	// FS is the filesystem Path is resolved against.
	FS afero.Fs
}
