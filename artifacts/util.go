package artifacts

import "path/filepath"

// resolveFullPath normalizes path to an absolute path, relative to the
// current working directory if necessary.
func resolveFullPath(path string) string {
	if !filepath.IsAbs(path) {
		full, err := filepath.Abs(path)
		if err != nil {
			return path
		}
		return full
	}
	return path
}
