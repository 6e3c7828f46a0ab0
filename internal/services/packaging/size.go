package pkgsrv

import (
	"io/fs"
	"path/filepath"

	pkgdomain "github.com/10Narratives/faaspack/internal/domains/packaging"
)

// ValidateDirSize sums the sizes of all regular files under root and fails
// when the sum exceeds limit. Symlinks are not followed, so a link into the
// tree is neither double-counted nor a cycle hazard. An empty directory
// always passes.
func ValidateDirSize(root string, limit int64) error {
	var total int64

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		total += info.Size()
		return nil
	})
	if err != nil {
		return err
	}

	if total > limit {
		return &pkgdomain.SizeExceededError{Actual: total, Limit: limit}
	}
	return nil
}
