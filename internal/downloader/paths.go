package downloader

import (
	"fmt"
	"os"
	"path/filepath"

	"tubeget/internal/utils"
)

// EnsureOutputDir creates the download directory (and parents) if
// missing. A non-directory collision or permission failure surfaces as
// a filesystem error.
func EnsureOutputDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return utils.NewError(utils.ErrFileSystem, "%q exists and is not a directory", dir)
		}
		return nil
	}
	if !os.IsNotExist(err) {
		return utils.WrapError(utils.ErrFileSystem, err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return utils.WrapError(utils.ErrFileSystem, fmt.Errorf("error creating %q: %v", dir, err))
	}
	return nil
}

// OutputTemplate returns the yt-dlp output template under dir. Title
// sanitation happens engine-side via --restrict-filenames.
func OutputTemplate(dir string) string {
	return filepath.Join(dir, "%(title)s.%(ext)s")
}
