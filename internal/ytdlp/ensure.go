package ytdlp

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"tubeget/internal/utils"
)

// EnsureYtdlp locates the yt-dlp binary: PATH first, then next to the
// tubeget executable, then a self-fetched copy from the latest release.
func EnsureYtdlp(cfg utils.HTTPClientConfig) (string, error) {
	path, err := exec.LookPath("yt-dlp")
	if err == nil {
		return path, nil
	}
	execDir, err := os.Executable()
	if err == nil {
		ytdlpPath := filepath.Join(filepath.Dir(execDir), "yt-dlp")
		if runtime.GOOS == "windows" {
			ytdlpPath += ".exe"
		}
		if _, err := os.Stat(ytdlpPath); err == nil {
			return ytdlpPath, nil
		}
	}
	return downloadYtdlp(cfg)
}

// EnsureFFmpeg locates ffmpeg on PATH or next to the executable. There
// is no self-fetch fallback; audio extraction fails without it.
func EnsureFFmpeg() (string, error) {
	path, err := exec.LookPath("ffmpeg")
	if err == nil {
		return path, nil
	}
	execDir, err := os.Executable()
	if err == nil {
		ffmpegPath := filepath.Join(filepath.Dir(execDir), "ffmpeg")
		if runtime.GOOS == "windows" {
			ffmpegPath += ".exe"
		}
		if _, err := os.Stat(ffmpegPath); err == nil {
			return ffmpegPath, nil
		}
	}
	return "", utils.NewError(utils.ErrDependencyMissing, "ffmpeg not found in PATH, please install manually")
}

func downloadYtdlp(cfg utils.HTTPClientConfig) (string, error) {
	goos := runtime.GOOS
	goarch := runtime.GOARCH
	var filename string
	switch {
	case goos == "windows" && goarch == "amd64":
		filename = "yt-dlp.exe"
	case goos == "windows" && goarch == "arm64":
		filename = "yt-dlp_arm64.exe"
	case goos == "linux" && goarch == "amd64":
		filename = "yt-dlp_linux"
	case goos == "linux" && goarch == "arm64":
		filename = "yt-dlp_linux_aarch64"
	case goos == "darwin":
		filename = "yt-dlp_macos"
	default:
		return "", utils.NewError(utils.ErrDependencyMissing, "no yt-dlp release for %s/%s", goos, goarch)
	}

	tempDir := utils.TempDirName
	if err := os.MkdirAll(tempDir, 0755); err != nil {
		return "", utils.WrapError(utils.ErrFileSystem, fmt.Errorf("error creating temp directory: %v", err))
	}
	downloadURL := fmt.Sprintf("https://github.com/yt-dlp/yt-dlp/releases/latest/download/%s", filename)
	filePath := filepath.Join(tempDir, "yt-dlp")
	if goos == "windows" {
		filePath += ".exe"
	}
	if err := downloadFile(cfg, downloadURL, filePath); err != nil {
		return "", utils.WrapError(utils.ErrDependencyMissing, fmt.Errorf("error fetching yt-dlp: %v", err))
	}
	if goos != "windows" {
		if err := os.Chmod(filePath, 0755); err != nil {
			return "", utils.WrapError(utils.ErrFileSystem, fmt.Errorf("error setting permissions: %v", err))
		}
	}
	return filePath, nil
}

func downloadFile(cfg utils.HTTPClientConfig, url, filepath string) error {
	client := utils.NewTubegetHTTPClient(cfg)
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("bad status: %s", resp.Status)
	}
	out, err := os.Create(filepath)
	if err != nil {
		return err
	}
	defer out.Close()
	_, err = io.Copy(out, resp.Body)
	return err
}
