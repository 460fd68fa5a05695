// Package cfg loads tool defaults from an optional config file.
// Command-line flags always win over file values.
package cfg

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Settings struct {
	DownloadDir string
	Quality     string
	Workers     int
	HistoryDB   string
}

// Load reads config.yaml from ~/.config/tubeget (or the working
// directory) and fills in defaults for anything unset. A missing file
// is not an error.
func Load() Settings {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	configDir := ""
	if dir, err := os.UserConfigDir(); err == nil {
		configDir = filepath.Join(dir, "tubeget")
		v.AddConfigPath(configDir)
	}
	v.AddConfigPath(".")

	v.SetDefault("download_dir", "downloads")
	v.SetDefault("quality", "720p")
	v.SetDefault("workers", 1)
	if configDir != "" {
		v.SetDefault("history_db", filepath.Join(configDir, "history.db"))
	} else {
		v.SetDefault("history_db", "")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Warn().Str("op", "cfg/load").Err(err).Msg("Failed to read config file, using defaults")
		}
	} else {
		log.Debug().Str("op", "cfg/load").Msgf("Loaded config from %s", v.ConfigFileUsed())
	}

	return Settings{
		DownloadDir: v.GetString("download_dir"),
		Quality:     v.GetString("quality"),
		Workers:     v.GetInt("workers"),
		HistoryDB:   v.GetString("history_db"),
	}
}

// OpenHistoryPath makes sure the directory holding the history
// database exists and returns the path, or empty when history is
// disabled.
func (s Settings) OpenHistoryPath() string {
	if s.HistoryDB == "" {
		return ""
	}
	if err := os.MkdirAll(filepath.Dir(s.HistoryDB), 0755); err != nil {
		log.Warn().Str("op", "cfg/history").Err(err).Msg("Cannot create history directory, history disabled")
		return ""
	}
	return s.HistoryDB
}
