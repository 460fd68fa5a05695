package downloader

import (
	"regexp"

	"tubeget/internal/utils"
)

// Accepted YouTube URL shapes. Anything else is rejected before the
// engine is ever invoked.
var youtubePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(?:https?://)?(?:www\.)?youtube\.com/watch\?v=[\w-]+`),
	regexp.MustCompile(`^(?:https?://)?(?:www\.)?youtu\.be/[\w-]+`),
	regexp.MustCompile(`^(?:https?://)?(?:www\.)?youtube\.com/embed/[\w-]+`),
	regexp.MustCompile(`^(?:https?://)?(?:www\.)?youtube\.com/v/[\w-]+`),
}

// ValidateURL checks the raw string against the accepted YouTube URL
// shapes. No network access happens here.
func ValidateURL(rawURL string) error {
	for _, pattern := range youtubePatterns {
		if pattern.MatchString(rawURL) {
			return nil
		}
	}
	return utils.NewError(utils.ErrInvalidURL, "not a recognized YouTube URL: %q", rawURL)
}
