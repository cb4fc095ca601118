package episodes

import (
	"path"
	"strings"
)

var videoExtensions = map[string]struct{}{
	".mp4":  {},
	".m4v":  {},
	".mkv":  {},
	".avi":  {},
	".mov":  {},
	".flv":  {},
	".f4v":  {},
	".webm": {},
	".wmv":  {},
	".mpeg": {},
	".mpg":  {},
	".ts":   {},
	".m2ts": {},
	".hevc": {},
}

// IsVideoFile checks if a file name has a video container extension
func IsVideoFile(name string) bool {
	_, ok := videoExtensions[strings.ToLower(path.Ext(name))]
	return ok
}
