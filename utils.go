package main

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// Create hyperlink
func hyperlink(text, link string) string {
	if link == "" {
		return text
	}
	return fmt.Sprintf("\033]8;;%s\033\\%s\033]8;;\033\\", link, text)
}

// fileURL turns an absolute local path into a file:// link. Anything else
// gets no link.
func fileURL(path string) string {
	if !filepath.IsAbs(path) {
		return ""
	}
	p := filepath.ToSlash(path)
	if !strings.HasPrefix(p, "/") {
		// C:/Anime/ep01.mkv -> file:///C:/Anime/ep01.mkv
		p = "/" + p
	}
	u := url.URL{Scheme: "file", Path: p}
	return u.String()
}

// truncate shortens s to width runes, keeping the end of the path visible.
func truncate(s string, width int) string {
	runes := []rune(s)
	if width <= 0 || len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[len(runes)-width:])
	}
	return "..." + string(runes[len(runes)-width+3:])
}
