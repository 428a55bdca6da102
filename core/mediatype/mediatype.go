// Package mediatype resolves the Content-Type override attached to uploads.
//
// Only HTML5 streaming video formats are overridden so browsers can play the object straight
// from a presigned URL. Every other extension leaves content-type inference to the backend.
package mediatype

import "path/filepath"

// videoTypes is read-only after package initialisation.
var videoTypes = map[string]string{
	"ogv":  "video/ogg",
	"mp4":  "video/mp4",
	"webm": "video/webm",
}

// Resolve returns the content type for the extension of name and true, or "" and false when
// the extension has no override. Extensions are matched literally, case included.
func Resolve(name string) (string, bool) {
	ct, ok := videoTypes[Extension(name)]
	return ct, ok
}

// Extension returns the text after the last dot of the base name, without the dot.
func Extension(name string) string {
	ext := filepath.Ext(filepath.Base(name))
	if ext == "" {
		return ""
	}
	return ext[1:]
}

// Extensions lists the extensions that carry an override.
func Extensions() []string {
	exts := make([]string, 0, len(videoTypes))
	for ext := range videoTypes {
		exts = append(exts, ext)
	}
	return exts
}
