// Package mimetypes names the media types the content providers may answer with.
package mimetypes

import (
	"mime"

	"github.com/gabriel-vasile/mimetype"
)

type MIME string

const (
	Unknown         MIME = "unknown"
	TextPlain       MIME = "text/plain"
	TextHTML        MIME = "text/html"
	ApplicationJSON MIME = "application/json"
)

// Sniff detects the media type of a body from its content, ignoring what the server declared.
// JSON sub-types such as GeoJSON are reported as ApplicationJSON.
func Sniff(body []byte) MIME {
	detected := mimetype.Detect(body)
	for m := detected; m != nil; m = m.Parent() {
		if m.Is(string(ApplicationJSON)) {
			return ApplicationJSON
		}
	}
	mt, _, err := mime.ParseMediaType(detected.String())
	if err != nil {
		return Unknown
	}
	return MIME(mt)
}
