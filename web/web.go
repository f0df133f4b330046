// Package web embeds the static landing page served on unmatched paths.
package web

import _ "embed"

//go:embed public/index.html
var indexHTML []byte

// Index returns the landing page HTML.
func Index() []byte {
	return indexHTML
}
