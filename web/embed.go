// Package web embeds the console's HTML templates so the binary ships
// self-contained.
package web

import "embed"

//go:embed templates/*.html
var Templates embed.FS
