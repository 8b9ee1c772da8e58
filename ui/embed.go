// Package ui holds the static files served by the web host.
package ui

import "embed"

// Files contains the static directory with the HTML shell, stylesheets, and the catalog data files.
//
//go:embed static
var Files embed.FS
