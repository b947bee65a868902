// Package data provides the embedded static board data.
package data

import "embed"

// dataFS embeds the JSON board and ticket files at build time.
//
//go:embed *.json
var dataFS embed.FS

// FS returns the embedded filesystem containing the board data.
func FS() embed.FS {
	return dataFS
}
