package main

import "embed"

// configFS holds the default configuration shipped with the binary
//
//go:embed configs
var configFS embed.FS
