package main

import (
	"github.com/marcoimmel/IteratorTools/internal/cmd"
)

var version string // set by goreleaser

func init() {
	cmd.Version = version
}

func main() {
	cmd.Main()
}
