package main

import (
	"os"

	"github.com/miajio/sfxtrie/cmd/sfxtrie/command"
)

func main() {
	// cobra已将错误输出到stderr
	if err := command.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
