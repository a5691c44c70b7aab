// Package main provides the entry point for the siro-files CLI application.
package main

import (
	"fmt"
	"os"

	"fjacquet/siro-files/cmd/channels"
	"fjacquet/siro-files/cmd/generate"
	"fjacquet/siro-files/cmd/parse"
	"fjacquet/siro-files/cmd/rendition"
	"fjacquet/siro-files/cmd/root"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(parse.Cmd)
	root.Cmd.AddCommand(generate.Cmd)
	root.Cmd.AddCommand(rendition.Cmd)
	root.Cmd.AddCommand(channels.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
