// Package main is the entry point for the badwords CLI.
package main

import "badwords.dev/pkg/badwords/cmd"

func main() {
	cmd.Execute()
}
