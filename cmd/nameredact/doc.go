// Package nameredact provides the command-line interface for the nameredact
// tool. It configures subcommands (text, csv, recognizers), parses flags,
// and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/nameredact/nameredact/cmd/nameredact"
//	func main() { nameredact.Execute() }
package nameredact
