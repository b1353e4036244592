// Package typedfzf provides a typed Go wrapper around the fzf fuzzy-finder CLI.
//
// typedfzf exposes fzf's command-line interface through Go types instead of
// hand-assembled argument strings. Each subpackage can be used independently:
//
//   - fzf: the fzf process wrapper (feed items over stdin, collect selections)
//   - fzfcontract: flag names, version parsing, and version compatibility checks
//   - fzfconfig: named finder profiles loaded from a YAML file
//
// # Quick Start
//
// Run a finder over a list of items:
//
//	import "github.com/brunofauth/typed-fzf/fzf"
//	client := fzf.NewFzfCLI(fzf.WithMulti())
//	picked, _ := client.Run(ctx, []string{"apple", "banana", "cherry"})
//
// Verify the installed fzf before relying on wrapper behavior:
//
//	if err := client.VerifyVersion(); err != nil {
//		log.Fatal(err)
//	}
//
// # Design Philosophy
//
//   - Each package usable independently
//   - Interfaces for extensibility, concrete types for simplicity
//   - The installed fzf binary is the source of truth; fzfcontract records the
//     versions this library was validated against and flags everything else
package typedfzf
