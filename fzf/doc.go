// Package fzf wraps the fzf fuzzy-finder binary behind a typed Go API.
//
// FzfCLI spawns fzf, feeds candidate items over stdin, and returns the
// user's selections from stdout. Options mirror fzf's command-line flags;
// the flag names themselves live in the fzfcontract package.
//
// Usage:
//
//	client := fzf.NewFzfCLI(
//		fzf.WithMulti(),
//		fzf.WithPrompt("pick> "),
//	)
//	if err := client.VerifyVersion(); err != nil {
//		log.Fatal(err)
//	}
//	picked, err := client.Run(ctx, items)
//
// Run returns ErrNoMatch when the user's query matched nothing and
// ErrInterrupted when the finder was dismissed with ctrl-c or esc.
package fzf
