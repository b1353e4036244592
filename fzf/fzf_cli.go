package fzf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/brunofauth/typed-fzf/fzfcontract"
)

// Sentinel errors for finder outcomes.
var (
	// ErrNoMatch indicates fzf exited because nothing matched the query.
	ErrNoMatch = errors.New("fzf: no match")

	// ErrInterrupted indicates the user dismissed the finder with ctrl-c or esc.
	ErrInterrupted = errors.New("fzf: interrupted by user")
)

// Layout specifies where fzf draws the prompt and list.
type Layout string

// Layout constants.
const (
	LayoutDefault     Layout = "default"
	LayoutReverse     Layout = "reverse"
	LayoutReverseList Layout = "reverse-list"
)

// FzfCLI runs fzf over a list of items.
type FzfCLI struct {
	path    string
	workdir string
	timeout time.Duration

	// Search behavior
	query     string
	exact     bool
	noSort    bool
	tac       bool
	delimiter string
	nth       string

	// Selection behavior
	multi     bool
	selectOne bool
	exitZero  bool

	// Interface
	prompt      string
	header      string
	headerLines int
	height      string
	layout      Layout
	cycle       bool
	ansi        bool
	binds       []string

	// Preview
	preview       string
	previewWindow string

	// Environment control
	extraEnv map[string]string
}

// FzfOption configures FzfCLI.
type FzfOption func(*FzfCLI)

// NewFzfCLI creates a new fzf client.
// Assumes "fzf" is available in PATH unless overridden with WithFzfPath.
// No timeout is imposed by default; the finder is interactive and waits for
// the user.
func NewFzfCLI(opts ...FzfOption) *FzfCLI {
	c := &FzfCLI{
		path: "fzf",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithFzfPath sets the path to the fzf binary.
func WithFzfPath(path string) FzfOption {
	return func(c *FzfCLI) { c.path = path }
}

// WithWorkdir sets the working directory for the fzf process. Relevant when
// a preview command resolves relative paths.
func WithWorkdir(dir string) FzfOption {
	return func(c *FzfCLI) { c.workdir = dir }
}

// WithTimeout bounds how long the finder may stay open. Zero means no limit.
func WithTimeout(d time.Duration) FzfOption {
	return func(c *FzfCLI) { c.timeout = d }
}

// WithQuery pre-fills the finder's query string.
func WithQuery(query string) FzfOption {
	return func(c *FzfCLI) { c.query = query }
}

// WithExact enables exact matching instead of fuzzy matching.
func WithExact() FzfOption {
	return func(c *FzfCLI) { c.exact = true }
}

// WithNoSort keeps items in input order instead of relevance order.
func WithNoSort() FzfOption {
	return func(c *FzfCLI) { c.noSort = true }
}

// WithTac reverses the order of the input items.
func WithTac() FzfOption {
	return func(c *FzfCLI) { c.tac = true }
}

// WithDelimiter sets the field delimiter used by WithNth.
func WithDelimiter(delim string) FzfOption {
	return func(c *FzfCLI) { c.delimiter = delim }
}

// WithNth limits matching to the given field index expression, e.g. "2..".
func WithNth(nth string) FzfOption {
	return func(c *FzfCLI) { c.nth = nth }
}

// WithMulti allows selecting multiple items with tab.
func WithMulti() FzfOption {
	return func(c *FzfCLI) { c.multi = true }
}

// WithSelectOne skips the finder when exactly one item matches.
func WithSelectOne() FzfOption {
	return func(c *FzfCLI) { c.selectOne = true }
}

// WithExitZero makes fzf exit normally when nothing matches, so Run returns
// an empty selection instead of ErrNoMatch.
func WithExitZero() FzfOption {
	return func(c *FzfCLI) { c.exitZero = true }
}

// WithPrompt sets the prompt string.
func WithPrompt(prompt string) FzfOption {
	return func(c *FzfCLI) { c.prompt = prompt }
}

// WithHeader shows a fixed header line above the list.
func WithHeader(header string) FzfOption {
	return func(c *FzfCLI) { c.header = header }
}

// WithHeaderLines treats the first n input items as a sticky header.
func WithHeaderLines(n int) FzfOption {
	return func(c *FzfCLI) { c.headerLines = n }
}

// WithHeight sets the finder height, e.g. "40%" or "20".
func WithHeight(height string) FzfOption {
	return func(c *FzfCLI) { c.height = height }
}

// WithLayout sets the finder layout.
func WithLayout(layout Layout) FzfOption {
	return func(c *FzfCLI) { c.layout = layout }
}

// WithCycle enables cyclic scrolling through the list.
func WithCycle() FzfOption {
	return func(c *FzfCLI) { c.cycle = true }
}

// WithAnsi enables processing of ANSI color codes in items.
func WithAnsi() FzfOption {
	return func(c *FzfCLI) { c.ansi = true }
}

// WithBind adds a key binding in fzf's "key:action" syntax.
// Can be called multiple times.
func WithBind(binding string) FzfOption {
	return func(c *FzfCLI) { c.binds = append(c.binds, binding) }
}

// WithPreview sets the preview command; "{}" is replaced with the current item.
func WithPreview(command string) FzfOption {
	return func(c *FzfCLI) { c.preview = command }
}

// WithPreviewWindow positions the preview window, e.g. "right:60%".
func WithPreviewWindow(layout string) FzfOption {
	return func(c *FzfCLI) { c.previewWindow = layout }
}

// WithEnvVar adds an environment variable to the fzf process.
func WithEnvVar(key, value string) FzfOption {
	return func(c *FzfCLI) {
		if c.extraEnv == nil {
			c.extraEnv = make(map[string]string)
		}
		c.extraEnv[key] = value
	}
}

// buildArgs assembles the fzf argument list from the configured options.
func (c *FzfCLI) buildArgs() []string {
	var args []string

	if c.query != "" {
		args = append(args, fzfcontract.FlagQuery, c.query)
	}
	if c.exact {
		args = append(args, fzfcontract.FlagExact)
	}
	if c.noSort {
		args = append(args, fzfcontract.FlagNoSort)
	}
	if c.tac {
		args = append(args, fzfcontract.FlagTac)
	}
	if c.delimiter != "" {
		args = append(args, fzfcontract.FlagDelimiter, c.delimiter)
	}
	if c.nth != "" {
		args = append(args, fzfcontract.FlagNth, c.nth)
	}

	if c.multi {
		args = append(args, fzfcontract.FlagMulti)
	}
	if c.selectOne {
		args = append(args, fzfcontract.FlagSelectOne)
	}
	if c.exitZero {
		args = append(args, fzfcontract.FlagExitZero)
	}

	if c.prompt != "" {
		args = append(args, fzfcontract.FlagPrompt, c.prompt)
	}
	if c.header != "" {
		args = append(args, fzfcontract.FlagHeader, c.header)
	}
	if c.headerLines > 0 {
		args = append(args, fzfcontract.FlagHeaderLines, fmt.Sprint(c.headerLines))
	}
	if c.height != "" {
		args = append(args, fzfcontract.FlagHeight, c.height)
	}
	if c.layout != "" {
		args = append(args, fzfcontract.FlagLayout, string(c.layout))
	}
	if c.cycle {
		args = append(args, fzfcontract.FlagCycle)
	}
	if c.ansi {
		args = append(args, fzfcontract.FlagAnsi)
	}
	for _, b := range c.binds {
		args = append(args, fzfcontract.FlagBind, b)
	}

	if c.preview != "" {
		args = append(args, fzfcontract.FlagPreview, c.preview)
	}
	if c.previewWindow != "" {
		args = append(args, fzfcontract.FlagPreviewWindow, c.previewWindow)
	}

	return args
}

// setupCmd configures the command with working directory and environment.
func (c *FzfCLI) setupCmd(cmd *exec.Cmd) {
	if c.workdir != "" {
		cmd.Dir = c.workdir
	}

	// If Env stays nil the command inherits the parent environment.
	if len(c.extraEnv) > 0 {
		cmd.Env = os.Environ()
		for k, v := range c.extraEnv {
			cmd.Env = setEnvVar(cmd.Env, k, v)
		}
	}
}

// setEnvVar updates or adds an environment variable in an env slice.
func setEnvVar(env []string, key, value string) []string {
	prefix := key + "="
	for i, e := range env {
		if strings.HasPrefix(e, prefix) {
			env[i] = prefix + value
			return env
		}
	}
	return append(env, prefix+value)
}

// Run opens the finder over items and returns the selected ones.
// fzf draws its interface on the controlling terminal, so captured stdout
// only ever carries the selection. Returns ErrNoMatch when the query matched
// nothing (unless WithExitZero is set) and ErrInterrupted on ctrl-c or esc.
func (c *FzfCLI) Run(ctx context.Context, items []string) ([]string, error) {
	return c.run(ctx, c.buildArgs(), items)
}

// Filter runs fzf in non-interactive filter mode: items matching query are
// returned in relevance order without opening the finder.
func (c *FzfCLI) Filter(ctx context.Context, query string, items []string) ([]string, error) {
	args := append(c.buildArgs(), fzfcontract.FlagFilter, query)
	selections, err := c.run(ctx, args, items)
	if errors.Is(err, ErrNoMatch) {
		return nil, nil
	}
	return selections, err
}

func (c *FzfCLI) run(ctx context.Context, args []string, items []string) ([]string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, c.path, args...)
	c.setupCmd(cmd)

	var stdout, stderr bytes.Buffer
	cmd.Stdin = strings.NewReader(joinItems(items))
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			switch exitErr.ExitCode() {
			case fzfcontract.ExitNoMatch:
				return nil, ErrNoMatch
			case fzfcontract.ExitInterrupted:
				return nil, ErrInterrupted
			}
		}
		return nil, fmt.Errorf("fzf failed: %w: %s", err, strings.TrimSpace(stderr.String()))
	}

	return splitSelections(stdout.String()), nil
}

func joinItems(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return strings.Join(items, "\n") + "\n"
}

func splitSelections(out string) []string {
	out = strings.TrimRight(out, "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

// Version reports the installed fzf's version.
func (c *FzfCLI) Version() (fzfcontract.Version, error) {
	return fzfcontract.DetectVersion(c.path)
}

// VerifyVersion checks the installed fzf against the versions this library
// was validated against. Call it once at startup, before relying on wrapper
// behavior; a non-nil result carries the full diagnostic and should abort
// the caller's use of this package.
func (c *FzfCLI) VerifyVersion() error {
	return fzfcontract.CheckVersion(c.path)
}
