package fzfcontract

// fzf flag names used by this library - update here when fzf changes.
//
// Source: fzf --help and the bundled man pages.
const (
	// Search
	FlagQuery     = "--query"
	FlagExact     = "--exact"
	FlagFilter    = "--filter"
	FlagDelimiter = "--delimiter"
	FlagNth       = "--nth"
	FlagWithNth   = "--with-nth"
	FlagNoSort    = "--no-sort"
	FlagTac       = "--tac"
	FlagTiebreak  = "--tiebreak"

	// Selection
	FlagMulti      = "--multi"
	FlagNoMulti    = "--no-multi"
	FlagSelectOne  = "--select-1"
	FlagExitZero   = "--exit-0"
	FlagPrintQuery = "--print-query"
	FlagExpect     = "--expect"

	// Interface
	FlagPrompt      = "--prompt"
	FlagHeader      = "--header"
	FlagHeaderLines = "--header-lines"
	FlagHeight      = "--height"
	FlagLayout      = "--layout"
	FlagReverse     = "--reverse"
	FlagBorder      = "--border"
	FlagCycle       = "--cycle"
	FlagAnsi        = "--ansi"
	FlagBind        = "--bind"

	// Preview
	FlagPreview       = "--preview"
	FlagPreviewWindow = "--preview-window"

	// I/O framing
	FlagRead0  = "--read0"
	FlagPrint0 = "--print0"

	FlagVersion = "--version"
)

// fzf exit statuses.
const (
	ExitOK          = 0   // normal exit
	ExitNoMatch     = 1   // no match for the given query
	ExitError       = 2   // fzf reported an error
	ExitInterrupted = 130 // interrupted with ctrl-c or esc
)
