package fzf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildArgs(t *testing.T) {
	t.Run("defaults produce no args", func(t *testing.T) {
		c := NewFzfCLI()
		assert.Empty(t, c.buildArgs())
	})

	t.Run("search options", func(t *testing.T) {
		c := NewFzfCLI(
			WithQuery("main.go"),
			WithExact(),
			WithNoSort(),
			WithDelimiter(":"),
			WithNth("2.."),
		)
		args := c.buildArgs()
		assert.Equal(t, []string{
			"--query", "main.go",
			"--exact",
			"--no-sort",
			"--delimiter", ":",
			"--nth", "2..",
		}, args)
	})

	t.Run("selection and interface options", func(t *testing.T) {
		c := NewFzfCLI(
			WithMulti(),
			WithSelectOne(),
			WithPrompt("pick> "),
			WithHeaderLines(1),
			WithHeight("40%"),
			WithLayout(LayoutReverse),
			WithBind("ctrl-a:select-all"),
			WithBind("ctrl-d:deselect-all"),
		)
		args := c.buildArgs()
		assert.Contains(t, args, "--multi")
		assert.Contains(t, args, "--select-1")
		assert.Equal(t, 2, countOccurrences(args, "--bind"))
		assert.Contains(t, args, "ctrl-a:select-all")
		assert.Contains(t, args, "ctrl-d:deselect-all")
		assert.Contains(t, args, "reverse")
	})

	t.Run("preview options", func(t *testing.T) {
		c := NewFzfCLI(
			WithPreview("cat {}"),
			WithPreviewWindow("right:60%"),
		)
		args := c.buildArgs()
		assert.Equal(t, []string{
			"--preview", "cat {}",
			"--preview-window", "right:60%",
		}, args)
	})
}

func countOccurrences(args []string, want string) int {
	n := 0
	for _, a := range args {
		if a == want {
			n++
		}
	}
	return n
}

func TestJoinItems(t *testing.T) {
	assert.Equal(t, "", joinItems(nil))
	assert.Equal(t, "a\n", joinItems([]string{"a"}))
	assert.Equal(t, "a\nb\n", joinItems([]string{"a", "b"}))
}

func TestSplitSelections(t *testing.T) {
	assert.Nil(t, splitSelections(""))
	assert.Nil(t, splitSelections("\n"))
	assert.Equal(t, []string{"a"}, splitSelections("a\n"))
	assert.Equal(t, []string{"a", "b"}, splitSelections("a\nb\n"))
}

func TestSetupCmdEnv(t *testing.T) {
	c := NewFzfCLI(WithEnvVar("FZF_DEFAULT_OPTS", "--color=16"))
	assert.Equal(t, "--color=16", c.extraEnv["FZF_DEFAULT_OPTS"])

	env := setEnvVar([]string{"HOME=/home/x", "FOO=1"}, "FOO", "2")
	assert.Contains(t, env, "FOO=2")
	assert.NotContains(t, env, "FOO=1")
}

func TestWithTimeout(t *testing.T) {
	c := NewFzfCLI(WithTimeout(30 * time.Second))
	assert.Equal(t, 30*time.Second, c.timeout)

	// Interactive finder: no timeout unless asked for.
	assert.Zero(t, NewFzfCLI().timeout)
}
