package fzfconfig

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/brunofauth/typed-fzf/fzf"
	"gopkg.in/yaml.v3"
)

// Profile is a named bundle of finder options.
type Profile struct {
	// Search behavior
	Query     string `yaml:"query,omitempty"`
	Exact     bool   `yaml:"exact,omitempty"`
	NoSort    bool   `yaml:"no-sort,omitempty"`
	Delimiter string `yaml:"delimiter,omitempty"`
	Nth       string `yaml:"nth,omitempty"`

	// Selection behavior
	Multi     bool `yaml:"multi,omitempty"`
	SelectOne bool `yaml:"select-1,omitempty"`
	ExitZero  bool `yaml:"exit-0,omitempty"`

	// Interface
	Prompt      string   `yaml:"prompt,omitempty"`
	Header      string   `yaml:"header,omitempty"`
	HeaderLines int      `yaml:"header-lines,omitempty"`
	Height      string   `yaml:"height,omitempty"`
	Layout      string   `yaml:"layout,omitempty"`
	Cycle       bool     `yaml:"cycle,omitempty"`
	Ansi        bool     `yaml:"ansi,omitempty"`
	Binds       []string `yaml:"bind,omitempty"`

	// Preview
	Preview       string `yaml:"preview,omitempty"`
	PreviewWindow string `yaml:"preview-window,omitempty"`
}

// configFile is the on-disk shape: a single top-level profiles map.
type configFile struct {
	Profiles map[string]Profile `yaml:"profiles"`
}

// Matches "20" and "40%".
var heightRE = regexp.MustCompile(`^\d+%?$`)

var validLayouts = map[string]bool{
	"":             true,
	"default":      true,
	"reverse":      true,
	"reverse-list": true,
}

// Validate checks that the profile's values are ones fzf accepts.
func (p Profile) Validate() error {
	if !validLayouts[p.Layout] {
		return fmt.Errorf("invalid layout %q (want default, reverse, or reverse-list)", p.Layout)
	}
	if p.Height != "" && !heightRE.MatchString(p.Height) {
		return fmt.Errorf("invalid height %q (want a line count or percentage)", p.Height)
	}
	if p.HeaderLines < 0 {
		return fmt.Errorf("invalid header-lines %d", p.HeaderLines)
	}
	for _, bind := range p.Binds {
		if bind == "" {
			return errors.New("empty bind entry")
		}
	}
	return nil
}

// Options converts the profile into fzf client options.
func (p Profile) Options() []fzf.FzfOption {
	var opts []fzf.FzfOption

	if p.Query != "" {
		opts = append(opts, fzf.WithQuery(p.Query))
	}
	if p.Exact {
		opts = append(opts, fzf.WithExact())
	}
	if p.NoSort {
		opts = append(opts, fzf.WithNoSort())
	}
	if p.Delimiter != "" {
		opts = append(opts, fzf.WithDelimiter(p.Delimiter))
	}
	if p.Nth != "" {
		opts = append(opts, fzf.WithNth(p.Nth))
	}
	if p.Multi {
		opts = append(opts, fzf.WithMulti())
	}
	if p.SelectOne {
		opts = append(opts, fzf.WithSelectOne())
	}
	if p.ExitZero {
		opts = append(opts, fzf.WithExitZero())
	}
	if p.Prompt != "" {
		opts = append(opts, fzf.WithPrompt(p.Prompt))
	}
	if p.Header != "" {
		opts = append(opts, fzf.WithHeader(p.Header))
	}
	if p.HeaderLines > 0 {
		opts = append(opts, fzf.WithHeaderLines(p.HeaderLines))
	}
	if p.Height != "" {
		opts = append(opts, fzf.WithHeight(p.Height))
	}
	if p.Layout != "" {
		opts = append(opts, fzf.WithLayout(fzf.Layout(p.Layout)))
	}
	if p.Cycle {
		opts = append(opts, fzf.WithCycle())
	}
	if p.Ansi {
		opts = append(opts, fzf.WithAnsi())
	}
	for _, bind := range p.Binds {
		opts = append(opts, fzf.WithBind(bind))
	}
	if p.Preview != "" {
		opts = append(opts, fzf.WithPreview(p.Preview))
	}
	if p.PreviewWindow != "" {
		opts = append(opts, fzf.WithPreviewWindow(p.PreviewWindow))
	}

	return opts
}

// Parse decodes profiles from YAML and validates each one.
func Parse(data []byte) (map[string]Profile, error) {
	var file configFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse profiles: %w", err)
	}
	if len(file.Profiles) == 0 {
		return nil, errors.New("no profiles defined")
	}

	for name, profile := range file.Profiles {
		if err := profile.Validate(); err != nil {
			return nil, fmt.Errorf("profile %q: %w", name, err)
		}
	}
	return file.Profiles, nil
}

// Load reads and parses a profile file.
func Load(path string) (map[string]Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profiles: %w", err)
	}
	return Parse(data)
}
