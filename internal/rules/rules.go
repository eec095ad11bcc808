// Package rules maps #include directives found in extracted source code to
// the CMake configuration they imply. The table is a declarative embedded
// YAML document: an ordered list of (pattern, snippet, libraries) entries
// scanned linearly against every extracted content line.
package rules

import (
	_ "embed"
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"
)

//go:embed rules.yaml
var tableYAML []byte

// Rule matches one well-known include directive and carries the build
// configuration it requires.
type Rule struct {
	Name      string `yaml:"name"`
	Pattern   string `yaml:"pattern"`
	Snippet   string `yaml:"snippet"`
	Libraries string `yaml:"libraries"`

	re *regexp.Regexp
}

// Table is an ordered rule list. It is immutable after Load.
type Table []Rule

// Load decodes and validates a YAML rule table, compiling every pattern.
func Load(data []byte) (Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("decoding rule table: %w", err)
	}
	for i := range t {
		r := &t[i]
		if r.Pattern == "" {
			return nil, fmt.Errorf("rule %d (%s): empty pattern", i, r.Name)
		}
		if r.Snippet == "" && r.Libraries == "" {
			return nil, fmt.Errorf("rule %d (%s): neither snippet nor libraries", i, r.Name)
		}
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("rule %d (%s): %w", i, r.Name, err)
		}
		r.re = re
	}
	return t, nil
}

// Default returns the built-in rule table.
func Default() (Table, error) {
	return Load(tableYAML)
}

// Engine accumulates the snippets and library tokens matched over one
// extraction run. Matches are deduplicated and kept in first-match order so
// the generated descriptor is reproducible.
type Engine struct {
	table     Table
	snippets  []string
	libraries []string
	seenSnip  map[string]bool
	seenLib   map[string]bool
}

// NewEngine returns a fresh accumulator over table.
func NewEngine(table Table) *Engine {
	return &Engine{
		table:    table,
		seenSnip: make(map[string]bool),
		seenLib:  make(map[string]bool),
	}
}

// Check matches one content line against every rule in the table. Rules are
// not mutually exclusive: a single line may contribute several snippets and
// tokens. Nothing is ever removed from the accumulators.
func (e *Engine) Check(line string) {
	for i := range e.table {
		r := &e.table[i]
		if !r.re.MatchString(line) {
			continue
		}
		if r.Snippet != "" && !e.seenSnip[r.Snippet] {
			e.seenSnip[r.Snippet] = true
			e.snippets = append(e.snippets, r.Snippet)
		}
		if r.Libraries != "" && !e.seenLib[r.Libraries] {
			e.seenLib[r.Libraries] = true
			e.libraries = append(e.libraries, r.Libraries)
		}
	}
}

// Snippets returns the accumulated find/config snippets in first-match order.
func (e *Engine) Snippets() []string { return e.snippets }

// Libraries returns the accumulated library tokens in first-match order.
func (e *Engine) Libraries() []string { return e.libraries }
