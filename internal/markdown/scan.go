package markdown

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"autoproj/internal/rules"
)

// Extension is the required input document extension.
const Extension = ".md"

// DefaultName is the filename used for a code block with no filename heading.
const DefaultName = "main.cpp"

// ErrNotMarkdown reports an input path without the required extension.
var ErrNotMarkdown = errors.New("input file must have " + Extension + " extension")

// SourceFile is one extracted source file, buffered in memory until the
// whole document has been scanned.
type SourceFile struct {
	Name    string
	Content string
}

// Result holds everything one scan produced: the extracted files in order
// of first appearance, plus the build snippets and library tokens
// accumulated by the include rules.
type Result struct {
	Files     []SourceFile
	Snippets  []string
	Libraries []string
}

// Names returns the extracted file names in order.
func (r *Result) Names() []string {
	names := make([]string, len(r.Files))
	for i, f := range r.Files {
		names[i] = f.Name
	}
	return names
}

// scan state. At most one code region is open at a time.
type state int

const (
	scanning state = iota
	inIndented
	inDelimited
)

// Scanner extracts source code blocks from a Markdown document. A Scanner
// holds only the immutable rule table; each Scan gets fresh accumulators,
// so one Scanner may serve any number of documents.
type Scanner struct {
	table rules.Table
}

// NewScanner returns a Scanner that matches extracted lines against table.
func NewScanner(table rules.Table) *Scanner {
	return &Scanner{table: table}
}

// Scan consumes the document and returns the buffered extraction result.
// It recognizes two block styles: fenced regions, whose content is kept
// verbatim, and 4-column indented regions, whose content is emitted with
// one level of indentation removed. The most recent heading-like line
// before a block names the block's output file; a fence or dedented line
// closes the region and becomes the next candidate heading. Scan never
// touches the filesystem.
func (s *Scanner) Scan(r io.Reader) (*Result, error) {
	var (
		st        = scanning
		candidate string
		order     []string
		files     = make(map[string]*strings.Builder)
		current   *strings.Builder
	)
	engine := rules.NewEngine(s.table)

	open := func(name string) {
		name = filepath.Base(name)
		b, ok := files[name]
		if !ok {
			b = &strings.Builder{}
			files[name] = b
			order = append(order, name)
		} else {
			// A later block reusing a name replaces the earlier content.
			b.Reset()
		}
		current = b
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := expandLeadingTabs(sc.Text())

		switch st {
		case inIndented:
			if !isIndentedOrEmpty(line) {
				// The closing line may itself head the next block.
				candidate = line
				current = nil
				st = scanning
				continue
			}
			engine.Check(line)
			writeReindented(current, line)

		case inDelimited:
			if isFence(line) {
				candidate = line
				current = nil
				st = scanning
				continue
			}
			engine.Check(line)
			current.WriteString(line)
			current.WriteByte('\n')

		default:
			switch {
			case isFence(line):
				name := DefaultName
				if n, ok := sourceFilename(candidate); ok {
					name = n
				}
				open(name)
				st = inDelimited

			case isNonEmptyIndented(line):
				if n, ok := sourceFilename(candidate); ok {
					open(n)
				} else if len(order) == 0 {
					// Unnamed first block still counts.
					open(DefaultName)
				} else {
					// Stray indented line with no filename context.
					continue
				}
				engine.Check(line)
				writeReindented(current, line)
				st = inIndented

			default:
				if !isEmptyOrUnderline(line) {
					candidate = line
				}
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}

	// EOF closes any open region; buffered content is already complete.
	res := &Result{Snippets: engine.Snippets(), Libraries: engine.Libraries()}
	for _, name := range order {
		res.Files = append(res.Files, SourceFile{Name: name, Content: files[name].String()})
	}
	return res, nil
}

// writeReindented emits an indented-region content line with indentation
// reduced by one level. Lines shorter than the indent unit pass unchanged;
// otherwise one unit is dropped when the line starts with a space, else a
// single character, so malformed lines lose no content.
func writeReindented(b *strings.Builder, line string) {
	switch {
	case len(line) < indentUnit:
		b.WriteString(line)
	case line[0] == ' ':
		b.WriteString(line[indentUnit:])
	default:
		b.WriteString(line[1:])
	}
	b.WriteByte('\n')
}
