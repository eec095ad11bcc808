package markdown

import (
	"path/filepath"
	"strings"
)

const (
	// indentUnit is the column width that marks indented code blocks and
	// the amount of indentation removed on extraction.
	indentUnit = 4
	// fenceLen is the minimum delimiter run length for a fence line.
	fenceLen = 3
)

// sourceExtensions are the extensions recognized when testing whether a
// heading line names a source file.
var sourceExtensions = map[string]bool{
	".cpp": true,
	".c":   true,
	".h":   true,
	".hpp": true,
}

// expandLeadingTabs replaces each tab in the line's leading run with one
// indent unit of spaces, so indentation detection is tab/space agnostic.
func expandLeadingTabs(line string) string {
	tabs := 0
	for tabs < len(line) && line[tabs] == '\t' {
		tabs++
	}
	if tabs == 0 {
		return line
	}
	return strings.Repeat(" ", tabs*indentUnit) + line[tabs:]
}

// indentOf returns the column of the first non-space character, or -1 when
// the line is empty or all spaces.
func indentOf(line string) int {
	for i := 0; i < len(line); i++ {
		if line[i] != ' ' {
			return i
		}
	}
	return -1
}

// isNonEmptyIndented reports whether the line has content indented by at
// least one indent unit.
func isNonEmptyIndented(line string) bool {
	return indentOf(line) >= indentUnit
}

// isIndentedOrEmpty reports whether the line belongs to an open indented
// code region: blank, all spaces, or indented by at least one indent unit.
func isIndentedOrEmpty(line string) bool {
	n := indentOf(line)
	return n == -1 || n >= indentUnit
}

// isEmptyOrUnderline reports whether the line is blank or a setext-style
// underline (dashes only). Such lines never replace the filename candidate,
// so a heading followed by its underline still names the next block.
func isEmptyOrUnderline(line string) bool {
	if line == "" {
		return true
	}
	for i := 0; i < len(line); i++ {
		if line[i] != '-' {
			return false
		}
	}
	return true
}

// isFence reports whether the line opens or closes a delimited code region:
// a run of at least three backticks or tildes starting at column zero. Any
// fence closes any open delimited region, whichever character opened it.
func isFence(line string) bool {
	if line == "" || (line[0] != '`' && line[0] != '~') {
		return false
	}
	ch := line[0]
	n := 0
	for n < len(line) && line[n] == ch {
		n++
	}
	return n >= fenceLen
}

// ltrimMarker strips a leading run of ch mixed with whitespace.
func ltrimMarker(s string, ch byte) string {
	i := 0
	for i < len(s) && (s[i] == ch || s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return s[i:]
}

// rtrimMarker strips a trailing run of ch mixed with whitespace.
func rtrimMarker(s string, ch byte) string {
	i := len(s)
	for i > 0 && (s[i-1] == ch || s[i-1] == ' ' || s[i-1] == '\t') {
		i--
	}
	return s[:i]
}

func trimMarker(s string, ch byte) string {
	return rtrimMarker(ltrimMarker(s, ch), ch)
}

// stripDecoration removes Markdown decoration from a candidate heading:
// ATX header markers, bold/italic stars, HTML bold tags, quotes, and
// trailing dash or colon runs, in that order.
func stripDecoration(line string) string {
	s := trimMarker(line, '#')
	s = trimMarker(s, '*')
	s = strings.TrimPrefix(s, "<b>")
	s = strings.TrimSuffix(s, "</b>")
	s = trimMarker(s, '"')
	s = rtrimMarker(s, '-')
	s = rtrimMarker(s, ':')
	return s
}

// sourceFilename tests whether a candidate heading line names a source
// file. It returns the decoration-stripped name and whether its extension
// is recognized; the stripped name is what the output file is called.
func sourceFilename(line string) (string, bool) {
	name := stripDecoration(line)
	if name == "" {
		return "", false
	}
	return name, sourceExtensions[filepath.Ext(name)]
}
