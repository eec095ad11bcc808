package markdown

import (
	"testing"
)

func TestExpandLeadingTabs(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"no tabs", "no tabs"},
		{"\tint x;", "    int x;"},
		{"\t\treturn 0;", "        return 0;"},
		{"mid\ttab", "mid\ttab"},
	}
	for _, tt := range tests {
		if got := expandLeadingTabs(tt.in); got != tt.want {
			t.Errorf("expandLeadingTabs(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsFence(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"```", true},
		{"```cpp", true},
		{"~~~", true},
		{"~~~~lang-c++", true},
		{"``", false},
		{"``~", false},
		{"  ```", false},
		{"", false},
		{"---", false},
	}
	for _, tt := range tests {
		if got := isFence(tt.in); got != tt.want {
			t.Errorf("isFence(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIsNonEmptyIndented(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"    int x;", true},
		{"        deep", true},
		{"   short", false},
		{"text", false},
		{"", false},
		{"    ", false}, // all spaces carries no content
	}
	for _, tt := range tests {
		if got := isNonEmptyIndented(tt.in); got != tt.want {
			t.Errorf("isNonEmptyIndented(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIsIndentedOrEmpty(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"    int x;", true},
		{"", true},
		{"      ", true},
		{"  two", false},
		{"text", false},
	}
	for _, tt := range tests {
		if got := isIndentedOrEmpty(tt.in); got != tt.want {
			t.Errorf("isIndentedOrEmpty(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIsEmptyOrUnderline(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"-", true},
		{"----------", true},
		{"- item", false},
		{"-- x", false},
		{"text", false},
	}
	for _, tt := range tests {
		if got := isEmptyOrUnderline(tt.in); got != tt.want {
			t.Errorf("isEmptyOrUnderline(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSourceFilename(t *testing.T) {
	tests := []struct {
		in       string
		wantName string
		wantOK   bool
	}{
		{"hello.cpp", "hello.cpp", true},
		{"# hello.cpp", "hello.cpp", true},
		{"## hello.cpp ##", "hello.cpp", true},
		{"**hello.cpp**", "hello.cpp", true},
		{"*emphasized.c*", "emphasized.c", true},
		{"<b>widget.hpp</b>", "widget.hpp", true},
		{"\"quoted.h\"", "quoted.h", true},
		{"main.cpp:", "main.cpp", true},
		{"main.cpp --", "main.cpp", true},
		{"# **\"layered.cpp\"**", "layered.cpp", true},
		{"notes.txt", "notes.txt", false},
		{"plain text", "plain text", false},
		{"```", "", false},
		{"", "", false},
		{"####", "", false},
	}
	for _, tt := range tests {
		name, ok := sourceFilename(tt.in)
		if ok != tt.wantOK {
			t.Errorf("sourceFilename(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			continue
		}
		if ok && name != tt.wantName {
			t.Errorf("sourceFilename(%q) = %q, want %q", tt.in, name, tt.wantName)
		}
	}
}
