package ux

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirm prompts for approval on in before a destructive step. Anything
// other than y/yes declines, as does a read error or closed stream.
func Confirm(in io.Reader, prompt string) bool {
	fmt.Printf("%s%s%s [y/N]: ", Yellow, prompt, Reset)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
