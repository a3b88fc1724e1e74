package main

import (
	"fmt"
	"io"
	"strings"
)

// Basic console colors. {D} dims the current color, {W} resets.
var colorCodes = map[string]string{
	"W":  "\033[0m",
	"R":  "\033[31m",
	"G":  "\033[32m",
	"O":  "\033[33m",
	"B":  "\033[34m",
	"P":  "\033[35m",
	"C":  "\033[36m",
	"GR": "\033[37m",
	"D":  "\033[2m",
}

// Glyph tokens expand to bracketed status symbols. They are built from
// color tokens themselves, so they must be expanded before the colors.
var glyphTokens = []struct {
	token, expansion string
}{
	{"{+}", "{W}{D}[{W}{G}+{W}{D}]{W}"},
	{"{!}", "{O}[{R}!{O}]{W}"},
	{"{?}", "{W}[{C}?{W}]"},
	{"{*}", "{W}[{C}*{W}]"},
}

// Colorize replaces glyph and color tokens in text with their ANSI escape
// sequences. Text without any recognized token passes through unchanged.
func Colorize(text string) string {
	for _, g := range glyphTokens {
		text = strings.ReplaceAll(text, g.token, g.expansion)
	}
	for key, code := range colorCodes {
		text = strings.ReplaceAll(text, "{"+key+"}", code)
	}
	return text
}

// Console prints colorized status lines. The zero writer is not usable;
// construct with NewConsole.
type Console struct {
	w io.Writer
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// Print writes the colorized text followed by a newline.
func (c *Console) Print(text string) {
	fmt.Fprint(c.w, Colorize(text)+"\n")
}

// Plain writes text followed by a newline, with no token expansion.
func (c *Console) Plain(text string) {
	fmt.Fprintln(c.w, text)
}
