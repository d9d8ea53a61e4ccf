package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	bannerTitle    = "Audio do Celular no PC (USB)"
	bannerSubtitle = "Este utilitário baixa e executa o scrcpy para encaminhar áudio e vídeo."
)

// Banner returns the startup banner followed by a blank line.
func Banner() string {
	var b strings.Builder
	b.WriteString(AccentBold().Render(framed(bannerTitle)))
	b.WriteString("\n")
	b.WriteString(MutedStyle().Render(bannerSubtitle))
	b.WriteString("\n\n")
	return b.String()
}

// framed wraps title as "==== title ====".
func framed(title string) string {
	return "==== " + title + " ===="
}

// Rule returns a line of '=' as wide as s renders in a terminal.
func Rule(s string) string {
	return strings.Repeat("=", runewidth.StringWidth(s))
}

// Heading renders s with an underline rule.
func Heading(s string) string {
	return AccentBold().Render(s) + "\n" + MutedStyle().Render(Rule(s))
}
