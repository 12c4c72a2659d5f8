package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	valueStyle = lipgloss.NewStyle().
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Italic(true)

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#04B575")).
		Bold(true)

	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F87")).
			Bold(true)
)

func printTitle(w io.Writer, title string) {
	fmt.Fprintln(w, titleStyle.Render(title))
	fmt.Fprintln(w, mutedStyle.Render(strings.Repeat("─", 48)))
}

// printField prints one label/value row. Empty values print as "unknown".
func printField(w io.Writer, label, value string) {
	if value == "" {
		value = mutedStyle.Render("unknown")
	} else {
		value = valueStyle.Render(value)
	}
	fmt.Fprintln(w, label16(label)+value)
}

func printVerdict(w io.Writer, label string, ok bool) {
	fmt.Fprintln(w, label16(label)+verdict(ok))
}

func label16(label string) string {
	return labelStyle.Render(fmt.Sprintf("%-16s ", label))
}

func printList(w io.Writer, label string, items []string) {
	if len(items) == 0 {
		printField(w, label, "")
		return
	}
	printField(w, label, strings.Join(items, ", "))
}

func verdict(ok bool) string {
	if ok {
		return okStyle.Render("known")
	}
	return failStyle.Render("not known")
}
