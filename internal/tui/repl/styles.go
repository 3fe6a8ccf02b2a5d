// ============================================================================
// lanpy - Lexer & Parser Toolkit
// ============================================================================
//
// Package:     repl
// Description: Styles for the REPL and the token tables of the CLI
// Author:      Mike Stoffels
// Created:     2026-02-14
// License:     MIT
// ============================================================================

package repl

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	lperror "github.com/msto63/lanpy/pkg/core/error"
	"github.com/msto63/lanpy/pkg/token"
	"github.com/msto63/lanpy/pkg/utils/stringx"
)

// Color Palette
var (
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorWarning   = lipgloss.Color("#F59E0B") // Amber
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorDimmed    = lipgloss.Color("#374151") // Dark Gray

	ColorText      = lipgloss.Color("#F8FAFC") // Slate 50
	ColorTextMuted = lipgloss.Color("#94A3B8") // Slate 400
	ColorTextDim   = lipgloss.Color("#64748B") // Slate 500
)

// Header styles
var (
	LogoStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	SubHeaderStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true)

	TitlePanelStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 2)
)

// Transcript styles
var (
	PromptStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	InputStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	OutputStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	ErrorCodeStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	TranscriptPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorDimmed).
				Padding(0, 1)
)

// Help styles
var (
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Token table styles
var (
	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true).
				Padding(0, 1)

	TableCellStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Padding(0, 1)

	TableNameStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Padding(0, 1)
)

// Prompt is shown in front of every input line
const Prompt = "lanpy> "

// Logo
const Logo = "lanpy REPL"

// RenderKeyHint renders a keyboard shortcut hint
func RenderKeyHint(key, description string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(description)
}

// RenderError renders an error together with its code, if it has one
func RenderError(err error) string {
	msg := ErrorStyle.Render("Fehler: " + err.Error())
	if code := lperror.GetCode(err); code != lperror.CodeUnknown {
		msg += " " + ErrorCodeStyle.Render("["+code.String()+"]")
	}
	return msg
}

// maxValueWidth limits the VALUE column so long string literals keep the table readable
const maxValueWidth = 48

// RenderTokens renders a token sequence as a bordered table
func RenderTokens(tokens []token.Token) string {
	rows := make([][]string, 0, len(tokens))
	for i, tok := range tokens {
		value := stringx.Truncate(strconv.Quote(tok.Value), maxValueWidth, "…")
		rows = append(rows, []string{strconv.Itoa(i), tok.Name, value})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ColorDimmed)).
		Headers("#", "NAME", "VALUE").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return TableHeaderStyle
			case col == 1:
				return TableNameStyle
			default:
				return TableCellStyle
			}
		}).
		String()
}
