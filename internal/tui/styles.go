// Package tui provides the incremental autocomplete terminal UI.
package tui

import "github.com/charmbracelet/lipgloss"

var (
	ColorPrimary   = lipgloss.Color("#FF6B6B") // タイトル
	ColorSecondary = lipgloss.Color("#4ecdc4") // ローマ字
	ColorAccent    = lipgloss.Color("#ffe66d") // 入力、選択中
	ColorMuted     = lipgloss.Color("#666666") // ヘルプ
	ColorBg        = lipgloss.Color("#1a1a2e")
	ColorBorder    = lipgloss.Color("#3d5a80")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Background(ColorBg).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f1faee"))

	selectedLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorAccent)

	romajiStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Italic(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	errorStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)
)
