package snake

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

const (
	hudHeight = 2
	cellWidth = 2 // Terminal columns per grid cell, so cells look square

	blinkBelow  = 3 * time.Second
	blinkPeriod = 250 * time.Millisecond
)

// Render draws the current state to the screen.
func (m *Machine) Render(dst *core.Screen) {
	dst.Clear()
	s := m.Snapshot()

	switch s.State {
	case StateMainMenu, StateDifficultySelect:
		renderMenu(dst, s, m.env.Config)
	case StateHighScores:
		renderHighScores(dst, s)
	default:
		if !renderBoard(dst, s) {
			return
		}
		switch s.State {
		case StatePaused:
			renderPaused(dst, s)
		case StateGameOver:
			renderGameOver(dst, s)
		}
	}
}

// renderBoard draws the HUD, the arena border, food and snake.
// It returns false when the window cannot fit the board.
func renderBoard(dst *core.Screen, s Snapshot) bool {
	boardW := s.Grid.W*cellWidth + 2
	boardH := s.Grid.H + 2
	if dst.Width() < boardW || dst.Height() < boardH+hudHeight {
		mid := dst.Height() / 2
		dst.DrawTextCentered(mid-1, "Window too small", core.ColorYellow)
		dst.DrawTextCentered(mid, fmt.Sprintf("Need %dx%d", boardW, boardH+hudHeight), core.ColorGray)
		return false
	}

	renderHUD(dst, s)

	ox := (dst.Width() - boardW) / 2
	oy := hudHeight
	border := core.ColorWhite
	if s.Walls {
		border = core.ColorRed
	}
	dst.DrawBox(core.NewRect(ox, oy, boardW, boardH), border)

	cell := func(p core.Point, glyph string, c core.Color) {
		dst.DrawTextColor(ox+1+p.X*cellWidth, oy+1+p.Y, glyph, c)
	}

	if s.Grid.Contains(s.Food) {
		cell(s.Food, "()", core.ColorBrightRed)
	}
	if s.Special != nil && (s.SpecialTTL > blinkBelow || (s.SpecialTTL/blinkPeriod)%2 == 0) {
		cell(s.Special.Pos, "$$", core.ColorGold)
	}
	for i := len(s.Snake) - 1; i >= 0; i-- {
		color := core.ColorGreen
		if i == 0 {
			color = core.ColorBrightGreen
		}
		cell(s.Snake[i], "██", color)
	}
	return true
}

func renderHUD(dst *core.Screen, s Snapshot) {
	hud := fmt.Sprintf(" Score: %d", s.Score)
	if s.Menus {
		hud += fmt.Sprintf("  Best: %d  %s", s.Best, s.Difficulty)
	}
	dst.DrawTextColor(0, 0, hud, core.ColorBrightWhite)

	if s.Special != nil {
		secs := int((s.SpecialTTL + time.Second - 1) / time.Second)
		bonus := fmt.Sprintf("Bonus %ds ", max(secs, 0))
		dst.DrawTextColor(dst.Width()-utf8.RuneCountInString(bonus), 0, bonus, core.ColorGold)
	}

	for x := range dst.Width() {
		dst.SetColor(x, 1, '─', core.ColorGray)
	}
}

func renderPaused(dst *core.Screen, s Snapshot) {
	if s.Menus {
		renderOverlay(dst, "Paused", nil, &s.Menu)
		return
	}
	renderOverlay(dst, "Paused", []string{"Press P to continue"}, nil)
}

func renderGameOver(dst *core.Screen, s Snapshot) {
	lines := []string{fmt.Sprintf("Score: %d", s.Score)}
	switch s.Reason {
	case ReasonWall:
		lines = append(lines, "You hit the wall")
	case ReasonSelfCollision:
		lines = append(lines, "You ran into yourself")
	case ReasonBoardFull:
		lines = append(lines, "The board is full!")
	}
	if s.Qualified {
		lines = append(lines, "New high score!")
	}

	if s.Menus {
		renderOverlay(dst, "Game Over", lines, &s.Menu)
		return
	}
	lines = append(lines, "", "R to restart, Esc to quit")
	renderOverlay(dst, "Game Over", lines, nil)
}

// renderOverlay draws a centered box with a title, text lines and an
// optional menu.
func renderOverlay(dst *core.Screen, title string, lines []string, menu *Menu) {
	content := append([]string{title, ""}, lines...)
	firstItem := len(content)
	if menu != nil {
		if len(lines) > 0 {
			content = append(content, "")
			firstItem++
		}
		for i, item := range menu.Items {
			content = append(content, menuLabel(item.Label, i == menu.Cursor))
		}
	}

	width := 0
	for _, line := range content {
		width = max(width, utf8.RuneCountInString(line))
	}
	boxW := width + 6
	boxH := len(content) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)
	for i, line := range content {
		color := core.ColorWhite
		switch {
		case i == 0:
			color = core.ColorBrightYellow
		case menu != nil && i-firstItem == menu.Cursor:
			color = core.ColorBrightYellow
		}
		dst.DrawTextCentered(box.Y+1+i, line, color)
	}
}

func menuLabel(label string, selected bool) string {
	if selected {
		return "> " + label + " <"
	}
	return "  " + label + "  "
}

func renderMenu(dst *core.Screen, s Snapshot, cfg config.SnakeConfig) {
	h := dst.Height()
	top := max(1, h/2-len(s.Menu.Items)-3)

	if s.State == StateMainMenu {
		dst.DrawTextCentered(top, "S N A K E", core.ColorBrightGreen)
	} else {
		dst.DrawTextCentered(top, s.Menu.Title, core.ColorBrightGreen)
	}
	dst.DrawTextCentered(top+1, strings.Repeat("─", 20), core.ColorGray)

	y := top + 3
	for i, item := range s.Menu.Items {
		color := core.ColorWhite
		if i == s.Menu.Cursor {
			color = core.ColorBrightYellow
		}
		dst.DrawTextCentered(y, menuLabel(item.Label, i == s.Menu.Cursor), color)
		y += 2
	}

	if item, ok := s.Menu.Selected(); ok && item.Event == EventPickDifficulty {
		d := cfg.Difficulties.For(item.Preset)
		w, gh := cfg.GridSize(item.Preset)
		info := fmt.Sprintf("Speed %d  Grid %dx%d  Score x%d", d.Speed, w, gh, d.ScoreMultiplier)
		dst.DrawTextCentered(y, info, core.ColorCyan)
	}

	dst.DrawTextCentered(h-1, "↑/↓ move  enter select  esc back  q quit", core.ColorGray)
}

func renderHighScores(dst *core.Screen, s Snapshot) {
	dst.DrawTextCentered(1, "High Scores", core.ColorBrightGreen)
	dst.DrawTextCentered(3, "< "+s.ScoresTab+" >", core.ColorBrightYellow)

	entries := s.HighScores[s.ScoresTab]
	if len(entries) == 0 {
		dst.DrawTextCentered(6, "No scores yet", core.ColorGray)
	} else {
		header := fmt.Sprintf("%-3s %-10s %7s  %-10s", "#", "Name", "Score", "Date")
		dst.DrawTextCentered(5, header, core.ColorCyan)
		for i, e := range entries {
			row := fmt.Sprintf("%-3s %-10s %7d  %-10s", fmt.Sprintf("%d.", i+1), e.Name, e.Score, e.Date)
			color := core.ColorWhite
			if i == 0 {
				color = core.ColorGold
			}
			dst.DrawTextCentered(6+i, row, color)
		}
	}

	dst.DrawTextCentered(dst.Height()-1, "←/→ difficulty  esc back  q quit", core.ColorGray)
}
