package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"bidwhist/game"
)

var (
	clrSubtle = lipgloss.Color("#8b949e")
	clrGold   = lipgloss.Color("#e3b341")
	clrRed    = lipgloss.Color("#f85149")
	clrTitle  = lipgloss.Color("#58a6ff")

	suitColorMap = map[game.Suit]lipgloss.Color{
		game.Hearts:   lipgloss.Color("#FF6B6B"),
		game.Clubs:    lipgloss.Color("#44AAFF"),
		game.Diamonds: lipgloss.Color("#FFD700"),
		game.Spades:   lipgloss.Color("#50FA7B"),
		game.NoSuit:   clrGold,
	}
)

func fg(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

func bold(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c).Bold(true)
}

// renderCard 以花色上色, 鬼牌一律金色
func renderCard(c game.Card) string {
	color := suitColorMap[c.Suit]
	return bold(color).Render("|" + c.String() + "|")
}

// renderHand 列出索引,不可出的牌以灰色顯示
func renderHand(hand []game.Card, legal []game.Card) string {
	var sb strings.Builder
	for i, c := range hand {
		line := fmt.Sprintf("%2d: %s", i, renderCard(c))
		if legal != nil && !contains(legal, c) {
			line = fmt.Sprintf("%2d: %s", i, fg(clrSubtle).Render("|"+c.String()+"|"))
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}

func renderTrick(t game.Trick) string {
	if t.Len() == 0 {
		return "You lead."
	}
	parts := make([]string, 0, t.Len())
	for _, p := range t.Plays {
		parts = append(parts, fmt.Sprintf("%s %s", p.Seat, renderCard(p.Card)))
	}
	return "Current trick: " + strings.Join(parts, ", ")
}

func title(s string) string {
	return bold(clrTitle).Render(s)
}

func warn(s string) string {
	return bold(clrRed).Render(s)
}

func contains(cards []game.Card, c game.Card) bool {
	for _, x := range cards {
		if x.Is(c) {
			return true
		}
	}
	return false
}
