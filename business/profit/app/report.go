package app

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/goblinomics/craftprofit/business/profit/domain"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	priceStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
)

// RenderReport renders the display tree and its shopping lists as a styled
// text report for the CLI.
func RenderReport(out *domain.OutputNode) string {
	if out == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s x%d", out.Name, out.Required)))
	b.WriteString("\n")

	if out.Market != nil {
		b.WriteString(fmt.Sprintf("  market: %s  (low %s, high %s, %d listed)\n",
			priceStyle.Render(formatGold(out.Market.Average)),
			formatGold(out.Market.Low),
			formatGold(out.Market.High),
			out.Market.Volume,
		))
	}
	if out.Vendor != nil {
		b.WriteString(fmt.Sprintf("  vendor: %s\n", priceStyle.Render(formatGold(*out.Vendor))))
	}

	for _, rec := range out.Recipes {
		b.WriteString(headerStyle.Render(fmt.Sprintf("\n%s (rank %d)", rec.Name, rec.Rank)))
		b.WriteString(fmt.Sprintf("\n  craft cost: %s  (low %s, high %s)\n",
			priceStyle.Render(formatGold(rec.Cost.Average)),
			formatGold(rec.Cost.Low),
			formatGold(rec.Cost.High),
		))
		for _, part := range rec.Parts {
			renderPart(&b, part, 1)
		}
	}

	renderShoppingLists(&b, out.ShoppingLists)
	return b.String()
}

func renderPart(b *strings.Builder, node *domain.OutputNode, depth int) {
	indent := strings.Repeat("  ", depth+1)
	line := fmt.Sprintf("%s- %s x%d", indent, node.Name, node.Required)

	switch {
	case node.Vendor != nil:
		line += faintStyle.Render(fmt.Sprintf("  vendor %s", formatGold(*node.Vendor)))
	case node.Market != nil:
		line += faintStyle.Render(fmt.Sprintf("  avg %s", formatGold(node.Market.Average)))
	}
	b.WriteString(line + "\n")

	for _, rec := range node.Recipes {
		for _, part := range rec.Parts {
			renderPart(b, part, depth+1)
		}
	}
}

func renderShoppingLists(b *strings.Builder, lists map[int][]domain.ShoppingListEntry) {
	if len(lists) == 0 {
		return
	}

	ranks := make([]int, 0, len(lists))
	for rank := range lists {
		ranks = append(ranks, rank)
	}
	sort.Ints(ranks)

	for _, rank := range ranks {
		b.WriteString(headerStyle.Render(fmt.Sprintf("\nShopping list (rank %d)", rank)))
		b.WriteString("\n")
		for _, entry := range lists[rank] {
			if entry.Quantity == 0 {
				b.WriteString(faintStyle.Render(fmt.Sprintf("  %s: covered by inventory\n", entry.Name)))
				continue
			}
			line := fmt.Sprintf("  %s x%d", entry.Name, entry.Quantity)
			switch {
			case entry.Cost.Vendor != nil:
				line += fmt.Sprintf("  %s from vendor", priceStyle.Render(formatGold(*entry.Cost.Vendor)))
			case entry.Cost.Market != nil:
				line += fmt.Sprintf("  ~%s at auction", priceStyle.Render(formatGold(entry.Cost.Market.Average)))
			}
			b.WriteString(line + "\n")
		}
	}
}

// formatGold renders a copper amount as gold/silver/copper.
func formatGold(copper decimal.Decimal) string {
	total := copper.Round(0).IntPart()
	neg := total < 0
	if neg {
		total = -total
	}

	g := total / 10000
	s := (total % 10000) / 100
	c := total % 100

	var out string
	switch {
	case g > 0:
		out = fmt.Sprintf("%dg %ds %dc", g, s, c)
	case s > 0:
		out = fmt.Sprintf("%ds %dc", s, c)
	default:
		out = fmt.Sprintf("%dc", c)
	}
	if neg {
		out = "-" + out
	}
	return out
}
