package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SebastienPengdwende/PROJECT-PYTHON-C/internal/models"
	"github.com/SebastienPengdwende/PROJECT-PYTHON-C/internal/report"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	headerStyle = lipgloss.NewStyle().Bold(true)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	lowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	outStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	menuStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

const tableRule = "+----------------------+----------+--------------+------+----------------------+------------+"

// Renderer formats products and statistics for the console. Rows are
// tiered by stock level: out of stock, low stock, sufficient.
type Renderer struct {
	currency string
}

// NewRenderer creates a renderer labelling prices with the given currency.
func NewRenderer(currency string) *Renderer {
	return &Renderer{currency: currency}
}

// ProductTable renders products as a bordered table with color-coded rows.
func (r *Renderer) ProductTable(products []models.Product) string {
	var b strings.Builder
	b.WriteString(tableRule + "\n")
	b.WriteString(headerStyle.Render(fmt.Sprintf("| %-20s | %-8s | %-12s | %4s | %20s | %-10s |",
		"Name", "ID", "Category", "Qty", "Price ("+r.currency+")", "Date")) + "\n")
	b.WriteString(tableRule + "\n")
	for _, p := range products {
		b.WriteString(r.productRow(p) + "\n")
	}
	b.WriteString(tableRule)
	return b.String()
}

func (r *Renderer) productRow(p models.Product) string {
	line := fmt.Sprintf("| %-20s | %-8s | %-12s | %4d | %20s | %-10s |",
		clip(p.Name, 20), p.ID, clip(p.Category, 12), p.Quantity, p.Price.StringFixed(2), p.Date)
	switch {
	case p.OutOfStock():
		return outStyle.Render(line)
	case p.LowStock():
		return lowStyle.Render(line)
	default:
		return okStyle.Render(line)
	}
}

// Statistics renders the aggregate inventory figures, including the
// no-percentage branch for an empty inventory.
func (r *Renderer) Statistics(stats report.Statistics) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("=== INVENTORY STATISTICS ===") + "\n\n")
	b.WriteString(fmt.Sprintf("Total number of different products : %d\n", stats.ProductCount))
	b.WriteString(fmt.Sprintf("Total quantity of all products     : %d units\n", stats.TotalQuantity))
	b.WriteString(fmt.Sprintf("Total inventory value              : %s %s\n", stats.TotalValue.StringFixed(2), r.currency))
	b.WriteString(fmt.Sprintf("Average price per unit             : %s %s\n", stats.AveragePrice.StringFixed(2), r.currency))
	b.WriteString(fmt.Sprintf("Products in low stock              : %d", stats.LowStockCount))
	if stats.LowStockPercent != nil {
		b.WriteString(fmt.Sprintf(" (%.1f%%)", *stats.LowStockPercent))
	}
	b.WriteString("\n")
	if stats.LowStockCount > 0 {
		b.WriteString("\n" + warnStyle.Render("Warning: some products are at or below their minimum threshold.") + "\n")
		b.WriteString("Tip    : consider restocking them to avoid running out.\n")
	} else {
		b.WriteString("\nAll stock levels are currently sufficient.\n")
	}
	return b.String()
}

// Menu renders the numbered main menu.
func (r *Renderer) Menu() string {
	items := []string{
		titleStyle.Render("INVENTORY MANAGEMENT SYSTEM"),
		"",
		"1. Add a product",
		"2. Modify a product",
		"3. Delete a product",
		"4. Display all products",
		"5. Search for a product",
		"6. View low stock products",
		"7. Inventory statistics",
		"8. View recent changes",
		"9. Reset inventory and history",
		"0. Exit",
	}
	return menuStyle.Render(strings.Join(items, "\n"))
}

func clip(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width])
}
