package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/SebastienPengdwende/PROJECT-PYTHON-C/internal/config"
	"github.com/SebastienPengdwende/PROJECT-PYTHON-C/internal/inventory"
	"github.com/SebastienPengdwende/PROJECT-PYTHON-C/internal/models"
	"github.com/SebastienPengdwende/PROJECT-PYTHON-C/internal/report"
)

// Menu drives the interactive loop: it reads a numeric choice, collects
// any further fields, calls the service, and renders the outcome. All
// reads are synchronous; the loop ends on choice 0 or end of input.
type Menu struct {
	svc         *inventory.Service
	render      *Renderer
	recentCount int
	currency    string
	in          *bufio.Scanner
	out         io.Writer
	done        bool
}

// NewMenu creates a menu over the given service, reading choices from in
// and writing to out.
func NewMenu(svc *inventory.Service, cfg config.Config, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		svc:         svc,
		render:      NewRenderer(cfg.Display.Currency),
		recentCount: cfg.ChangeLog.RecentCount,
		currency:    cfg.Display.Currency,
		in:          bufio.NewScanner(in),
		out:         out,
	}
}

// Run loops until the user exits. Every failure path prints a message
// and returns control to the menu; nothing terminates the process.
func (m *Menu) Run() error {
	for {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, m.render.Menu())
		choice := m.readLine("Your choice: ")
		if m.done {
			return nil
		}
		fmt.Fprintln(m.out)

		switch choice {
		case "1":
			m.addProduct()
		case "2":
			m.modifyProduct()
		case "3":
			m.deleteProduct()
		case "4":
			m.listProducts()
		case "5":
			m.searchProducts()
		case "6":
			m.lowStockProducts()
		case "7":
			m.statistics()
		case "8":
			m.recentChanges()
		case "9":
			m.resetInventory()
		case "0":
			fmt.Fprintln(m.out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(m.out, errorStyle.Render("Invalid choice. Try again."))
		}
	}
}

func (m *Menu) addProduct() {
	fmt.Fprintln(m.out, titleStyle.Render("=== ADD PRODUCT ==="))

	draft := models.New()
	draft.Name = m.readLine("Name: ")
	draft.Category = m.readLine("Category: ")

	qty, err := m.readInt("Quantity: ")
	if err != nil {
		fmt.Fprintln(m.out, errorStyle.Render("Invalid quantity, product not added."))
		return
	}
	draft.Quantity = qty

	price, err := m.readDecimal(fmt.Sprintf("Price (%s): ", m.currency))
	if err != nil {
		fmt.Fprintln(m.out, errorStyle.Render("Invalid price, product not added."))
		return
	}
	draft.Price = price

	if minStock := m.readOptionalInt(fmt.Sprintf("Minimum stock before alert (%d): ", draft.MinStock)); minStock != nil {
		draft.MinStock = *minStock
	}

	created, err := m.svc.Add(draft)
	if err != nil {
		m.printError(err)
		return
	}
	fmt.Fprintf(m.out, "\nProduct %s added successfully!\n", created.ID)
}

func (m *Menu) modifyProduct() {
	id := m.readLine("Enter product ID to modify: ")
	current, err := m.svc.Get(id)
	if err != nil {
		m.printError(err)
		return
	}

	fmt.Fprintf(m.out, "\nModifying product %q\n\n", current.Name)
	fmt.Fprintln(m.out, m.render.ProductTable([]models.Product{current}))
	fmt.Fprintln(m.out, "Leave a field blank to keep the current value.")

	changes := inventory.ProductUpdate{
		Name:     m.readLine(fmt.Sprintf("New name (%s): ", current.Name)),
		Category: m.readLine(fmt.Sprintf("New category (%s): ", current.Category)),
		Quantity: m.readOptionalInt(fmt.Sprintf("New quantity (%d): ", current.Quantity)),
		Price:    m.readOptionalDecimal(fmt.Sprintf("New price (%s %s): ", current.Price.StringFixed(2), m.currency)),
		MinStock: m.readOptionalInt(fmt.Sprintf("New min stock (%d): ", current.MinStock)),
	}

	updated, err := m.svc.Modify(id, changes)
	if err != nil {
		m.printError(err)
		return
	}
	fmt.Fprintln(m.out, "\nProduct modified successfully!")
	fmt.Fprintln(m.out, m.render.ProductTable([]models.Product{updated}))
}

func (m *Menu) deleteProduct() {
	id := m.readLine("Enter product ID to delete: ")
	product, err := m.svc.Get(id)
	if err != nil {
		m.printError(err)
		return
	}

	fmt.Fprintln(m.out, "\nDeleting the following product:")
	fmt.Fprintln(m.out, m.render.ProductTable([]models.Product{product}))

	if !m.confirm("\nAre you sure you want to delete this product? (y/n): ") {
		fmt.Fprintln(m.out, "Deletion cancelled.")
		return
	}
	if _, err := m.svc.Delete(id); err != nil {
		m.printError(err)
		return
	}
	fmt.Fprintln(m.out, "\nProduct deleted successfully!")
}

func (m *Menu) listProducts() {
	products := m.svc.Products()
	fmt.Fprintln(m.out, m.render.ProductTable(products))
	fmt.Fprintf(m.out, "Total: %d product(s)\n", len(products))
}

func (m *Menu) searchProducts() {
	keyword := m.readLine("Enter product name or ID to search: ")
	fmt.Fprintln(m.out, "\n"+titleStyle.Render("=== SEARCH RESULTS ==="))

	matches := m.svc.Search(keyword)
	if len(matches) == 0 {
		fmt.Fprintln(m.out, "No matching products found.")
		return
	}
	fmt.Fprintln(m.out, m.render.ProductTable(matches))
}

func (m *Menu) lowStockProducts() {
	fmt.Fprintln(m.out, titleStyle.Render("=== LOW STOCK PRODUCTS ==="))

	low := report.LowStock(m.svc.Products())
	if len(low) == 0 {
		fmt.Fprintln(m.out, "No products are currently low in stock.")
		return
	}
	fmt.Fprintln(m.out, m.render.ProductTable(low))
}

func (m *Menu) statistics() {
	stats := report.Compute(m.svc.Products())
	fmt.Fprintln(m.out, m.render.Statistics(stats))
}

func (m *Menu) recentChanges() {
	lines, err := m.svc.RecentChanges(m.recentCount)
	if err != nil {
		m.printError(err)
		return
	}
	if len(lines) == 0 {
		fmt.Fprintln(m.out, "No history available.")
		return
	}
	fmt.Fprintf(m.out, "%s\n\n", titleStyle.Render(fmt.Sprintf("=== RECENT CHANGES (Last %d) ===", m.recentCount)))
	for _, line := range lines {
		fmt.Fprintln(m.out, line)
	}
}

func (m *Menu) resetInventory() {
	if !m.confirm("Are you sure you want to reset inventory and history? (y/n): ") {
		fmt.Fprintln(m.out, "\nReset cancelled.")
		return
	}
	if err := m.svc.Reset(); err != nil {
		m.printError(err)
		return
	}
	fmt.Fprintln(m.out, "\nInventory and history have been reset successfully.")
}

func (m *Menu) printError(err error) {
	if messages := models.ValidationMessages(err); messages != nil {
		fmt.Fprintln(m.out, errorStyle.Render("Invalid product:"))
		for field, message := range messages {
			fmt.Fprintf(m.out, "  - %s %s\n", field, message)
		}
		return
	}
	fmt.Fprintln(m.out, errorStyle.Render("Error: "+err.Error()))
}

func (m *Menu) confirm(prompt string) bool {
	answer := strings.ToLower(m.readLine(prompt))
	return answer == "y" || answer == "yes"
}

func (m *Menu) readLine(prompt string) string {
	fmt.Fprint(m.out, prompt)
	if !m.in.Scan() {
		m.done = true
		return ""
	}
	return strings.TrimSpace(m.in.Text())
}

func (m *Menu) readInt(prompt string) (int, error) {
	return strconv.Atoi(m.readLine(prompt))
}

func (m *Menu) readDecimal(prompt string) (decimal.Decimal, error) {
	return decimal.NewFromString(m.readLine(prompt))
}

// readOptionalInt reads a non-negative integer; a blank, negative or
// unparsable entry means "keep the current value".
func (m *Menu) readOptionalInt(prompt string) *int {
	line := m.readLine(prompt)
	if line == "" {
		return nil
	}
	n, err := strconv.Atoi(line)
	if err != nil || n < 0 {
		return nil
	}
	return &n
}

// readOptionalDecimal reads a non-negative number; a blank, negative or
// unparsable entry means "keep the current value".
func (m *Menu) readOptionalDecimal(prompt string) *decimal.Decimal {
	line := m.readLine(prompt)
	if line == "" {
		return nil
	}
	d, err := decimal.NewFromString(line)
	if err != nil || d.IsNegative() {
		return nil
	}
	return &d
}
