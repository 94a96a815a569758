package cli

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/Ramizraj19/B2B-nexus-sub001/internal/entity"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
)

var (
	_bold    = color.New(color.Bold)
	_faint   = color.New(color.Faint)
	_success = color.New(color.FgGreen)

	_statusColors = map[entity.OrderStatus]*color.Color{
		entity.OrderStatusPending:   color.New(color.FgYellow),
		entity.OrderStatusConfirmed: color.New(color.FgCyan),
		entity.OrderStatusShipped:   color.New(color.FgBlue),
		entity.OrderStatusDelivered: color.New(color.FgGreen),
		entity.OrderStatusCancelled: color.New(color.FgRed),
	}
)

func colorStatus(status entity.OrderStatus) string {
	if c, ok := _statusColors[status]; ok {
		return c.Sprint(string(status))
	}
	return string(status)
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}

func (c *CLI) heading(format string, args ...any) {
	_bold.Fprintf(c.out, format+"\n", args...)
}

func (c *CLI) success(format string, args ...any) {
	_success.Fprintf(c.out, format+"\n", args...)
}

func (c *CLI) field(name string, value any) {
	fmt.Fprintf(c.out, "  %s %v\n", _faint.Sprintf("%-18s", name+":"), value)
}

func (c *CLI) table() *tabwriter.Writer {
	return tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
}

func (c *CLI) printOrders(orders []*entity.Order) error {
	if len(orders) == 0 {
		fmt.Fprintln(c.out, "No orders found.")
		return nil
	}

	w := c.table()
	fmt.Fprintln(w, "ID\tSTATUS\tBUYER\tSELLER\tITEMS\tTOTAL\tCREATED")
	for _, o := range orders {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			o.ID, o.Status, o.BuyerName, o.SellerName, len(o.Items),
			money(o.TotalAmount), formatTime(o.CreatedAt))
	}
	return w.Flush()
}

func (c *CLI) printOrder(o *entity.Order) error {
	c.heading("Order %s", o.ID)
	c.field("Status", colorStatus(o.Status))
	c.field("Buyer", o.BuyerName)
	c.field("Seller", o.SellerName)
	c.field("Shipping address", o.ShippingAddress)
	c.field("Total", money(o.TotalAmount))
	c.field("Created", formatTime(o.CreatedAt))
	c.field("Updated", formatTime(o.UpdatedAt))

	fmt.Fprintln(c.out)
	w := c.table()
	fmt.Fprintln(w, "  PRODUCT\tQTY\tPRICE\tSUBTOTAL")
	for _, item := range o.Items {
		subtotal := item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		fmt.Fprintf(w, "  %s\t%d\t%s\t%s\n",
			item.ProductName, item.Quantity, money(item.Price), money(subtotal))
	}
	return w.Flush()
}

func (c *CLI) printTracking(t *entity.OrderTracking) error {
	c.heading("Tracking for order %s", t.OrderID)
	c.field("Status", colorStatus(t.Status))
	if t.Carrier != "" {
		c.field("Carrier", t.Carrier)
	}
	if t.TrackingNumber != "" {
		c.field("Tracking number", t.TrackingNumber)
	}

	fmt.Fprintln(c.out)
	w := c.table()
	fmt.Fprintln(w, "  WHEN\tSTATUS\tNOTE")
	for _, event := range t.History {
		fmt.Fprintf(w, "  %s\t%s\t%s\n", formatTime(event.Timestamp), event.Status, event.Note)
	}
	return w.Flush()
}

func (c *CLI) printUsers(users []*entity.User) error {
	if len(users) == 0 {
		fmt.Fprintln(c.out, "No users found.")
		return nil
	}

	w := c.table()
	fmt.Fprintln(w, "ID\tEMAIL\tUSERNAME\tROLE\tACTIVE\tJOINED")
	for _, u := range users {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\t%s\n",
			u.ID, u.Email, u.Username, u.Role, u.IsActive, formatTime(u.CreatedAt))
	}
	return w.Flush()
}

func (c *CLI) printUser(u *entity.User) {
	c.heading("%s (%s)", u.FullName, u.Username)
	c.field("ID", u.ID)
	c.field("Email", u.Email)
	c.field("Role", u.Role)
	c.field("Active", u.IsActive)
	if u.CompanyName != "" {
		c.field("Company", u.CompanyName)
	}
	if u.Phone != "" {
		c.field("Phone", u.Phone)
	}
	if u.Address != "" {
		c.field("Address", u.Address)
	}
	c.field("Joined", formatTime(u.CreatedAt))
}

func (c *CLI) printProducts(products []*entity.Product) error {
	if len(products) == 0 {
		fmt.Fprintln(c.out, "No products found.")
		return nil
	}

	w := c.table()
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE\tSTOCK\tSELLER")
	for _, p := range products {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
			p.ID, p.Name, p.Category, money(p.Price), p.StockQuantity, p.SellerName)
	}
	return w.Flush()
}

func (c *CLI) printProduct(p *entity.Product) {
	c.heading("%s", p.Name)
	c.field("ID", p.ID)
	c.field("Category", p.Category)
	c.field("Price", money(p.Price))
	c.field("Stock", p.StockQuantity)
	c.field("Seller", p.SellerName)
	if p.Description != "" {
		c.field("Description", p.Description)
	}
	if len(p.Tags) > 0 {
		c.field("Tags", strings.Join(p.Tags, ", "))
	}
	c.field("Created", formatTime(p.CreatedAt))
}

func (c *CLI) printCart(cart *entity.Cart) error {
	if len(cart.Items) == 0 {
		fmt.Fprintln(c.out, "Your cart is empty.")
		return nil
	}

	w := c.table()
	fmt.Fprintln(w, "PRODUCT\tQTY\tPRICE\tSUBTOTAL")
	for _, item := range cart.Items {
		subtotal := item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n",
			item.ProductName, item.Quantity, money(item.Price), money(subtotal))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(c.out)
	c.heading("Total: %s", money(cart.TotalAmount))
	return nil
}

func (c *CLI) printOrderStats(stats *entity.OrderStats) {
	c.heading("Order statistics")
	c.field("Total orders", stats.TotalOrders)
	c.field("Total revenue", money(stats.TotalRevenue))
	for _, status := range slices.Sorted(maps.Keys(stats.ByStatus)) {
		c.field(status, stats.ByStatus[status])
	}
}

func (c *CLI) printUserStats(stats *entity.UserStats) {
	c.heading("Your statistics")
	c.field("Total orders", stats.TotalOrders)
	c.field("Total spent", money(stats.TotalSpent))
	c.field("Member since", formatTime(stats.MemberSince))
}

func (c *CLI) printAnalytics(a *entity.Analytics) {
	c.heading("Marketplace analytics")
	c.field("Users", a.TotalUsers)
	c.field("Products", a.TotalProducts)
	c.field("Orders", a.TotalOrders)
	c.field("Revenue", money(a.TotalRevenue))
}
