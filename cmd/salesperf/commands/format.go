package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/wonny/salesperf/internal/analysis"
	"github.com/wonny/salesperf/internal/contracts"
	"github.com/wonny/salesperf/internal/policyconfig"
)

// ═══════════════════════════════════════════════════════════
// Common Formatting Utilities
// ═══════════════════════════════════════════════════════════

// PrintSeparator prints a visual separator
func PrintSeparator(w io.Writer) {
	fmt.Fprintln(w, "───────────────────────────────────────────────────────────")
}

// PrintDoubleSeparator prints a double-line separator
func PrintDoubleSeparator(w io.Writer) {
	fmt.Fprintln(w, "═══════════════════════════════════════════════════════════")
}

// PrintWarning prints a warning message
func PrintWarning(w io.Writer, message string) {
	fmt.Fprintf(w, "⚠️  %s\n", message)
}

// PrintSuccess prints a success message
func PrintSuccess(w io.Writer, message string) {
	fmt.Fprintf(w, "✅ %s\n", message)
}

// PrintError prints an error message
func PrintError(w io.Writer, message string) {
	fmt.Fprintf(w, "❌ %s\n", message)
}

// PrintKeyValue prints key-value pairs
func PrintKeyValue(w io.Writer, key string, value string, keyWidth int) {
	fmt.Fprintf(w, "   %-*s : %s\n", keyWidth, key, value)
}

// PrintTableHeader prints a table header
func PrintTableHeader(w io.Writer, columns []string, widths []int) {
	PrintTableRow(w, columns, widths)

	totalWidth := 0
	for i, width := range widths {
		totalWidth += width
		if i < len(widths)-1 {
			totalWidth += 2 // spacing
		}
	}
	fmt.Fprintln(w, strings.Repeat("─", totalWidth))
}

// PrintTableRow prints a table row
func PrintTableRow(w io.Writer, values []string, widths []int) {
	for i, val := range values {
		fmt.Fprintf(w, "%-*s", widths[i], val)
		if i < len(values)-1 {
			fmt.Fprint(w, "  ")
		}
	}
	fmt.Fprintln(w)
}

// printReportTable renders a full report with header and summary
func printReportTable(w io.Writer, run *policyconfig.RunSnapshot, reports []contracts.SellerReport, summary analysis.Summary) {
	PrintDoubleSeparator(w)
	fmt.Fprintln(w, "  Seller Performance Report")
	PrintSeparator(w)
	PrintKeyValue(w, "Run ID", run.RunID, 8)
	PrintKeyValue(w, "Dataset", run.DatasetName, 8)
	PrintKeyValue(w, "Policy", fmt.Sprintf("%s (%s)", run.PolicyID, shortHash(run.PolicyHash)), 8)
	PrintDoubleSeparator(w)

	columns := []string{"#", "Seller", "Name", "Sales", "Revenue", "Profit", "Bonus", "Top products"}
	widths := []int{3, 12, 22, 6, 14, 14, 12, 30}
	PrintTableHeader(w, columns, widths)

	for i, r := range reports {
		PrintTableRow(w, []string{
			strconv.Itoa(i + 1),
			r.SellerID,
			r.Name,
			strconv.Itoa(r.SalesCount),
			formatMoney(r.Revenue),
			formatMoney(r.Profit),
			formatMoney(r.Bonus),
			formatTopProducts(r.TopProducts, 3),
		}, widths)
	}

	PrintSeparator(w)
	PrintKeyValue(w, "Sellers", strconv.Itoa(summary.Sellers), 8)
	PrintKeyValue(w, "Sales", strconv.Itoa(summary.SalesCount), 8)
	PrintKeyValue(w, "Revenue", formatMoney(summary.Revenue), 8)
	PrintKeyValue(w, "Profit", formatMoney(summary.Profit), 8)
	PrintKeyValue(w, "Bonus", formatMoney(summary.Bonus), 8)
}

// formatMoney prints two decimals with thousands separators, e.g. -1,234.50
func formatMoney(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	if strings.Trim(s, "0.") == "" {
		sign = ""
	}

	intPart, frac := s[:len(s)-3], s[len(s)-3:]
	var result []rune
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, c)
	}
	return sign + string(result) + frac
}

// formatTopProducts lists the first n entries as sku×qty
func formatTopProducts(products []contracts.ProductQuantity, n int) string {
	if len(products) == 0 {
		return "-"
	}

	parts := make([]string, 0, n+1)
	for i, p := range products {
		if i == n {
			parts = append(parts, fmt.Sprintf("+%d", len(products)-n))
			break
		}
		parts = append(parts, fmt.Sprintf("%s×%d", p.SKU, p.Quantity))
	}
	return strings.Join(parts, " ")
}

func shortHash(h string) string {
	if len(h) > 12 {
		return h[:12]
	}
	return h
}
