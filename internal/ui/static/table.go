// Package static provides non-interactive terminal output components.
//
// This package contains components for rendering formatted output
// that does not require user interaction, such as tables.
package static

import (
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/raphi011/wts/internal/home"
	"github.com/raphi011/wts/internal/ui/styles"
)

// CheckoutHeaders are the column headers for CheckoutTableRow.
var CheckoutHeaders = []string{"", "PATH", "BRANCH", "COMMIT"}

// RenderTable creates a formatted table with proper column alignment.
// Headers and rows are rendered using lipgloss/table which automatically
// calculates column widths based on content. No borders are rendered.
func RenderTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	var output strings.Builder

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.Bold.PaddingRight(2)
			}
			return lipgloss.NewStyle().PaddingRight(2)
		})

	output.WriteString(t.String())
	output.WriteString("\n")

	return output.String()
}

// CheckoutTableRow builds one list row: marker, home-relative path, branch
// and a 7 character revision.
func CheckoutTableRow(c home.Checkout) []string {
	marker := ""
	if c.IsMain() {
		marker = styles.AccentStyle.Render(styles.MainMarker)
	}

	rev := c.Revision
	if len(rev) > 7 {
		rev = rev[:7]
	}

	return []string{marker, c.Rel, c.Branch, rev}
}

// RenderCheckouts renders the list table for the given checkouts.
func RenderCheckouts(checkouts []home.Checkout) string {
	rows := make([][]string, 0, len(checkouts))
	for _, c := range checkouts {
		rows = append(rows, CheckoutTableRow(c))
	}
	return RenderTable(CheckoutHeaders, rows)
}
