package pages

import (
	"fmt"

	"github.com/a-h/templ"
)

// esc HTML-escapes a dynamic value before it is written into markup. Every
// backend-supplied or user-supplied string in this package goes through it.
func esc(s string) string {
	return templ.EscapeString(s)
}

// formatPrice renders a cent amount as a user-facing currency string
func formatPrice(cents int) string {
	return fmt.Sprintf("KES %.2f", float64(cents)/100)
}
