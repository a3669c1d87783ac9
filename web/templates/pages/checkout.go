package pages

import (
	"context"
	"fmt"
	"io"
	"strings"

	"eventgate/internal/models"

	"github.com/a-h/templ"
)

// CheckoutPage renders the order summary before payment
func CheckoutPage(user *models.User, cart *models.Cart) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		fmt.Fprintf(&b, `<h1>Checkout</h1><p>%s</p>`, esc(user.FullName()))

		for _, item := range cart.Items {
			fmt.Fprintf(&b, `<p>%s x%d = %s</p>`, esc(item.TicketName), item.Quantity, formatPrice(item.Subtotal()))
		}

		fmt.Fprintf(&b, `
			<p>Total: %s</p>
			<form method="post" action="/checkout"><button>Pay Now</button></form>
		`, formatPrice(cart.TotalAmount()))

		return page("Checkout", b.String()).Render(ctx, w)
	})
}

// CheckoutErrorPage reports a failed checkout attempt. The message may carry
// backend error text, so it is escaped like any other dynamic value.
func CheckoutErrorPage(message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		fmt.Fprintf(&b, `
			<div class="cart-notice cart-notice-error">
				<p>%s</p>
				<a href="/cart">Back to cart</a>
			</div>
		`, esc(message))

		return page("Checkout", b.String()).Render(ctx, w)
	})
}
