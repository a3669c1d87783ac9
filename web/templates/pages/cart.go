package pages

import (
	"context"
	"fmt"
	"io"
	"strings"

	"eventgate/internal/models"

	"github.com/a-h/templ"
)

// CartPage renders the shopping cart with line adjustment controls
func CartPage(cart *models.Cart) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<h1>My Tickets</h1>`)

		if cart.IsEmpty() {
			b.WriteString(`<p>Your ticket cart is empty</p>`)
			return page("My Tickets", b.String()).Render(ctx, w)
		}

		b.WriteString(`<ul class="cart-items">`)
		for _, item := range cart.Items {
			fmt.Fprintf(&b, `
				<li>
					<span>%s</span> x%d @ %s = %s
					<form method="post" action="/cart/increase"><input type="hidden" name="ticket_id" value="%d"><button>+</button></form>
					<form method="post" action="/cart/decrease"><input type="hidden" name="ticket_id" value="%d"><button>-</button></form>
					<form method="post" action="/cart/remove"><input type="hidden" name="ticket_id" value="%d"><button>Remove</button></form>
				</li>
			`, esc(item.TicketName), item.Quantity, formatPrice(item.UnitPrice), formatPrice(item.Subtotal()),
				item.TicketID, item.TicketID, item.TicketID)
		}
		b.WriteString(`</ul>`)

		fmt.Fprintf(&b, `
			<p>Total tickets: %d</p>
			<p>Total price: %s</p>
			<form method="post" action="/cart/clear"><button>Clear All</button></form>
			<form method="post" action="/checkout"><button>Checkout Now</button></form>
		`, cart.TotalQuantity(), formatPrice(cart.TotalAmount()))

		return page("My Tickets", b.String()).Render(ctx, w)
	})
}
