package pages

import (
	"context"
	"fmt"
	"io"
	"strings"

	"eventgate/internal/models"

	"github.com/a-h/templ"
)

// EventsListPage renders the public event listing
func EventsListPage(events []*models.Event) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<h1>Upcoming Events</h1>`)

		if len(events) == 0 {
			b.WriteString(`<p>No events scheduled right now. Check back soon.</p>`)
		} else {
			b.WriteString(`<ul class="event-list">`)
			for _, event := range events {
				fmt.Fprintf(&b, `
					<li>
						<a href="/events/%d">%s</a>
						<span>%s, %s</span>
					</li>
				`, event.ID, esc(event.Title), esc(event.Location), event.StartDate.Format("Jan 2, 2006"))
			}
			b.WriteString(`</ul>`)
		}

		return page("Events", b.String()).Render(ctx, w)
	})
}

// EventDetailsPage renders a single event with its ticket types and
// add-to-cart forms
func EventDetailsPage(event *models.Event, ticketTypes []*models.TicketType) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		fmt.Fprintf(&b, `
			<h1>%s</h1>
			<p>%s</p>
			<p>%s, %s to %s</p>
		`, esc(event.Title), esc(event.Description), esc(event.Location),
			event.StartDate.Format("Jan 2, 2006 3:04 PM"), event.EndDate.Format("Jan 2, 2006 3:04 PM"))

		if len(ticketTypes) == 0 {
			b.WriteString(`<p>No tickets on sale for this event.</p>`)
			return page(event.Title, b.String()).Render(ctx, w)
		}

		b.WriteString(`<ul class="ticket-types">`)
		for _, tt := range ticketTypes {
			fmt.Fprintf(&b, `<li><strong>%s</strong> %s`, esc(tt.Name), formatPrice(tt.Price))
			if tt.IsAvailable() {
				fmt.Fprintf(&b, `
					<form method="post" action="/cart/add" hx-post="/cart/add" hx-target="#cart-notice">
						<input type="hidden" name="event_id" value="%d">
						<input type="hidden" name="ticket_id" value="%d">
						<input type="number" name="quantity" value="1" min="1" max="%d">
						<button>Add to Cart</button>
					</form>
				`, event.ID, tt.ID, tt.Available())
			} else {
				b.WriteString(` <span class="sold-out">Sold Out</span>`)
			}
			b.WriteString(`</li>`)
		}
		b.WriteString(`</ul><div id="cart-notice"></div>`)

		return page(event.Title, b.String()).Render(ctx, w)
	})
}
