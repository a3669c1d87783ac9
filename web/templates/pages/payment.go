package pages

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// PaymentSuccessPage confirms a verified, paid checkout session
func PaymentSuccessPage(registrationID int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		fmt.Fprintf(&b, `
			<div class="payment-result payment-result-success">
				<h1>Payment Successful</h1>
				<p>Your registration #%d is confirmed. Your tickets are on the way.</p>
				<a href="/events">Browse more events</a>
			</div>
		`, registrationID)

		return page("Payment Successful", b.String()).Render(ctx, w)
	})
}

// PaymentPendingPage covers both unpaid and unverifiable sessions
func PaymentPendingPage(registrationID int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		fmt.Fprintf(&b, `
			<div class="payment-result payment-result-pending">
				<h1>Payment Not Confirmed Yet</h1>
				<p>We could not confirm payment for registration #%d. If you completed
				payment, it may take a moment to register. Try refreshing this page.</p>
				<a href="/cart">Return to cart</a>
			</div>
		`, registrationID)

		return page("Payment Pending", b.String()).Render(ctx, w)
	})
}

// PaymentInvalidSessionPage reports an unusable return URL
func PaymentInvalidSessionPage(reason string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		fmt.Fprintf(&b, `
			<div class="payment-result payment-result-error">
				<h1>Invalid Payment Session</h1>
				<p>%s</p>
				<a href="/cart">Return to cart</a>
			</div>
		`, esc(reason))

		return page("Invalid Payment Session", b.String()).Render(ctx, w)
	})
}

// PaymentCancelledPage acknowledges a cancelled payment
func PaymentCancelledPage() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`
			<div class="payment-result payment-result-cancelled">
				<h1>Payment Cancelled</h1>
				<p>No charge was made. Your cart is still waiting for you.</p>
				<a href="/cart">Return to cart</a>
			</div>
		`)

		return page("Payment Cancelled", b.String()).Render(ctx, w)
	})
}
