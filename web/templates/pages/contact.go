package pages

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// ContactPage renders the contact form
func ContactPage() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`
			<h1>Contact Us</h1>
			<form method="post" action="/contact">
				<input type="text" name="name" placeholder="Your name" required>
				<input type="email" name="email" placeholder="Your email" required>
				<input type="text" name="subject" placeholder="Subject" required>
				<textarea name="message" placeholder="Message" required></textarea>
				<button>Send Message</button>
			</form>
		`)

		return page("Contact Us", b.String()).Render(ctx, w)
	})
}
