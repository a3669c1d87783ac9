package pages

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// page wraps body markup in the shared document shell. Full page views go
// through here; HTMX fragments are written directly by the handlers.
func page(title, body string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		fmt.Fprintf(&b, `<title>%s - EventGate</title>`, esc(title))
		b.WriteString(`<script src="https://unpkg.com/htmx.org@1.9.10"></script>`)
		b.WriteString(`</head><body>`)
		b.WriteString(`<nav><a href="/events">Events</a> <a href="/cart">Cart</a> <a href="/contact">Contact</a></nav>`)
		b.WriteString(body)
		b.WriteString(`</body></html>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}
