package models

// Cart holds the tickets a user intends to purchase. It is a pure state
// container: no network or storage access happens here. Persistence is the
// session layer's job, and every mutation goes through the methods below.
type Cart struct {
	Items []CartItem `json:"items"`
}

// CartItem represents one ticket type line in the shopping cart
type CartItem struct {
	TicketID   int    `json:"ticket_id"`
	TicketName string `json:"ticket_name"`
	UnitPrice  int    `json:"unit_price"` // in cents, denormalized at add time
	Quantity   int    `json:"quantity"`
}

// Subtotal returns the line total in cents
func (i CartItem) Subtotal() int {
	return i.UnitPrice * i.Quantity
}

// AddItem adds tickets to the cart. Lines are keyed by ticket type: adding a
// ticket that is already in the cart increments its quantity instead of
// creating a second line. Quantities below 1 are rejected as a no-op; stock
// limits are the caller's problem, not the cart's.
func (c *Cart) AddItem(ticketID int, ticketName string, quantity, unitPrice int) {
	if quantity < 1 {
		return
	}

	for i := range c.Items {
		if c.Items[i].TicketID == ticketID {
			c.Items[i].Quantity += quantity
			return
		}
	}

	c.Items = append(c.Items, CartItem{
		TicketID:   ticketID,
		TicketName: ticketName,
		UnitPrice:  unitPrice,
		Quantity:   quantity,
	})
}

// IncreaseQuantity adds one ticket to an existing line. Unknown ticket IDs
// are ignored.
func (c *Cart) IncreaseQuantity(ticketID int) {
	for i := range c.Items {
		if c.Items[i].TicketID == ticketID {
			c.Items[i].Quantity++
			return
		}
	}
}

// DecreaseQuantity removes one ticket from an existing line. A line never
// rests below quantity 1: decreasing at 1 removes the line entirely.
func (c *Cart) DecreaseQuantity(ticketID int) {
	for i := range c.Items {
		if c.Items[i].TicketID == ticketID {
			if c.Items[i].Quantity <= 1 {
				c.Items = append(c.Items[:i], c.Items[i+1:]...)
			} else {
				c.Items[i].Quantity--
			}
			return
		}
	}
}

// RemoveItem removes a line regardless of its quantity
func (c *Cart) RemoveItem(ticketID int) {
	for i := range c.Items {
		if c.Items[i].TicketID == ticketID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart. Clearing an already-empty cart is a no-op.
func (c *Cart) Clear() {
	c.Items = nil
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// TotalQuantity returns the number of tickets across all lines, recomputed
// from current state on every call.
func (c *Cart) TotalQuantity() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// TotalAmount returns the cart total in cents, recomputed from current state
// on every call. There is no cached total to go stale.
func (c *Cart) TotalAmount() int {
	total := 0
	for _, item := range c.Items {
		total += item.Subtotal()
	}
	return total
}

// Snapshot copies the cart contents into registration details. Checkout reads
// the cart exactly once through this; later cart mutations do not affect an
// in-flight registration.
func (c *Cart) Snapshot() []RegistrationDetail {
	details := make([]RegistrationDetail, 0, len(c.Items))
	for _, item := range c.Items {
		details = append(details, RegistrationDetail{
			TicketID: item.TicketID,
			Quantity: item.Quantity,
		})
	}
	return details
}
