package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCartAddItemMergesByTicketID(t *testing.T) {
	tests := []struct {
		name         string
		adds         []struct{ id, qty int }
		wantLines    int
		wantQuantity int
	}{
		{
			name: "single add creates one line",
			adds: []struct{ id, qty int }{
				{id: 1, qty: 2},
			},
			wantLines:    1,
			wantQuantity: 2,
		},
		{
			name: "repeated adds for the same ticket merge into one line",
			adds: []struct{ id, qty int }{
				{id: 1, qty: 2},
				{id: 1, qty: 3},
				{id: 1, qty: 1},
			},
			wantLines:    1,
			wantQuantity: 6,
		},
		{
			name: "different tickets stay on separate lines",
			adds: []struct{ id, qty int }{
				{id: 1, qty: 2},
				{id: 2, qty: 1},
				{id: 1, qty: 1},
			},
			wantLines:    2,
			wantQuantity: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := &Cart{}
			for _, add := range tt.adds {
				cart.AddItem(add.id, "General Admission", add.qty, 1000)
			}

			assert.Len(t, cart.Items, tt.wantLines)
			assert.Equal(t, tt.wantQuantity, cart.TotalQuantity())
		})
	}
}

func TestCartAddItemRejectsNonPositiveQuantity(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(1, "VIP", 0, 5000)
	cart.AddItem(1, "VIP", -3, 5000)

	assert.True(t, cart.IsEmpty())
	assert.Equal(t, 0, cart.TotalQuantity())
}

func TestCartTotals(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(1, "A", 2, 100)

	// Property from the checkout flow: 2 x 100 = 200, then +1 ticket = 300
	assert.Equal(t, 200, cart.TotalAmount())

	cart.IncreaseQuantity(1)
	assert.Equal(t, 300, cart.TotalAmount())
	assert.Equal(t, 3, cart.TotalQuantity())
}

func TestCartTotalAmountRecomputedAfterEveryMutation(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(1, "A", 2, 100)
	cart.AddItem(2, "B", 1, 250)
	assert.Equal(t, 450, cart.TotalAmount())

	cart.DecreaseQuantity(1)
	assert.Equal(t, 350, cart.TotalAmount())

	cart.RemoveItem(2)
	assert.Equal(t, 100, cart.TotalAmount())

	cart.IncreaseQuantity(1)
	assert.Equal(t, 200, cart.TotalAmount())
}

func TestCartDecreaseQuantityRemovesLineAtOne(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(1, "A", 2, 100)

	cart.DecreaseQuantity(1)
	assert.Equal(t, 1, cart.Items[0].Quantity)

	// Decrementing at quantity 1 removes the line instead of going to 0
	cart.DecreaseQuantity(1)
	assert.True(t, cart.IsEmpty())

	// Decrementing an unknown ticket is a no-op
	cart.DecreaseQuantity(99)
	assert.True(t, cart.IsEmpty())
}

func TestCartRemoveItem(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(1, "A", 5, 100)
	cart.AddItem(2, "B", 1, 200)

	cart.RemoveItem(1)

	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].TicketID)
}

func TestCartClear(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(1, "A", 3, 100)
	cart.AddItem(2, "B", 2, 200)

	cart.Clear()
	assert.Equal(t, 0, cart.TotalQuantity())
	assert.Equal(t, 0, cart.TotalAmount())

	// Clearing an already-empty cart must be a safe no-op
	cart.Clear()
	assert.True(t, cart.IsEmpty())
}

func TestCartSnapshotIsIndependentOfLaterMutations(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(1, "A", 2, 100)
	cart.AddItem(2, "B", 1, 200)

	snapshot := cart.Snapshot()
	cart.Clear()

	assert.Len(t, snapshot, 2)
	assert.Equal(t, RegistrationDetail{TicketID: 1, Quantity: 2}, snapshot[0])
	assert.Equal(t, RegistrationDetail{TicketID: 2, Quantity: 1}, snapshot[1])
}
