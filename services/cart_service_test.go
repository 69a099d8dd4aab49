package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nicgen/buy-02/models"
	"github.com/nicgen/buy-02/storage"
)

func lamp() models.CartItem {
	return models.CartItem{ID: "p1", Name: "Lamp", Price: 25, Quantity: 1}
}

func desk() models.CartItem {
	return models.CartItem{ID: "p2", Name: "Desk", Price: 120, Quantity: 1}
}

func TestAddMergesByProductID(t *testing.T) {
	cart := NewCartService(storage.NewMemoryStore())

	cart.Add(lamp())
	cart.Add(desk())
	cart.Add(lamp())

	items := cart.Items()
	assert.Len(t, items, 2, "same product id must merge, not duplicate")
	assert.Equal(t, "p1", items[0].ID, "insertion order preserved")
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 1, items[1].Quantity)
}

func TestAddDefaultsQuantity(t *testing.T) {
	cart := NewCartService(storage.NewMemoryStore())

	item := lamp()
	item.Quantity = 0
	cart.Add(item)

	assert.Equal(t, 1, cart.Items()[0].Quantity)
}

func TestTotal(t *testing.T) {
	cart := NewCartService(storage.NewMemoryStore())
	assert.Equal(t, 0.0, cart.Total())

	cart.Add(lamp())
	cart.Add(lamp())
	cart.Add(desk())

	// 2×25 + 1×120
	assert.Equal(t, 170.0, cart.Total())
}

func TestRemove(t *testing.T) {
	cart := NewCartService(storage.NewMemoryStore())
	cart.Add(lamp())
	cart.Add(desk())

	cart.Remove("p1")
	items := cart.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, "p2", items[0].ID)

	t.Run("Missing ID Is A No-Op", func(t *testing.T) {
		cart.Remove("nope")
		assert.Len(t, cart.Items(), 1)
	})
}

func TestClear(t *testing.T) {
	cart := NewCartService(storage.NewMemoryStore())
	cart.Add(lamp())

	cart.Clear()
	assert.Empty(t, cart.Items())
	assert.Equal(t, 0.0, cart.Total())
}

func TestCartStreamReplaysLatest(t *testing.T) {
	cart := NewCartService(storage.NewMemoryStore())
	cart.Add(lamp())
	cart.Add(desk())

	sub := cart.Changes().Subscribe()
	defer sub.Cancel()

	select {
	case items := <-sub.C():
		assert.Len(t, items, 2, "late subscriber gets the current list, not history")
	case <-time.After(2 * time.Second):
		t.Fatal("no replayed cart state")
	}

	cart.Remove("p1")
	select {
	case items := <-sub.C():
		assert.Len(t, items, 1)
	case <-time.After(2 * time.Second):
		t.Fatal("no cart change delivered")
	}
}

func TestCartPersistsAcrossRestarts(t *testing.T) {
	store := storage.NewMemoryStore()

	cart := NewCartService(store)
	cart.Add(lamp())
	cart.Add(desk())

	restored := NewCartService(store)
	items := restored.Items()
	assert.Len(t, items, 2)
	assert.Equal(t, "p1", items[0].ID)
	assert.Equal(t, 145.0, restored.Total())
}

func TestItemsReturnsCopy(t *testing.T) {
	cart := NewCartService(storage.NewMemoryStore())
	cart.Add(lamp())

	items := cart.Items()
	items[0].Quantity = 99

	assert.Equal(t, 1, cart.Items()[0].Quantity)
}
