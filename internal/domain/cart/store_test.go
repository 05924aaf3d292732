package cart

import (
	"io"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() *Store {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewStore(logger)
}

func apple() ProductInput {
	return ProductInput{ID: "p1", Name: "Apple", Price: 12000, Image: "apple.png", Unit: "1 kg"}
}

func milk() ProductInput {
	return ProductInput{ID: "p2", Name: "Milk", Price: 6500}
}

func TestAddItem_MergesDuplicates(t *testing.T) {
	store := newTestStore()

	store.AddItem(apple(), 2)
	store.AddItem(apple(), 3)

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, int64(12000), items[0].UnitPrice)
}

func TestAddItem_DefaultsUnit(t *testing.T) {
	store := newTestStore()

	store.AddItem(milk(), 1)

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, DefaultUnit, items[0].Unit)
}

func TestAddItem_FloorsQuantityAtOne(t *testing.T) {
	store := newTestStore()

	store.AddItem(apple(), 0)

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestSetQuantity_BelowOneRemoves(t *testing.T) {
	store := newTestStore()
	store.AddItem(apple(), 2)

	store.SetQuantity("p1", 0)
	assert.True(t, store.IsEmpty())

	store.AddItem(apple(), 2)
	store.SetQuantity("p1", -3)
	assert.True(t, store.IsEmpty())
}

func TestSetQuantity_UnknownIDStillNotifies(t *testing.T) {
	store := newTestStore()
	store.AddItem(apple(), 2)

	notified := 0
	store.Subscribe(func() { notified++ })

	store.SetQuantity("missing", 4)

	assert.Equal(t, 1, notified)
	assert.Equal(t, 2, store.Items()[0].Quantity)
}

func TestRemoveItem_Idempotent(t *testing.T) {
	store := newTestStore()
	store.AddItem(apple(), 1)
	store.AddItem(milk(), 1)

	store.RemoveItem("p1")
	once := CloneItems(store.Items())

	store.RemoveItem("p1")
	twice := store.Items()

	assert.Equal(t, once, twice)
	require.Len(t, twice, 1)
	assert.Equal(t, "p2", twice[0].ID)
}

func TestClear_EmptiesCart(t *testing.T) {
	store := newTestStore()
	store.AddItem(apple(), 2)
	store.AddItem(milk(), 1)

	store.Clear()

	assert.True(t, store.IsEmpty())
	assert.Equal(t, 0, store.TotalQuantity())
}

func TestSnapshot_ReplacedWholesale(t *testing.T) {
	store := newTestStore()
	store.AddItem(apple(), 2)

	before := store.Items()
	store.AddItem(apple(), 1)
	after := store.Items()

	// The earlier snapshot must not see the mutation
	assert.Equal(t, 2, before[0].Quantity)
	assert.Equal(t, 3, after[0].Quantity)
}

func TestSubscribe_NotificationOrderAndReadAfterWrite(t *testing.T) {
	store := newTestStore()

	var calls []string
	store.Subscribe(func() { calls = append(calls, "first") })
	store.Subscribe(func() { calls = append(calls, "second") })

	var seen int
	store.Subscribe(func() { seen = store.TotalQuantity() })

	store.AddItem(apple(), 4)

	assert.Equal(t, []string{"first", "second"}, calls)
	assert.Equal(t, 4, seen, "subscriber must observe post-mutation state")
}

func TestSubscribe_UnsubscribeStopsNotifications(t *testing.T) {
	store := newTestStore()

	notified := 0
	unsubscribe := store.Subscribe(func() { notified++ })

	store.AddItem(apple(), 1)
	unsubscribe()
	store.AddItem(apple(), 1)

	assert.Equal(t, 1, notified)
}

func TestSubscribe_PanickingListenerIsolated(t *testing.T) {
	store := newTestStore()

	store.Subscribe(func() { panic("listener blew up") })

	ran := false
	store.Subscribe(func() { ran = true })

	store.AddItem(apple(), 1)

	assert.True(t, ran, "listener after a panicking one must still run")
}

func TestSubscribe_UnsubscribeDuringNotification(t *testing.T) {
	store := newTestStore()

	var unsubscribeSecond func()
	first := 0
	second := 0
	third := 0

	store.Subscribe(func() {
		first++
		unsubscribeSecond()
	})
	unsubscribeSecond = store.Subscribe(func() { second++ })
	store.Subscribe(func() { third++ })

	store.AddItem(apple(), 1)

	assert.Equal(t, 1, first)
	assert.Equal(t, 0, second, "listener removed mid-notification must not fire")
	assert.Equal(t, 1, third, "later listeners must not be skipped by index shift")
}

func TestStore_ConcurrentAddsDoNotLoseUpdates(t *testing.T) {
	store := newTestStore()

	const workers = 8
	const perWorker = 200

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				store.AddItem(apple(), 1)
			}
		}()
	}
	wg.Wait()

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, workers*perWorker, items[0].Quantity)
}

func TestStore_ConcurrentMixedMutations(t *testing.T) {
	store := newTestStore()
	store.Subscribe(func() {
		_ = store.TotalQuantity() // listeners read back during notification
	})

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				store.AddItem(milk(), 1)
				store.SetQuantity("p2", 3)
				store.RemoveItem("p2")
			}
			_ = store.Items()
		}()
	}
	wg.Wait()

	// Every goroutine's final operation removes the line, so the cart
	// always converges to empty
	assert.True(t, store.IsEmpty())
}
