package cart

import (
	"sync"
	"testing"

	"github.com/fjod/vistara/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func menuItem(id, price int64) domain.MenuItem {
	return domain.MenuItem{ID: id, Name: "item", Price: decimal.NewFromInt(price)}
}

func ids(lines []domain.CartLine) []int64 {
	out := make([]int64, len(lines))
	for i, l := range lines {
		out[i] = l.Item.ID
	}
	return out
}

func TestNewStore_Empty(t *testing.T) {
	s := NewStore()

	assert.Empty(t, s.Lines())
	assert.True(t, s.TotalPrice().IsZero())
	assert.Equal(t, 0, s.TotalItemCount())
	assert.False(t, s.Visible())
}

func TestAddItem_SameIDIncrementsQuantity(t *testing.T) {
	s := NewStore()
	a := menuItem(1, 100)

	for i := 0; i < 5; i++ {
		s.AddItem(a)
	}

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, int64(1), lines[0].Item.ID)
	assert.Equal(t, 5, lines[0].Quantity)
}

func TestAddItem_Scenario(t *testing.T) {
	s := NewStore()
	a := menuItem(1, 100)
	b := menuItem(2, 50)

	s.AddItem(a)
	s.AddItem(a)
	s.AddItem(b)

	assert.Equal(t, 3, s.TotalItemCount())
	assert.True(t, decimal.NewFromInt(250).Equal(s.TotalPrice()))
	assert.Equal(t, []int64{1, 2}, ids(s.Lines()))

	s.SetQuantity(a.ID, 1)
	assert.True(t, decimal.NewFromInt(150).Equal(s.TotalPrice()))
	assert.Equal(t, 2, s.TotalItemCount())
}

func TestSetQuantity_DoesNotReorder(t *testing.T) {
	s := NewStore()
	s.AddItem(menuItem(1, 10))
	s.AddItem(menuItem(2, 10))
	s.AddItem(menuItem(3, 10))

	s.SetQuantity(1, 7)
	s.AddItem(menuItem(2, 10))

	assert.Equal(t, []int64{1, 2, 3}, ids(s.Lines()))
}

func TestSetQuantity_NonPositiveRemoves(t *testing.T) {
	for _, q := range []int{0, -5} {
		s := NewStore()
		s.AddItem(menuItem(1, 100))
		s.AddItem(menuItem(2, 50))

		s.SetQuantity(1, q)

		assert.Equal(t, []int64{2}, ids(s.Lines()), "quantity %d", q)
	}
}

func TestSetQuantity_UnknownIDIsNoop(t *testing.T) {
	s := NewStore()
	s.AddItem(menuItem(1, 100))
	before := s.Lines()

	s.SetQuantity(42, 3)

	assert.Equal(t, before, s.Lines())
}

func TestRemoveItem(t *testing.T) {
	s := NewStore()
	s.AddItem(menuItem(1, 100))
	s.AddItem(menuItem(2, 50))

	s.RemoveItem(1)
	assert.Equal(t, []int64{2}, ids(s.Lines()))

	// absent id leaves state unchanged
	before := s.Snapshot()
	s.RemoveItem(1)
	s.RemoveItem(99)
	assert.Equal(t, before, s.Snapshot())
}

func TestTotals_MatchLinesAfterEveryMutation(t *testing.T) {
	s := NewStore()
	check := func() {
		lines := s.Lines()
		price := decimal.Zero
		count := 0
		for _, l := range lines {
			require.GreaterOrEqual(t, l.Quantity, 1)
			price = price.Add(l.Item.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
			count += l.Quantity
		}
		assert.True(t, price.Equal(s.TotalPrice()), "want %s got %s", price, s.TotalPrice())
		assert.Equal(t, count, s.TotalItemCount())
	}

	s.AddItem(menuItem(1, 299))
	check()
	s.AddItem(menuItem(5, 449))
	check()
	s.SetQuantity(5, 3)
	check()
	s.AddItem(menuItem(1, 299))
	check()
	s.SetQuantity(1, -1)
	check()
	s.RemoveItem(5)
	check()
}

func TestTotalPrice_FractionalPrices(t *testing.T) {
	s := NewStore()
	s.AddItem(domain.MenuItem{ID: 1, Price: decimal.RequireFromString("0.10")})
	s.SetQuantity(1, 3)

	assert.Equal(t, "0.30", s.TotalPrice().StringFixed(2))
}

func TestSetVisible_DoesNotTouchLines(t *testing.T) {
	s := NewStore()
	s.AddItem(menuItem(1, 100))

	s.SetVisible(true)
	assert.True(t, s.Visible())
	assert.Len(t, s.Lines(), 1)

	s.SetVisible(false)
	assert.False(t, s.Visible())
	assert.Len(t, s.Lines(), 1)
}

func TestSnapshot_IsIndependentCopy(t *testing.T) {
	s := NewStore()
	s.AddItem(menuItem(1, 100))

	snap := s.Snapshot()
	s.AddItem(menuItem(1, 100))
	s.AddItem(menuItem(2, 50))

	require.Len(t, snap.Lines, 1)
	assert.Equal(t, 1, snap.Lines[0].Quantity)
	assert.Equal(t, 1, snap.TotalItems)
}

func TestClear(t *testing.T) {
	s := NewStore()
	s.AddItem(menuItem(1, 100))
	s.SetVisible(true)

	s.Clear()

	assert.Empty(t, s.Lines())
	assert.False(t, s.Visible())
	assert.Equal(t, 0, s.TotalItemCount())
}

func TestStore_ConcurrentAdds(t *testing.T) {
	s := NewStore()
	a := menuItem(1, 10)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.AddItem(a)
		}()
	}
	wg.Wait()

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 50, lines[0].Quantity)
	assert.True(t, decimal.NewFromInt(500).Equal(s.TotalPrice()))
}

func TestAddItemUpTo(t *testing.T) {
	s := NewStore()

	require.NoError(t, s.AddItemUpTo(menuItem(1, 100), 2))
	require.NoError(t, s.AddItemUpTo(menuItem(1, 100), 2))
	assert.ErrorIs(t, s.AddItemUpTo(menuItem(1, 100), 2), ErrQuantityLimit)
	assert.Equal(t, 2, s.TotalItemCount())
	assert.Equal(t, "200", s.TotalPrice().String())

	// other lines are unaffected by a full one
	require.NoError(t, s.AddItemUpTo(menuItem(2, 50), 2))
	assert.Equal(t, []int64{1, 2}, ids(s.Lines()))
}
