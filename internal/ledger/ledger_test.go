package ledger

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordStampsAndOrders(t *testing.T) {
	l := New()
	stamp := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return stamp }

	l.Record("first deposit", decimal.NewFromInt(100))
	l.Record("second deposit", decimal.NewFromInt(200))

	all := l.ListAll()
	require.Len(t, all, 2)

	assert.Equal(t, "first deposit", all[0].Message)
	assert.Equal(t, "second deposit", all[1].Message)
	assert.True(t, all[0].Success)
	assert.True(t, all[0].Amount.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, stamp, all[0].Date)
}

func TestListAllReturnsSnapshot(t *testing.T) {
	l := New()
	l.Record("one", decimal.NewFromInt(1))

	snapshot := l.ListAll()
	l.Record("two", decimal.NewFromInt(2))

	// The earlier snapshot must not observe the later append.
	assert.Len(t, snapshot, 1)
	assert.Len(t, l.ListAll(), 2)
}

func TestMessagesDerivedView(t *testing.T) {
	l := New()
	l.Record("alpha", decimal.NewFromInt(1))
	l.Record("beta", decimal.NewFromInt(2))

	assert.Equal(t, []string{"alpha", "beta"}, l.Messages())
}

func TestEmptyLedger(t *testing.T) {
	l := New()

	assert.Empty(t, l.ListAll())
	assert.Empty(t, l.Messages())
	assert.Zero(t, l.Len())
}

func TestConcurrentRecord(t *testing.T) {
	l := New()

	const goroutines = 16
	const perGoroutine = 50

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				l.Record(fmt.Sprintf("g%d-%d", g, i), decimal.NewFromInt(int64(i)))
			}
		}(g)
	}
	wg.Wait()

	assert.Equal(t, goroutines*perGoroutine, l.Len())
	assert.Len(t, l.Messages(), goroutines*perGoroutine)
}
