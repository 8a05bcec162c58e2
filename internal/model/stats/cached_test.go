package stats

import (
	"context"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"max.ks1230/expense-tracker/internal/entity/user"
	"max.ks1230/expense-tracker/internal/model/customerr"
	"max.ks1230/expense-tracker/internal/model/stats/mock"
	"max.ks1230/expense-tracker/internal/model/storage"
)

// cacheOver keeps entries in items the way memcached would.
func cacheOver(m minimock.Tester, items map[string][]byte) *mock.StatsCacheMock {
	return mock.NewStatsCacheMock(m).
		GetMock.
		Set(func(key string) ([]byte, bool, error) {
			v, ok := items[key]
			return v, ok, nil
		}).
		SetMock.
		Set(func(key string, value []byte) error {
			items[key] = value
			return nil
		})
}

func Test_CacheKey_ShouldIncludeGenerationPeriodAndDay(t *testing.T) {
	key := CacheKey(7, 3, Weekly, date(2024, time.June, 10))
	assert.Equal(t, "stats:7:3:weekly:2024-06-10", key)
}

func Test_OnCachedCompute_ShouldServeRepeatedRequestsFromCache(t *testing.T) {
	ctx := context.Background()
	m := minimock.NewController(t)
	defer m.Finish()

	day := date(2024, time.June, 10)
	st := storageWith(m, expense("4.20", "food", day))
	items := map[string][]byte{}
	cache := cacheOver(m, items).
		GenerationMock.
		Expect(1).
		Return(3, nil)
	cached := NewCached(NewAggregator(st), cache)

	first, err := cached.Compute(ctx, 1, Daily, day)
	require.NoError(t, err)
	second, err := cached.Compute(ctx, 1, Daily, day.Add(5*time.Hour))
	require.NoError(t, err)

	assert.Equal(t, uint64(1), st.ListExpensesBeforeCounter())
	assert.Contains(t, items, CacheKey(1, 3, Daily, day))
	assert.Equal(t, "4.20", FormatAmount(second.Total))
	assert.Equal(t, first.Count, second.Count)
	require.Len(t, second.Categories, 1)
	assert.Equal(t, "food", second.Categories[0].Category)
	assert.Len(t, second.Hourly, 24)
}

func Test_OnCachedCompute_ShouldRecomputeAfterInvalidate(t *testing.T) {
	ctx := context.Background()
	m := minimock.NewController(t)
	defer m.Finish()

	day := date(2024, time.June, 10)
	exps := []user.ExpenseRecord{expense("1", "food", day)}
	st := mock.NewExpensesStorageMock(m).
		ListExpensesMock.
		Set(func(_ context.Context, _ int64, _ storage.DateRange) ([]user.ExpenseRecord, error) {
			return exps, nil
		})

	gen := uint64(0)
	cache := cacheOver(m, map[string][]byte{}).
		GenerationMock.
		Set(func(_ int64) (uint64, error) {
			return gen, nil
		}).
		BumpMock.
		Set(func(userID int64) error {
			assert.Equal(m, int64(1), userID)
			gen++
			return nil
		})
	cached := NewCached(NewAggregator(st), cache)

	_, err := cached.Compute(ctx, 1, Monthly, day)
	require.NoError(t, err)

	exps = append(exps, expense("2", "food", day))
	require.NoError(t, cached.Invalidate(ctx, 1))

	res, err := cached.Compute(ctx, 1, Monthly, day)
	require.NoError(t, err)
	assert.Equal(t, "3.00", FormatAmount(res.Total))
	assert.Equal(t, uint64(2), st.ListExpensesBeforeCounter())
}

func Test_OnCachedCompute_ShouldFallThroughOnCacheFailure(t *testing.T) {
	ctx := context.Background()
	m := minimock.NewController(t)
	defer m.Finish()

	down := errors.New("memcached down")
	day := date(2024, time.June, 10)
	st := storageWith(m, expense("5", "food", day))
	cache := mock.NewStatsCacheMock(m).
		GenerationMock.Return(0, nil).
		GetMock.Return(nil, false, down).
		SetMock.Return(down)
	cached := NewCached(NewAggregator(st), cache)

	res, err := cached.Compute(ctx, 1, All, day)
	require.NoError(t, err)
	assert.Equal(t, "5.00", FormatAmount(res.Total))

	_, err = cached.Compute(ctx, 1, All, day)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), st.ListExpensesBeforeCounter())
}

func Test_OnCachedCompute_ShouldSkipCacheWithoutGeneration(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()

	day := date(2024, time.June, 10)
	st := storageWith(m, expense("5", "food", day))
	cache := mock.NewStatsCacheMock(m).
		GenerationMock.
		Return(0, errors.New("memcached down"))

	res, err := NewCached(NewAggregator(st), cache).Compute(context.Background(), 1, Daily, day)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Count)
	assert.Zero(t, cache.GetBeforeCounter())
	assert.Zero(t, cache.SetBeforeCounter())
}

func Test_OnCachedCompute_ShouldIgnoreUndecodableEntries(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()

	day := date(2024, time.June, 10)
	key := CacheKey(1, 0, Weekly, day)
	st := storageWith(m, expense("5", "food", day))
	cache := mock.NewStatsCacheMock(m).
		GenerationMock.Return(0, nil).
		GetMock.Expect(key).Return([]byte("{not json"), true, nil).
		SetMock.
		Inspect(func(k string, _ []byte) {
			assert.Equal(m, key, k)
		}).
		Return(nil)
	cached := NewCached(NewAggregator(st), cache)

	res, err := cached.Compute(context.Background(), 1, Weekly, day)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Count)
	assert.Equal(t, uint64(1), st.ListExpensesBeforeCounter())
}

func Test_OnCachedCompute_ShouldNotCacheInvalidPeriods(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()

	cache := mock.NewStatsCacheMock(m)
	cached := NewCached(NewAggregator(mock.NewExpensesStorageMock(m)), cache)

	_, err := cached.Compute(context.Background(), 1, "hourly", time.Now())
	assert.True(t, customerr.IsInvalidPeriod(err))
	assert.Zero(t, cache.GenerationBeforeCounter())
	assert.Zero(t, cache.SetBeforeCounter())
}

func Test_Invalidator_ShouldBumpGeneration(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()

	cache := mock.NewStatsCacheMock(m).BumpMock.Expect(9).Return(nil)
	require.NoError(t, NewInvalidator(cache).Invalidate(context.Background(), 9))
	assert.Equal(t, uint64(1), cache.BumpAfterCounter())
}

func Test_OnInvalidate_ShouldReturnCacheErrors(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()

	down := errors.New("memcached down")
	cache := mock.NewStatsCacheMock(m).BumpMock.Return(down)
	cached := NewCached(NewAggregator(mock.NewExpensesStorageMock(m)), cache)

	assert.ErrorIs(t, cached.Invalidate(context.Background(), 4), down)
}
