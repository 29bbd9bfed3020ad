//go:build unit

package cache

import (
	"context"
	"testing"
	"time"

	"rental-marketplace/internal/pkg/config"
	"rental-marketplace/internal/usecase/queries"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type PropertySearchCacheTestSuite struct {
	suite.Suite
	mr    *miniredis.Miniredis
	cache *PropertySearchCache
}

func TestPropertySearchCacheTestSuite(t *testing.T) {
	suite.Run(t, new(PropertySearchCacheTestSuite))
}

func (s *PropertySearchCacheTestSuite) SetupTest() {
	s.mr = miniredis.RunT(s.T())
	client := NewRedisClient(config.RedisConfig{Addr: s.mr.Addr(), PoolSize: 2})
	s.T().Cleanup(func() { _ = client.Close() })
	s.cache = NewPropertySearchCache(client, time.Minute)
}

func sampleResult() *queries.PropertySearchResult {
	return &queries.PropertySearchResult{
		Items: []*queries.PropertyListItem{
			{ID: uuid.New(), Title: "Sunny loft", City: "Berlin", Rent: 1250, Images: []queries.ImageView{}},
		},
	}
}

// fill stores result the way a reader does after a miss.
func (s *PropertySearchCacheTestSuite) fill(ctx context.Context, key string, result *queries.PropertySearchResult) {
	_, slot, ok := s.cache.GetSearch(ctx, key)
	s.Require().False(ok)
	s.Require().NotEmpty(slot)
	s.cache.SetSearch(ctx, slot, result)
}

func (s *PropertySearchCacheTestSuite) TestMissThenHit() {
	ctx := context.Background()

	want := sampleResult()
	s.fill(ctx, "city=berlin", want)

	got, _, ok := s.cache.GetSearch(ctx, "city=berlin")
	s.Require().True(ok)
	s.Equal(want.Items[0].ID, got.Items[0].ID)
	s.Equal("Sunny loft", got.Items[0].Title)
	s.Nil(got.Next)

	_, _, ok = s.cache.GetSearch(ctx, "city=paris")
	s.False(ok)
}

func (s *PropertySearchCacheTestSuite) TestEntriesExpire() {
	ctx := context.Background()
	s.fill(ctx, "k", sampleResult())

	s.mr.FastForward(2 * time.Minute)

	_, _, ok := s.cache.GetSearch(ctx, "k")
	s.False(ok)
}

func (s *PropertySearchCacheTestSuite) TestInvalidateOrphansEveryPage() {
	ctx := context.Background()
	s.fill(ctx, "a", sampleResult())
	s.fill(ctx, "b", sampleResult())

	s.cache.InvalidateSearch(ctx)

	_, _, okA := s.cache.GetSearch(ctx, "a")
	_, _, okB := s.cache.GetSearch(ctx, "b")
	s.False(okA)
	s.False(okB)

	version, err := s.mr.Get(searchVersionKey)
	s.Require().NoError(err)
	s.Equal("1", version)

	s.fill(ctx, "a", sampleResult())
	_, _, ok := s.cache.GetSearch(ctx, "a")
	s.True(ok)
}

func (s *PropertySearchCacheTestSuite) TestPageReadBeforeInvalidateIsNotServed() {
	ctx := context.Background()

	_, slot, ok := s.cache.GetSearch(ctx, "city=berlin")
	s.Require().False(ok)

	s.cache.InvalidateSearch(ctx)
	s.cache.SetSearch(ctx, slot, sampleResult())

	_, fresh, ok := s.cache.GetSearch(ctx, "city=berlin")
	s.False(ok)
	s.NotEqual(slot, fresh)
}

func (s *PropertySearchCacheTestSuite) TestEmptySlotIsIgnored() {
	ctx := context.Background()

	s.cache.SetSearch(ctx, "", sampleResult())

	s.Empty(s.mr.Keys())
}

func (s *PropertySearchCacheTestSuite) TestCorruptEntryIsAMiss() {
	ctx := context.Background()
	fullKey, err := s.cache.key(ctx, "broken")
	s.Require().NoError(err)
	s.Require().NoError(s.mr.Set(fullKey, "{not json"))

	_, slot, ok := s.cache.GetSearch(ctx, "broken")
	s.False(ok)
	s.Equal(fullKey, slot)
}

func (s *PropertySearchCacheTestSuite) TestRedisDownDegradesToMiss() {
	ctx := context.Background()
	s.mr.Close()

	var slot string
	var ok bool
	s.NotPanics(func() {
		_, slot, ok = s.cache.GetSearch(ctx, "k")
		s.cache.SetSearch(ctx, slot, sampleResult())
		s.cache.InvalidateSearch(ctx)
	})
	s.False(ok)
	s.Empty(slot)
}

func TestNoopSearchCache(t *testing.T) {
	var c NoopSearchCache
	ctx := context.Background()

	c.SetSearch(ctx, "k", sampleResult())
	c.InvalidateSearch(ctx)
	got, slot, ok := c.GetSearch(ctx, "k")

	require.False(t, ok)
	assert.Nil(t, got)
	assert.Empty(t, slot)
}
