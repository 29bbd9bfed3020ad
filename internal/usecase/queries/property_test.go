//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"rental-marketplace/internal/domain/property"
	"rental-marketplace/internal/domain/user"
	"rental-marketplace/internal/infra"
	"rental-marketplace/internal/pkg/clock"
	"rental-marketplace/internal/usecase/queries"
	"rental-marketplace/tests/common/builder"
	queriesmock "rental-marketplace/tests/mock/queries"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

type PropertyQueriesTestSuite struct {
	suite.Suite
	ctrl  *gomock.Controller
	store *queriesmock.MockPropertyReadStore
	cache *queriesmock.MockPropertySearchCache
	q     queries.PropertyQueries
}

func (s *PropertyQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = queriesmock.NewMockPropertyReadStore(s.ctrl)
	s.cache = queriesmock.NewMockPropertySearchCache(s.ctrl)
	s.q = queries.NewPropertyQueries(s.store, s.cache, clock.NewMockClock(fixedNow))
}

func (s *PropertyQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestPropertyQueriesSuite(t *testing.T) {
	suite.Run(t, new(PropertyQueriesTestSuite))
}

func listItems(n int) []*queries.PropertyListItem {
	items := make([]*queries.PropertyListItem, 0, n)
	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		items = append(items, builder.NewPropertyBuilder().
			WithCreatedAt(base.Add(-time.Duration(i)*time.Hour)).
			BuildListItem())
	}
	return items
}

func (s *PropertyQueriesTestSuite) TestSearch() {
	ctx := context.Background()
	city := "Springfield"
	filters := queries.PropertyFilters{City: &city}

	s.Run("cache hit skips the store", func() {
		s.SetupTest()
		cached := &queries.PropertySearchResult{Items: listItems(1)}
		s.cache.EXPECT().GetSearch(gomock.Any(), gomock.Any()).Return(cached, "slot:v0", true).Times(1)

		got, err := s.q.Search(ctx, filters, nil, 10)

		s.Require().NoError(err)
		s.Same(cached, got)
	})

	s.Run("fetches limit+1 rows and emits a cursor when more exist", func() {
		s.SetupTest()
		rows := listItems(4)
		s.cache.EXPECT().GetSearch(gomock.Any(), gomock.Any()).Return(nil, "slot:v0", false).Times(1)
		s.store.EXPECT().SearchFirstPage(gomock.Any(), filters, int32(4)).Return(rows, nil).Times(1)
		s.cache.EXPECT().SetSearch(gomock.Any(), "slot:v0", gomock.Any()).Times(1)

		got, err := s.q.Search(ctx, filters, nil, 3)

		s.Require().NoError(err)
		s.Len(got.Items, 3)
		s.Require().NotNil(got.Next)

		lastCreatedAt, lastID, err := queries.DecodeAfterCursor(got.Next.After)
		s.Require().NoError(err)
		s.Equal(rows[2].ID, lastID)
		s.True(rows[2].CreatedAt.Equal(lastCreatedAt))
	})

	s.Run("last page has no cursor", func() {
		s.SetupTest()
		s.cache.EXPECT().GetSearch(gomock.Any(), gomock.Any()).Return(nil, "slot:v0", false).Times(1)
		s.store.EXPECT().SearchFirstPage(gomock.Any(), filters, int32(4)).Return(listItems(2), nil).Times(1)
		s.cache.EXPECT().SetSearch(gomock.Any(), "slot:v0", gomock.Any()).Times(1)

		got, err := s.q.Search(ctx, filters, nil, 3)

		s.Require().NoError(err)
		s.Len(got.Items, 2)
		s.Nil(got.Next)
	})

	s.Run("empty result is an empty slice", func() {
		s.SetupTest()
		s.cache.EXPECT().GetSearch(gomock.Any(), gomock.Any()).Return(nil, "slot:v0", false).Times(1)
		s.store.EXPECT().SearchFirstPage(gomock.Any(), filters, int32(queries.DefaultListLimit+1)).Return(nil, nil).Times(1)
		s.cache.EXPECT().SetSearch(gomock.Any(), "slot:v0", gomock.Any()).Times(1)

		got, err := s.q.Search(ctx, filters, nil, 0)

		s.Require().NoError(err)
		s.NotNil(got.Items)
		s.Empty(got.Items)
	})

	s.Run("cursor resumes with keyset", func() {
		s.SetupTest()
		lastID := uuid.New()
		lastCreatedAt := time.Date(2025, 4, 30, 8, 0, 0, 0, time.UTC)
		after := queries.EncodeAfterCursor(lastCreatedAt, lastID)

		s.cache.EXPECT().GetSearch(gomock.Any(), gomock.Any()).Return(nil, "slot:v0", false).Times(1)
		s.store.EXPECT().SearchKeyset(gomock.Any(), filters, gomock.Any(), lastID, int32(queries.MaxListLimit+1)).
			DoAndReturn(func(_ context.Context, _ queries.PropertyFilters, ts time.Time, _ uuid.UUID, _ int32) ([]*queries.PropertyListItem, error) {
				s.True(ts.Equal(lastCreatedAt))
				return listItems(1), nil
			}).Times(1)
		s.cache.EXPECT().SetSearch(gomock.Any(), "slot:v0", gomock.Any()).Times(1)

		got, err := s.q.Search(ctx, filters, &queries.Cursor{After: after}, 500)

		s.Require().NoError(err)
		s.Len(got.Items, 1)
	})

	s.Run("tampered cursor is rejected before the store", func() {
		s.SetupTest()
		s.cache.EXPECT().GetSearch(gomock.Any(), gomock.Any()).Return(nil, "slot:v0", false).Times(1)

		_, err := s.q.Search(ctx, filters, &queries.Cursor{After: "%%%"}, 10)

		s.ErrorIs(err, queries.ErrInvalidCursor)
	})

	s.Run("store failure is not cached", func() {
		s.SetupTest()
		s.cache.EXPECT().GetSearch(gomock.Any(), gomock.Any()).Return(nil, "slot:v0", false).Times(1)
		s.store.EXPECT().SearchFirstPage(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("boom")).Times(1)

		_, err := s.q.Search(ctx, filters, nil, 10)

		s.Error(err)
	})

	s.Run("different filters use different cache keys", func() {
		s.SetupTest()
		other := "Shelbyville"
		var keys []string
		s.cache.EXPECT().GetSearch(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, key string) (*queries.PropertySearchResult, string, bool) {
				keys = append(keys, key)
				return &queries.PropertySearchResult{}, "", true
			}).Times(2)

		_, _ = s.q.Search(ctx, filters, nil, 10)
		_, _ = s.q.Search(ctx, queries.PropertyFilters{City: &other}, nil, 10)

		s.Require().Len(keys, 2)
		s.NotEqual(keys[0], keys[1])
	})
}

func (s *PropertyQueriesTestSuite) TestGetByID() {
	ctx := context.Background()

	s.Run("anonymous viewer never checks eligibility", func() {
		s.SetupTest()
		detail := builder.NewPropertyBuilder().BuildDetail()
		s.store.EXPECT().FindDetail(gomock.Any(), detail.ID).Return(detail, nil).Times(1)

		got, err := s.q.GetByID(ctx, detail.ID, nil)

		s.Require().NoError(err)
		s.False(got.CanReview)
	})

	s.Run("tenant gets canReview from the store", func() {
		s.SetupTest()
		detail := builder.NewPropertyBuilder().BuildDetail()
		tenantID := uuid.New()
		s.store.EXPECT().FindDetail(gomock.Any(), detail.ID).Return(detail, nil).Times(1)
		s.store.EXPECT().CanReview(gomock.Any(), detail.ID, tenantID, fixedNow).Return(true, nil).Times(1)

		got, err := s.q.GetByID(ctx, detail.ID, &queries.Viewer{ID: tenantID, Role: user.RoleTenant})

		s.Require().NoError(err)
		s.True(got.CanReview)
	})

	s.Run("landlord never can review", func() {
		s.SetupTest()
		detail := builder.NewPropertyBuilder().BuildDetail()
		s.store.EXPECT().FindDetail(gomock.Any(), detail.ID).Return(detail, nil).Times(1)

		got, err := s.q.GetByID(ctx, detail.ID, &queries.Viewer{ID: uuid.New(), Role: user.RoleLandlord})

		s.Require().NoError(err)
		s.False(got.CanReview)
	})

	s.Run("missing row maps to not found", func() {
		s.SetupTest()
		id := uuid.New()
		s.store.EXPECT().FindDetail(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("property not found", nil, infra.KindNotFound)).Times(1)

		_, err := s.q.GetByID(ctx, id, nil)

		s.ErrorIs(err, property.ErrNotFound)
	})
}

func (s *PropertyQueriesTestSuite) TestListings() {
	ctx := context.Background()

	s.Run("landlord listings come from the store", func() {
		s.SetupTest()
		landlordID := uuid.New()
		items := []*queries.LandlordPropertyItem{{ID: uuid.New(), TotalBookings: 3}}
		s.store.EXPECT().ListByLandlord(gomock.Any(), landlordID).Return(items, nil).Times(1)

		got, err := s.q.ListForLandlord(ctx, landlordID)

		s.Require().NoError(err)
		s.Equal(items, got)
	})

	s.Run("admin listings come from the store", func() {
		s.SetupTest()
		items := []*queries.AdminPropertyItem{{ID: uuid.New()}}
		s.store.EXPECT().ListForAdmin(gomock.Any()).Return(items, nil).Times(1)

		got, err := s.q.ListForAdmin(ctx)

		s.Require().NoError(err)
		s.Equal(items, got)
	})
}
