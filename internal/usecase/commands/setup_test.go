//go:build unit

package commands_test

import (
	"context"
	"time"

	"rental-marketplace/internal/infra"
	"rental-marketplace/internal/pkg/clock"
	"rental-marketplace/internal/usecase/shared"
	sharedmock "rental-marketplace/tests/mock/shared"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

// commandSuite wires a unit of work whose Within runs the callback against mocked repositories.
type commandSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	clock       *clock.MockClock
	uow         *sharedmock.MockUnitOfWork
	tx          *sharedmock.MockTx
	reads       *sharedmock.MockCommandReads
	users       *sharedmock.MockUserRepository
	properties  *sharedmock.MockPropertyRepository
	bookings    *sharedmock.MockBookingRepository
	reviews     *sharedmock.MockReviewRepository
	ratingStats *sharedmock.MockRatingStatsRepository
	cache       *sharedmock.MockSearchCacheInvalidator
}

func (s *commandSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.clock = clock.NewMockClock(fixedNow)
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.reads = sharedmock.NewMockCommandReads(s.ctrl)
	s.users = sharedmock.NewMockUserRepository(s.ctrl)
	s.properties = sharedmock.NewMockPropertyRepository(s.ctrl)
	s.bookings = sharedmock.NewMockBookingRepository(s.ctrl)
	s.reviews = sharedmock.NewMockReviewRepository(s.ctrl)
	s.ratingStats = sharedmock.NewMockRatingStatsRepository(s.ctrl)
	s.cache = sharedmock.NewMockSearchCacheInvalidator(s.ctrl)

	s.tx.EXPECT().Reads().Return(s.reads).AnyTimes()
	s.tx.EXPECT().DB().Return(nil).AnyTimes()
	s.tx.EXPECT().Users().Return(s.users).AnyTimes()
	s.tx.EXPECT().Properties().Return(s.properties).AnyTimes()
	s.tx.EXPECT().Bookings().Return(s.bookings).AnyTimes()
	s.tx.EXPECT().Reviews().Return(s.reviews).AnyTimes()
	s.tx.EXPECT().RatingStats().Return(s.ratingStats).AnyTimes()
	s.uow.EXPECT().CommandReads().Return(s.reads).AnyTimes()
}

func (s *commandSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *commandSuite) expectTx() {
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).Times(1)
}

func repoErr(kind infra.RepositoryErrorKind) error {
	return infra.WrapRepoErr("test", nil, kind)
}
