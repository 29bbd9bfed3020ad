//go:build unit

package queries_test

import (
	"context"
	"testing"

	"rental-marketplace/internal/infra"
	"rental-marketplace/internal/usecase/queries"
	"rental-marketplace/tests/common/builder"
	queriesmock "rental-marketplace/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserQueries_GetCurrentUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockUserReadStore(ctrl)
	q := queries.NewUserQueries(store)

	t.Run("found", func(t *testing.T) {
		view := builder.NewUserBuilder().AsLandlord().BuildView()
		store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		got, err := q.GetCurrentUser(context.Background(), view.ID)

		require.NoError(t, err)
		assert.Equal(t, "LANDLORD", got.Role)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New()
		store.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)).Times(1)

		_, err := q.GetCurrentUser(context.Background(), id)

		assert.ErrorIs(t, err, queries.ErrUserNotFound)
	})
}
