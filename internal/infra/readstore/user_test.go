//go:build unit

package readstore

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"rental-marketplace/internal/infra"
	sqlc "rental-marketplace/internal/infra/sqlc/generated"
	"rental-marketplace/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFindCredentialsByEmail(t *testing.T) {
	testUser := builder.NewUserBuilder().WithPasswordHash("$2a$hash").BuildInfra()
	landlord := builder.NewUserBuilder().AsLandlord().WithEmail("owner@example.com").BuildInfra()

	tests := []struct {
		name       string
		email      string
		mockReturn sqlc.Users
		mockError  error
		wantRole   string
		wantKind   infra.RepositoryErrorKind
	}{
		{name: "success - tenant", email: testUser.Email, mockReturn: testUser, wantRole: "TENANT"},
		{name: "success - landlord", email: landlord.Email, mockReturn: landlord, wantRole: "LANDLORD"},
		{name: "user not found", email: "notfound@example.com", mockError: sql.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "database error", email: testUser.Email, mockError: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserReadQueries)
			mockQueries.On("GetUserByEmail", mock.Anything, mock.Anything, tt.email).Return(tt.mockReturn, tt.mockError)

			store := NewUserReadStore(mockQueries, nil)
			creds, err := store.FindCredentialsByEmail(context.Background(), tt.email)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.Nil(t, creds)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.mockReturn.ID, creds.ID)
				assert.Equal(t, tt.mockReturn.PasswordHash, creds.PasswordHash)
				assert.Equal(t, tt.wantRole, creds.Role)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestUserReadStore_FindByID(t *testing.T) {
	t.Run("maps the row without the password hash", func(t *testing.T) {
		row := builder.NewUserBuilder().BuildInfra()
		lastLogin := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
		row.LastLoginAt = pgtype.Timestamptz{Time: lastLogin, Valid: true}

		mockQueries := new(MockUserReadQueries)
		mockQueries.On("GetUserByID", mock.Anything, mock.Anything, row.ID).Return(row, nil)

		store := NewUserReadStore(mockQueries, nil)
		view, err := store.FindByID(context.Background(), row.ID)

		require.NoError(t, err)
		assert.Equal(t, row.ID, view.ID)
		assert.Equal(t, row.Email, view.Email)
		assert.Equal(t, row.CreatedAt.Time, view.CreatedAt)
		require.NotNil(t, view.LastLoginAt)
		assert.Equal(t, lastLogin, *view.LastLoginAt)
	})

	t.Run("never logged in", func(t *testing.T) {
		row := builder.NewUserBuilder().BuildInfra()
		mockQueries := new(MockUserReadQueries)
		mockQueries.On("GetUserByID", mock.Anything, mock.Anything, row.ID).Return(row, nil)

		view, err := NewUserReadStore(mockQueries, nil).FindByID(context.Background(), row.ID)

		require.NoError(t, err)
		assert.Nil(t, view.LastLoginAt)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New()
		mockQueries := new(MockUserReadQueries)
		mockQueries.On("GetUserByID", mock.Anything, mock.Anything, id).Return(sqlc.Users{}, pgx.ErrNoRows)

		_, err := NewUserReadStore(mockQueries, nil).FindByID(context.Background(), id)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
