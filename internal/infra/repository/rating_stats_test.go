//go:build unit

package repository

import (
	"context"
	"testing"

	"rental-marketplace/internal/infra"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRecalcPropertyRatingStats(t *testing.T) {
	propertyID := uuid.New()

	tests := []struct {
		name      string
		mockError error
		wantError bool
	}{
		{name: "success"},
		{name: "database error", mockError: assert.AnError, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockRatingStatsQueries)
			mockQueries.On("UpsertPropertyRatingStats", mock.Anything, mock.Anything, propertyID).Return(tt.mockError)

			repo := NewRatingStatsRepository(mockQueries)
			err := repo.RecalcPropertyRatingStats(context.Background(), mockDBTX{}, propertyID)

			if tt.wantError {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				assert.NoError(t, err)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}
