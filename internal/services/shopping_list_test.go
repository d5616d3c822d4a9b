package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/vmaksimov/foodgram-api/internal/models"
	"github.com/vmaksimov/foodgram-api/internal/services"
)

func TestShoppingListService_Render(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAggregator := services.NewMockShoppingListAggregator(ctrl)
	svc := services.NewShoppingListService(mockAggregator)

	userID := uuid.New()

	t.Run("renders aggregated items", func(t *testing.T) {
		mockAggregator.EXPECT().
			Aggregate(gomock.Any(), userID).
			Return([]models.ShoppingListItem{
				{Name: "eggs", Amount: 4, MeasurementUnit: "pcs"},
				{Name: "flour", Amount: 500, MeasurementUnit: "g"},
				{Name: "milk", Amount: 250, MeasurementUnit: "ml"},
			}, nil)

		report, err := svc.Render(context.Background(), userID)
		assert.NoError(t, err)
		assert.Equal(t,
			"Shopping list:\n\neggs — 4 pcs\nflour — 500 g\nmilk — 250 ml",
			string(report),
		)
	})

	t.Run("empty cart yields only the header", func(t *testing.T) {
		mockAggregator.EXPECT().
			Aggregate(gomock.Any(), userID).
			Return(nil, nil)

		report, err := svc.Render(context.Background(), userID)
		assert.NoError(t, err)
		assert.Equal(t, "Shopping list:\n\n", string(report))
	})

	t.Run("aggregator error", func(t *testing.T) {
		mockAggregator.EXPECT().
			Aggregate(gomock.Any(), userID).
			Return(nil, errors.New("db error"))

		report, err := svc.Render(context.Background(), userID)
		assert.EqualError(t, err, "db error")
		assert.Nil(t, report)
	})
}
