package postgresql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mock_database "github.com/printhub/printhub/internal/db/mocks"
	"github.com/printhub/printhub/internal/repository"
	"github.com/printhub/printhub/internal/repository/postgresql"
)

func TestOrderRepo_CreateTx(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewOrderRepo(mockDB)

		now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		testOrder := &repository.Order{
			ID:         "order-123",
			BuyerID:    "buyer-456",
			MaterialID: "material-789",
			Quantity:   25,
			Notes:      "matte finish",
			Status:     "pending",
			CreatedAt:  now,
			UpdatedAt:  now,
		}

		mockTx.EXPECT().Exec(
			gomock.Any(),
			gomock.Any(),
			gomock.Eq(testOrder.ID),
			gomock.Eq(testOrder.BuyerID),
			gomock.Eq(testOrder.MaterialID),
			gomock.Eq(testOrder.Quantity),
			gomock.Eq(testOrder.Notes),
			gomock.Eq(testOrder.Status),
			gomock.Eq(testOrder.CreatedAt),
			gomock.Eq(testOrder.UpdatedAt),
		).Return(nil, nil)

		err := repo.CreateTx(ctx, mockTx, testOrder)
		assert.NoError(t, err)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewOrderRepo(mockDB)

		expectedErr := errors.New("database error")
		testOrder := &repository.Order{
			ID: "order-123",
		}

		mockTx.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, expectedErr)

		err := repo.CreateTx(ctx, mockTx, testOrder)
		assert.Equal(t, expectedErr, err)
	})
}

func TestOrderRepo_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("order found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewOrderRepo(mockDB)

		now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		testOrder := &repository.Order{
			ID:         "order-123",
			BuyerID:    "buyer-456",
			MaterialID: "material-789",
			Quantity:   25,
			Status:     "pending",
			CreatedAt:  now,
			UpdatedAt:  now,
		}

		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq(testOrder.ID)).
			DoAndReturn(func(_ context.Context, dest *repository.Order, _ string, _ string) error {
				*dest = *testOrder
				return nil
			})

		order, err := repo.GetByID(ctx, testOrder.ID)
		assert.NoError(t, err)
		assert.Equal(t, testOrder, order)
	})

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewOrderRepo(mockDB)

		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pgx.ErrNoRows)

		order, err := repo.GetByID(ctx, "non-existent-id")
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
		assert.Nil(t, order)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewOrderRepo(mockDB)

		expectedErr := errors.New("database error")
		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(expectedErr)

		order, err := repo.GetByID(ctx, "order-123")
		assert.Equal(t, expectedErr, err)
		assert.Nil(t, order)
	})
}

func TestOrderRepo_GetByIDTx(t *testing.T) {
	ctx := context.Background()

	t.Run("locks row inside transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewOrderRepo(mockDB)

		testOrder := &repository.Order{
			ID:     "order-123",
			Status: "accepted",
		}

		mockTx.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq(testOrder.ID)).
			DoAndReturn(func(_ context.Context, dest *repository.Order, query string, _ string) error {
				assert.Contains(t, query, "FOR UPDATE")
				*dest = *testOrder
				return nil
			})

		order, err := repo.GetByIDTx(ctx, mockTx, testOrder.ID)
		assert.NoError(t, err)
		assert.Equal(t, testOrder, order)
	})

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewOrderRepo(mockDB)

		mockTx.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pgx.ErrNoRows)

		order, err := repo.GetByIDTx(ctx, mockTx, "non-existent-id")
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
		assert.Nil(t, order)
	})
}

func TestOrderRepo_UpdateStatusTx(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewOrderRepo(mockDB)

		chosen := "printer-1"
		now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		testOrder := &repository.Order{
			ID:              "order-123",
			Status:          "finalized",
			ChosenPrinterID: &chosen,
			UpdatedAt:       now,
		}

		mockTx.EXPECT().Exec(
			gomock.Any(),
			gomock.Any(),
			gomock.Eq(testOrder.Status),
			gomock.Eq(testOrder.ChosenPrinterID),
			gomock.Eq(testOrder.UpdatedAt),
			gomock.Eq(testOrder.ID),
		).Return(nil, nil)

		err := repo.UpdateStatusTx(ctx, mockTx, testOrder)
		assert.NoError(t, err)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewOrderRepo(mockDB)

		expectedErr := errors.New("database error")
		mockTx.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, expectedErr)

		err := repo.UpdateStatusTx(ctx, mockTx, &repository.Order{ID: "order-123"})
		assert.Equal(t, expectedErr, err)
	})
}

func TestOrderRepo_GetByBuyerID(t *testing.T) {
	ctx := context.Background()

	t.Run("returns buyer orders", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewOrderRepo(mockDB)

		buyerID := "buyer-456"
		now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		testOrders := []*repository.Order{
			{
				ID:         "order-124",
				BuyerID:    buyerID,
				MaterialID: "material-789",
				Status:     "pending",
				CreatedAt:  now.Add(time.Hour),
				UpdatedAt:  now.Add(time.Hour),
			},
			{
				ID:         "order-123",
				BuyerID:    buyerID,
				MaterialID: "material-789",
				Status:     "finalized",
				CreatedAt:  now,
				UpdatedAt:  now,
			},
		}

		mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq(buyerID)).
			DoAndReturn(func(_ context.Context, dest *[]*repository.Order, _ string, _ string) error {
				*dest = testOrders
				return nil
			})

		orders, err := repo.GetByBuyerID(ctx, buyerID)
		assert.NoError(t, err)
		assert.Equal(t, testOrders, orders)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewOrderRepo(mockDB)

		expectedErr := errors.New("database error")
		mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(expectedErr)

		_, err := repo.GetByBuyerID(ctx, "buyer-456")
		assert.Equal(t, expectedErr, err)
	})
}
