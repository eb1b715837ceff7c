package postgresql_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mock_database "github.com/printhub/printhub/internal/db/mocks"
	"github.com/printhub/printhub/internal/repository"
	"github.com/printhub/printhub/internal/repository/postgresql"
)

func TestCapabilityRepo_GetByPrinterID(t *testing.T) {
	ctx := context.Background()

	t.Run("capability found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewCapabilityRepo(mockDB)

		testCap := &repository.PrinterCapability{
			PrinterID:            "printer-1",
			Technologies:         []string{"UV", "Latex"},
			ActiveMaterialIDs:    []string{"material-789"},
			ReceiveOrdersEnabled: true,
		}

		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq(testCap.PrinterID)).
			DoAndReturn(func(_ context.Context, dest *repository.PrinterCapability, _ string, _ string) error {
				*dest = *testCap
				return nil
			})

		capability, err := repo.GetByPrinterID(ctx, testCap.PrinterID)
		assert.NoError(t, err)
		assert.Equal(t, testCap, capability)
	})

	t.Run("capability not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewCapabilityRepo(mockDB)

		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pgx.ErrNoRows)

		capability, err := repo.GetByPrinterID(ctx, "unknown-printer")
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
		assert.Nil(t, capability)
	})
}

func TestCapabilityRepo_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("returns full registry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewCapabilityRepo(mockDB)

		testCaps := []*repository.PrinterCapability{
			{PrinterID: "printer-1", Technologies: []string{"UV"}, ReceiveOrdersEnabled: true},
			{PrinterID: "printer-2", Technologies: []string{"Offset"}, ReceiveOrdersEnabled: false},
		}

		mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
				*(dest.(*[]*repository.PrinterCapability)) = testCaps
				return nil
			})

		caps, err := repo.GetAll(ctx)
		assert.NoError(t, err)
		assert.Equal(t, testCaps, caps)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewCapabilityRepo(mockDB)

		expectedErr := errors.New("database error")
		mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(expectedErr)

		_, err := repo.GetAll(ctx)
		assert.Equal(t, expectedErr, err)
	})
}

func TestCapabilityRepo_Upsert(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewCapabilityRepo(mockDB)

		testCap := &repository.PrinterCapability{
			PrinterID:            "printer-1",
			Technologies:         []string{"UV"},
			ActiveMaterialIDs:    []string{"material-789"},
			ReceiveOrdersEnabled: true,
		}

		mockDB.EXPECT().Exec(
			gomock.Any(),
			gomock.Any(),
			gomock.Eq(testCap.PrinterID),
			gomock.Eq(testCap.Technologies),
			gomock.Eq(testCap.ActiveMaterialIDs),
			gomock.Eq(testCap.ReceiveOrdersEnabled),
			gomock.Any(),
		).Return(nil, nil)

		err := repo.Upsert(ctx, testCap)
		assert.NoError(t, err)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewCapabilityRepo(mockDB)

		expectedErr := errors.New("database error")
		mockDB.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, expectedErr)

		err := repo.Upsert(ctx, &repository.PrinterCapability{PrinterID: "printer-1"})
		assert.Equal(t, expectedErr, err)
	})
}
