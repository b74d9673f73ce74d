package service_test

import (
	"context"
	"encoding/json"
	"testing"

	"zfast-backend/internal/database/models"
	"zfast-backend/internal/mocks"
	"zfast-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/datatypes"
)

func TestCarService_CreateEncodesSpecs(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockResourceRepositoryInterface[models.Car](ctrl)
	svc := service.NewCarService(repo, service.NewValidator())

	specs := []models.CarSpecItem{
		{Icon: "bolt", Label: "Power", Value: "80", Unit: "kW"},
		{Icon: "weight", Label: "Mass", Value: "210", Unit: "kg"},
	}
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, car *models.Car) error {
		var stored []models.CarSpecItem
		require.NoError(t, json.Unmarshal(car.Specs, &stored))
		assert.Equal(t, specs, stored)
		car.ID = 5
		return nil
	})

	id, err := svc.Create(context.Background(), &service.CarRequest{Name: "EV-2", Specs: specs})
	require.NoError(t, err)
	assert.Equal(t, uint(5), id)
}

func TestCarService_NilSpecsStoredAsEmptyList(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockResourceRepositoryInterface[models.Car](ctrl)
	svc := service.NewCarService(repo, service.NewValidator())

	repo.EXPECT().Update(gomock.Any(), uint(1), gomock.Any()).DoAndReturn(func(_ context.Context, _ uint, car *models.Car) error {
		assert.JSONEq(t, `[]`, string(car.Specs))
		return nil
	})

	require.NoError(t, svc.Update(context.Background(), 1, &service.CarRequest{Name: "EV-1"}))
}

func TestCarService_ListDecodesSpecsTolerantly(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockResourceRepositoryInterface[models.Car](ctrl)
	svc := service.NewCarService(repo, service.NewValidator())

	year := 2025
	repo.EXPECT().List(gomock.Any(), 0).Return([]models.Car{
		{Name: "good", Year: &year, Specs: datatypes.JSON(`[{"icon":"a","label":"Power","value":"80","unit":"kW"}]`)},
		{Name: "broken", Specs: datatypes.JSON(`{not json`)},
		{Name: "null", Specs: datatypes.JSON(`null`)},
		{Name: "empty"},
	}, nil)

	cars, err := svc.List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, cars, 4)

	assert.Equal(t, []models.CarSpecItem{{Icon: "a", Label: "Power", Value: "80", Unit: "kW"}}, cars[0].Specs)
	assert.Equal(t, 2025, *cars[0].Year)
	for _, car := range cars[1:] {
		assert.NotNil(t, car.Specs, car.Name)
		assert.Empty(t, car.Specs, car.Name)
	}

	raw, err := json.Marshal(cars[1])
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"specs":[]`)
}

func TestEncodeDecodeCarSpecs_PreservesOrder(t *testing.T) {
	items := []models.CarSpecItem{
		{Label: "c"}, {Label: "a"}, {Label: "b"},
	}
	raw, err := service.EncodeCarSpecs(items)
	require.NoError(t, err)

	assert.Equal(t, items, service.DecodeCarSpecs(context.Background(), 1, raw))
}
