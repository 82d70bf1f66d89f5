package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"labportal/internal/model"
	"labportal/internal/store/storemock"
)

func TestOrderService_Create_AssignsSerialAndDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := storemock.NewMockRepository(ctrl)
	svc := NewOrderService(mockRepo)

	var saved model.Order
	mockRepo.EXPECT().
		PutOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, o model.Order) error {
			saved = o
			return nil
		})

	in := model.Order{
		PatientName: "Jane Doe",
		Tests:       []map[string]any{{"id": 1, "name": "CBC", "price": 20}},
	}
	out := svc.Create(context.Background(), in)

	require.Regexp(t, `^KPL-\d{6}-[0-9A-Z]{6}$`, out.SerialNumber)
	require.WithinDuration(t, time.Now().UTC(), out.OrderDate, 2*time.Second)
	require.Equal(t, "Jane Doe", out.PatientName)
	require.Equal(t, out, saved)
}

func TestOrderService_Create_SwallowsPersistFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := storemock.NewMockRepository(ctrl)
	svc := NewOrderService(mockRepo)

	mockRepo.EXPECT().
		PutOrder(gomock.Any(), gomock.Any()).
		Return(errors.New("mongo down"))

	out := svc.Create(context.Background(), model.Order{PatientName: "Jane Doe"})

	// intake still confirms the order even though nothing was stored
	require.NotEmpty(t, out.SerialNumber)
}

func TestOrderService_Create_DistinctSerials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := storemock.NewMockRepository(ctrl)
	svc := NewOrderService(mockRepo)

	mockRepo.EXPECT().PutOrder(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	in := model.Order{PatientName: "Jane Doe"}
	first := svc.Create(context.Background(), in)
	second := svc.Create(context.Background(), in)

	require.NotEqual(t, first.SerialNumber, second.SerialNumber)
	require.Equal(t, first.SerialNumber[:11], second.SerialNumber[:11])
}

func TestOrderService_Get_Found(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := storemock.NewMockRepository(ctrl)
	svc := NewOrderService(mockRepo)

	expected := model.Order{SerialNumber: "KPL-250531-A1B2C3", PatientName: "Jane Doe"}
	mockRepo.EXPECT().GetOrder(gomock.Any(), "KPL-250531-A1B2C3").Return(expected, true, nil)

	got, ok, err := svc.Get(context.Background(), "KPL-250531-A1B2C3")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, expected, got)
}

func TestOrderService_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := storemock.NewMockRepository(ctrl)
	svc := NewOrderService(mockRepo)

	mockRepo.EXPECT().GetOrder(gomock.Any(), "KPL-000000-AAAAAA").Return(model.Order{}, false, nil)

	_, ok, err := svc.Get(context.Background(), "KPL-000000-AAAAAA")
	require.NoError(t, err)
	require.False(t, ok)
}
