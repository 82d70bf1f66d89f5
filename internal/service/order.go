package service

import (
	"context"
	"log/slog"
	"time"

	"labportal/internal/model"
	"labportal/internal/serial"
	"labportal/internal/store"
)

type OrderService struct {
	repo store.Repository
}

func NewOrderService(repo store.Repository) *OrderService {
	return &OrderService{repo: repo}
}

// Create assigns the official serial number and order date, then
// persists the order. A persistence failure is logged but deliberately
// not returned: the caller still confirms the order to the client with
// the minted serial number, matching the permissive intake contract.
// The stored state may therefore lag what the client was told.
func (s *OrderService) Create(ctx context.Context, o model.Order) model.Order {
	o.SerialNumber = serial.New()
	o.OrderDate = time.Now().UTC()

	if err := s.repo.PutOrder(ctx, o); err != nil {
		slog.Error("order persist failed", "serial", o.SerialNumber, "error", err)
	}

	return o
}

func (s *OrderService) Get(ctx context.Context, serialNumber string) (model.Order, bool, error) {
	return s.repo.GetOrder(ctx, serialNumber)
}
