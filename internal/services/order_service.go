package services

import (
	"context"
	"errors"

	"KitStoreAPI/internal/events"
	"KitStoreAPI/internal/model"
	"KitStoreAPI/internal/order"
	"KitStoreAPI/internal/pricing"
	"KitStoreAPI/internal/repository"
)

// OrderReader fetches finalized orders; repository.ErrOrderNotFound
// signals a code with nothing behind it.
type OrderReader interface {
	GetByCode(ctx context.Context, code string) (*model.Order, error)
}

type OrderService struct {
	Repo      OrderReader
	Publisher *events.Publisher
	Formatter *pricing.Formatter
}

func NewOrderService(r OrderReader, p *events.Publisher, f *pricing.Formatter) *OrderService {
	return &OrderService{Repo: r, Publisher: p, Formatter: f}
}

// Summary derives the confirmation breakdown for an order code. An
// unknown code is the direct-navigation case: the view gets zeroed
// amounts and the sentinel code instead of an error page.
func (s *OrderService) Summary(ctx context.Context, code string) (order.Summary, error) {
	o, err := s.Repo.GetByCode(ctx, code)
	if errors.Is(err, repository.ErrOrderNotFound) {
		logger.Debug().Str("order", code).Msg("summary requested for unknown order")
		return order.Summarize(nil, s.Formatter), nil
	}
	if err != nil {
		return order.Summary{}, err
	}
	return order.Summarize(o, s.Formatter), nil
}

// Confirm announces a completed checkout downstream and returns the
// breakdown for the success view. A broker failure does not block the
// shopper from seeing their confirmation.
func (s *OrderService) Confirm(ctx context.Context, code string) (order.Summary, error) {
	o, err := s.Repo.GetByCode(ctx, code)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return order.Summarize(nil, s.Formatter), nil
	}
	if err != nil {
		return order.Summary{}, err
	}
	if s.Publisher != nil {
		_ = s.Publisher.CheckoutCompleted(ctx, o)
	}
	return order.Summarize(o, s.Formatter), nil
}
