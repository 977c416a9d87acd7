// Package order — проверка и отправка заказа на бэкенд мерчанта.
package order

import (
	"context"
	"errors"
	"strings"
	"sync"

	"tujjor/internal/cart"
	"tujjor/internal/domain"
	"tujjor/internal/obs"
	"tujjor/internal/upstream"
)

var (
	ErrEmptyCart      = errors.New("cart is empty")
	ErrMissingName    = errors.New("customer name is required")
	ErrInvalidPhone   = errors.New("customer phone is invalid")
	ErrSubmitInFlight = errors.New("order submission already in progress")
	// ErrSubmitFailed сеть или бэкенд не приняли заказ; корзина не тронута
	ErrSubmitFailed = errors.New("order submission failed")
)

// MinPhoneDigits минимум цифр в телефоне после отбрасывания форматирования
const MinPhoneDigits = 9

// Receipt итог успешной отправки. Confirmed false — заказ ушёл без
// читаемого подтверждения и принят оптимистически.
type Receipt struct {
	CartID    string `json:"cart_id"`
	Total     int64  `json:"total"`
	Count     int64  `json:"count"`
	Confirmed bool   `json:"confirmed"`
}

// Service оформление заказов
type Service struct {
	client *upstream.Client
	carts  *cart.Service

	mu       sync.Mutex
	inflight map[string]struct{}
}

func NewService(client *upstream.Client, carts *cart.Service) *Service {
	return &Service{
		client:   client,
		carts:    carts,
		inflight: make(map[string]struct{}),
	}
}

// Submit валидирует корзину и контакты, отправляет заказ и очищает
// корзину при успехе. Все проверки выполняются до сетевого вызова;
// неуспех сети оставляет корзину нетронутой для повторной отправки.
func (s *Service) Submit(ctx context.Context, cartID string, customer domain.CustomerInfo) (*Receipt, error) {
	c, err := s.carts.Raw(ctx, cartID)
	if err != nil {
		return nil, err
	}

	view, err := s.carts.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}

	if c.IsEmpty() {
		return nil, ErrEmptyCart
	}
	customer.Name = strings.TrimSpace(customer.Name)
	if customer.Name == "" {
		return nil, ErrMissingName
	}
	customer.Phone = NormalizePhone(customer.Phone)
	if len(customer.Phone) < MinPhoneDigits {
		return nil, ErrInvalidPhone
	}

	if !s.acquire(cartID) {
		return nil, ErrSubmitInFlight
	}
	defer s.release(cartID)

	confirmed, err := s.client.SubmitOrder(ctx, c.StoreID, c, customer)
	if err != nil {
		obs.Logger.Warn("order submission failed", "cart_id", cartID, "store_id", c.StoreID, "err", err.Error())
		return nil, errors.Join(ErrSubmitFailed, err)
	}

	receipt := &Receipt{
		CartID:    cartID,
		Total:     view.Total,
		Count:     view.Count,
		Confirmed: confirmed,
	}

	c.Clear()
	if err := s.carts.Save(ctx, c); err != nil {
		return nil, err
	}

	obs.Logger.Info("order submitted",
		"cart_id", cartID, "store_id", c.StoreID, "total", receipt.Total, "confirmed", confirmed)
	return receipt, nil
}

// NormalizePhone оставляет только цифры; форматирование вида
// +998 (XX) XXX-XX-XX — забота отображения, на провод уходят цифры
func NormalizePhone(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (s *Service) acquire(cartID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inflight[cartID]; busy {
		return false
	}
	s.inflight[cartID] = struct{}{}
	return true
}

func (s *Service) release(cartID string) {
	s.mu.Lock()
	delete(s.inflight, cartID)
	s.mu.Unlock()
}
