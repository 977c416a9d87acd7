package cart

import (
	"context"
	"errors"

	"tujjor/internal/domain"
)

// ErrNotFound корзина не существует или истёк срок её сессии
var ErrNotFound = errors.New("cart not found")

// Store хранилище сессионных корзин. Корзина — значение одной сессии:
// читается целиком, мутируется и записывается обратно.
type Store interface {
	Get(ctx context.Context, id string) (*domain.Cart, error)
	Put(ctx context.Context, c *domain.Cart) error
	Delete(ctx context.Context, id string) error
}
