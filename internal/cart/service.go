package cart

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"tujjor/internal/catalog"
	"tujjor/internal/domain"
)

var (
	// ErrUnknownProduct товара нет в каталоге магазина корзины
	ErrUnknownProduct = errors.New("unknown product")
	// ErrZeroDelta изменение количества на ноль не имеет смысла
	ErrZeroDelta = errors.New("delta must be non-zero")
)

// LineView строка корзины, соединённая с товаром каталога
type LineView struct {
	Product   domain.Product `json:"product"`
	Quantity  int64          `json:"quantity"`
	LineTotal int64          `json:"line_total"`
}

// View корзина для выдачи наружу: строки, сумма и количество
type View struct {
	ID      string             `json:"id"`
	StoreID string             `json:"store_id"`
	Mode    domain.CatalogMode `json:"mode"`
	Lines   []LineView         `json:"lines"`
	Total   int64              `json:"total"`
	Count   int64              `json:"count"`
}

// Service операции над сессионными корзинами
type Service struct {
	store   Store
	catalog *catalog.Service
}

func NewService(store Store, catalog *catalog.Service) *Service {
	return &Service{store: store, catalog: catalog}
}

// Create заводит пустую корзину для магазина; каталог должен загружаться
func (s *Service) Create(ctx context.Context, storeID string, mode domain.CatalogMode) (*domain.Cart, error) {
	if _, err := s.catalog.Catalog(ctx, storeID, mode); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	c := &domain.Cart{
		ID:        uuid.NewString(),
		StoreID:   storeID,
		Mode:      mode,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Put(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Get корзина с подтянутыми из каталога товарами
func (s *Service) Get(ctx context.Context, id string) (*View, error) {
	c, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, c)
}

// ChangeQuantity применяет delta к строке корзины с учётом политики
// вместимости режима и сохраняет результат
func (s *Service) ChangeQuantity(ctx context.Context, id string, productID, delta int64) (domain.CartEvent, *View, error) {
	if delta == 0 {
		return domain.CartEvent{}, nil, ErrZeroDelta
	}

	c, err := s.store.Get(ctx, id)
	if err != nil {
		return domain.CartEvent{}, nil, err
	}

	p, ok, err := s.catalog.Product(ctx, c.StoreID, c.Mode, productID)
	if err != nil {
		return domain.CartEvent{}, nil, err
	}
	if !ok {
		return domain.CartEvent{}, nil, ErrUnknownProduct
	}

	ev := c.ChangeQuantity(p, delta, domain.PolicyFor(c.Mode))
	if ev.Kind != domain.CartUnchanged && ev.Kind != domain.CartQuantityCapped {
		c.UpdatedAt = time.Now().UTC()
		if err := s.store.Put(ctx, c); err != nil {
			return domain.CartEvent{}, nil, err
		}
	}

	v, err := s.view(ctx, c)
	if err != nil {
		return domain.CartEvent{}, nil, err
	}
	return ev, v, nil
}

// Reset опустошает корзину, не удаляя саму сессию
func (s *Service) Reset(ctx context.Context, id string) error {
	c, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}
	c.Clear()
	c.UpdatedAt = time.Now().UTC()
	return s.store.Put(ctx, c)
}

// Raw корзина без соединения с каталогом, для оформления заказа
func (s *Service) Raw(ctx context.Context, id string) (*domain.Cart, error) {
	return s.store.Get(ctx, id)
}

// Save сохраняет корзину, мутированную снаружи (очистка после заказа)
func (s *Service) Save(ctx context.Context, c *domain.Cart) error {
	c.UpdatedAt = time.Now().UTC()
	return s.store.Put(ctx, c)
}

func (s *Service) view(ctx context.Context, c *domain.Cart) (*View, error) {
	snap, err := s.catalog.Catalog(ctx, c.StoreID, c.Mode)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]domain.Product, len(snap.Products))
	prices := make(map[int64]int64, len(snap.Products))
	for _, p := range snap.Products {
		byID[p.ID] = p
		prices[p.ID] = p.Price
	}

	v := &View{
		ID:      c.ID,
		StoreID: c.StoreID,
		Mode:    c.Mode,
		Lines:   make([]LineView, 0, len(c.Lines)),
		Total:   c.Total(prices),
		Count:   c.Count(),
	}
	for _, l := range c.Lines {
		p := byID[l.ProductID]
		v.Lines = append(v.Lines, LineView{
			Product:   p,
			Quantity:  l.Quantity,
			LineTotal: p.Price * l.Quantity,
		})
	}
	return v, nil
}
