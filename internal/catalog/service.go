package catalog

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"tujjor/internal/domain"
	"tujjor/internal/obs"
	"tujjor/internal/upstream"
)

// ErrInvalidStore пустой идентификатор магазина
var ErrInvalidStore = errors.New("invalid store id")

// Snapshot загруженный каталог одного магазина.
// Degraded — бэкенд не ответил и подставлен демонстрационный список.
type Snapshot struct {
	StoreID    string
	Mode       domain.CatalogMode
	Products   []domain.Product
	ClientName string
	Degraded   bool
	LoadedAt   time.Time
}

// Service хранит каталоги по магазинам и режимам. Повторная загрузка
// не выполняется автоматически: только явный Reload.
type Service struct {
	client *upstream.Client
	sf     singleflight.Group

	mu        sync.RWMutex
	snapshots map[string]Snapshot
}

func NewService(client *upstream.Client) *Service {
	return &Service{
		client:    client,
		snapshots: make(map[string]Snapshot),
	}
}

// Catalog отдаёт каталог магазина, загружая его при первом обращении.
// Ошибка бэкенда не фатальна: подставляется фиксированный пример,
// снимок помечается Degraded.
func (s *Service) Catalog(ctx context.Context, storeID string, mode domain.CatalogMode) (Snapshot, error) {
	if storeID == "" {
		return Snapshot{}, ErrInvalidStore
	}

	key := snapshotKey(storeID, mode)
	s.mu.RLock()
	snap, ok := s.snapshots[key]
	s.mu.RUnlock()
	if ok {
		return snap, nil
	}
	return s.load(ctx, storeID, mode)
}

// Reload принудительно перечитывает каталог с бэкенда
func (s *Service) Reload(ctx context.Context, storeID string, mode domain.CatalogMode) (Snapshot, error) {
	if storeID == "" {
		return Snapshot{}, ErrInvalidStore
	}
	return s.load(ctx, storeID, mode)
}

// Product ищет товар в загруженном каталоге магазина
func (s *Service) Product(ctx context.Context, storeID string, mode domain.CatalogMode, productID int64) (domain.Product, bool, error) {
	snap, err := s.Catalog(ctx, storeID, mode)
	if err != nil {
		return domain.Product{}, false, err
	}
	for _, p := range snap.Products {
		if p.ID == productID {
			return p, true, nil
		}
	}
	return domain.Product{}, false, nil
}

// load одновременные загрузки одного ключа схлопываются в один запрос
func (s *Service) load(ctx context.Context, storeID string, mode domain.CatalogMode) (Snapshot, error) {
	key := snapshotKey(storeID, mode)
	v, _, _ := s.sf.Do(key, func() (any, error) {
		snap := Snapshot{
			StoreID:  storeID,
			Mode:     mode,
			LoadedAt: time.Now().UTC(),
		}

		// результат схлопнутой загрузки достаётся всем ожидающим,
		// поэтому отмена первого вызова не должна прерывать запрос
		products, clientName, err := s.client.FetchCatalog(context.WithoutCancel(ctx), storeID, mode)
		if err != nil {
			obs.Logger.Warn("catalog fetch failed, serving sample products",
				"store_id", storeID, "mode", string(mode), "err", err.Error())
			snap.Products = SampleProducts()
			snap.Degraded = true
		} else {
			snap.Products = products
			snap.ClientName = clientName
		}

		s.mu.Lock()
		s.snapshots[key] = snap
		s.mu.Unlock()
		return snap, nil
	})
	return v.(Snapshot), nil
}

func snapshotKey(storeID string, mode domain.CatalogMode) string {
	return storeID + "/" + string(mode)
}

// SampleProducts резервный список для деградированного режима,
// чтобы витрина оставалась интерактивной без бэкенда
func SampleProducts() []domain.Product {
	return []domain.Product{
		{
			ID:       25912,
			Name:     "Соска CAMERA блок ЛЕНТА 12шт думалок",
			Price:    24000,
			ImageURL: upstream.PlaceholderImage,
		},
		{
			ID:       2523,
			Name:     "Smartphone Samsung Galaxy S23",
			Price:    8500000,
			ImageURL: upstream.PlaceholderImage,
		},
	}
}
