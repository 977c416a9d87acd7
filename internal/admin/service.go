package admin

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"

	"tujjor/internal/obs"
	"tujjor/internal/upstream"
)

var (
	// ErrNothingModified сохранять нечего; предупреждение, не сбой
	ErrNothingModified = errors.New("no modified products")
	// ErrUnknownField поддерживаются только name и price
	ErrUnknownField = errors.New("unknown field")
	// ErrSaveFailed бэкенд не принял сохранение; флаги правок не сняты
	ErrSaveFailed = errors.New("save failed")
	// ErrSaveInFlight сохранение этой сессии уже выполняется
	ErrSaveInFlight = errors.New("save already in progress")
)

// SaveResult итог сохранения. Confirmed false — запрос ушёл без
// читаемого ответа и принят оптимистически.
type SaveResult struct {
	Saved     int  `json:"saved"`
	Confirmed bool `json:"confirmed"`
}

// Service сессии правок каталога магазина
type Service struct {
	client   *upstream.Client
	sessions *sessionStore

	mu       sync.Mutex
	inflight map[string]struct{}
}

func NewService(client *upstream.Client) *Service {
	return &Service{
		client:   client,
		sessions: newSessionStore(),
		inflight: make(map[string]struct{}),
	}
}

// Open загружает каталог по паре идентификаторов и открывает сессию.
// В отличие от витрины, резервного списка нет: правки без настоящих
// данных не имеют смысла, ошибка загрузки отдаётся как есть.
func (s *Service) Open(ctx context.Context, firstID, secondID string) (*Session, error) {
	products, err := s.client.FetchAdminProducts(ctx, firstID, secondID)
	if err != nil {
		return nil, err
	}

	sess := newSessionFromCatalog(uuid.NewString(), firstID, secondID, products)
	s.sessions.put(sess)
	obs.Logger.Info("admin session opened",
		"session_id", sess.ID, "first_id", firstID, "products", len(products))
	return sess.clone(), nil
}

// Session снимок открытой сессии; копия, правки в неё не просачиваются
func (s *Service) Session(id string) (*Session, error) {
	sess, ok := s.sessions.get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	s.mu.Lock()
	cp := sess.clone()
	s.mu.Unlock()
	return cp, nil
}

// Edit меняет текущее значение поля товара. Цена приводится к
// неотрицательному целому, нечисловой ввод становится нулём.
func (s *Service) Edit(sessionID string, productID int64, field, value string) (*ProductEdit, error) {
	sess, ok := s.sessions.get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := sess.product(productID)
	if !ok {
		return nil, ErrProductNotFound
	}

	switch field {
	case "name":
		p.CurrentName = value
	case "price":
		p.CurrentPrice = CoercePrice(value)
	default:
		return nil, ErrUnknownField
	}

	cp := *p
	return &cp, nil
}

// SaveOne сохраняет один товар; без правок — предупреждающий no-op
func (s *Service) SaveOne(ctx context.Context, sessionID string, productID int64) (*SaveResult, error) {
	sess, ok := s.sessions.get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	s.mu.Lock()
	p, ok := sess.product(productID)
	if !ok {
		s.mu.Unlock()
		return nil, ErrProductNotFound
	}
	if !p.IsModified() {
		s.mu.Unlock()
		return nil, ErrNothingModified
	}
	diff := upstream.ProductDiff{ID: p.ID, Name: p.CurrentName, Price: p.CurrentPrice}
	s.mu.Unlock()

	if !s.acquire(sessionID) {
		return nil, ErrSaveInFlight
	}
	defer s.release(sessionID)

	confirmed, err := s.client.SaveAdminProducts(ctx, sess.FirstID, sess.SecondID, []upstream.ProductDiff{diff})
	if err != nil {
		return nil, errors.Join(ErrSaveFailed, err)
	}

	s.applyDiffs(sess, []upstream.ProductDiff{diff})
	return &SaveResult{Saved: 1, Confirmed: confirmed}, nil
}

// SaveAll сохраняет все правки одним запросом; партия атомарна с точки
// зрения флагов: неуспех оставляет каждый товар помеченным
func (s *Service) SaveAll(ctx context.Context, sessionID string) (*SaveResult, error) {
	sess, ok := s.sessions.get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	s.mu.Lock()
	var diffs []upstream.ProductDiff
	for i := range sess.Products {
		if p := &sess.Products[i]; p.IsModified() {
			diffs = append(diffs, upstream.ProductDiff{ID: p.ID, Name: p.CurrentName, Price: p.CurrentPrice})
		}
	}
	s.mu.Unlock()

	if len(diffs) == 0 {
		return nil, ErrNothingModified
	}

	if !s.acquire(sessionID) {
		return nil, ErrSaveInFlight
	}
	defer s.release(sessionID)

	confirmed, err := s.client.SaveAdminProducts(ctx, sess.FirstID, sess.SecondID, diffs)
	if err != nil {
		return nil, errors.Join(ErrSaveFailed, err)
	}

	s.applyDiffs(sess, diffs)
	obs.Logger.Info("admin batch saved", "session_id", sessionID, "count", len(diffs), "confirmed", confirmed)
	return &SaveResult{Saved: len(diffs), Confirmed: confirmed}, nil
}

// applyDiffs original := отправленное значение; правка, сделанная во
// время сетевого вызова, остаётся помеченной
func (s *Service) applyDiffs(sess *Session, diffs []upstream.ProductDiff) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range diffs {
		if p, ok := sess.product(d.ID); ok {
			p.OriginalName = d.Name
			p.OriginalPrice = d.Price
		}
	}
}

// CoercePrice строковый ввод цены в неотрицательное целое; мусор — ноль
func CoercePrice(value string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// AdjustPrice процентная корректировка цены:
// round(max(0, price + price*percent/100))
func AdjustPrice(price int64, percent float64) int64 {
	adjusted := float64(price) + float64(price)*percent/100
	if adjusted < 0 {
		adjusted = 0
	}
	return int64(math.Round(adjusted))
}

func (s *Service) acquire(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inflight[sessionID]; busy {
		return false
	}
	s.inflight[sessionID] = struct{}{}
	return true
}

func (s *Service) release(sessionID string) {
	s.mu.Lock()
	delete(s.inflight, sessionID)
	s.mu.Unlock()
}
