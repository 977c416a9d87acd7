// Package admin — сессии правок каталога: диффы против оригинала,
// сохранение по одному и пакетом.
package admin

import (
	"errors"
	"sync"
	"time"

	"tujjor/internal/domain"
)

var (
	// ErrSessionNotFound сессия не открыта или истекла
	ErrSessionNotFound = errors.New("edit session not found")
	// ErrProductNotFound товара нет в открытой сессии
	ErrProductNotFound = errors.New("product not found in session")
)

// ProductEdit товар сессии: текущее и исходное состояние.
// Совпадение с оригиналом снимает флаг изменения.
type ProductEdit struct {
	ID            int64  `json:"id"`
	ImageURL      string `json:"image_url"`
	CurrentName   string `json:"name"`
	CurrentPrice  int64  `json:"price"`
	OriginalName  string `json:"original_name"`
	OriginalPrice int64  `json:"original_price"`
}

// IsModified текущие значения разошлись с исходными
func (p *ProductEdit) IsModified() bool {
	return p.CurrentName != p.OriginalName || p.CurrentPrice != p.OriginalPrice
}

// Session открытая сессия правок одного магазина
type Session struct {
	ID        string
	FirstID   string
	SecondID  string
	Products  []ProductEdit
	CreatedAt time.Time
}

// ModifiedCount число товаров с несохранёнными правками
func (s *Session) ModifiedCount() int {
	n := 0
	for i := range s.Products {
		if s.Products[i].IsModified() {
			n++
		}
	}
	return n
}

// clone глубокая копия для выдачи наружу; читатели не наблюдают
// промежуточных состояний правок
func (s *Session) clone() *Session {
	cp := *s
	cp.Products = append([]ProductEdit(nil), s.Products...)
	return &cp
}

func (s *Session) product(productID int64) (*ProductEdit, bool) {
	for i := range s.Products {
		if s.Products[i].ID == productID {
			return &s.Products[i], true
		}
	}
	return nil, false
}

func newSessionFromCatalog(id, firstID, secondID string, products []domain.Product) *Session {
	sess := &Session{
		ID:        id,
		FirstID:   firstID,
		SecondID:  secondID,
		Products:  make([]ProductEdit, 0, len(products)),
		CreatedAt: time.Now().UTC(),
	}
	for _, p := range products {
		sess.Products = append(sess.Products, ProductEdit{
			ID:            p.ID,
			ImageURL:      p.ImageURL,
			CurrentName:   p.Name,
			CurrentPrice:  p.Price,
			OriginalName:  p.Name,
			OriginalPrice: p.Price,
		})
	}
	return sess
}

// sessionStore in-memory хранилище открытых сессий
type sessionStore struct {
	mu sync.RWMutex
	m  map[string]*Session
}

func newSessionStore() *sessionStore {
	return &sessionStore{m: make(map[string]*Session)}
}

func (st *sessionStore) get(id string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.m[id]
	return s, ok
}

func (st *sessionStore) put(s *Session) {
	st.mu.Lock()
	st.m[s.ID] = s
	st.mu.Unlock()
}
