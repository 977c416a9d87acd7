package order

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"tujjor/internal/cart"
	"tujjor/internal/catalog"
	"tujjor/internal/domain"
	"tujjor/internal/upstream"
)

type backend struct {
	srv   *httptest.Server
	posts atomic.Int64
	fail  atomic.Bool
}

// newBackend поднимает бэкенд мерчанта: GET отдаёт каталог,
// POST принимает заказ и считается
func newBackend(t *testing.T) *backend {
	t.Helper()
	b := &backend{}
	b.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			b.posts.Add(1)
			if b.fail.Load() {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			w.Write([]byte(`{"status":true}`))
			return
		}
		w.Write([]byte(`{"cards":[{"card_id":1,"name":"Milk","price":1000},{"card_id":2,"name":"Bread","price":500}]}`))
	}))
	t.Cleanup(b.srv.Close)
	return b
}

func setup(t *testing.T) (*Service, *cart.Service, *backend) {
	t.Helper()
	b := newBackend(t)
	client := upstream.New(b.srv.URL, nil, time.Second)
	carts := cart.NewService(cart.NewMemoryStore(time.Minute), catalog.NewService(client))
	return NewService(client, carts), carts, b
}

func filledCart(t *testing.T, carts *cart.Service) string {
	t.Helper()
	ctx := context.Background()
	c, err := carts.Create(ctx, "s1", domain.ModeStorefront)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := carts.ChangeQuantity(ctx, c.ID, 1, 2); err != nil {
		t.Fatal(err)
	}
	if _, _, err := carts.ChangeQuantity(ctx, c.ID, 2, 1); err != nil {
		t.Fatal(err)
	}
	return c.ID
}

func TestSubmit_Success(t *testing.T) {
	svc, carts, b := setup(t)
	ctx := context.Background()
	id := filledCart(t, carts)

	r, err := svc.Submit(ctx, id, domain.CustomerInfo{Name: "Ali", Phone: "+998 (90) 123-45-67"})
	if err != nil {
		t.Fatal(err)
	}
	if r.Total != 2500 || r.Count != 3 || !r.Confirmed {
		t.Fatalf("receipt: %+v", r)
	}
	if b.posts.Load() != 1 {
		t.Fatalf("posts = %d, want 1", b.posts.Load())
	}

	// успешный заказ очищает корзину, сессия остаётся
	v, err := carts.Get(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if v.Count != 0 {
		t.Fatalf("cart not cleared: %+v", v)
	}
}

func TestSubmit_ValidationBeforeNetwork(t *testing.T) {
	svc, carts, b := setup(t)
	ctx := context.Background()

	// пустая корзина
	c, _ := carts.Create(ctx, "s1", domain.ModeStorefront)
	if _, err := svc.Submit(ctx, c.ID, domain.CustomerInfo{Name: "Ali", Phone: "998901234567"}); !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("empty cart: %v", err)
	}

	id := filledCart(t, carts)

	// имя из одних пробелов
	if _, err := svc.Submit(ctx, id, domain.CustomerInfo{Name: "   ", Phone: "998901234567"}); !errors.Is(err, ErrMissingName) {
		t.Fatalf("missing name: %v", err)
	}

	// телефона не хватает до девяти цифр
	if _, err := svc.Submit(ctx, id, domain.CustomerInfo{Name: "Ali", Phone: "+998-90"}); !errors.Is(err, ErrInvalidPhone) {
		t.Fatalf("short phone: %v", err)
	}

	if b.posts.Load() != 0 {
		t.Fatalf("validation failures must not reach the backend, posts = %d", b.posts.Load())
	}
}

func TestSubmit_UnconfirmedDelivery(t *testing.T) {
	svc, carts, b := setup(t)
	ctx := context.Background()
	id := filledCart(t, carts)

	// бэкенд отвечает ошибками, но резервная доставка проходит
	b.fail.Store(true)
	r, err := svc.Submit(ctx, id, domain.CustomerInfo{Name: "Ali", Phone: "998901234567"})
	if err != nil {
		t.Fatal(err)
	}
	if r.Confirmed {
		t.Fatal("delivery must be unconfirmed")
	}

	v, _ := carts.Get(ctx, id)
	if v.Count != 0 {
		t.Fatal("optimistic delivery must still clear the cart")
	}
}

func TestSubmit_NetworkFailureKeepsCart(t *testing.T) {
	b := newBackend(t)
	client := upstream.New(b.srv.URL, nil, 200*time.Millisecond)
	carts := cart.NewService(cart.NewMemoryStore(time.Minute), catalog.NewService(client))
	svc := NewService(client, carts)
	ctx := context.Background()
	id := filledCart(t, carts)

	// каталог уже в кэше, бэкенд выключаем совсем
	b.srv.Close()

	_, err := svc.Submit(ctx, id, domain.CustomerInfo{Name: "Ali", Phone: "998901234567"})
	if !errors.Is(err, ErrSubmitFailed) {
		t.Fatalf("err = %v, want ErrSubmitFailed", err)
	}

	v, err := carts.Get(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if v.Count != 3 {
		t.Fatalf("failed submit must keep the cart, count = %d", v.Count)
	}
}

func TestSubmit_MissingCart(t *testing.T) {
	svc, _, _ := setup(t)
	if _, err := svc.Submit(context.Background(), "nope", domain.CustomerInfo{Name: "A", Phone: "123456789"}); !errors.Is(err, cart.ErrNotFound) {
		t.Fatalf("err = %v", err)
	}
}

func TestSubmit_InFlightRejected(t *testing.T) {
	svc, carts, _ := setup(t)
	ctx := context.Background()
	id := filledCart(t, carts)

	if !svc.acquire(id) {
		t.Fatal("first acquire must succeed")
	}
	defer svc.release(id)

	if _, err := svc.Submit(ctx, id, domain.CustomerInfo{Name: "Ali", Phone: "998901234567"}); !errors.Is(err, ErrSubmitInFlight) {
		t.Fatalf("err = %v, want ErrSubmitInFlight", err)
	}
}

func TestNormalizePhone(t *testing.T) {
	cases := []struct{ in, want string }{
		{"+998 (90) 123-45-67", "998901234567"},
		{"123456789", "123456789"},
		{"abc", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizePhone(tc.in); got != tc.want {
			t.Fatalf("NormalizePhone(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
