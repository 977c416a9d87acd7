package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tujjor/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func TestFixImageURL(t *testing.T) {
	cases := []struct{ in, want string }{
		{"https://host.com//images/a.jpg", "https://host.com/images/a.jpg"},
		{"http://host.com//a//b.jpg", "http://host.com/a//b.jpg"},
		{"https://host.com/images/a.jpg", "https://host.com/images/a.jpg"},
		{"", ""},
		{"not a url//x", "not a url//x"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, fixImageURL(tc.in), "input %q", tc.in)
	}
}

func TestNormalizeCard_Defaults(t *testing.T) {
	p := normalizeCard(cardRecord{CardID: ptr[int64](5)})
	assert.Equal(t, int64(5), p.ID)
	assert.Equal(t, DefaultProductName, p.Name)
	assert.Equal(t, PlaceholderImage, p.ImageURL)
	assert.Zero(t, p.Price)

	// пустая строка трактуется как отсутствие значения
	p = normalizeCard(cardRecord{Name: ptr(""), Image: ptr("")})
	assert.Equal(t, DefaultProductName, p.Name)
	assert.Equal(t, PlaceholderImage, p.ImageURL)

	p = normalizeCard(cardRecord{
		CardID:   ptr[int64](7),
		Name:     ptr("Молоко"),
		Price:    ptr[int64](12000),
		Image:    ptr("https://cdn.example//7.jpg"),
		Category: ptr("dairy"),
		Barcode:  ptr("4870001"),
		Count:    ptr[int64](9),
	})
	assert.Equal(t, domain.Product{
		ID:             7,
		Name:           "Молоко",
		Price:          12000,
		ImageURL:       "https://cdn.example/7.jpg",
		Category:       "dairy",
		Barcode:        "4870001",
		AvailableCount: 9,
	}, p)
}

func TestFetchCatalog(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/store-1", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"cards": []map[string]any{
				{"card_id": 1, "name": "A", "price": 100},
				{"card_id": 2},
			},
			"client": map[string]any{"name": "Магазин"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, nil, time.Second)
	products, clientName, err := c.FetchCatalog(context.Background(), "store-1", domain.ModeStorefront)
	require.NoError(t, err)
	assert.Equal(t, "Магазин", clientName)
	require.Len(t, products, 2)
	assert.Equal(t, "A", products[0].Name)
	assert.Equal(t, DefaultProductName, products[1].Name)
}

func TestFetchCatalog_WarehousePath(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"cards":[]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil, time.Second)
	_, _, err := c.FetchCatalog(context.Background(), "store-1", domain.ModeWarehouse)
	require.NoError(t, err)
	assert.Equal(t, "/store-1/warehouse", gotPath)
}

func TestFetchCatalog_BadPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"unexpected":true}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil, time.Second)
	_, _, err := c.FetchCatalog(context.Background(), "s", domain.ModeStorefront)
	require.ErrorIs(t, err, ErrBadPayload)
}

func TestGet_ProxyFallback(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer backend.Close()

	var proxied string
	proxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		proxied = r.URL.Query().Get("u")
		w.Write([]byte(`{"cards":[{"card_id":1}]}`))
	}))
	defer proxy.Close()

	c := New(backend.URL, []string{proxy.URL + "/?u="}, time.Second)
	products, _, err := c.FetchCatalog(context.Background(), "s", domain.ModeStorefront)
	require.NoError(t, err)
	require.Len(t, products, 1)

	// прокси получает целевой URL единственным закодированным параметром
	want := backend.URL + "/s"
	got, uerr := url.QueryUnescape(proxied)
	require.NoError(t, uerr)
	assert.Equal(t, want, got)
}

func TestGet_AllAttemptsFail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, nil, time.Second)
	_, _, err := c.FetchCatalog(context.Background(), "s", domain.ModeStorefront)
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestSubmitOrder_Confirmed(t *testing.T) {
	var got orderPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"status":true}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil, time.Second)
	cart := &domain.Cart{
		ID:      "c1",
		StoreID: "s",
		Lines:   []domain.CartLine{{ProductID: 1, Quantity: 2}, {ProductID: 5, Quantity: 1}},
	}
	confirmed, err := c.SubmitOrder(context.Background(), "s", cart, domain.CustomerInfo{Name: "Ali", Phone: "998901234567"})
	require.NoError(t, err)
	assert.True(t, confirmed)
	require.Len(t, got.Data, 2)
	assert.Equal(t, int64(1), got.Data[0].CardID)
	assert.Equal(t, int64(2), got.Data[0].Count)
	assert.Equal(t, "Ali", got.CustomerInfo.Name)
}

func TestSubmitOrder_FireAndForgetUnconfirmed(t *testing.T) {
	// сервер отвечает только ошибками: обычные попытки проваливаются,
	// но резервный запрос доходит, и доставка считается неподтверждённой
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := New(srv.URL, nil, time.Second)
	cart := &domain.Cart{ID: "c1", StoreID: "s", Lines: []domain.CartLine{{ProductID: 1, Quantity: 1}}}
	confirmed, err := c.SubmitOrder(context.Background(), "s", cart, domain.CustomerInfo{Name: "A", Phone: "123456789"})
	require.NoError(t, err)
	assert.False(t, confirmed)
}

func TestSubmitOrder_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // соединение будет отклонено

	c := New(srv.URL, nil, time.Second)
	cart := &domain.Cart{ID: "c1", StoreID: "s", Lines: []domain.CartLine{{ProductID: 1, Quantity: 1}}}
	_, err := c.SubmitOrder(context.Background(), "s", cart, domain.CustomerInfo{Name: "A", Phone: "123456789"})
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestFetchAdminProducts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/11/change/22", r.URL.Path)
		w.Write([]byte(`{"status":true,"data":[{"card_id":1,"name":"A","price":100}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil, time.Second)
	products, err := c.FetchAdminProducts(context.Background(), "11", "22")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "A", products[0].Name)
}

func TestFetchAdminProducts_StatusFalse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":false}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil, time.Second)
	_, err := c.FetchAdminProducts(context.Background(), "11", "22")
	require.ErrorIs(t, err, ErrBadPayload)
}

func TestSaveAdminProducts(t *testing.T) {
	var got adminSaveRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"status":true}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil, time.Second)
	confirmed, err := c.SaveAdminProducts(context.Background(), "11", "22", []ProductDiff{
		{ID: 1, Name: "New", Price: 500},
	})
	require.NoError(t, err)
	assert.True(t, confirmed)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "New", got.Items[0].Name)
	assert.Equal(t, int64(500), got.Items[0].Price)
}
