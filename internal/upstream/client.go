// Package upstream — HTTP-клиент бэкенда мерчанта. Каждый запрос сначала
// идёт напрямую, затем через прокси из списка по порядку до первого 2xx.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"tujjor/internal/domain"
	"tujjor/internal/obs"
)

var (
	// ErrUnavailable ни одна попытка (прямая и через прокси) не ответила 2xx
	ErrUnavailable = errors.New("upstream unavailable")
	// ErrBadPayload ответ пришёл, но формат не соответствует контракту
	ErrBadPayload = errors.New("upstream payload malformed")
)

// Client клиент API мерчанта
type Client struct {
	base    string
	proxies []string
	http    *http.Client
}

func New(base string, proxies []string, timeout time.Duration) *Client {
	return &Client{
		base:    base,
		proxies: proxies,
		http:    &http.Client{Timeout: timeout},
	}
}

// FetchCatalog GET {base}/{storeId} (складской режим — /{storeId}/warehouse).
// Возвращает нормализованный список товаров и имя клиента магазина.
func (c *Client) FetchCatalog(ctx context.Context, storeID string, mode domain.CatalogMode) ([]domain.Product, string, error) {
	u := c.base + "/" + url.PathEscape(storeID)
	if mode == domain.ModeWarehouse {
		u += "/warehouse"
	}

	body, err := c.get(ctx, u)
	if err != nil {
		return nil, "", err
	}

	var payload catalogPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	if payload.Cards == nil {
		return nil, "", fmt.Errorf("%w: missing cards array", ErrBadPayload)
	}

	products := make([]domain.Product, 0, len(payload.Cards))
	for _, card := range payload.Cards {
		products = append(products, normalizeCard(card))
	}

	clientName := ""
	if payload.Client != nil {
		clientName = payload.Client.Name
	}
	return products, clientName, nil
}

// SubmitOrder POST {base}/{storeId}. Второй результат false — заказ ушёл
// последним резервным запросом, подтверждение ответа прочитать нельзя.
func (c *Client) SubmitOrder(ctx context.Context, storeID string, cart *domain.Cart, customer domain.CustomerInfo) (bool, error) {
	payload := orderPayload{
		Data:         make([]orderLine, 0, len(cart.Lines)),
		CustomerInfo: customerInfo{Name: customer.Name, Phone: customer.Phone},
	}
	for _, l := range cart.Lines {
		payload.Data = append(payload.Data, orderLine{CardID: l.ProductID, Count: l.Quantity})
	}

	u := c.base + "/" + url.PathEscape(storeID)
	return c.post(ctx, u, payload)
}

// FetchAdminProducts GET {base}/{firstId}/change/{secondId}
func (c *Client) FetchAdminProducts(ctx context.Context, firstID, secondID string) ([]domain.Product, error) {
	body, err := c.get(ctx, c.adminURL(firstID, secondID))
	if err != nil {
		return nil, err
	}

	var payload adminPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	if !payload.Status || payload.Data == nil {
		return nil, fmt.Errorf("%w: status false or missing data", ErrBadPayload)
	}

	products := make([]domain.Product, 0, len(payload.Data))
	for _, card := range payload.Data {
		products = append(products, normalizeCard(card))
	}
	return products, nil
}

// ProductDiff изменённые поля одного товара для сохранения
type ProductDiff struct {
	ID    int64
	Name  string
	Price int64
}

// SaveAdminProducts POST {base}/{firstId}/change/{secondId}.
// Формат ответа контрактом не проверяется: важен только статус доставки.
func (c *Client) SaveAdminProducts(ctx context.Context, firstID, secondID string, diffs []ProductDiff) (bool, error) {
	items := make([]adminItem, 0, len(diffs))
	for _, d := range diffs {
		items = append(items, adminItem{CardID: d.ID, Name: d.Name, Price: d.Price})
	}
	return c.post(ctx, c.adminURL(firstID, secondID), adminSaveRequest{Items: items})
}

func (c *Client) adminURL(firstID, secondID string) string {
	return c.base + "/" + url.PathEscape(firstID) + "/change/" + url.PathEscape(secondID)
}

// get перебирает прямой запрос и прокси, возвращает тело первого 2xx
func (c *Client) get(ctx context.Context, target string) ([]byte, error) {
	var lastErr error
	for _, u := range c.attempts(target) {
		body, err := c.doOnce(ctx, http.MethodGet, u, nil)
		if err == nil {
			return body, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("%w: %v", ErrUnavailable, lastErr)
}

// post как get, но с финальным резервом: если все попытки провалились,
// запрос отправляется ещё раз напрямую и любой дошедший до сервера ответ
// считается доставкой без подтверждения (аналог no-cors у браузера).
func (c *Client) post(ctx context.Context, target string, payload any) (bool, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return false, err
	}

	var lastErr error
	for _, u := range c.attempts(target) {
		if _, err := c.doOnce(ctx, http.MethodPost, u, body); err == nil {
			return true, nil
		} else {
			lastErr = err
		}
	}

	obs.Logger.Warn("upstream post unconfirmed, fire-and-forget fallback", "url", target, "err", fmt.Sprint(lastErr))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(body))
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrUnavailable, lastErr)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return false, nil
}

// attempts прямой URL плюс варианты через каждый прокси по порядку
func (c *Client) attempts(target string) []string {
	out := make([]string, 0, 1+len(c.proxies))
	out = append(out, target)
	for _, p := range c.proxies {
		out = append(out, p+url.QueryEscape(target))
	}
	return out
}

func (c *Client) doOnce(ctx context.Context, method, u string, body []byte) ([]byte, error) {
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("status %d from %s", resp.StatusCode, u)
	}
	return io.ReadAll(resp.Body)
}
