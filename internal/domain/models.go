package domain

import "time"

// Product представляет товар витрины магазина. Цена хранится в тийинах
// (минимальная денежная единица), без плавающей точки.
type Product struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Price          int64  `json:"price"`
	ImageURL       string `json:"image_url"`
	Category       string `json:"category,omitempty"`
	Barcode        string `json:"barcode,omitempty"`
	AvailableCount int64  `json:"available_count,omitempty"`
}

// CatalogMode режим каталога: обычная витрина или складской учёт
type CatalogMode string

const (
	ModeStorefront CatalogMode = "storefront"
	ModeWarehouse  CatalogMode = "warehouse"
)

// ParseCatalogMode принимает значение query-параметра; пустое — витрина
func ParseCatalogMode(s string) (CatalogMode, bool) {
	switch s {
	case "", string(ModeStorefront):
		return ModeStorefront, true
	case string(ModeWarehouse):
		return ModeWarehouse, true
	}
	return "", false
}

// CartLine позиция корзины. Инвариант: Quantity ≥ 1,
// не бывает двух строк с одинаковым ProductID.
type CartLine struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

// Cart корзина одной сессии. Строки хранят порядок первого добавления.
// Живёт только в памяти сессии, между перезагрузками не сохраняется.
type Cart struct {
	ID        string      `json:"id"`
	StoreID   string      `json:"store_id"`
	Mode      CatalogMode `json:"mode"`
	Lines     []CartLine  `json:"lines"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// CustomerInfo контактные данные покупателя при оформлении заказа
type CustomerInfo struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}
