package upstream

import (
	"regexp"

	"tujjor/internal/domain"
)

// PlaceholderImage подставляется вместо отсутствующей картинки
const PlaceholderImage = "https://via.placeholder.com/300x200"

// DefaultProductName подставляется вместо отсутствующего имени
const DefaultProductName = "Unknown product"

// wire-форматы API мерчанта

type catalogPayload struct {
	Cards  []cardRecord `json:"cards"`
	Client *clientInfo  `json:"client"`
}

type clientInfo struct {
	Name string `json:"name"`
}

type cardRecord struct {
	CardID   *int64  `json:"card_id"`
	Name     *string `json:"name"`
	Price    *int64  `json:"price"`
	Image    *string `json:"image"`
	Category *string `json:"category"`
	Barcode  *string `json:"barcode"`
	Count    *int64  `json:"count"`
}

type adminPayload struct {
	Status bool         `json:"status"`
	Data   []cardRecord `json:"data"`
}

type orderPayload struct {
	Data         []orderLine  `json:"data"`
	CustomerInfo customerInfo `json:"customer_info"`
}

type orderLine struct {
	CardID int64 `json:"card_id"`
	Count  int64 `json:"count"`
}

type customerInfo struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type adminSaveRequest struct {
	Items []adminItem `json:"items"`
}

type adminItem struct {
	CardID int64  `json:"card_id"`
	Name   string `json:"name"`
	Price  int64  `json:"price"`
}

// normalizeCard единая таблица умолчаний для входящей записи товара.
// Все поля, которые бэкенд может не прислать, заменяются здесь и только здесь.
func normalizeCard(card cardRecord) domain.Product {
	p := domain.Product{
		Name:     DefaultProductName,
		ImageURL: PlaceholderImage,
	}
	if card.CardID != nil {
		p.ID = *card.CardID
	}
	if card.Name != nil && *card.Name != "" {
		p.Name = *card.Name
	}
	if card.Price != nil {
		p.Price = *card.Price
	}
	if card.Image != nil && *card.Image != "" {
		p.ImageURL = fixImageURL(*card.Image)
	}
	if card.Category != nil {
		p.Category = *card.Category
	}
	if card.Barcode != nil {
		p.Barcode = *card.Barcode
	}
	if card.Count != nil {
		p.AvailableCount = *card.Count
	}
	return p
}

var doubledSlash = regexp.MustCompile(`(https?://[^/]+)//`)

// fixImageURL бэкенд иногда дублирует слэш после хоста
// (https://host//path); схлопываем первое вхождение.
func fixImageURL(raw string) string {
	m := doubledSlash.FindStringSubmatchIndex(raw)
	if m == nil {
		return raw
	}
	// m[3] — конец группы хоста, за ним стоят два слэша
	return raw[:m[3]] + "/" + raw[m[3]+2:]
}
