package domain

// CartEventKind исход мутации корзины, уходит пользователю как уведомление
type CartEventKind string

const (
	CartItemAdded      CartEventKind = "added"
	CartItemUpdated    CartEventKind = "updated"
	CartItemRemoved    CartEventKind = "removed"
	CartQuantityCapped CartEventKind = "capped"
	CartUnchanged      CartEventKind = "unchanged"
)

// CartEvent результат ChangeQuantity: что произошло и итоговое количество
type CartEvent struct {
	Kind      CartEventKind `json:"kind"`
	ProductID int64         `json:"product_id"`
	Quantity  int64         `json:"quantity"`
}

// CapacityPolicy ограничение количества в строке корзины.
// Unlimited для витрины, LimitedByStock для складского режима.
type CapacityPolicy interface {
	// Cap возвращает верхнюю границу количества для товара,
	// второй результат false — границы нет.
	Cap(p Product) (int64, bool)
}

type unlimited struct{}

func (unlimited) Cap(Product) (int64, bool) { return 0, false }

// Unlimited политика без ограничений
func Unlimited() CapacityPolicy { return unlimited{} }

type limitedByStock struct{}

func (limitedByStock) Cap(p Product) (int64, bool) { return p.AvailableCount, true }

// LimitedByStock ограничивает количество остатком на складе
func LimitedByStock() CapacityPolicy { return limitedByStock{} }

// PolicyFor выбирает политику по режиму каталога
func PolicyFor(mode CatalogMode) CapacityPolicy {
	if mode == ModeWarehouse {
		return LimitedByStock()
	}
	return Unlimited()
}

// ChangeQuantity меняет количество товара на delta (любое ненулевое).
// Новая строка создаётся только при положительной delta; строка с
// количеством ≤ 0 удаляется целиком. Превышение лимита политики не
// мутирует корзину и возвращает CartQuantityCapped.
func (c *Cart) ChangeQuantity(p Product, delta int64, policy CapacityPolicy) CartEvent {
	if delta == 0 {
		return CartEvent{Kind: CartUnchanged, ProductID: p.ID, Quantity: c.Quantity(p.ID)}
	}

	idx := -1
	for i, l := range c.Lines {
		if l.ProductID == p.ID {
			idx = i
			break
		}
	}

	if idx == -1 {
		if delta <= 0 {
			return CartEvent{Kind: CartUnchanged, ProductID: p.ID}
		}
		if limit, ok := policy.Cap(p); ok && delta > limit {
			return CartEvent{Kind: CartQuantityCapped, ProductID: p.ID, Quantity: 0}
		}
		c.Lines = append(c.Lines, CartLine{ProductID: p.ID, Quantity: delta})
		return CartEvent{Kind: CartItemAdded, ProductID: p.ID, Quantity: delta}
	}

	next := c.Lines[idx].Quantity + delta
	if next <= 0 {
		c.Lines = append(c.Lines[:idx], c.Lines[idx+1:]...)
		return CartEvent{Kind: CartItemRemoved, ProductID: p.ID, Quantity: 0}
	}
	if delta > 0 {
		if limit, ok := policy.Cap(p); ok && next > limit {
			return CartEvent{Kind: CartQuantityCapped, ProductID: p.ID, Quantity: c.Lines[idx].Quantity}
		}
	}
	c.Lines[idx].Quantity = next

	kind := CartItemUpdated
	if delta > 0 {
		kind = CartItemAdded
	}
	return CartEvent{Kind: kind, ProductID: p.ID, Quantity: next}
}

// Quantity текущее количество товара в корзине, 0 если строки нет
func (c *Cart) Quantity(productID int64) int64 {
	for _, l := range c.Lines {
		if l.ProductID == productID {
			return l.Quantity
		}
	}
	return 0
}

// Count суммарное количество всех товаров
func (c *Cart) Count() int64 {
	var n int64
	for _, l := range c.Lines {
		n += l.Quantity
	}
	return n
}

// Total сумма заказа по ценам из каталога
func (c *Cart) Total(priceByID map[int64]int64) int64 {
	var total int64
	for _, l := range c.Lines {
		total += priceByID[l.ProductID] * l.Quantity
	}
	return total
}

// Clear опустошает корзину после успешного заказа или явного сброса
func (c *Cart) Clear() {
	c.Lines = nil
}

// IsEmpty true когда в корзине нет ни одной строки
func (c *Cart) IsEmpty() bool { return len(c.Lines) == 0 }
