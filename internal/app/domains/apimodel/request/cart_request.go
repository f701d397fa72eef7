package request

import "singsing/storefront/internal/app/domains/entity/etcart"

// CartItem is one cart row as submitted by the storefront. Pack and qty may
// be numbers or strings such as "2kg"; they are normalized, never rejected.
type CartItem struct {
	ProductID etcart.Loose `json:"product_id" swaggertype:"string" example:"carrot_mid"`
	Name      etcart.Loose `json:"name" swaggertype:"string" example:"제주당근(중)"`
	Pack      etcart.Loose `json:"pack" swaggertype:"string" example:"3kg"`
	Qty       etcart.Loose `json:"qty" swaggertype:"integer" example:"1"`
}

// AddItemRequest adds a row to the cart.
type AddItemRequest struct {
	CartItem
	ToastMsg string `json:"toast_msg" binding:"max=200" example:"장바구니에 담겼습니다 ✅"`
}

// ReplaceCartRequest overwrites the cart.
type ReplaceCartRequest struct {
	Items []CartItem `json:"items" binding:"max=500"`
}

// UpdateQtyRequest sets the quantity of an existing row. A product that
// matches no row leaves the cart as it is.
type UpdateQtyRequest struct {
	ProductID etcart.Loose `json:"product_id" swaggertype:"string" example:"onion_mid"`
	Pack      etcart.Loose `json:"pack" swaggertype:"string" example:"5"`
	Qty       etcart.Loose `json:"qty" swaggertype:"integer" example:"2"`
}
