package response

import "time"

// ItemResponse is one normalized cart row.
type ItemResponse struct {
	ProductID string `json:"product_id" example:"carrot_mid"`
	Name      string `json:"name" example:"제주당근(중)"`
	Pack      int    `json:"pack" example:"3"`
	Qty       int    `json:"qty" example:"2"`
}

// CartResponse is the cart with its badge count.
type CartResponse struct {
	CartID string         `json:"cart_id" example:"0b4e7a0e-5d1c-4b8f-9a4e-2f1f5c3d9e21"`
	Items  []ItemResponse `json:"items"`
	Count  int            `json:"count" example:"2"`
}

// NewCartResponse carries a freshly issued cart id.
type NewCartResponse struct {
	CartID string `json:"cart_id" example:"0b4e7a0e-5d1c-4b8f-9a4e-2f1f5c3d9e21"`
}

// CountResponse is the badge number.
type CountResponse struct {
	CartID string `json:"cart_id"`
	Count  int    `json:"count" example:"3"`
}

// ToastResponse is a confirmation to show for DurationMs.
type ToastResponse struct {
	ID         string    `json:"id"`
	Message    string    `json:"message" example:"장바구니에 담겼습니다 ✅"`
	DurationMs int64     `json:"duration_ms" example:"1800"`
	CreatedAt  time.Time `json:"created_at"`
}

// AddItemResponse answers an add with everything the page updates.
type AddItemResponse struct {
	Cart  CartResponse   `json:"cart"`
	Item  *ItemResponse  `json:"item,omitempty"`
	Count int            `json:"count" example:"3"`
	Toast *ToastResponse `json:"toast,omitempty"`
}

// LineResponse is a priced cart row. Unpriced rows omit the price fields.
type LineResponse struct {
	ItemResponse
	UnitPrice     *int   `json:"unit_price,omitempty" example:"12900"`
	UnitPriceText string `json:"unit_price_text,omitempty" example:"12,900원"`
	LineTotal     int    `json:"line_total" example:"25800"`
	LineTotalText string `json:"line_total_text" example:"25,800원"`
}

// SummaryResponse is the priced cart.
type SummaryResponse struct {
	CartID         string         `json:"cart_id"`
	Lines          []LineResponse `json:"lines"`
	Count          int            `json:"count"`
	Total          int            `json:"total" example:"25800"`
	TotalText      string         `json:"total_text" example:"25,800원"`
	Unpriced       int            `json:"unpriced"`
	PriceUpdatedAt string         `json:"price_updated_at,omitempty"`
	DispatchText   string         `json:"dispatch_text" example:"오늘 출고 가능(정산완료 기준)"`
}

// ProductResponse is a catalog entry.
type ProductResponse struct {
	ProductID   string `json:"product_id" example:"cabbage_38"`
	Name        string `json:"name" example:"양배추"`
	Packs       []int  `json:"packs" example:"2,4"`
	DefaultPack int    `json:"default_pack" example:"2"`
}

// PriceTableResponse is the loaded price table, prices keyed by pack.
type PriceTableResponse struct {
	UpdatedAt string                    `json:"updated_at"`
	Items     map[string]map[string]int `json:"items"`
}
