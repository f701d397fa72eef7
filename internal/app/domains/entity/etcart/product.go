package etcart

// ProductID identifies a catalog product.
type ProductID = string

// Known product identifiers sold by the storefront.
const (
	ProductCarrotSoil     ProductID = "carrot_soil"
	ProductCarrotMid      ProductID = "carrot_mid"
	ProductCarrotTop      ProductID = "carrot_top"
	ProductPotatoSpecial  ProductID = "potato_special"
	ProductKohlrabi       ProductID = "kohlrabi"
	ProductOnionMid       ProductID = "onion_mid"
	ProductCabbage38      ProductID = "cabbage_38"
	ProductSweetPotatoMid ProductID = "sweetpotato_mid"
)

var (
	standardPacks = []int{1, 2, 3, 5}
	cabbagePacks  = []int{2, 4}
)

// Product catalog entry
type Product struct {
	ID          ProductID
	Name        string // display name, also the label matched against legacy rows
	Packs       []int  // allowed pack sizes in kg
	DefaultPack int
}

// AllowsPack reports whether pack is one of the product's pack sizes.
func (p Product) AllowsPack(pack int) bool {
	for _, allowed := range p.Packs {
		if allowed == pack {
			return true
		}
	}
	return false
}

// catalog is ordered: label matching walks it top to bottom.
var catalog = []Product{
	{ID: ProductCarrotSoil, Name: "국내산 흙당근", Packs: standardPacks, DefaultPack: 1},
	{ID: ProductCarrotMid, Name: "제주당근(중)", Packs: standardPacks, DefaultPack: 1},
	{ID: ProductCarrotTop, Name: "제주당근(상)", Packs: standardPacks, DefaultPack: 1},
	{ID: ProductPotatoSpecial, Name: "제주감자(특)", Packs: standardPacks, DefaultPack: 1},
	{ID: ProductKohlrabi, Name: "콜라비", Packs: standardPacks, DefaultPack: 1},
	{ID: ProductOnionMid, Name: "양파", Packs: standardPacks, DefaultPack: 1},
	{ID: ProductCabbage38, Name: "양배추", Packs: cabbagePacks, DefaultPack: 2},
	{ID: ProductSweetPotatoMid, Name: "꿀고구마", Packs: standardPacks, DefaultPack: 1},
}

// Catalog returns a copy of the product catalog in matching order.
func Catalog() []Product {
	out := make([]Product, len(catalog))
	copy(out, catalog)
	return out
}

// LookupProduct finds a catalog product by id.
func LookupProduct(id ProductID) (Product, bool) {
	for _, p := range catalog {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// IsKnownProduct reports whether id belongs to the catalog.
func IsKnownProduct(id ProductID) bool {
	_, ok := LookupProduct(id)
	return ok
}

// productRule returns the pack rule for id. Ids outside the catalog use the
// standard pack sizes.
func productRule(id ProductID) Product {
	if p, ok := LookupProduct(id); ok {
		return p
	}
	return Product{ID: id, Packs: standardPacks, DefaultPack: 1}
}
