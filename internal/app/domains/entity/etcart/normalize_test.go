package etcart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripLabel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"carrot_soil", "carrot_soil"},
		{"  🥕 국내산 흙당근 ", "국내산 흙당근"},
		{"• 양파", "양파"},
		{"ㅋ테스트", "ㅋ테스트"},
		{"🥬🥬", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StripLabel(tt.in), "StripLabel(%q)", tt.in)
	}
}

func TestNormalizeProductID(t *testing.T) {
	tests := []struct {
		name      string
		productID string
		label     string
		want      ProductID
	}{
		{"known id", "kohlrabi", "", ProductKohlrabi},
		{"known id behind emoji", "🥔 potato_special", "", ProductPotatoSpecial},
		{"legacy name as id", "🥕 제주당근(중)", "", ProductCarrotMid},
		{"name wins over unknown id", "legacy-7", "양배추 (3~8입)", ProductCabbage38},
		{"onion", "", "햇 양파 5kg", ProductOnionMid},
		{"sweet potato", "", "꿀고구마(중)", ProductSweetPotatoMid},
		{"top grade carrot", "x", "제주당근(상)", ProductCarrotTop},
		{"unknown keeps id", "mystery_box", "뭔가", "mystery_box"},
		{"unknown falls back to label", "", "🍎 사과", "사과"},
		{"nothing", "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeProductID(tt.productID, tt.label))
		})
	}
}

func TestNormalizePack(t *testing.T) {
	tests := []struct {
		name      string
		pack      string
		productID ProductID
		want      int
	}{
		{"plain", "3", ProductCarrotSoil, 3},
		{"kg suffix", "5kg", ProductOnionMid, 5},
		{"upper case KG", "2 KG", ProductKohlrabi, 2},
		{"not allowed", "4", ProductCarrotMid, 1},
		{"zero", "0", ProductCarrotTop, 1},
		{"negative", "-2", ProductKohlrabi, 1},
		{"garbage", "abc", ProductKohlrabi, 1},
		{"empty", "", ProductKohlrabi, 1},
		{"decimal truncates", "2.9", ProductKohlrabi, 2},
		{"cabbage default", "", ProductCabbage38, 2},
		{"cabbage four", "4kg", ProductCabbage38, 4},
		{"cabbage rejects one", "1", ProductCabbage38, 2},
		{"cabbage rejects five", "5", ProductCabbage38, 2},
		{"unknown product uses standard packs", "3", "mystery_box", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePack(tt.pack, tt.productID))
		})
	}
}

func TestNormalizeQty(t *testing.T) {
	assert.Equal(t, 3, NormalizeQty("3"))
	assert.Equal(t, 12, NormalizeQty("12개"))
	assert.Equal(t, 1, NormalizeQty("0"))
	assert.Equal(t, 1, NormalizeQty(""))
	assert.Equal(t, 1, NormalizeQty("many"))
	assert.Equal(t, 1, NormalizeQty("99999999999999999999"))
}

func TestQtyOf(t *testing.T) {
	assert.Equal(t, 1, QtyOf(Loose{}))
	assert.Equal(t, 1, QtyOf(Null()))
	assert.Equal(t, 4, QtyOf(Int(4)))
	assert.Equal(t, 1, QtyOf(Int(0)))
	assert.Equal(t, 7, QtyOf(Str("7")))
	assert.Equal(t, 1, QtyOf(Str("")))

	decoded := func(raw string) Loose {
		var l Loose
		require.NoError(t, l.UnmarshalJSON([]byte(raw)))
		return l
	}
	assert.Equal(t, 25, QtyOf(decoded("2.5")))
	assert.Equal(t, 1000, QtyOf(decoded("1e3")))
	assert.Equal(t, 3, QtyOf(decoded("3.0")))
}

func TestQtyOfSignMatchesAcrossEncodings(t *testing.T) {
	assert.Equal(t, 3, QtyOf(Int(-3)))
	assert.Equal(t, 3, QtyOf(Str("-3")))

	asNumber := DecodeItems([]byte(`[{"productId":"kohlrabi","qty":-3}]`))
	asString := DecodeItems([]byte(`[{"productId":"kohlrabi","qty":"-3"}]`))
	require.Len(t, asNumber, 1)
	assert.Equal(t, asString, asNumber)
	assert.Equal(t, 3, asNumber[0].Qty)
}

func TestPackOf(t *testing.T) {
	assert.Equal(t, 2, PackOf(Int(2), ProductCarrotSoil))
	assert.Equal(t, 1, PackOf(Int(0), ProductCarrotSoil))
	assert.Equal(t, 2, PackOf(Loose{}, ProductCabbage38))
	assert.Equal(t, 4, PackOf(Str("4kg"), ProductCabbage38))
}

func TestNormalizeItemIsIdempotent(t *testing.T) {
	inputs := []Item{
		{ProductID: "🥕 국내산 흙당근", Pack: 7, Qty: 0},
		{ProductID: "cabbage_38", Name: "양배추", Pack: 4, Qty: 2},
		{ProductID: "", Name: "🍎 사과", Pack: 3, Qty: 5},
		{ProductID: "legacy", Name: "꿀고구마", Pack: -1, Qty: -4},
	}
	for _, in := range inputs {
		once := NormalizeItem(in)
		assert.Equal(t, once, NormalizeItem(once), "input %+v", in)
	}
}
