//go:build unit

package replyid_test

import (
	"testing"

	"shopbot/internal/domain/replyid"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	cases := []struct {
		id   string
		want replyid.Token
	}{
		{id: "menu_buy", want: replyid.Token{Kind: replyid.KindBuyMenu}},
		{id: "support_finish", want: replyid.Token{Kind: replyid.KindSupportFinish}},
		{id: "cat_12", want: replyid.Token{Kind: replyid.KindCategory, ID: 12}},
		{id: "catpage_10", want: replyid.Token{Kind: replyid.KindCategoryPage, Offset: 10}},
		{id: "buy_7", want: replyid.Token{Kind: replyid.KindBuy, ID: 7}},
		{id: "paymethod_mercadopago_pix", want: replyid.Token{Kind: replyid.KindPaymentMethod, Provider: "mercadopago_pix"}},
		{
			id:   "addbal_mercadopago_pix_2500",
			want: replyid.Token{Kind: replyid.KindAddBalanceAmount, Provider: "mercadopago_pix", AmountCents: 2500},
		},
		{id: "admcatprice_5", want: replyid.Token{Kind: replyid.KindAdminCategoryPrice, ID: 5}},
		{id: "admcat_5", want: replyid.Token{Kind: replyid.KindAdminCategory, ID: 5}},
		{id: "admcustbal_3", want: replyid.Token{Kind: replyid.KindAdminCustomerBalance, ID: 3}},
		{id: "admcust_3", want: replyid.Token{Kind: replyid.KindAdminCustomer, ID: 3}},

		{id: "", want: replyid.Token{}},
		{id: "cat_", want: replyid.Token{}},
		{id: "cat_-1", want: replyid.Token{}},
		{id: "cat_1x", want: replyid.Token{}},
		{id: "buy_99999999999999999999", want: replyid.Token{}},
		{id: "catpage_9999999", want: replyid.Token{}},
		{id: "addbal_pix", want: replyid.Token{}},
		{id: "addbal_pix_", want: replyid.Token{}},
		{id: "addbal_PIX_100", want: replyid.Token{}},
		{id: "paymethod_", want: replyid.Token{}},
		{id: "something_else", want: replyid.Token{}},
	}

	for _, tc := range cases {
		t.Run(tc.id, func(t *testing.T) {
			assert.Equal(t, tc.want, replyid.Decode(tc.id))
		})
	}
}

func TestEncodersDecodeToTheirKind(t *testing.T) {
	assert.Equal(t, replyid.KindCategory, replyid.Decode(replyid.Category(4)).Kind)
	assert.Equal(t, replyid.KindAdminCategorySku, replyid.Decode(replyid.AdminCategorySku(4)).Kind)
	assert.Equal(t, replyid.KindAdminCustomerBlock, replyid.Decode(replyid.AdminCustomerBlock(4)).Kind)

	tok := replyid.Decode(replyid.AddBalance("mercadopago_checkout", 5000))
	assert.Equal(t, "mercadopago_checkout", tok.Provider)
	assert.Equal(t, int64(5000), tok.AmountCents)
}
