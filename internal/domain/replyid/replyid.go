// Package replyid encodes structured facts into the opaque ids carried by
// WhatsApp button and list replies, and decodes them back into typed tokens.
package replyid

import (
	"strconv"
	"strings"
)

type Kind int

const (
	KindNone Kind = iota

	// static controls
	KindMainMenu
	KindBuyMenu
	KindAddBalanceMenu
	KindSupportOpen
	KindSupportFinish
	KindCancel
	KindAdminMenu
	KindAdminCategories
	KindAdminCustomerLookup

	// customer, parameterized
	KindCategory
	KindCategoryPage
	KindBuy
	KindPaymentMethod
	KindAddBalanceAmount

	// admin, parameterized
	KindAdminCategory
	KindAdminCategoryRename
	KindAdminCategoryPrice
	KindAdminCategorySku
	KindAdminCategoryToggle
	KindAdminCustomer
	KindAdminCustomerName
	KindAdminCustomerBalance
	KindAdminCustomerBlock
)

// Token is the decoded form of a reply id. Only the fields relevant to Kind are set.
type Token struct {
	Kind        Kind
	ID          int64
	Offset      int
	Provider    string
	AmountCents int64
}

func (t Token) IsNone() bool { return t.Kind == KindNone }

const (
	MainMenu            = "menu_main"
	BuyMenu             = "menu_buy"
	AddBalanceMenu      = "menu_addbal"
	SupportOpen         = "menu_support"
	SupportFinish       = "support_finish"
	Cancel              = "flow_cancel"
	AdminMenu           = "admin_menu"
	AdminCategories     = "admin_categories"
	AdminCustomerLookup = "admin_customer_lookup"
)

const (
	prefixCategory         = "cat_"
	prefixCategoryPage     = "catpage_"
	prefixBuy              = "buy_"
	prefixPaymentMethod    = "paymethod_"
	prefixAddBalance       = "addbal_"
	prefixAdminCategory    = "admcat_"
	prefixAdminCatRename   = "admcatrename_"
	prefixAdminCatPrice    = "admcatprice_"
	prefixAdminCatSku      = "admcatsku_"
	prefixAdminCatToggle   = "admcattoggle_"
	prefixAdminCustomer    = "admcust_"
	prefixAdminCustName    = "admcustname_"
	prefixAdminCustBalance = "admcustbal_"
	prefixAdminCustBlock   = "admcustblock_"
)

var statics = map[string]Kind{
	MainMenu:            KindMainMenu,
	BuyMenu:             KindBuyMenu,
	AddBalanceMenu:      KindAddBalanceMenu,
	SupportOpen:         KindSupportOpen,
	SupportFinish:       KindSupportFinish,
	Cancel:              KindCancel,
	AdminMenu:           KindAdminMenu,
	AdminCategories:     KindAdminCategories,
	AdminCustomerLookup: KindAdminCustomerLookup,
}

type idRule struct {
	prefix string
	kind   Kind
}

// Decoding priority. Prefixes are disjoint, the order only fixes which rule
// is tried first.
var idRules = []idRule{
	{prefixCategoryPage, KindCategoryPage},
	{prefixCategory, KindCategory},
	{prefixBuy, KindBuy},
	{prefixAdminCatRename, KindAdminCategoryRename},
	{prefixAdminCatPrice, KindAdminCategoryPrice},
	{prefixAdminCatSku, KindAdminCategorySku},
	{prefixAdminCatToggle, KindAdminCategoryToggle},
	{prefixAdminCategory, KindAdminCategory},
	{prefixAdminCustName, KindAdminCustomerName},
	{prefixAdminCustBalance, KindAdminCustomerBalance},
	{prefixAdminCustBlock, KindAdminCustomerBlock},
	{prefixAdminCustomer, KindAdminCustomer},
}

// Decode never fails: anything it does not recognize is KindNone.
func Decode(id string) Token {
	id = strings.TrimSpace(id)
	if id == "" {
		return Token{}
	}
	if k, ok := statics[id]; ok {
		return Token{Kind: k}
	}

	if rest, ok := strings.CutPrefix(id, prefixAddBalance); ok {
		return decodeAddBalance(rest)
	}
	if rest, ok := strings.CutPrefix(id, prefixPaymentMethod); ok {
		if !validProvider(rest) {
			return Token{}
		}
		return Token{Kind: KindPaymentMethod, Provider: rest}
	}

	for _, r := range idRules {
		rest, ok := strings.CutPrefix(id, r.prefix)
		if !ok {
			continue
		}
		n, ok := parseUint(rest)
		if !ok {
			return Token{}
		}
		if r.kind == KindCategoryPage {
			if n > int64(maxOffset) {
				return Token{}
			}
			return Token{Kind: r.kind, Offset: int(n)}
		}
		return Token{Kind: r.kind, ID: n}
	}
	return Token{}
}

const maxOffset = 1 << 20

// provider ids may contain underscores, so the amount is after the last one
func decodeAddBalance(rest string) Token {
	i := strings.LastIndexByte(rest, '_')
	if i <= 0 || i == len(rest)-1 {
		return Token{}
	}
	provider := rest[:i]
	if !validProvider(provider) {
		return Token{}
	}
	amount, ok := parseUint(rest[i+1:])
	if !ok {
		return Token{}
	}
	return Token{Kind: KindAddBalanceAmount, Provider: provider, AmountCents: amount}
}

func parseUint(s string) (int64, bool) {
	if s == "" || len(s) > 18 {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func validProvider(p string) bool {
	if p == "" {
		return false
	}
	for i := 0; i < len(p); i++ {
		c := p[i]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') && c != '_' {
			return false
		}
	}
	return true
}

func Category(id int64) string { return prefixCategory + itoa(id) }
func CategoryPage(offset int) string { return prefixCategoryPage + strconv.Itoa(offset) }
func Buy(categoryID int64) string { return prefixBuy + itoa(categoryID) }
func PaymentMethod(provider string) string {
	return prefixPaymentMethod + provider
}
func AddBalance(provider string, amountCents int64) string {
	return prefixAddBalance + provider + "_" + itoa(amountCents)
}
func AdminCategory(id int64) string { return prefixAdminCategory + itoa(id) }
func AdminCategoryRename(id int64) string { return prefixAdminCatRename + itoa(id) }
func AdminCategoryPrice(id int64) string { return prefixAdminCatPrice + itoa(id) }
func AdminCategorySku(id int64) string { return prefixAdminCatSku + itoa(id) }
func AdminCategoryToggle(id int64) string { return prefixAdminCatToggle + itoa(id) }
func AdminCustomer(id int64) string { return prefixAdminCustomer + itoa(id) }
func AdminCustomerName(id int64) string { return prefixAdminCustName + itoa(id) }
func AdminCustomerBalance(id int64) string { return prefixAdminCustBalance + itoa(id) }
func AdminCustomerBlock(id int64) string { return prefixAdminCustBlock + itoa(id) }

func itoa(n int64) string { return strconv.FormatInt(n, 10) }
