//go:build unit

package flow_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"shopbot/internal/domain/catalog"
	"shopbot/internal/domain/customer"
	domflow "shopbot/internal/domain/flow"
	"shopbot/internal/domain/ledger"
	"shopbot/internal/domain/money"
	"shopbot/internal/domain/outbound"
	"shopbot/internal/domain/owner"
	"shopbot/internal/domain/payment"
	"shopbot/internal/domain/purchase"
	"shopbot/internal/infra"
	"shopbot/internal/pkg/clock"
	"shopbot/internal/usecase/commands"
	"shopbot/internal/usecase/flow"
	"shopbot/internal/usecase/shared"
	flowmock "shopbot/tests/mock/flow"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	customerPhone = "5511999990000"
	adminPhone    = "5511988880000"
	phoneNumberID = "PNID"
)

var (
	errNotFound = infra.WrapRepoErr("not found", nil, infra.KindNotFound)
	fixedNow    = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
)

type EngineTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	messenger      *flowmock.MockMessenger
	catalog        *flowmock.MockCatalog
	catalogEditor  *flowmock.MockCatalogEditor
	customers      *flowmock.MockCustomers
	customerEditor *flowmock.MockCustomerEditor
	admins         *flowmock.MockAdmins
	payments       *flowmock.MockPayments
	notifier       *flowmock.MockNotifier
	transcript     *flowmock.MockSupportTranscript
	conversations  *flowmock.MockConversationStore
	inventory      *flowmock.MockInventory
	ledger         *flowmock.MockLedger
	purchases      *flowmock.MockPurchaseRecorder

	owner  owner.Owner
	engine flow.Engine

	texts   []string
	buttons [][]outbound.Button
	lists   []outbound.List
}

func (s *EngineTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.messenger = flowmock.NewMockMessenger(s.ctrl)
	s.catalog = flowmock.NewMockCatalog(s.ctrl)
	s.catalogEditor = flowmock.NewMockCatalogEditor(s.ctrl)
	s.customers = flowmock.NewMockCustomers(s.ctrl)
	s.customerEditor = flowmock.NewMockCustomerEditor(s.ctrl)
	s.admins = flowmock.NewMockAdmins(s.ctrl)
	s.payments = flowmock.NewMockPayments(s.ctrl)
	s.notifier = flowmock.NewMockNotifier(s.ctrl)
	s.transcript = flowmock.NewMockSupportTranscript(s.ctrl)
	s.conversations = flowmock.NewMockConversationStore(s.ctrl)
	s.inventory = flowmock.NewMockInventory(s.ctrl)
	s.ledger = flowmock.NewMockLedger(s.ctrl)
	s.purchases = flowmock.NewMockPurchaseRecorder(s.ctrl)

	s.owner = owner.Owner{
		ID:            uuid.New(),
		Name:          "Loja Teste",
		PhoneNumberID: phoneNumberID,
		BotNumber:     "551140000000",
		NotifyPhone:   "5511977770000",
		Active:        true,
	}
	s.texts, s.buttons, s.lists = nil, nil, nil

	s.engine = flow.NewEngine(flow.Deps{
		Messenger:      s.messenger,
		Catalog:        s.catalog,
		CatalogEditor:  s.catalogEditor,
		Customers:      s.customers,
		CustomerEditor: s.customerEditor,
		Admins:         s.admins,
		Payments:       s.payments,
		Notifier:       s.notifier,
		Transcript:     s.transcript,
		Conversations:  s.conversations,
		Inventory:      s.inventory,
		Ledger:         s.ledger,
		Purchases:      s.purchases,
	}, clock.NewMockClock(fixedNow), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func (s *EngineTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

// ------------------------------------------------------------
// helpers
// ------------------------------------------------------------

func event(from, message string) []byte {
	return []byte(fmt.Sprintf(`{"object":"whatsapp_business_account","entry":[{"id":"1","changes":[{"field":"messages","value":{
		"metadata":{"display_phone_number":"551140000000","phone_number_id":"PNID"},
		"contacts":[{"wa_id":%q,"profile":{"name":"Ana"}}],
		"messages":[%s]}}]}]}`, from, message))
}

func textEvent(from, body string) []byte {
	return event(from, fmt.Sprintf(`{"from":%q,"id":"wamid.%s","timestamp":"1700000000","type":"text","text":{"body":%q}}`, from, uuid.NewString(), body))
}

func replyEvent(from, id string) []byte {
	return event(from, fmt.Sprintf(`{"from":%q,"id":"wamid.reply","timestamp":"1700000000","type":"interactive",
		"interactive":{"type":"button_reply","button_reply":{"id":%q,"title":"x"}}}`, from, id))
}

func (s *EngineTestSuite) customer() *customer.Customer {
	return &customer.Customer{ID: 7, OwnerID: s.owner.ID, Phone: customerPhone, Name: "Ana", Balance: 3000}
}

// recordMessenger captures everything sent so tests can assert on content.
func (s *EngineTestSuite) recordMessenger() {
	s.messenger.EXPECT().SendText(gomock.Any(), phoneNumberID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, body string) error {
			s.texts = append(s.texts, body)
			return nil
		}).AnyTimes()
	s.messenger.EXPECT().SendButtons(gomock.Any(), phoneNumberID, gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, _ string, b []outbound.Button) error {
			s.buttons = append(s.buttons, b)
			return nil
		}).AnyTimes()
	s.messenger.EXPECT().SendList(gomock.Any(), phoneNumberID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, l outbound.List) error {
			s.lists = append(s.lists, l)
			return nil
		}).AnyTimes()
}

func (s *EngineTestSuite) actAsCustomer(conv domflow.Conversation) *customer.Customer {
	c := s.customer()
	s.admins.EXPECT().AdminByPhone(gomock.Any(), s.owner.ID, customerPhone).Return(nil, errNotFound)
	s.customerEditor.EXPECT().Ensure(gomock.Any(), s.owner.ID, customerPhone, "Ana").Return(c, nil)
	s.conversations.EXPECT().Get(gomock.Any(), s.owner.ID, customerPhone).Return(conv, nil)
	return c
}

func (s *EngineTestSuite) actAsAdmin(pending domflow.State) {
	s.admins.EXPECT().AdminByPhone(gomock.Any(), s.owner.ID, adminPhone).
		Return(&owner.Admin{ID: 1, OwnerID: s.owner.ID, Phone: adminPhone, IsActive: true}, nil)
	conv := domflow.Idle(s.owner.ID, adminPhone)
	conv.Pending = pending
	s.conversations.EXPECT().Get(gomock.Any(), s.owner.ID, adminPhone).Return(conv, nil)
}

func (s *EngineTestSuite) lastButtonIDs() []string {
	s.Require().NotEmpty(s.buttons)
	var ids []string
	for _, b := range s.buttons[len(s.buttons)-1] {
		ids = append(ids, b.ID)
	}
	return ids
}

func (s *EngineTestSuite) sentText(substr string) bool {
	for _, t := range s.texts {
		if strings.Contains(t, substr) {
			return true
		}
	}
	return false
}

func (s *EngineTestSuite) stockedCategory(price money.Cents) *catalog.Category {
	return &catalog.Category{ID: 5, OwnerID: s.owner.ID, Name: "Streaming 30d", Price: price, Active: true, Available: 2}
}

// ------------------------------------------------------------
// routing
// ------------------------------------------------------------

func (s *EngineTestSuite) TestIgnoresStatusCallbacks() {
	raw := []byte(`{"entry":[{"changes":[{"value":{"statuses":[{"id":"wamid.1","status":"delivered"}]}}]}]}`)
	s.Equal(flow.OutcomeIgnored, s.engine.HandleInboundEvent(context.Background(), s.owner, raw))
}

func (s *EngineTestSuite) TestFreeTextShowsMainMenu() {
	s.recordMessenger()
	s.actAsCustomer(domflow.Idle(s.owner.ID, customerPhone))

	out := s.engine.HandleInboundEvent(context.Background(), s.owner, textEvent(customerPhone, "oi"))

	s.Equal(flow.OutcomeMenu, out)
	s.Empty(s.texts)
	s.Equal([]string{"menu_buy", "menu_addbal", "menu_support"}, s.lastButtonIDs())
}

func (s *EngineTestSuite) TestEveryReplyIDEndsInOneOutcome() {
	ids := []string{"menu_main", "flow_cancel", "support_finish", "admin_menu", "admcat_1", "admcustbal_2", "garbage_9", "cat_x"}
	for _, id := range ids {
		s.Run(id, func() {
			s.SetupTest()
			s.recordMessenger()
			s.actAsCustomer(domflow.Idle(s.owner.ID, customerPhone))

			out := s.engine.HandleInboundEvent(context.Background(), s.owner, replyEvent(customerPhone, id))

			s.Equal(flow.OutcomeMenu, out)
			s.Equal([]string{"menu_buy", "menu_addbal", "menu_support"}, s.lastButtonIDs())
		})
	}
}

func (s *EngineTestSuite) TestUnknownReplyIDIsReported() {
	s.recordMessenger()
	s.actAsCustomer(domflow.Idle(s.owner.ID, customerPhone))

	out := s.engine.HandleInboundEvent(context.Background(), s.owner, replyEvent(customerPhone, "coupon_1"))

	s.Equal(flow.OutcomeMenu, out)
	s.True(s.sentText("Opção não reconhecida"))
}

func (s *EngineTestSuite) TestStoreFailureAnswersGenerically() {
	s.recordMessenger()
	s.admins.EXPECT().AdminByPhone(gomock.Any(), s.owner.ID, customerPhone).Return(nil, errNotFound)
	s.customerEditor.EXPECT().Ensure(gomock.Any(), s.owner.ID, customerPhone, "Ana").Return(s.customer(), nil)
	s.conversations.EXPECT().Get(gomock.Any(), s.owner.ID, customerPhone).Return(domflow.Conversation{}, errors.New("connection reset"))

	out := s.engine.HandleInboundEvent(context.Background(), s.owner, textEvent(customerPhone, "oi"))

	s.Equal(flow.OutcomeFailed, out)
	s.True(s.sentText("Não foi possível concluir"))
}

func (s *EngineTestSuite) TestInactiveAdminIsServedAsCustomer() {
	s.recordMessenger()
	s.admins.EXPECT().AdminByPhone(gomock.Any(), s.owner.ID, customerPhone).
		Return(&owner.Admin{ID: 3, OwnerID: s.owner.ID, Phone: customerPhone, IsActive: false}, nil)
	s.conversations.EXPECT().Evict(gomock.Any(), s.owner.ID, customerPhone).Return(nil)
	s.customerEditor.EXPECT().Ensure(gomock.Any(), s.owner.ID, customerPhone, "Ana").Return(s.customer(), nil)
	s.conversations.EXPECT().Get(gomock.Any(), s.owner.ID, customerPhone).Return(domflow.Idle(s.owner.ID, customerPhone), nil)

	out := s.engine.HandleInboundEvent(context.Background(), s.owner, textEvent(customerPhone, "oi"))

	s.Equal(flow.OutcomeMenu, out)
	s.Equal([]string{"menu_buy", "menu_addbal", "menu_support"}, s.lastButtonIDs())
}

// ------------------------------------------------------------
// purchase
// ------------------------------------------------------------

func (s *EngineTestSuite) TestPurchaseInsufficientBalanceReleasesOnce() {
	s.recordMessenger()
	c := s.actAsCustomer(domflow.Idle(s.owner.ID, customerPhone))
	res := &commands.Reservation{ProductID: 11, Reserved: true, Remaining: 0}

	s.catalog.EXPECT().CategoryByID(gomock.Any(), s.owner.ID, int64(5)).Return(s.stockedCategory(4990), nil)
	s.catalog.EXPECT().OldestAvailableUnit(gomock.Any(), int64(5)).Return(&catalog.Product{ID: 11, CategoryID: 5, Stock: 1}, nil)
	s.inventory.EXPECT().Reserve(gomock.Any(), int64(11)).Return(res, nil)
	s.ledger.EXPECT().Debit(gomock.Any(), s.owner.ID, c.ID, money.Cents(4990)).
		Return(ledger.Failed(c.ID, ledger.ReasonInsufficient, 3000), nil)
	s.inventory.EXPECT().Release(gomock.Any(), res).Return(nil).Times(1)

	out := s.engine.HandleInboundEvent(context.Background(), s.owner, replyEvent(customerPhone, "buy_5"))

	s.Equal(flow.OutcomeHandled, out)
	s.True(s.sentText("Faltam R$ 19.90"), "texts: %v", s.texts)
	s.Equal([]string{"menu_buy", "menu_addbal", "menu_support"}, s.lastButtonIDs())
}

func (s *EngineTestSuite) TestPurchaseBlockedCustomer() {
	s.recordMessenger()
	c := s.actAsCustomer(domflow.Idle(s.owner.ID, customerPhone))
	res := &commands.Reservation{ProductID: 11, Reserved: true}

	s.catalog.EXPECT().CategoryByID(gomock.Any(), s.owner.ID, int64(5)).Return(s.stockedCategory(1000), nil)
	s.catalog.EXPECT().OldestAvailableUnit(gomock.Any(), int64(5)).Return(&catalog.Product{ID: 11, Stock: 1}, nil)
	s.inventory.EXPECT().Reserve(gomock.Any(), int64(11)).Return(res, nil)
	s.ledger.EXPECT().Debit(gomock.Any(), s.owner.ID, c.ID, money.Cents(1000)).
		Return(ledger.Failed(c.ID, ledger.ReasonBlocked, 5000), nil)
	s.inventory.EXPECT().Release(gomock.Any(), res).Return(nil)

	s.Equal(flow.OutcomeHandled, s.engine.HandleInboundEvent(context.Background(), s.owner, replyEvent(customerPhone, "buy_5")))
	s.True(s.sentText("bloqueada"))
}

func (s *EngineTestSuite) TestPurchaseCustomerNotFoundReleasesOnce() {
	s.recordMessenger()
	c := s.actAsCustomer(domflow.Idle(s.owner.ID, customerPhone))
	res := &commands.Reservation{ProductID: 11, Reserved: true}

	s.catalog.EXPECT().CategoryByID(gomock.Any(), s.owner.ID, int64(5)).Return(s.stockedCategory(1000), nil)
	s.catalog.EXPECT().OldestAvailableUnit(gomock.Any(), int64(5)).Return(&catalog.Product{ID: 11, Stock: 1}, nil)
	s.inventory.EXPECT().Reserve(gomock.Any(), int64(11)).Return(res, nil)
	s.ledger.EXPECT().Debit(gomock.Any(), s.owner.ID, c.ID, money.Cents(1000)).
		Return(ledger.Failed(c.ID, ledger.ReasonNotFound, 0), nil)
	s.inventory.EXPECT().Release(gomock.Any(), res).Return(nil).Times(1)

	out := s.engine.HandleInboundEvent(context.Background(), s.owner, replyEvent(customerPhone, "buy_5"))

	s.Equal(flow.OutcomeHandled, out)
	s.True(s.sentText("Não encontramos seu cadastro"))
}

func (s *EngineTestSuite) TestPurchaseDebitErrorReleasesOnce() {
	s.recordMessenger()
	c := s.actAsCustomer(domflow.Idle(s.owner.ID, customerPhone))
	res := &commands.Reservation{ProductID: 11, Reserved: true}

	s.catalog.EXPECT().CategoryByID(gomock.Any(), s.owner.ID, int64(5)).Return(s.stockedCategory(1000), nil)
	s.catalog.EXPECT().OldestAvailableUnit(gomock.Any(), int64(5)).Return(&catalog.Product{ID: 11, Stock: 1}, nil)
	s.inventory.EXPECT().Reserve(gomock.Any(), int64(11)).Return(res, nil)
	s.ledger.EXPECT().Debit(gomock.Any(), s.owner.ID, c.ID, money.Cents(1000)).
		Return(ledger.DebitResult{}, errors.New("db down"))
	s.inventory.EXPECT().Release(gomock.Any(), res).Return(nil).Times(1)

	out := s.engine.HandleInboundEvent(context.Background(), s.owner, replyEvent(customerPhone, "buy_5"))

	s.Equal(flow.OutcomeFailed, out)
	s.True(s.sentText("Não foi possível concluir"))
}

func (s *EngineTestSuite) TestBlockedCustomerCannotTakeFreeUnit() {
	s.recordMessenger()
	c := s.actAsCustomer(domflow.Idle(s.owner.ID, customerPhone))
	c.Blocked = true

	s.catalog.EXPECT().CategoryByID(gomock.Any(), s.owner.ID, int64(5)).Return(s.stockedCategory(0), nil)

	out := s.engine.HandleInboundEvent(context.Background(), s.owner, replyEvent(customerPhone, "buy_5"))

	s.Equal(flow.OutcomeHandled, out)
	s.True(s.sentText("bloqueada"))
	s.Equal([]string{"menu_buy", "menu_addbal", "menu_support"}, s.lastButtonIDs())
}

func (s *EngineTestSuite) TestPurchaseLostReservationSkipsDebit() {
	s.recordMessenger()
	s.actAsCustomer(domflow.Idle(s.owner.ID, customerPhone))

	s.catalog.EXPECT().CategoryByID(gomock.Any(), s.owner.ID, int64(5)).Return(s.stockedCategory(4990), nil)
	s.catalog.EXPECT().OldestAvailableUnit(gomock.Any(), int64(5)).Return(&catalog.Product{ID: 11, Stock: 1}, nil)
	s.inventory.EXPECT().Reserve(gomock.Any(), int64(11)).Return(&commands.Reservation{ProductID: 11}, nil)

	out := s.engine.HandleInboundEvent(context.Background(), s.owner, replyEvent(customerPhone, "buy_5"))

	s.Equal(flow.OutcomeMenu, out)
	s.True(s.sentText("esgotado"))
}

func (s *EngineTestSuite) TestPurchaseSucceeds() {
	s.recordMessenger()
	c := s.actAsCustomer(domflow.Idle(s.owner.ID, customerPhone))
	c.Balance = 10000
	res := &commands.Reservation{ProductID: 11, Reserved: true}

	s.catalog.EXPECT().CategoryByID(gomock.Any(), s.owner.ID, int64(5)).Return(s.stockedCategory(4990), nil)
	s.catalog.EXPECT().OldestAvailableUnit(gomock.Any(), int64(5)).
		Return(&catalog.Product{ID: 11, CategoryID: 5, Content: "login: ana / senha: 123", Stock: 1}, nil)
	s.inventory.EXPECT().Reserve(gomock.Any(), int64(11)).Return(res, nil)
	s.ledger.EXPECT().Debit(gomock.Any(), s.owner.ID, c.ID, money.Cents(4990)).Return(ledger.Succeeded(c.ID, 5010), nil)
	s.purchases.EXPECT().Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec *purchase.Record) error {
			s.Equal(int64(11), rec.ProductID())
			s.Equal(money.Cents(4990), rec.Price())
			s.Equal(money.Cents(5010), rec.BalanceAfter())
			s.Equal(fixedNow, rec.CreatedAt())
			return nil
		})
	s.notifier.EXPECT().NotifySale(gomock.Any(), s.owner, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ owner.Owner, n purchase.Notice) error {
			s.Equal("Streaming 30d", n.CategoryName)
			s.Equal(money.Cents(5010), n.BalanceAfter)
			return errors.New("smtp down")
		})

	out := s.engine.HandleInboundEvent(context.Background(), s.owner, replyEvent(customerPhone, "buy_5"))

	s.Equal(flow.OutcomeHandled, out)
	s.True(s.sentText("Compra confirmada"))
	s.True(s.sentText("Saldo atual: R$ 50.10"))
	s.True(s.sentText("login: ana / senha: 123"))
}

func (s *EngineTestSuite) TestFreeCategorySkipsDebit() {
	s.recordMessenger()
	s.actAsCustomer(domflow.Idle(s.owner.ID, customerPhone))

	s.catalog.EXPECT().CategoryByID(gomock.Any(), s.owner.ID, int64(5)).Return(s.stockedCategory(0), nil)
	s.catalog.EXPECT().OldestAvailableUnit(gomock.Any(), int64(5)).Return(&catalog.Product{ID: 11, Stock: 1}, nil)
	s.inventory.EXPECT().Reserve(gomock.Any(), int64(11)).Return(&commands.Reservation{ProductID: 11, Reserved: true}, nil)
	s.purchases.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)
	s.notifier.EXPECT().NotifySale(gomock.Any(), s.owner, gomock.Any()).Return(nil)

	s.Equal(flow.OutcomeHandled, s.engine.HandleInboundEvent(context.Background(), s.owner, replyEvent(customerPhone, "buy_5")))
}

func (s *EngineTestSuite) TestPurchaseRecordFailureCompensates() {
	s.recordMessenger()
	c := s.actAsCustomer(domflow.Idle(s.owner.ID, customerPhone))
	res := &commands.Reservation{ProductID: 11, Reserved: true}

	s.catalog.EXPECT().CategoryByID(gomock.Any(), s.owner.ID, int64(5)).Return(s.stockedCategory(2000), nil)
	s.catalog.EXPECT().OldestAvailableUnit(gomock.Any(), int64(5)).Return(&catalog.Product{ID: 11, Content: "segredo", Stock: 1}, nil)
	s.inventory.EXPECT().Reserve(gomock.Any(), int64(11)).Return(res, nil)
	s.ledger.EXPECT().Debit(gomock.Any(), s.owner.ID, c.ID, money.Cents(2000)).Return(ledger.Succeeded(c.ID, 1000), nil)
	s.purchases.EXPECT().Record(gomock.Any(), gomock.Any()).Return(commands.ErrPurchaseRecordFailed)
	s.ledger.EXPECT().Credit(gomock.Any(), s.owner.ID, c.ID, money.Cents(2000)).Return(money.Cents(3000), nil)
	s.inventory.EXPECT().Release(gomock.Any(), res).Return(nil).Times(1)

	out := s.engine.HandleInboundEvent(context.Background(), s.owner, replyEvent(customerPhone, "buy_5"))

	s.Equal(flow.OutcomeFailed, out)
	s.True(s.sentText("Seu saldo foi devolvido"))
	s.False(s.sentText("segredo"))
}

func (s *EngineTestSuite) TestInactiveCategoryIsGone() {
	s.recordMessenger()
	s.actAsCustomer(domflow.Idle(s.owner.ID, customerPhone))
	cat := s.stockedCategory(100)
	cat.Active = false
	s.catalog.EXPECT().CategoryByID(gomock.Any(), s.owner.ID, int64(5)).Return(cat, nil)

	s.Equal(flow.OutcomeMenu, s.engine.HandleInboundEvent(context.Background(), s.owner, replyEvent(customerPhone, "buy_5")))
	s.True(s.sentText("não está mais disponível"))
}

// ------------------------------------------------------------
// catalog browsing
// ------------------------------------------------------------

func (s *EngineTestSuite) TestCategoryListPagesForward() {
	s.recordMessenger()
	s.actAsCustomer(domflow.Idle(s.owner.ID, customerPhone))
	page := catalog.Page{
		Items:      []catalog.Category{{ID: 1, Name: "A", Price: 1000, Active: true, Available: 1}, {ID: 2, Name: "B", Price: 500, Active: true}},
		Offset:     9,
		NextOffset: 18,
		HasMore:    true,
	}
	s.catalog.EXPECT().ListCategories(gomock.Any(), s.owner.ID, true, 9).Return(page, nil)

	out := s.engine.HandleInboundEvent(context.Background(), s.owner, replyEvent(customerPhone, "catpage_9"))

	s.Equal(flow.OutcomeHandled, out)
	s.Require().Len(s.lists, 1)
	rows := s.lists[0].Sections[0].Rows
	s.Require().Len(rows, 3)
	s.Equal("cat_1", rows[0].ID)
	s.Contains(rows[1].Description, "esgotado")
	s.Equal("catpage_18", rows[2].ID)
}

// ------------------------------------------------------------
// add balance
// ------------------------------------------------------------

func (s *EngineTestSuite) expectPixTiers() {
	s.payments.EXPECT().Tiers(s.owner.ID, "mercadopago_pix").Return([]money.Cents{1000, 2500, 5000}).Times(1)
	s.payments.EXPECT().Providers(s.owner.ID).Return([]payment.Provider{{Key: "mercadopago_pix", Label: "Pix"}}).AnyTimes()
}

func (s *EngineTestSuite) TestAddBalanceAcceptsConfiguredTier() {
	s.recordMessenger()
	c := s.actAsCustomer(domflow.Idle(s.owner.ID, customerPhone))
	s.expectPixTiers()
	s.payments.EXPECT().CreateCharge(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req payment.ChargeRequest) (*payment.Charge, error) {
			s.Equal(money.Cents(2500), req.Amount)
			s.Equal("mercadopago_pix", req.Provider)
			s.Equal(c.ID, req.CustomerID)
			s.Equal(s.owner.ID.String()+":7:wamid.reply", req.Reference)
			return &payment.Charge{ProviderRef: "123", TicketURL: "https://mp.example/t/123", QRCode: "00020126PIX"}, nil
		})

	out := s.engine.HandleInboundEvent(context.Background(), s.owner, replyEvent(customerPhone, "addbal_mercadopago_pix_2500"))

	s.Equal(flow.OutcomeHandled, out)
	s.True(s.sentText("Pix: R$ 25.00"))
	s.True(s.sentText("https://mp.example/t/123"))
	s.True(s.sentText("00020126PIX"))
}

func (s *EngineTestSuite) TestAddBalanceRejectsUnconfiguredAmount() {
	s.recordMessenger()
	s.actAsCustomer(domflow.Idle(s.owner.ID, customerPhone))
	s.expectPixTiers()

	out := s.engine.HandleInboundEvent(context.Background(), s.owner, replyEvent(customerPhone, "addbal_mercadopago_pix_999"))

	s.Equal(flow.OutcomeHandled, out)
	s.True(s.sentText("Esse valor não está mais disponível"))
	s.Require().Len(s.lists, 1)
	var ids []string
	for _, r := range s.lists[0].Sections[0].Rows {
		ids = append(ids, r.ID)
	}
	s.Equal([]string{"addbal_mercadopago_pix_1000", "addbal_mercadopago_pix_2500", "addbal_mercadopago_pix_5000"}, ids)
}

func (s *EngineTestSuite) TestChargeProviderFailure() {
	s.recordMessenger()
	s.actAsCustomer(domflow.Idle(s.owner.ID, customerPhone))
	s.expectPixTiers()
	s.payments.EXPECT().CreateCharge(gomock.Any(), gomock.Any()).Return(nil, errors.New("502 from provider"))

	out := s.engine.HandleInboundEvent(context.Background(), s.owner, replyEvent(customerPhone, "addbal_mercadopago_pix_1000"))

	s.Equal(flow.OutcomeMenu, out)
	s.True(s.sentText("Não foi possível gerar a cobrança"))
}

// ------------------------------------------------------------
// support handoff
// ------------------------------------------------------------

func (s *EngineTestSuite) TestOpenSupport() {
	s.recordMessenger()
	c := s.actAsCustomer(domflow.Idle(s.owner.ID, customerPhone))
	s.transcript.EXPECT().Open(gomock.Any(), s.owner.ID, customerPhone).Return(uuid.New(), nil)
	s.conversations.EXPECT().SetSupportHandoff(gomock.Any(), s.owner.ID, customerPhone, true).Return(nil)
	s.transcript.EXPECT().Append(gomock.Any(), s.owner.ID, customerPhone, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ string, e shared.TranscriptEntry) error {
			s.Equal(shared.TranscriptOutbound, e.Direction)
			return nil
		})
	s.notifier.EXPECT().NotifySupportRequest(gomock.Any(), s.owner, *c).Return(nil)

	out := s.engine.HandleInboundEvent(context.Background(), s.owner, replyEvent(customerPhone, "menu_support"))

	s.Equal(flow.OutcomeHandled, out)
	s.Equal([]string{"support_finish"}, s.lastButtonIDs())
}

func (s *EngineTestSuite) TestOpenHandoffTranscribesSilently() {
	conv := domflow.Idle(s.owner.ID, customerPhone)
	conv.SupportHandoffOpen = true
	s.actAsCustomer(conv)
	s.transcript.EXPECT().Append(gomock.Any(), s.owner.ID, customerPhone, shared.TranscriptEntry{
		Direction: shared.TranscriptInbound,
		Body:      "meu pedido não chegou",
	}).Return(nil)

	out := s.engine.HandleInboundEvent(context.Background(), s.owner, textEvent(customerPhone, "meu pedido não chegou"))

	s.Equal(flow.OutcomeTranscribed, out)
}

func (s *EngineTestSuite) TestOpenHandoffTranscribesMenuTaps() {
	conv := domflow.Idle(s.owner.ID, customerPhone)
	conv.SupportHandoffOpen = true
	s.actAsCustomer(conv)
	s.transcript.EXPECT().Append(gomock.Any(), s.owner.ID, customerPhone, gomock.Any()).Return(nil)

	s.Equal(flow.OutcomeTranscribed, s.engine.HandleInboundEvent(context.Background(), s.owner, replyEvent(customerPhone, "buy_5")))
}

func (s *EngineTestSuite) TestFinishSupport() {
	s.recordMessenger()
	conv := domflow.Idle(s.owner.ID, customerPhone)
	conv.SupportHandoffOpen = true
	s.actAsCustomer(conv)
	s.transcript.EXPECT().Append(gomock.Any(), s.owner.ID, customerPhone, gomock.Any()).Return(nil)
	s.transcript.EXPECT().Close(gomock.Any(), s.owner.ID, customerPhone).Return(true, nil)
	s.conversations.EXPECT().SetSupportHandoff(gomock.Any(), s.owner.ID, customerPhone, false).Return(nil)

	out := s.engine.HandleInboundEvent(context.Background(), s.owner, replyEvent(customerPhone, "support_finish"))

	s.Equal(flow.OutcomeMenu, out)
	s.True(s.sentText("Atendimento encerrado"))
}

// ------------------------------------------------------------
// admin flows
// ------------------------------------------------------------

func (s *EngineTestSuite) TestAdminInvalidPriceKeepsPendingFlow() {
	s.recordMessenger()
	s.actAsAdmin(domflow.AwaitingCategoryPrice{CategoryID: 5})

	out := s.engine.HandleInboundEvent(context.Background(), s.owner, textEvent(adminPhone, "abc"))

	s.Equal(flow.OutcomeReprompt, out)
	s.Equal([]string{"flow_cancel"}, s.lastButtonIDs())
}

func (s *EngineTestSuite) TestAdminPriceApplied() {
	s.recordMessenger()
	s.actAsAdmin(domflow.AwaitingCategoryPrice{CategoryID: 5})
	s.catalogEditor.EXPECT().SetPrice(gomock.Any(), s.owner.ID, int64(5), money.Cents(4990)).Return(nil)
	s.catalog.EXPECT().CategoryByID(gomock.Any(), s.owner.ID, int64(5)).Return(s.stockedCategory(4990), nil)
	s.conversations.EXPECT().SetPendingFlow(gomock.Any(), s.owner.ID, adminPhone, domflow.None{}).Return(nil)

	out := s.engine.HandleInboundEvent(context.Background(), s.owner, textEvent(adminPhone, "49,90"))

	s.Equal(flow.OutcomeHandled, out)
	s.Require().Len(s.lists, 1)
	s.Contains(s.lists[0].Body, "R$ 49.90")
}

func (s *EngineTestSuite) TestAdminReplyIDOverridesPendingFlow() {
	s.recordMessenger()
	s.actAsAdmin(domflow.AwaitingCategoryPrice{CategoryID: 5})
	s.catalog.EXPECT().ListCategories(gomock.Any(), s.owner.ID, false, 0).
		Return(catalog.Page{Items: []catalog.Category{{ID: 5, Name: "A", Active: false}}}, nil)
	s.conversations.EXPECT().SetPendingFlow(gomock.Any(), s.owner.ID, adminPhone, domflow.None{}).Return(nil)

	out := s.engine.HandleInboundEvent(context.Background(), s.owner, replyEvent(adminPhone, "admin_categories"))

	s.Equal(flow.OutcomeHandled, out)
	s.Require().Len(s.lists, 1)
	s.Contains(s.lists[0].Sections[0].Rows[0].Description, "inativa")
}

func (s *EngineTestSuite) TestAdminArmsRenameFlow() {
	s.recordMessenger()
	s.actAsAdmin(domflow.None{})
	s.catalog.EXPECT().CategoryByID(gomock.Any(), s.owner.ID, int64(5)).Return(s.stockedCategory(100), nil)
	s.conversations.EXPECT().SetPendingFlow(gomock.Any(), s.owner.ID, adminPhone, domflow.AwaitingCategoryRename{CategoryID: 5}).Return(nil)

	s.Equal(flow.OutcomeHandled, s.engine.HandleInboundEvent(context.Background(), s.owner, replyEvent(adminPhone, "admcatrename_5")))
}

func (s *EngineTestSuite) TestAdminIdleTextShowsAdminMenu() {
	s.recordMessenger()
	s.actAsAdmin(domflow.None{})

	s.Equal(flow.OutcomeMenu, s.engine.HandleInboundEvent(context.Background(), s.owner, textEvent(adminPhone, "oi")))
	s.Equal([]string{"admin_categories", "admin_customer_lookup"}, s.lastButtonIDs())
}

func (s *EngineTestSuite) TestAdminLookupMissReprompts() {
	s.recordMessenger()
	s.actAsAdmin(domflow.AwaitingCustomerLookup{Purpose: domflow.LookupEdit})
	s.customers.EXPECT().ByPhone(gomock.Any(), s.owner.ID, "42").Return(nil, errNotFound)
	s.customers.EXPECT().ByID(gomock.Any(), s.owner.ID, int64(42)).Return(nil, errNotFound)

	out := s.engine.HandleInboundEvent(context.Background(), s.owner, textEvent(adminPhone, "42"))

	s.Equal(flow.OutcomeReprompt, out)
}

func (s *EngineTestSuite) TestAdminLookupFindsByPhone() {
	s.recordMessenger()
	s.actAsAdmin(domflow.AwaitingCustomerLookup{Purpose: domflow.LookupEdit})
	s.customers.EXPECT().ByPhone(gomock.Any(), s.owner.ID, customerPhone).Return(s.customer(), nil)
	s.conversations.EXPECT().SetPendingFlow(gomock.Any(), s.owner.ID, adminPhone, domflow.AwaitingCustomerEditChoice{CustomerID: 7}).Return(nil)

	out := s.engine.HandleInboundEvent(context.Background(), s.owner, textEvent(adminPhone, "+55 11 99999-0000"))

	s.Equal(flow.OutcomeHandled, out)
	s.Equal([]string{"admcustname_7", "admcustbal_7", "admcustblock_7"}, s.lastButtonIDs())
}

func (s *EngineTestSuite) TestAdminDebitBelowZeroReprompts() {
	s.recordMessenger()
	s.actAsAdmin(domflow.AwaitingCustomerBalanceDelta{CustomerID: 7})
	s.ledger.EXPECT().Debit(gomock.Any(), s.owner.ID, int64(7), money.Cents(5000)).
		Return(ledger.Failed(7, ledger.ReasonInsufficient, 3000), nil)

	out := s.engine.HandleInboundEvent(context.Background(), s.owner, textEvent(adminPhone, "-50"))

	s.Equal(flow.OutcomeReprompt, out)
	s.Equal([]string{"flow_cancel"}, s.lastButtonIDs())
}

func (s *EngineTestSuite) TestAdminCreditEndsFlow() {
	s.recordMessenger()
	s.actAsAdmin(domflow.AwaitingCustomerBalanceDelta{CustomerID: 7})
	s.ledger.EXPECT().Credit(gomock.Any(), s.owner.ID, int64(7), money.Cents(1000)).Return(money.Cents(4000), nil)
	s.customers.EXPECT().ByID(gomock.Any(), s.owner.ID, int64(7)).Return(s.customer(), nil)
	s.conversations.EXPECT().SetPendingFlow(gomock.Any(), s.owner.ID, adminPhone, domflow.None{}).Return(nil)

	s.Equal(flow.OutcomeHandled, s.engine.HandleInboundEvent(context.Background(), s.owner, textEvent(adminPhone, "+10")))
}

func (s *EngineTestSuite) TestAdminBalanceEditOnBlockedCustomerShowsCard() {
	s.recordMessenger()
	s.actAsAdmin(domflow.None{})
	c := s.customer()
	c.Blocked = true
	s.customers.EXPECT().ByID(gomock.Any(), s.owner.ID, int64(7)).Return(c, nil)
	s.conversations.EXPECT().SetPendingFlow(gomock.Any(), s.owner.ID, adminPhone, domflow.AwaitingCustomerEditChoice{CustomerID: 7}).Return(nil)

	out := s.engine.HandleInboundEvent(context.Background(), s.owner, replyEvent(adminPhone, "admcustbal_7"))

	s.Equal(flow.OutcomeHandled, out)
	s.True(s.sentText("bloqueado"))
	s.Equal([]string{"admcustname_7", "admcustbal_7", "admcustblock_7"}, s.lastButtonIDs())
}
