package flow

import (
	"context"
	"log/slog"

	"shopbot/internal/domain/customer"
	domflow "shopbot/internal/domain/flow"
	"shopbot/internal/domain/inbound"
	"shopbot/internal/domain/owner"
	"shopbot/internal/domain/replyid"
	"shopbot/internal/infra"
	"shopbot/internal/pkg/clock"
)

// OwnerContext is the merchant a webhook delivery was addressed to.
type OwnerContext = owner.Owner

// Outcome names the single terminal action taken for an inbound event.
type Outcome int

const (
	OutcomeIgnored Outcome = iota
	OutcomeTranscribed
	OutcomeMenu
	OutcomeHandled
	OutcomeReprompt
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeTranscribed:
		return "transcribed"
	case OutcomeMenu:
		return "menu"
	case OutcomeHandled:
		return "handled"
	case OutcomeReprompt:
		return "reprompt"
	case OutcomeFailed:
		return "failed"
	default:
		return "ignored"
	}
}

type Engine interface {
	HandleInboundEvent(ctx context.Context, oc OwnerContext, raw []byte) Outcome
}

// Deps are the collaborators the engine drives.
type Deps struct {
	Messenger      Messenger
	Catalog        Catalog
	CatalogEditor  CatalogEditor
	Customers      Customers
	CustomerEditor CustomerEditor
	Admins         Admins
	Payments       Payments
	Notifier       Notifier
	Transcript     SupportTranscript
	Conversations  ConversationStore
	Inventory      Inventory
	Ledger         Ledger
	Purchases      PurchaseRecorder
}

type engine struct {
	messenger      Messenger
	catalog        Catalog
	catalogEditor  CatalogEditor
	customers      Customers
	customerEditor CustomerEditor
	admins         Admins
	payments       Payments
	notifier       Notifier
	transcript     SupportTranscript
	conversations  ConversationStore
	inventory      Inventory
	ledger         Ledger
	purchases      PurchaseRecorder

	locks  *keyLock
	clock  clock.Clock
	logger *slog.Logger
}

func NewEngine(deps Deps, clk clock.Clock, logger *slog.Logger) Engine {
	return &engine{
		messenger:      deps.Messenger,
		catalog:        deps.Catalog,
		catalogEditor:  deps.CatalogEditor,
		customers:      deps.Customers,
		customerEditor: deps.CustomerEditor,
		admins:         deps.Admins,
		payments:       deps.Payments,
		notifier:       deps.Notifier,
		transcript:     deps.Transcript,
		conversations:  deps.Conversations,
		inventory:      deps.Inventory,
		ledger:         deps.Ledger,
		purchases:      deps.Purchases,
		locks:          newKeyLock(),
		clock:          clk,
		logger:         logger.With(slog.String("component", "flow")),
	}
}

// request carries everything resolved for one inbound event.
type request struct {
	owner    OwnerContext
	msg      *inbound.Message
	token    replyid.Token
	conv     domflow.Conversation
	admin    *owner.Admin
	customer *customer.Customer
	scope    *requestScope
	log      *slog.Logger
}

func (r *request) sender() string { return r.msg.SenderID }

func (r *request) isAdmin() bool { return r.admin != nil }

// HandleInboundEvent processes one webhook delivery end to end. Failures are
// logged and answered with a generic message; nothing propagates to the
// transport.
func (e *engine) HandleInboundEvent(ctx context.Context, oc OwnerContext, raw []byte) Outcome {
	msg := inbound.Normalize(raw, oc.BotNumber)
	if msg == nil {
		return OutcomeIgnored
	}

	unlock := e.locks.Lock(oc.ID.String() + ":" + msg.SenderID)
	defer unlock()

	req := &request{
		owner: oc,
		msg:   msg,
		token: replyid.Decode(msg.ReplyID),
		log: e.logger.With(
			slog.String("owner_id", oc.ID.String()),
			slog.String("sender", msg.SenderID),
			slog.String("message_id", msg.ProviderMessageID),
		),
	}
	req.scope = newRequestScope(e, req)

	outcome, err := e.route(ctx, req)
	if err != nil {
		req.log.Error("inbound event failed", "error", err, "reply_id", msg.ReplyID)
		e.say(ctx, req, msgGenericFailure)
		return OutcomeFailed
	}
	req.log.Debug("inbound event handled", "outcome", outcome.String(), "reply_kind", int(req.token.Kind))
	return outcome
}

func (e *engine) route(ctx context.Context, req *request) (Outcome, error) {
	if err := e.resolveActor(ctx, req); err != nil {
		return OutcomeFailed, err
	}

	conv, err := e.conversations.Get(ctx, req.owner.ID, req.sender())
	if err != nil {
		return OutcomeFailed, err
	}
	req.conv = conv

	if req.isAdmin() {
		return e.routeAdmin(ctx, req)
	}
	return e.routeCustomer(ctx, req)
}

// resolveActor decides admin vs customer. A disabled admin loses whatever
// session it had and is served as a customer from here on.
func (e *engine) resolveActor(ctx context.Context, req *request) error {
	admin, err := e.admins.AdminByPhone(ctx, req.owner.ID, req.sender())
	switch {
	case err == nil && admin.IsActive:
		req.admin = admin
		return nil
	case err == nil:
		if err := e.conversations.Evict(ctx, req.owner.ID, req.sender()); err != nil {
			return err
		}
		req.log.Info("evicted session of inactive admin", "admin_id", admin.ID)
	case !infra.IsNotFound(err):
		return err
	}

	cust, err := e.customerEditor.Ensure(ctx, req.owner.ID, req.sender(), req.msg.SenderName)
	if err != nil {
		return err
	}
	req.customer = cust
	return nil
}

func (e *engine) routeCustomer(ctx context.Context, req *request) (Outcome, error) {
	if req.conv.SupportHandoffOpen {
		if req.token.Kind == replyid.KindSupportFinish {
			return e.finishSupport(ctx, req)
		}
		return e.transcribe(ctx, req)
	}

	switch req.token.Kind {
	case replyid.KindBuyMenu:
		return e.showCategories(ctx, req, 0)
	case replyid.KindCategoryPage:
		return e.showCategories(ctx, req, req.token.Offset)
	case replyid.KindCategory:
		return e.showCategory(ctx, req, req.token.ID)
	case replyid.KindBuy:
		return e.purchase(ctx, req, req.token.ID)
	case replyid.KindAddBalanceMenu:
		return e.showProviders(ctx, req)
	case replyid.KindPaymentMethod:
		return e.showTiers(ctx, req, req.token.Provider)
	case replyid.KindAddBalanceAmount:
		return e.createCharge(ctx, req, req.token.Provider, req.token.AmountCents)
	case replyid.KindSupportOpen:
		return e.openSupport(ctx, req)
	case replyid.KindNone:
		if req.msg.HasReplyID() {
			e.say(ctx, req, msgUnrecognizedOption)
		}
		return e.mainMenu(ctx, req)
	default:
		// menu_main, flow_cancel, a stray support_finish, admin ids
		return e.mainMenu(ctx, req)
	}
}

func (e *engine) routeAdmin(ctx context.Context, req *request) (Outcome, error) {
	if !req.token.IsNone() {
		next, outcome, err := e.dispatchAdmin(ctx, req)
		if err != nil {
			return outcome, err
		}
		return outcome, e.transition(ctx, req, next)
	}

	if req.conv.HasPending() && !req.msg.HasReplyID() && req.msg.Text != "" {
		next, outcome, err := e.answerPending(ctx, req, req.conv.Pending)
		if err != nil {
			return outcome, err
		}
		return outcome, e.transition(ctx, req, next)
	}

	if req.msg.HasReplyID() {
		e.say(ctx, req, msgUnrecognizedOption)
	}
	return e.adminMenu(ctx, req)
}

func (e *engine) dispatchAdmin(ctx context.Context, req *request) (domflow.State, Outcome, error) {
	t := req.token
	switch t.Kind {
	case replyid.KindAdminCategories:
		return e.adminListCategories(ctx, req, 0)
	case replyid.KindCategoryPage:
		return e.adminListCategories(ctx, req, t.Offset)
	case replyid.KindAdminCategory:
		return e.adminShowCategory(ctx, req, t.ID)
	case replyid.KindAdminCategoryRename:
		return e.adminAskCategory(ctx, req, t.ID, domflow.AwaitingCategoryRename{CategoryID: t.ID})
	case replyid.KindAdminCategoryPrice:
		return e.adminAskCategory(ctx, req, t.ID, domflow.AwaitingCategoryPrice{CategoryID: t.ID})
	case replyid.KindAdminCategorySku:
		return e.adminAskCategory(ctx, req, t.ID, domflow.AwaitingCategorySku{CategoryID: t.ID})
	case replyid.KindAdminCategoryToggle:
		return e.adminToggleCategory(ctx, req, t.ID)
	case replyid.KindAdminCustomerLookup:
		return e.adminAskLookup(ctx, req, domflow.LookupEdit)
	case replyid.KindAdminCustomer:
		return e.adminShowCustomer(ctx, req, t.ID)
	case replyid.KindAdminCustomerName:
		return e.adminAskCustomer(ctx, req, t.ID, domflow.AwaitingCustomerName{CustomerID: t.ID})
	case replyid.KindAdminCustomerBalance:
		return e.adminAskCustomer(ctx, req, t.ID, domflow.AwaitingCustomerBalanceDelta{CustomerID: t.ID})
	case replyid.KindAdminCustomerBlock:
		return e.adminToggleBlocked(ctx, req, t.ID)
	default:
		// admin_menu, flow_cancel and customer-only ids
		outcome, err := e.adminMenu(ctx, req)
		return domflow.None{}, outcome, err
	}
}

func (e *engine) answerPending(ctx context.Context, req *request, pending domflow.State) (domflow.State, Outcome, error) {
	text := req.msg.Text
	switch p := pending.(type) {
	case domflow.AwaitingCategoryRename:
		return e.adminRenameCategory(ctx, req, p, text)
	case domflow.AwaitingCategoryPrice:
		return e.adminPriceCategory(ctx, req, p, text)
	case domflow.AwaitingCategorySku:
		return e.adminSkuCategory(ctx, req, p, text)
	case domflow.AwaitingCustomerLookup:
		return e.adminLookupCustomer(ctx, req, p, text)
	case domflow.AwaitingCustomerEditChoice:
		return e.adminEditChoice(ctx, req, p, text)
	case domflow.AwaitingCustomerName:
		return e.adminRenameCustomer(ctx, req, p, text)
	case domflow.AwaitingCustomerBalanceDelta:
		return e.adminAdjustBalance(ctx, req, p, text)
	default:
		outcome, err := e.adminMenu(ctx, req)
		return domflow.None{}, outcome, err
	}
}

// transition persists next only when it differs from what is stored.
func (e *engine) transition(ctx context.Context, req *request, next domflow.State) error {
	if next == nil {
		next = domflow.None{}
	}
	current := req.conv.Pending
	if current == nil {
		current = domflow.None{}
	}
	if current == next {
		return nil
	}
	if err := e.conversations.SetPendingFlow(ctx, req.owner.ID, req.sender(), next); err != nil {
		return err
	}
	req.conv.Pending = next
	return nil
}

// say sends a text and logs delivery failures; outbound messaging is never
// retried here.
func (e *engine) say(ctx context.Context, req *request, body string) {
	if err := e.messenger.SendText(ctx, req.owner.PhoneNumberID, req.sender(), body); err != nil {
		req.log.Warn("failed to send text", "error", err)
	}
}
