package flow

import (
	"context"

	"shopbot/internal/domain/catalog"
	"shopbot/internal/domain/outbound"
	"shopbot/internal/domain/replyid"
	"shopbot/internal/infra"
)

func (e *engine) mainMenu(ctx context.Context, req *request) (Outcome, error) {
	e.buttons(ctx, req, msgMainMenu, []outbound.Button{
		{ID: replyid.BuyMenu, Title: labelBuy},
		{ID: replyid.AddBalanceMenu, Title: labelAddBalance},
		{ID: replyid.SupportOpen, Title: labelSupport},
	})
	return OutcomeMenu, nil
}

func (e *engine) adminMenu(ctx context.Context, req *request) (Outcome, error) {
	e.buttons(ctx, req, msgAdminMenu, []outbound.Button{
		{ID: replyid.AdminCategories, Title: labelCatalog},
		{ID: replyid.AdminCustomerLookup, Title: labelCustomers},
	})
	return OutcomeMenu, nil
}

// showCategories lists the purchasable categories starting at offset. A
// trailing row pages forward when more exist.
func (e *engine) showCategories(ctx context.Context, req *request, offset int) (Outcome, error) {
	page, err := e.catalog.ListCategories(ctx, req.owner.ID, true, offset)
	if err != nil {
		return OutcomeFailed, err
	}
	if len(page.Items) == 0 {
		e.say(ctx, req, msgNoCategories)
		return e.mainMenu(ctx, req)
	}

	rows := make([]outbound.Row, 0, len(page.Items)+1)
	for _, c := range page.Items {
		desc := "R$ " + c.Price.String()
		if !c.InStock() {
			desc += " · esgotado"
		}
		rows = append(rows, outbound.Row{ID: replyid.Category(c.ID), Title: c.Name, Description: desc})
	}
	if page.HasMore {
		rows = append(rows, outbound.Row{ID: replyid.CategoryPage(page.NextOffset), Title: labelMore})
	}
	e.list(ctx, req, outbound.List{
		Body:        msgChooseCategory,
		ButtonLabel: labelCategories,
		Sections:    []outbound.Section{{Rows: rows}},
	})
	return OutcomeHandled, nil
}

func (e *engine) showCategory(ctx context.Context, req *request, id int64) (Outcome, error) {
	c, err := req.scope.category(ctx, id)
	if infra.IsNotFound(err) {
		e.say(ctx, req, msgCategoryGone)
		return e.mainMenu(ctx, req)
	}
	if err != nil {
		return OutcomeFailed, err
	}
	if !c.Active {
		e.say(ctx, req, msgCategoryGone)
		return e.mainMenu(ctx, req)
	}
	if !c.InStock() {
		e.say(ctx, req, msgOutOfStock)
		return e.mainMenu(ctx, req)
	}
	e.buttons(ctx, req, categoryCard(c), []outbound.Button{
		{ID: replyid.Buy(c.ID), Title: labelBuy},
		{ID: replyid.BuyMenu, Title: labelCatalog},
		{ID: replyid.MainMenu, Title: labelMenu},
	})
	return OutcomeHandled, nil
}

func (e *engine) buttons(ctx context.Context, req *request, body string, buttons []outbound.Button) {
	if err := e.messenger.SendButtons(ctx, req.owner.PhoneNumberID, req.sender(), body, buttons); err != nil {
		req.log.Warn("failed to send buttons", "error", err)
	}
}

func (e *engine) list(ctx context.Context, req *request, l outbound.List) {
	if err := e.messenger.SendList(ctx, req.owner.PhoneNumberID, req.sender(), l); err != nil {
		req.log.Warn("failed to send list", "error", err)
	}
}

func (e *engine) media(ctx context.Context, req *request, m *catalog.Media, caption string) {
	out := outbound.Media{
		Kind:     outbound.MediaKindFor(m.MimeType),
		URL:      m.URL,
		Caption:  caption,
		Filename: m.Filename,
	}
	if err := e.messenger.SendMedia(ctx, req.owner.PhoneNumberID, req.sender(), out); err != nil {
		req.log.Warn("failed to send media", "error", err)
	}
}
