package flow

import (
	"context"
	"fmt"

	domflow "shopbot/internal/domain/flow"
	"shopbot/internal/domain/outbound"
	"shopbot/internal/domain/replyid"
	"shopbot/internal/infra"
)

func (e *engine) adminListCategories(ctx context.Context, req *request, offset int) (domflow.State, Outcome, error) {
	page, err := e.catalog.ListCategories(ctx, req.owner.ID, false, offset)
	if err != nil {
		return nil, OutcomeFailed, err
	}
	if len(page.Items) == 0 {
		e.say(ctx, req, msgAdminNoCategories)
		outcome, err := e.adminMenu(ctx, req)
		return domflow.None{}, outcome, err
	}

	rows := make([]outbound.Row, 0, len(page.Items)+1)
	for _, c := range page.Items {
		desc := fmt.Sprintf("R$ %s · estoque %d", c.Price, c.Available)
		if !c.Active {
			desc += " · inativa"
		}
		rows = append(rows, outbound.Row{ID: replyid.AdminCategory(c.ID), Title: c.Name, Description: desc})
	}
	if page.HasMore {
		rows = append(rows, outbound.Row{ID: replyid.CategoryPage(page.NextOffset), Title: labelMore})
	}
	e.list(ctx, req, outbound.List{
		Body:        msgAdminMenu,
		ButtonLabel: labelCatalog,
		Sections:    []outbound.Section{{Rows: rows}},
	})
	return domflow.None{}, OutcomeHandled, nil
}

func (e *engine) adminShowCategory(ctx context.Context, req *request, id int64) (domflow.State, Outcome, error) {
	c, err := req.scope.category(ctx, id)
	if infra.IsNotFound(err) {
		return e.adminCategoryGone(ctx, req)
	}
	if err != nil {
		return nil, OutcomeFailed, err
	}

	toggle := labelDeactivate
	if !c.Active {
		toggle = labelActivate
	}
	e.list(ctx, req, outbound.List{
		Body:        adminCategoryCard(c),
		ButtonLabel: labelOptions,
		Sections: []outbound.Section{{Rows: []outbound.Row{
			{ID: replyid.AdminCategoryRename(c.ID), Title: labelRename},
			{ID: replyid.AdminCategoryPrice(c.ID), Title: labelPrice},
			{ID: replyid.AdminCategorySku(c.ID), Title: labelSku},
			{ID: replyid.AdminCategoryToggle(c.ID), Title: toggle},
		}}},
	})
	return domflow.None{}, OutcomeHandled, nil
}

// adminAskCategory arms a category edit flow after checking the target exists.
func (e *engine) adminAskCategory(ctx context.Context, req *request, id int64, next domflow.State) (domflow.State, Outcome, error) {
	if _, err := req.scope.category(ctx, id); err != nil {
		if infra.IsNotFound(err) {
			return e.adminCategoryGone(ctx, req)
		}
		return nil, OutcomeFailed, err
	}
	e.promptCancelable(ctx, req, promptFor(next))
	return next, OutcomeHandled, nil
}

func (e *engine) adminToggleCategory(ctx context.Context, req *request, id int64) (domflow.State, Outcome, error) {
	active, err := e.catalogEditor.ToggleActive(ctx, req.owner.ID, id)
	if infra.IsNotFound(err) {
		return e.adminCategoryGone(ctx, req)
	}
	if err != nil {
		return nil, OutcomeFailed, err
	}
	req.log.Info("category toggled", "category_id", id, "active", active)
	req.scope.forget(id)
	return e.adminShowCategory(ctx, req, id)
}

func (e *engine) adminRenameCategory(ctx context.Context, req *request, p domflow.AwaitingCategoryRename, text string) (domflow.State, Outcome, error) {
	name, err := domflow.ParseName(text)
	if err != nil {
		return e.reprompt(ctx, req, p, msgInvalidName)
	}
	if err := e.catalogEditor.Rename(ctx, req.owner.ID, p.CategoryID, name); err != nil {
		return e.categoryEditFailed(ctx, req, err)
	}
	req.scope.forget(p.CategoryID)
	return e.adminShowCategory(ctx, req, p.CategoryID)
}

func (e *engine) adminPriceCategory(ctx context.Context, req *request, p domflow.AwaitingCategoryPrice, text string) (domflow.State, Outcome, error) {
	price, err := domflow.ParsePrice(text)
	if err != nil {
		return e.reprompt(ctx, req, p, msgInvalidPrice)
	}
	if err := e.catalogEditor.SetPrice(ctx, req.owner.ID, p.CategoryID, price); err != nil {
		return e.categoryEditFailed(ctx, req, err)
	}
	req.scope.forget(p.CategoryID)
	return e.adminShowCategory(ctx, req, p.CategoryID)
}

func (e *engine) adminSkuCategory(ctx context.Context, req *request, p domflow.AwaitingCategorySku, text string) (domflow.State, Outcome, error) {
	sku, err := domflow.ParseSKU(text)
	if err != nil {
		return e.reprompt(ctx, req, p, msgInvalidSku)
	}
	if err := e.catalogEditor.SetSKU(ctx, req.owner.ID, p.CategoryID, sku); err != nil {
		return e.categoryEditFailed(ctx, req, err)
	}
	req.scope.forget(p.CategoryID)
	return e.adminShowCategory(ctx, req, p.CategoryID)
}

func (e *engine) categoryEditFailed(ctx context.Context, req *request, err error) (domflow.State, Outcome, error) {
	if infra.IsNotFound(err) {
		return e.adminCategoryGone(ctx, req)
	}
	return nil, OutcomeFailed, err
}

func (e *engine) adminCategoryGone(ctx context.Context, req *request) (domflow.State, Outcome, error) {
	e.say(ctx, req, msgAdminCategoryGone)
	outcome, err := e.adminMenu(ctx, req)
	return domflow.None{}, outcome, err
}

// reprompt keeps the pending flow as is and asks again.
func (e *engine) reprompt(ctx context.Context, req *request, pending domflow.State, correction string) (domflow.State, Outcome, error) {
	e.promptCancelable(ctx, req, correction+"\n"+promptFor(pending))
	return pending, OutcomeReprompt, nil
}

func (e *engine) promptCancelable(ctx context.Context, req *request, body string) {
	e.buttons(ctx, req, body, []outbound.Button{{ID: replyid.Cancel, Title: labelCancel}})
}

func promptFor(s domflow.State) string {
	switch s.(type) {
	case domflow.AwaitingCategoryRename:
		return msgAskCategoryName
	case domflow.AwaitingCategoryPrice:
		return msgAskCategoryPrice
	case domflow.AwaitingCategorySku:
		return msgAskCategorySku
	case domflow.AwaitingCustomerLookup:
		return msgAskCustomerLookup
	case domflow.AwaitingCustomerEditChoice:
		return msgInvalidChoice
	case domflow.AwaitingCustomerName:
		return msgAskCustomerName
	case domflow.AwaitingCustomerBalanceDelta:
		return msgAskBalanceDelta
	default:
		return msgAdminMenu
	}
}
