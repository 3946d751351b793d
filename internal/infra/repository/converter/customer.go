package converter

import (
	"shopbot/internal/domain/customer"
	"shopbot/internal/domain/money"
	"shopbot/internal/domain/owner"
	sqlc "shopbot/internal/infra/sqlc/generated"
	"shopbot/internal/pkg/pgconv"
)

func CustomerFromRow(row sqlc.Customers) *customer.Customer {
	return &customer.Customer{
		ID:        row.ID,
		OwnerID:   row.OwnerID,
		Phone:     row.Phone,
		Name:      row.Name,
		Balance:   money.Cents(row.BalanceCents),
		Blocked:   row.Blocked,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}
}

func OwnerFromRow(row sqlc.Owners) *owner.Owner {
	return &owner.Owner{
		ID:            row.ID,
		Name:          row.Name,
		PhoneNumberID: row.PhoneNumberID,
		BotNumber:     row.BotNumber,
		NotifyPhone:   row.NotifyPhone,
		NotifyEmail:   row.NotifyEmail,
		Active:        row.IsActive,
	}
}

func AdminFromRow(row sqlc.Admins) *owner.Admin {
	return &owner.Admin{
		ID:       row.ID,
		OwnerID:  row.OwnerID,
		Phone:    row.Phone,
		Name:     row.Name,
		IsActive: row.IsActive,
	}
}
