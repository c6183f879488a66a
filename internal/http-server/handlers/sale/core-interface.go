package sale

import (
	"RepairDesk/entity"
	"context"
)

type Core interface {
	CreateSaleQuote(ctx context.Context, req entity.SaleQuoteRequest) (*entity.Receipt, error)
	ListSaleQuotes(ctx context.Context, limit int64) ([]entity.SaleQuote, error)
}
