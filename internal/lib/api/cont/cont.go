package cont

import (
	"RepairDesk/entity"
	"context"
)

type ctxKey string

const staffKey ctxKey = "staff"

func PutStaff(ctx context.Context, staff *entity.StaffAuth) context.Context {
	return context.WithValue(ctx, staffKey, staff)
}

func GetStaff(ctx context.Context) *entity.StaffAuth {
	staff, ok := ctx.Value(staffKey).(*entity.StaffAuth)
	if !ok {
		return nil
	}
	return staff
}
