package farms

import "context"

type Repository interface {
	GetByOwner(ctx context.Context, ownerID string) (*Farm, error)
	UpdateName(ctx context.Context, farmID, name string) error
}
