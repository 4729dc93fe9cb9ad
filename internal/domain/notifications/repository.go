package notifications

import "context"

type Repository interface {
	List(ctx context.Context, userID string, offset, limit int) ([]Notification, int64, error)
	MarkAllRead(ctx context.Context, userID string) error
}
