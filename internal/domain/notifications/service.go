package notifications

import "context"

const defaultPageSize = 10

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns one page of the user's notifications, newest first.
func (s *Service) List(ctx context.Context, userID string, page, limit int) (*Page, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}

	items, total, err := s.repo.List(ctx, userID, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}

	pages := int((total + int64(limit) - 1) / int64(limit))

	return &Page{
		Items: items,
		Total: total,
		Page:  page,
		Pages: pages,
	}, nil
}

func (s *Service) MarkAllRead(ctx context.Context, userID string) error {
	return s.repo.MarkAllRead(ctx, userID)
}
