package animals

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	defaultPageSize = 10
	filterAll       = "all"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// List returns one page of the farm's inventory. Health status is derived
// from the latest record, not stored on the animal, so that filter runs as a
// separate status-index pass whose matching ids constrain the main query.
func (s *Service) List(ctx context.Context, farmID string, filter ListFilter) (*Page, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = defaultPageSize
	}

	query := Query{
		Search: strings.TrimSpace(filter.Search),
		Offset: (page - 1) * limit,
		Limit:  limit,
	}
	if breedID := strings.TrimSpace(filter.BreedID); breedID != "" && breedID != filterAll {
		query.BreedID = breedID
	}

	if status := strings.TrimSpace(filter.HealthStatus); status != "" && status != filterAll {
		ids, err := s.animalIDsWithStatus(ctx, farmID, status)
		if err != nil {
			return nil, err
		}
		// Even an empty id set goes to the main query, which then yields an
		// empty page instead of silently dropping the filter.
		query.IDs = ids
		query.FilterByIDs = true
	}

	rows, total, err := s.repo.List(ctx, farmID, query)
	if err != nil {
		return nil, err
	}

	now := s.now()
	items := make([]ListItem, 0, len(rows))
	for _, row := range rows {
		status := StatusHealthy
		if row.LatestStatus != nil {
			status = *row.LatestStatus
		}
		items = append(items, ListItem{
			ID:        row.ID,
			Name:      row.Name,
			Breed:     row.BreedName,
			Age:       AgeInMonths(row.BirthDate, now),
			Status:    status,
			BirthDate: row.BirthDate,
			Sex:       row.Sex,
		})
	}

	pages := int((total + int64(limit) - 1) / int64(limit))

	return &Page{
		Items: items,
		Total: total,
		Pages: pages,
		Page:  page,
		Limit: limit,
	}, nil
}

// animalIDsWithStatus is the status index: it resolves a derived current
// status to the set of animal ids holding it right now. Animals without any
// health record count as HEALTHY.
func (s *Service) animalIDsWithStatus(ctx context.Context, farmID, status string) ([]string, error) {
	entries, err := s.repo.LatestStatuses(ctx, farmID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		current := StatusHealthy
		if entry.LatestStatus != nil {
			current = *entry.LatestStatus
		}
		if current == status {
			ids = append(ids, entry.AnimalID)
		}
	}
	return ids, nil
}

func (s *Service) Get(ctx context.Context, farmID, animalID string) (*Detail, error) {
	return s.repo.GetDetail(ctx, farmID, animalID)
}

// Create inserts the animal together with its seed health record in one
// transaction. New animals always start HEALTHY.
func (s *Service) Create(ctx context.Context, input CreateInput) (*Detail, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if input.BirthDate.IsZero() {
		return nil, fmt.Errorf("birth date is required")
	}
	if strings.TrimSpace(input.BreedID) == "" {
		return nil, fmt.Errorf("breed is required")
	}

	sex := input.Sex
	if sex == "" {
		sex = SexFemale
	}
	if sex != SexMale && sex != SexFemale {
		return nil, ErrInvalidSex
	}
	if input.Weight != nil && *input.Weight <= 0 {
		return nil, ErrInvalidWeight
	}

	animal := Animal{
		ID:        uuid.NewString(),
		FarmID:    input.FarmID,
		BreedID:   input.BreedID,
		Name:      name,
		Sex:       sex,
		BirthDate: input.BirthDate,
	}
	record := HealthRecord{
		ID:       uuid.NewString(),
		AnimalID: animal.ID,
		Date:     s.now().UTC(),
		Status:   StatusHealthy,
		Weight:   input.Weight,
		Notes:    input.Notes,
	}

	err := s.repo.Transaction(ctx, func(tx Repository) error {
		if err := tx.Create(ctx, &animal); err != nil {
			return err
		}
		return tx.AddHealthRecord(ctx, &record)
	})
	if err != nil {
		return nil, err
	}

	return s.repo.GetDetail(ctx, input.FarmID, animal.ID)
}

// Update mutates the stored fields and, when a health status or weight was
// supplied, appends a new health record dated now. Both writes run in one
// transaction so an observation is never recorded against a half-updated
// animal.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*Detail, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if input.BirthDate.IsZero() {
		return nil, fmt.Errorf("birth date is required")
	}
	if strings.TrimSpace(input.BreedID) == "" {
		return nil, fmt.Errorf("breed is required")
	}
	if input.Sex != SexMale && input.Sex != SexFemale {
		return nil, ErrInvalidSex
	}
	if input.HealthStatus != "" && !validStatus(input.HealthStatus) {
		return nil, ErrInvalidStatus
	}
	if input.Weight != nil && *input.Weight <= 0 {
		return nil, ErrInvalidWeight
	}

	err := s.repo.Transaction(ctx, func(tx Repository) error {
		animal, err := tx.GetByID(ctx, input.FarmID, input.ID)
		if err != nil {
			return err
		}

		animal.Name = name
		animal.BirthDate = input.BirthDate
		animal.BreedID = input.BreedID
		animal.Sex = input.Sex
		animal.UpdatedAt = s.now().UTC()

		if err := tx.Update(ctx, animal); err != nil {
			return err
		}

		if input.HealthStatus == "" && input.Weight == nil {
			return nil
		}

		status := input.HealthStatus
		if status == "" {
			// Weight-only update: carry the current status forward.
			latest, err := tx.LatestRecord(ctx, animal.ID)
			if err != nil {
				return err
			}
			status = StatusHealthy
			if latest != nil {
				status = latest.Status
			}
		}

		record := HealthRecord{
			ID:       uuid.NewString(),
			AnimalID: animal.ID,
			Date:     s.now().UTC(),
			Status:   status,
			Weight:   input.Weight,
			Notes:    input.Notes,
		}
		return tx.AddHealthRecord(ctx, &record)
	})
	if err != nil {
		return nil, err
	}

	return s.repo.GetDetail(ctx, input.FarmID, input.ID)
}

func (s *Service) Delete(ctx context.Context, farmID, animalID string) error {
	deleted, err := s.repo.Delete(ctx, farmID, animalID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrAnimalNotFound
	}
	return nil
}

func validStatus(status string) bool {
	switch status {
	case StatusHealthy, StatusSick, StatusQuarantined:
		return true
	}
	return false
}
