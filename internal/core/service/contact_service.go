package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/farmtrak/farmtrak-api/internal/core/domain"
	"github.com/farmtrak/farmtrak-api/internal/core/ports"
)

const defaultContactCategory = "other"

type ContactService struct {
	repo   ports.ContactRepository
	logger zerolog.Logger
}

func NewContactService(repo ports.ContactRepository, logger zerolog.Logger) *ContactService {
	return &ContactService{repo: repo, logger: logger}
}

func (s *ContactService) Create(ctx context.Context, owner *domain.Account, c *domain.Contact) (*domain.Contact, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return nil, domain.Invalid("name is required")
	}
	if c.Category == "" {
		c.Category = defaultContactCategory
	}

	now := time.Now().UTC()
	c.ID = uuid.NewString()
	c.OwnerID = owner.ID
	c.CreatedAt = now
	c.UpdatedAt = now

	if err := s.repo.Create(ctx, c); err != nil {
		s.logger.Error().Err(err).Msg("failed to create contact")
		return nil, err
	}
	return c, nil
}

func (s *ContactService) Get(ctx context.Context, id string) (*domain.Contact, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ContactService) List(ctx context.Context, ownerID string) ([]*domain.Contact, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *ContactService) Update(ctx context.Context, id string, patch ports.ContactPatch) (*domain.Contact, error) {
	contact, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, domain.Invalid("name must not be empty")
		}
		contact.Name = name
	}
	setString(&contact.Category, patch.Category)
	setString(&contact.Phone, patch.Phone)
	setString(&contact.Email, patch.Email)
	setString(&contact.Notes, patch.Notes)
	contact.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (s *ContactService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
