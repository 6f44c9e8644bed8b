package service

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	ErrInvalidName     = errors.New("service name is required and must be at most 100 characters")
	ErrInvalidPrice    = errors.New("price must not be negative")
	ErrInvalidDuration = errors.New("duration must be between 5 and 480 minutes")
	ErrInvalidCategory = errors.New("category is required and must be at most 50 characters")
)

const (
	maxNameLength     = 100
	maxCategoryLength = 50
	minDuration       = 5
	maxDuration       = 480
)

type Service struct {
	id              uuid.UUID
	name            string
	description     *string
	priceCents      int64
	durationMinutes int32
	category        string
	imageURL        *string
	active          bool
	createdAt       time.Time
	updatedAt       time.Time
}

type Attributes struct {
	Name            string
	Description     *string
	PriceCents      int64
	DurationMinutes int32
	Category        string
	ImageURL        *string
	Active          bool
}

func NewService(attrs Attributes) (*Service, error) {
	s := &Service{id: uuid.New()}
	if err := s.apply(attrs); err != nil {
		return nil, err
	}
	return s, nil
}

func ReconstructService(id uuid.UUID, attrs Attributes, createdAt, updatedAt time.Time) *Service {
	return &Service{
		id:              id,
		name:            attrs.Name,
		description:     attrs.Description,
		priceCents:      attrs.PriceCents,
		durationMinutes: attrs.DurationMinutes,
		category:        attrs.Category,
		imageURL:        attrs.ImageURL,
		active:          attrs.Active,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// Update replaces every attribute after validating the new set.
func (s *Service) Update(attrs Attributes) error {
	return s.apply(attrs)
}

func (s *Service) apply(attrs Attributes) error {
	name := strings.TrimSpace(attrs.Name)
	if name == "" || utf8.RuneCountInString(name) > maxNameLength {
		return ErrInvalidName
	}
	if attrs.PriceCents < 0 {
		return ErrInvalidPrice
	}
	if attrs.DurationMinutes < minDuration || attrs.DurationMinutes > maxDuration {
		return ErrInvalidDuration
	}
	category := strings.ToLower(strings.TrimSpace(attrs.Category))
	if category == "" || utf8.RuneCountInString(category) > maxCategoryLength {
		return ErrInvalidCategory
	}

	s.name = name
	s.description = attrs.Description
	s.priceCents = attrs.PriceCents
	s.durationMinutes = attrs.DurationMinutes
	s.category = category
	s.imageURL = attrs.ImageURL
	s.active = attrs.Active
	return nil
}

func (s *Service) Attributes() Attributes {
	return Attributes{
		Name:            s.name,
		Description:     s.description,
		PriceCents:      s.priceCents,
		DurationMinutes: s.durationMinutes,
		Category:        s.category,
		ImageURL:        s.imageURL,
		Active:          s.active,
	}
}

func (s *Service) ID() uuid.UUID          { return s.id }
func (s *Service) Name() string           { return s.name }
func (s *Service) Description() *string   { return s.description }
func (s *Service) PriceCents() int64      { return s.priceCents }
func (s *Service) DurationMinutes() int32 { return s.durationMinutes }
func (s *Service) Category() string       { return s.category }
func (s *Service) ImageURL() *string      { return s.imageURL }
func (s *Service) IsActive() bool         { return s.active }
func (s *Service) CreatedAt() time.Time   { return s.createdAt }
func (s *Service) UpdatedAt() time.Time   { return s.updatedAt }
