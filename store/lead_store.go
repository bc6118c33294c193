package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/YuvarajaDev/NoeonApi/models"
)

// ErrNotFound is returned when no lead matches the requested id.
// Callers map it to a 404; every other error is a storage failure.
var ErrNotFound = errors.New("lead not found")

// IsNotFound reports whether err means the lead does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// LeadStore owns all access to the leads table.
type LeadStore struct {
	db *gorm.DB
}

func NewLeadStore(db *gorm.DB) *LeadStore {
	return &LeadStore{db: db}
}

// Insert writes a new lead and returns the stored record with the
// database-assigned id and creation timestamp.
func (s *LeadStore) Insert(ctx context.Context, in models.LeadInput) (models.Lead, error) {
	lead := models.Lead{
		Name:             in.Name,
		Email:            in.Email,
		Phone:            in.Phone,
		CourseLookingFor: in.CourseLookingFor,
	}
	if in.Message != "" {
		msg := in.Message
		lead.Message = &msg
	}
	if err := s.db.WithContext(ctx).Create(&lead).Error; err != nil {
		return models.Lead{}, fmt.Errorf("insert lead: %w", err)
	}
	return lead, nil
}

// ListAll returns every lead, newest first. An empty table yields an
// empty slice, not an error.
func (s *LeadStore) ListAll(ctx context.Context) ([]models.Lead, error) {
	leads := []models.Lead{}
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&leads).Error; err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	return leads, nil
}

// GetByID returns a single lead or ErrNotFound.
func (s *LeadStore) GetByID(ctx context.Context, id uint) (models.Lead, error) {
	var lead models.Lead
	err := s.db.WithContext(ctx).First(&lead, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Lead{}, ErrNotFound
	}
	if err != nil {
		return models.Lead{}, fmt.Errorf("get lead: %w", err)
	}
	return lead, nil
}

// Update replaces every mutable field of the matching lead and returns
// the updated record. The creation timestamp is never touched.
func (s *LeadStore) Update(ctx context.Context, id uint, in models.LeadInput) (models.Lead, error) {
	lead, err := s.GetByID(ctx, id)
	if err != nil {
		return models.Lead{}, err
	}

	lead.Name = in.Name
	lead.Email = in.Email
	lead.Phone = in.Phone
	lead.CourseLookingFor = in.CourseLookingFor
	if in.Message != "" {
		msg := in.Message
		lead.Message = &msg
	} else {
		lead.Message = nil
	}

	if err := s.db.WithContext(ctx).Save(&lead).Error; err != nil {
		return models.Lead{}, fmt.Errorf("update lead: %w", err)
	}
	return lead, nil
}

// Delete removes the matching lead permanently and returns its prior
// contents for confirmation.
func (s *LeadStore) Delete(ctx context.Context, id uint) (models.Lead, error) {
	lead, err := s.GetByID(ctx, id)
	if err != nil {
		return models.Lead{}, err
	}
	if err := s.db.WithContext(ctx).Delete(&models.Lead{}, id).Error; err != nil {
		return models.Lead{}, fmt.Errorf("delete lead: %w", err)
	}
	return lead, nil
}
