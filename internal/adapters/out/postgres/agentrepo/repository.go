package agentrepo

import (
	"context"
	"errors"

	"ewaste/internal/core/domain/model/agent"
	"ewaste/internal/core/domain/model/kernel"
	"ewaste/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAgentProfileRepository implements AgentProfileRepository using GORM.
type GormAgentProfileRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAgentProfileRepository creates a new GORM agent profile repository.
func NewGormAgentProfileRepository(db *gorm.DB, tracker aggregateTracker) *GormAgentProfileRepository {
	return &GormAgentProfileRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new agent profile to the database.
func (r *GormAgentProfileRepository) Add(ctx context.Context, aggregate *agent.Profile) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.AccountID(), aggregate)
	return nil
}

// Update saves an existing agent profile.
func (r *GormAgentProfileRepository) Update(ctx context.Context, aggregate *agent.Profile) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&AgentProfileDTO{}).
		Where("account_id = ?", dto.AccountID).
		Select("*").
		Omit("account_id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("agentProfile", aggregate.AccountID().String())
	}

	r.tracker.TrackAggregate(aggregate.AccountID(), aggregate)
	return nil
}

// Get retrieves the profile for the given agent account.
func (r *GormAgentProfileRepository) Get(ctx context.Context, accountID kernel.UUID) (*agent.Profile, error) {
	if err := accountID.Validate(); err != nil {
		return nil, err
	}

	var dto AgentProfileDTO
	err := r.db.WithContext(ctx).First(&dto, "account_id = ?", accountID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("agentProfile", accountID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllVerified retrieves every verified profile, ordered by business name.
func (r *GormAgentProfileRepository) GetAllVerified(ctx context.Context) ([]*agent.Profile, error) {
	var dtos []AgentProfileDTO
	err := r.db.WithContext(ctx).
		Order("business_name ASC").
		Find(&dtos, "verified = ?", true).Error
	if err != nil {
		return nil, err
	}

	profiles := make([]*agent.Profile, 0, len(dtos))
	for _, dto := range dtos {
		profile, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		profiles = append(profiles, profile)
	}

	return profiles, nil
}
