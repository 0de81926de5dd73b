package pickuprepo

import (
	"context"
	"errors"
	"time"

	"ewaste/internal/core/domain/model/kernel"
	"ewaste/internal/core/domain/model/pickup"
	"ewaste/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPickupRepository implements PickupRepository using GORM.
type GormPickupRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPickupRepository creates a new GORM pickup repository.
func NewGormPickupRepository(db *gorm.DB, tracker aggregateTracker) *GormPickupRepository {
	return &GormPickupRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new pickup request to the database.
func (r *GormPickupRepository) Add(ctx context.Context, aggregate *pickup.Pickup) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing pickup request, conditional on the status the
// caller loaded. The WHERE clause carries both the id and the expected
// status, so a row another transaction has already moved on is not touched;
// zero affected rows means the caller lost the race and gets a
// ConcurrentModificationError.
func (r *GormPickupRepository) Update(
	ctx context.Context,
	aggregate *pickup.Pickup,
	expectedStatus pickup.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := expectedStatus.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&PickupDTO{}).
		Where("id = ? AND status = ?", dto.ID, expectedStatus.String()).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConcurrentModificationError("pickupId", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a pickup request by ID.
func (r *GormPickupRepository) Get(ctx context.Context, id kernel.UUID) (*pickup.Pickup, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PickupDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pickup", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllPending retrieves all requests awaiting an agent, oldest first.
func (r *GormPickupRepository) GetAllPending(ctx context.Context) ([]*pickup.Pickup, error) {
	var dtos []PickupDTO
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&dtos, "status = ?", pickup.Pending.String()).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllByOwner retrieves all requests filed by the given requester.
func (r *GormPickupRepository) GetAllByOwner(ctx context.Context, ownerID kernel.UUID) ([]*pickup.Pickup, error) {
	if err := ownerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []PickupDTO
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&dtos, "owner_id = ?", ownerID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllByAgent retrieves all requests assigned to the given agent.
func (r *GormPickupRepository) GetAllByAgent(ctx context.Context, agentID kernel.UUID) ([]*pickup.Pickup, error) {
	if err := agentID.Validate(); err != nil {
		return nil, err
	}

	var dtos []PickupDTO
	err := r.db.WithContext(ctx).
		Order("updated_at DESC").
		Find(&dtos, "agent_id = ?", agentID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllOverduePending retrieves all pending requests scheduled before the
// given day.
func (r *GormPickupRepository) GetAllOverduePending(ctx context.Context, before time.Time) ([]*pickup.Pickup, error) {
	y, m, d := before.UTC().Date()
	startOfDay := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	var dtos []PickupDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "status = ? AND scheduled_date < ?", pickup.Pending.String(), startOfDay).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []PickupDTO) ([]*pickup.Pickup, error) {
	pickups := make([]*pickup.Pickup, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		pickups = append(pickups, p)
	}
	return pickups, nil
}
