// Package pickuprepo provides data transfer objects and mapping functions
// for pickup request persistence. This package implements the repository
// pattern for the pickup aggregate, handling the conversion between domain
// entities and database representations.
package pickuprepo

import (
	"time"

	"ewaste/internal/core/domain/model/kernel"
	"ewaste/internal/core/domain/model/pickup"

	"github.com/google/uuid"
)

// PickupDTO represents the database structure for persisting pickup
// aggregates. The status is stored as its lowercase string so conditional
// writes and read queries can filter on it directly; items are stored as a
// jsonb document since they are only ever read and written through the
// aggregate.
type PickupDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OwnerID         uuid.UUID  `gorm:"type:uuid;index"`
	AgentID         *uuid.UUID `gorm:"type:uuid;index"`
	Status          string     `gorm:"type:varchar(16);index"`
	Items           []ItemDTO  `gorm:"serializer:json;type:jsonb"`
	ScheduledDate   time.Time  `gorm:"type:date;index"`
	ScheduledTime   string
	Address         AddressDTO `gorm:"embedded"`
	ClosingNote     string
	FeedbackRating  *int
	FeedbackComment string
	CreatedAt       time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime:false"`
}

// TableName specifies the database table name for pickup entities.
func (PickupDTO) TableName() string {
	return "pickups"
}

// ItemDTO is one e-waste line inside the jsonb items document. The JSON
// keys match the read-model and HTTP payloads.
type ItemDTO struct {
	Category    string `json:"category"`
	Quantity    int    `json:"quantity"`
	Description string `json:"description"`
}

// AddressDTO represents the embedded collection address columns.
type AddressDTO struct {
	Street  string
	City    string
	State   string
	ZipCode string
	Country string
}

// fromDomain converts a pickup domain aggregate to its database
// representation.
func fromDomain(aggregate *pickup.Pickup) PickupDTO {
	var agentID *uuid.UUID
	if id := aggregate.Agent(); id != nil {
		raw := id.Bytes()
		agentID = &raw
	}

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			Category:    item.Category().String(),
			Quantity:    item.Quantity(),
			Description: item.Description(),
		})
	}

	var feedbackRating *int
	var feedbackComment string
	if feedback := aggregate.Feedback(); feedback != nil {
		rating := feedback.Rating()
		feedbackRating = &rating
		feedbackComment = feedback.Comment()
	}

	return PickupDTO{
		ID:            aggregate.ID().Bytes(),
		OwnerID:       aggregate.OwnerID().Bytes(),
		AgentID:       agentID,
		Status:        aggregate.Status().String(),
		Items:         items,
		ScheduledDate: aggregate.Schedule().Date(),
		ScheduledTime: aggregate.Schedule().TimeOfDay(),
		Address: AddressDTO{
			Street:  aggregate.Address().Street(),
			City:    aggregate.Address().City(),
			State:   aggregate.Address().State(),
			ZipCode: aggregate.Address().ZipCode(),
			Country: aggregate.Address().Country(),
		},
		ClosingNote:     aggregate.ClosingNote(),
		FeedbackRating:  feedbackRating,
		FeedbackComment: feedbackComment,
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a pickup domain aggregate using
// RestorePickup, which re-checks status and assignment consistency.
func toDomain(dto PickupDTO) (*pickup.Pickup, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	var agentID *kernel.UUID
	if dto.AgentID != nil {
		aID, agentErr := kernel.UUIDFromBytes((*dto.AgentID)[:])
		if agentErr != nil {
			return nil, agentErr
		}
		agentID = &aID
	}

	status, err := pickup.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]pickup.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		category, catErr := pickup.CategoryFromString(itemDTO.Category)
		if catErr != nil {
			return nil, catErr
		}
		item, itemErr := pickup.NewItem(category, itemDTO.Quantity, itemDTO.Description)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	schedule, err := pickup.NewSchedule(dto.ScheduledDate, dto.ScheduledTime)
	if err != nil {
		return nil, err
	}

	address, err := pickup.NewAddress(
		dto.Address.Street,
		dto.Address.City,
		dto.Address.State,
		dto.Address.ZipCode,
		dto.Address.Country,
	)
	if err != nil {
		return nil, err
	}

	var feedback *pickup.Feedback
	if dto.FeedbackRating != nil {
		f, feedbackErr := pickup.NewFeedback(*dto.FeedbackRating, dto.FeedbackComment)
		if feedbackErr != nil {
			return nil, feedbackErr
		}
		feedback = &f
	}

	return pickup.RestorePickup(
		id,
		ownerID,
		agentID,
		items,
		status,
		schedule,
		address,
		dto.ClosingNote,
		feedback,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
