// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"database/sql"
	"encoding/json"
	"time"

	"ewaste/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ItemResponse is one e-waste line in the pickup read model.
type ItemResponse struct {
	Category    string `json:"category"`
	Quantity    int    `json:"quantity"`
	Description string `json:"description,omitempty"`
}

// AddressResponse is the collection location in the pickup read model.
type AddressResponse struct {
	Street  string
	City    string
	State   string
	ZipCode string
	Country string
}

// FeedbackResponse is the owner's rating in the pickup read model.
type FeedbackResponse struct {
	Rating  int
	Comment string
}

// PickupResponse represents a pickup request in the read model.
// AgentID and Feedback are nil until the request is claimed and rated.
type PickupResponse struct {
	ID            kernel.UUID
	OwnerID       kernel.UUID
	AgentID       *kernel.UUID
	Status        string
	Items         []ItemResponse
	ScheduledDate time.Time
	ScheduledTime string
	Address       AddressResponse
	ClosingNote   string
	Feedback      *FeedbackResponse
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// pickupColumns is the select list every pickup query shares. The order must
// match scanPickupRows.
const pickupColumns = `
	id,
	owner_id,
	agent_id,
	status,
	items,
	scheduled_date,
	scheduled_time,
	street,
	city,
	state,
	zip_code,
	country,
	closing_note,
	feedback_rating,
	feedback_comment,
	created_at,
	updated_at
`

// scanPickupRows drains rows produced by a query over pickupColumns into
// read models.
func scanPickupRows(rows *sql.Rows) ([]PickupResponse, error) {
	pickups := make([]PickupResponse, 0)

	for rows.Next() {
		var (
			response        PickupResponse
			id, ownerID     uuid.UUID
			agentID         uuid.NullUUID
			itemsJSON       []byte
			feedbackRating  sql.NullInt64
			feedbackComment sql.NullString
			closingNote     sql.NullString
		)

		err := rows.Scan(
			&id,
			&ownerID,
			&agentID,
			&response.Status,
			&itemsJSON,
			&response.ScheduledDate,
			&response.ScheduledTime,
			&response.Address.Street,
			&response.Address.City,
			&response.Address.State,
			&response.Address.ZipCode,
			&response.Address.Country,
			&closingNote,
			&feedbackRating,
			&feedbackComment,
			&response.CreatedAt,
			&response.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if response.OwnerID, err = kernel.UUIDFromBytes(ownerID[:]); err != nil {
			return nil, err
		}
		if agentID.Valid {
			assigned, idErr := kernel.UUIDFromBytes(agentID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			response.AgentID = &assigned
		}

		if err = json.Unmarshal(itemsJSON, &response.Items); err != nil {
			return nil, err
		}

		response.ClosingNote = closingNote.String
		if feedbackRating.Valid {
			response.Feedback = &FeedbackResponse{
				Rating:  int(feedbackRating.Int64),
				Comment: feedbackComment.String,
			}
		}

		pickups = append(pickups, response)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return pickups, nil
}
