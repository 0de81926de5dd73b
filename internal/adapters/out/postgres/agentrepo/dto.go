// Package agentrepo provides data transfer objects and mapping functions
// for agent business profile persistence. The offered services and accepted
// category lists are stored as postgres text arrays through pq.
package agentrepo

import (
	"time"

	"ewaste/internal/core/domain/model/agent"
	"ewaste/internal/core/domain/model/kernel"
	"ewaste/internal/core/domain/model/pickup"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// AgentProfileDTO represents the database structure for persisting agent
// profiles. Keyed by the owning account, one row per agent.
type AgentProfileDTO struct {
	AccountID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	BusinessName       string
	Services           pq.StringArray `gorm:"type:text[]"`
	AcceptedCategories pq.StringArray `gorm:"type:text[]"`
	Verified           bool           `gorm:"index"`
	CreatedAt          time.Time      `gorm:"autoCreateTime:false"`
	UpdatedAt          time.Time      `gorm:"autoUpdateTime:false"`
}

// TableName specifies the database table name for agent profile entities.
func (AgentProfileDTO) TableName() string {
	return "agent_profiles"
}

// fromDomain converts a profile domain aggregate to its database
// representation.
func fromDomain(aggregate *agent.Profile) AgentProfileDTO {
	services := make(pq.StringArray, 0, len(aggregate.Services()))
	for _, s := range aggregate.Services() {
		services = append(services, s.String())
	}

	accepted := make(pq.StringArray, 0, len(aggregate.AcceptedCategories()))
	for _, c := range aggregate.AcceptedCategories() {
		accepted = append(accepted, c.String())
	}

	return AgentProfileDTO{
		AccountID:          aggregate.AccountID().Bytes(),
		BusinessName:       aggregate.BusinessName(),
		Services:           services,
		AcceptedCategories: accepted,
		Verified:           aggregate.IsVerified(),
		CreatedAt:          aggregate.CreatedAt(),
		UpdatedAt:          aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a profile domain aggregate.
func toDomain(dto AgentProfileDTO) (*agent.Profile, error) {
	accountID, err := kernel.UUIDFromBytes(dto.AccountID[:])
	if err != nil {
		return nil, err
	}

	services := make([]agent.Service, 0, len(dto.Services))
	for _, s := range dto.Services {
		service, serviceErr := agent.ServiceFromString(s)
		if serviceErr != nil {
			return nil, serviceErr
		}
		services = append(services, service)
	}

	accepted := make([]pickup.Category, 0, len(dto.AcceptedCategories))
	for _, c := range dto.AcceptedCategories {
		category, categoryErr := pickup.CategoryFromString(c)
		if categoryErr != nil {
			return nil, categoryErr
		}
		accepted = append(accepted, category)
	}

	return agent.RestoreProfile(
		accountID,
		dto.BusinessName,
		services,
		accepted,
		dto.Verified,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
