package commands_test

import (
	"context"
	"errors"
	"time"

	"ewaste/internal/core/application/usecases/commands"
	"ewaste/internal/core/domain/model/account"
	"ewaste/internal/core/domain/model/agent"
	"ewaste/internal/core/domain/model/kernel"
	"ewaste/internal/core/domain/model/pickup"
	"ewaste/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockPickupRepository struct{ mock.Mock }

func (m *MockPickupRepository) Add(ctx context.Context, p *pickup.Pickup) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPickupRepository) Update(ctx context.Context, p *pickup.Pickup, expected pickup.Status) error {
	args := m.Called(ctx, p, expected)
	return args.Error(0)
}

func (m *MockPickupRepository) Get(ctx context.Context, id kernel.UUID) (*pickup.Pickup, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pickup.Pickup), args.Error(1)
}

func (m *MockPickupRepository) GetAllPending(_ context.Context) ([]*pickup.Pickup, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockPickupRepository) GetAllByOwner(_ context.Context, _ kernel.UUID) ([]*pickup.Pickup, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockPickupRepository) GetAllByAgent(_ context.Context, _ kernel.UUID) ([]*pickup.Pickup, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockPickupRepository) GetAllOverduePending(ctx context.Context, before time.Time) ([]*pickup.Pickup, error) {
	args := m.Called(ctx, before)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*pickup.Pickup), args.Error(1)
}

type MockPickupUoW struct{ mock.Mock }

func (m *MockPickupUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPickupUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPickupUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPickupUoW) PickupRepository() ports.PickupRepository {
	args := m.Called()
	return args.Get(0).(ports.PickupRepository)
}

type MockPickupUoWFactory struct{ mock.Mock }

func (m *MockPickupUoWFactory) Create() commands.PickupUoW {
	args := m.Called()
	return args.Get(0).(commands.PickupUoW)
}

type MockAccountRepository struct{ mock.Mock }

func (m *MockAccountRepository) Add(ctx context.Context, a *account.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAccountRepository) Update(_ context.Context, _ *account.Account) error { return nil }

func (m *MockAccountRepository) Get(_ context.Context, _ kernel.UUID) (*account.Account, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockAccountRepository) GetByEmail(_ context.Context, _ string) (*account.Account, error) {
	return nil, errors.New("not implemented in mock")
}

type MockAccountUoW struct{ mock.Mock }

func (m *MockAccountUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAccountUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAccountUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAccountUoW) AccountRepository() ports.AccountRepository {
	args := m.Called()
	return args.Get(0).(ports.AccountRepository)
}

type MockAccountUoWFactory struct{ mock.Mock }

func (m *MockAccountUoWFactory) Create() commands.AccountUoW {
	args := m.Called()
	return args.Get(0).(commands.AccountUoW)
}

type MockAgentProfileRepository struct{ mock.Mock }

func (m *MockAgentProfileRepository) Add(ctx context.Context, p *agent.Profile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockAgentProfileRepository) Update(ctx context.Context, p *agent.Profile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockAgentProfileRepository) Get(ctx context.Context, accountID kernel.UUID) (*agent.Profile, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*agent.Profile), args.Error(1)
}

func (m *MockAgentProfileRepository) GetAllVerified(_ context.Context) ([]*agent.Profile, error) {
	return nil, errors.New("not implemented in mock")
}

type MockAgentProfileUoW struct{ mock.Mock }

func (m *MockAgentProfileUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAgentProfileUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAgentProfileUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAgentProfileUoW) AgentProfileRepository() ports.AgentProfileRepository {
	args := m.Called()
	return args.Get(0).(ports.AgentProfileRepository)
}

type MockAgentProfileUoWFactory struct{ mock.Mock }

func (m *MockAgentProfileUoWFactory) Create() commands.AgentProfileUoW {
	args := m.Called()
	return args.Get(0).(commands.AgentProfileUoW)
}

type MockPasswordHasher struct{ mock.Mock }

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Compare(hash, password string) error {
	args := m.Called(hash, password)
	return args.Error(0)
}
