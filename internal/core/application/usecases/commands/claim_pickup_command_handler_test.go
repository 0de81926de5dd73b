package commands_test

import (
	"testing"

	"ewaste/internal/core/application/usecases/commands"
	"ewaste/internal/core/domain/model/account"
	"ewaste/internal/core/domain/model/kernel"
	"ewaste/internal/core/domain/model/pickup"
	"ewaste/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestClaimPickupCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	agentID := kernel.NewUUID()
	aggregate := newPendingPickup(t, kernel.NewUUID())
	cmd, err := commands.NewClaimPickupCommand(aggregate.ID(), mustPrincipal(t, agentID, account.Agent))
	require.NoError(t, err)

	repo := new(MockPickupRepository)
	uow := new(MockPickupUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PickupRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate, pickup.Pending).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPickupUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewClaimPickupCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, pickup.Assigned, aggregate.Status())
	require.True(t, aggregate.Agent().IsEqual(agentID))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestClaimPickupCommandHandler_Handle_RequesterForbidden(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewClaimPickupCommand(
		kernel.NewUUID(),
		mustPrincipal(t, kernel.NewUUID(), account.Requester),
	)
	require.NoError(t, err)

	factory := new(MockPickupUoWFactory)
	h := commands.NewClaimPickupCommandHandler(factory)

	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrAccessForbidden)
	factory.AssertNotCalled(t, "Create")
}

func TestClaimPickupCommandHandler_Handle_AlreadyAssigned(t *testing.T) {
	ctx := t.Context()
	aggregate := newPendingPickup(t, kernel.NewUUID())
	require.NoError(t, aggregate.Claim(kernel.NewUUID(), aggregate.CreatedAt()))

	cmd, err := commands.NewClaimPickupCommand(aggregate.ID(), mustPrincipal(t, kernel.NewUUID(), account.Agent))
	require.NoError(t, err)

	repo := new(MockPickupRepository)
	uow := new(MockPickupUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PickupRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPickupUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewClaimPickupCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, pickup.ErrIllegalTransition)
	repo.AssertNotCalled(t, "Update")
	uow.AssertNotCalled(t, "Commit")
}

func TestClaimPickupCommandHandler_Handle_LostRace(t *testing.T) {
	ctx := t.Context()
	aggregate := newPendingPickup(t, kernel.NewUUID())
	cmd, err := commands.NewClaimPickupCommand(aggregate.ID(), mustPrincipal(t, kernel.NewUUID(), account.Agent))
	require.NoError(t, err)

	repo := new(MockPickupRepository)
	uow := new(MockPickupUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PickupRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate, pickup.Pending).
			Return(errs.NewConcurrentModificationError("pickupId", aggregate.ID())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPickupUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewClaimPickupCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConcurrentModification)
	uow.AssertNotCalled(t, "Commit")
}

func TestClaimPickupCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	pickupID := kernel.NewUUID()
	cmd, err := commands.NewClaimPickupCommand(pickupID, mustPrincipal(t, kernel.NewUUID(), account.Agent))
	require.NoError(t, err)

	repo := new(MockPickupRepository)
	uow := new(MockPickupUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PickupRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, pickupID).
			Return(nil, errs.NewObjectNotFoundError("pickupId", pickupID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPickupUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewClaimPickupCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestClaimPickupCommandHandler_Handle_NotConstructed(t *testing.T) {
	var cmd commands.ClaimPickupCommand

	h := commands.NewClaimPickupCommandHandler(new(MockPickupUoWFactory))
	err := h.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, commands.ErrClaimPickupCommandIsNotConstructed)
}

func TestNewClaimPickupCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewClaimPickupCommand(kernel.UUID{}, account.Principal{})
	require.Error(t, err)

	_, err = commands.NewClaimPickupCommand(kernel.NewUUID(), account.Principal{})
	require.ErrorIs(t, err, account.ErrPrincipalIsNotConstructed)
}
