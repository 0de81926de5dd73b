package commands_test

import (
	"testing"
	"time"

	"ewaste/internal/core/application/usecases/commands"
	"ewaste/internal/core/domain/model/account"
	"ewaste/internal/core/domain/model/agent"
	"ewaste/internal/core/domain/model/kernel"
	"ewaste/internal/core/domain/model/pickup"
	"ewaste/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUpsertProfileCommand(t *testing.T, principal account.Principal) commands.UpsertAgentProfileCommand {
	t.Helper()
	cmd, err := commands.NewUpsertAgentProfileCommand(
		principal, "GreenCycle Ltd",
		[]agent.Service{agent.Pickup},
		[]pickup.Category{pickup.Computer},
	)
	require.NoError(t, err)
	return cmd
}

func TestUpsertAgentProfileCommandHandler_Handle_CreatesProfile(t *testing.T) {
	ctx := t.Context()
	agentID := kernel.NewUUID()
	cmd := newUpsertProfileCommand(t, mustPrincipal(t, agentID, account.Agent))

	repo := new(MockAgentProfileRepository)
	uow := new(MockAgentProfileUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AgentProfileRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, agentID).
			Return(nil, errs.NewObjectNotFoundError("accountId", agentID)).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*agent.Profile")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAgentProfileUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpsertAgentProfileCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	added := repo.Calls[1].Arguments.Get(1).(*agent.Profile)
	require.False(t, added.IsVerified())
	require.True(t, added.AccountID().IsEqual(agentID))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpsertAgentProfileCommandHandler_Handle_UpdatesExisting(t *testing.T) {
	ctx := t.Context()
	agentID := kernel.NewUUID()
	cmd := newUpsertProfileCommand(t, mustPrincipal(t, agentID, account.Agent))

	existing, err := agent.NewProfile(
		agentID, "Old Name",
		[]agent.Service{agent.DropOff},
		[]pickup.Category{pickup.Printer},
		time.Now().UTC(),
	)
	require.NoError(t, err)
	existing.Verify(time.Now().UTC())

	repo := new(MockAgentProfileRepository)
	uow := new(MockAgentProfileUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AgentProfileRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, agentID).Return(existing, nil).Once(),
		repo.On("Update", mock.Anything, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAgentProfileUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpsertAgentProfileCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, "GreenCycle Ltd", existing.BusinessName())
	require.True(t, existing.IsVerified(), "verification survives edits")
	repo.AssertNotCalled(t, "Add")
}

func TestUpsertAgentProfileCommandHandler_Handle_RequesterForbidden(t *testing.T) {
	cmd := newUpsertProfileCommand(t, mustPrincipal(t, kernel.NewUUID(), account.Requester))

	factory := new(MockAgentProfileUoWFactory)
	h := commands.NewUpsertAgentProfileCommandHandler(factory)

	err := h.Handle(t.Context(), cmd)
	require.ErrorIs(t, err, errs.ErrAccessForbidden)
	factory.AssertNotCalled(t, "Create")
}

func TestVerifyAgentCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	agentID := kernel.NewUUID()

	profile, err := agent.NewProfile(
		agentID, "GreenCycle Ltd",
		[]agent.Service{agent.Pickup},
		[]pickup.Category{pickup.Computer},
		time.Now().UTC(),
	)
	require.NoError(t, err)

	t.Run("admin verifies profile", func(t *testing.T) {
		cmd, cmdErr := commands.NewVerifyAgentCommand(agentID, mustPrincipal(t, kernel.NewUUID(), account.Admin))
		require.NoError(t, cmdErr)

		repo := new(MockAgentProfileRepository)
		uow := new(MockAgentProfileUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("AgentProfileRepository").Return(repo).Once(),
			repo.On("Get", mock.Anything, agentID).Return(profile, nil).Once(),
			repo.On("Update", mock.Anything, profile).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockAgentProfileUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewVerifyAgentCommandHandler(factory)
		require.NoError(t, h.Handle(ctx, cmd))
		require.True(t, profile.IsVerified())
	})

	t.Run("agent cannot verify itself", func(t *testing.T) {
		cmd, cmdErr := commands.NewVerifyAgentCommand(agentID, mustPrincipal(t, agentID, account.Agent))
		require.NoError(t, cmdErr)

		h := commands.NewVerifyAgentCommandHandler(new(MockAgentProfileUoWFactory))
		require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrAccessForbidden)
	})
}
