// Package http exposes the application's use cases over a REST API.
// Handlers translate between JSON contracts and domain commands/queries
// and never contain business rules themselves.
package http

import (
	"net/http"

	"ewaste/internal/core/application/usecases/commands"
	"ewaste/internal/core/application/usecases/queries"
	"ewaste/internal/core/domain/model/account"
	"ewaste/internal/core/domain/model/kernel"
	"ewaste/internal/core/ports"
	"ewaste/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerAccountHandler    commands.RegisterAccountCommandHandler
	createPickupHandler       commands.CreatePickupCommandHandler
	claimPickupHandler        commands.ClaimPickupCommandHandler
	startPickupHandler        commands.StartPickupCommandHandler
	completePickupHandler     commands.CompletePickupCommandHandler
	cancelPickupHandler       commands.CancelPickupCommandHandler
	submitFeedbackHandler     commands.SubmitFeedbackCommandHandler
	upsertAgentProfileHandler commands.UpsertAgentProfileCommandHandler
	verifyAgentHandler        commands.VerifyAgentCommandHandler

	// Query handlers
	loginHandler               queries.LoginQueryHandler
	getAccountHandler          queries.GetAccountQueryHandler
	getPickupHandler           queries.GetPickupQueryHandler
	getMyPickupsHandler        queries.GetMyPickupsQueryHandler
	getAvailablePickupsHandler queries.GetAvailablePickupsQueryHandler
	getAssignedPickupsHandler  queries.GetAssignedPickupsQueryHandler
	getVerifiedAgentsHandler   queries.GetVerifiedAgentsQueryHandler
	getAgentProfileHandler     queries.GetAgentProfileQueryHandler
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	registerAccountHandler commands.RegisterAccountCommandHandler,
	createPickupHandler commands.CreatePickupCommandHandler,
	claimPickupHandler commands.ClaimPickupCommandHandler,
	startPickupHandler commands.StartPickupCommandHandler,
	completePickupHandler commands.CompletePickupCommandHandler,
	cancelPickupHandler commands.CancelPickupCommandHandler,
	submitFeedbackHandler commands.SubmitFeedbackCommandHandler,
	upsertAgentProfileHandler commands.UpsertAgentProfileCommandHandler,
	verifyAgentHandler commands.VerifyAgentCommandHandler,
	loginHandler queries.LoginQueryHandler,
	getAccountHandler queries.GetAccountQueryHandler,
	getPickupHandler queries.GetPickupQueryHandler,
	getMyPickupsHandler queries.GetMyPickupsQueryHandler,
	getAvailablePickupsHandler queries.GetAvailablePickupsQueryHandler,
	getAssignedPickupsHandler queries.GetAssignedPickupsQueryHandler,
	getVerifiedAgentsHandler queries.GetVerifiedAgentsQueryHandler,
	getAgentProfileHandler queries.GetAgentProfileQueryHandler,
) *Server {
	return &Server{
		registerAccountHandler:     registerAccountHandler,
		createPickupHandler:        createPickupHandler,
		claimPickupHandler:         claimPickupHandler,
		startPickupHandler:         startPickupHandler,
		completePickupHandler:      completePickupHandler,
		cancelPickupHandler:        cancelPickupHandler,
		submitFeedbackHandler:      submitFeedbackHandler,
		upsertAgentProfileHandler:  upsertAgentProfileHandler,
		verifyAgentHandler:         verifyAgentHandler,
		loginHandler:               loginHandler,
		getAccountHandler:          getAccountHandler,
		getPickupHandler:           getPickupHandler,
		getMyPickupsHandler:        getMyPickupsHandler,
		getAvailablePickupsHandler: getAvailablePickupsHandler,
		getAssignedPickupsHandler:  getAssignedPickupsHandler,
		getVerifiedAgentsHandler:   getVerifiedAgentsHandler,
		getAgentProfileHandler:     getAgentProfileHandler,
	}
}

// RegisterRoutes mounts the API under /api/v1. Registration, login, and the
// agent directory are public; everything else requires a bearer credential.
func (s *Server) RegisterRoutes(e *echo.Echo, authenticator ports.Authenticator) {
	api := e.Group("/api/v1")

	api.POST("/auth/register", s.Register)
	api.POST("/auth/login", s.Login)
	api.GET("/agents", s.GetVerifiedAgents)

	authed := api.Group("", AuthMiddleware(authenticator))

	authed.GET("/auth/me", s.GetCurrentAccount)

	authed.POST("/pickups", s.CreatePickup)
	authed.GET("/pickups", s.GetMyPickups)
	authed.GET("/pickups/available", s.GetAvailablePickups)
	authed.GET("/pickups/assigned", s.GetAssignedPickups)
	authed.GET("/pickups/:id", s.GetPickup)
	authed.POST("/pickups/:id/claim", s.ClaimPickup)
	authed.POST("/pickups/:id/start", s.StartPickup)
	authed.POST("/pickups/:id/complete", s.CompletePickup)
	authed.POST("/pickups/:id/cancel", s.CancelPickup)
	authed.POST("/pickups/:id/feedback", s.SubmitFeedback)

	authed.GET("/agents/me", s.GetMyAgentProfile)
	authed.PUT("/agents/me", s.UpsertMyAgentProfile)
	authed.POST("/agents/:id/verify", s.VerifyAgent)
}

// pathID parses the :id route parameter. A malformed id is a client error,
// not a lookup miss.
func pathID(ctx echo.Context) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return id, nil
}

// Register handles POST /api/v1/auth/register.
func (s *Server) Register(ctx echo.Context) error {
	var req registerAccountRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	role, err := account.RoleFromString(req.Role)
	if err != nil {
		return respondError(ctx, err)
	}

	accountID := kernel.NewUUID()
	cmd, err := commands.NewRegisterAccountCommand(
		accountID, req.Name, req.Email, req.Password, role, req.Phone,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.registerAccountHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: accountID.String()})
}

// Login handles POST /api/v1/auth/login.
func (s *Server) Login(ctx echo.Context) error {
	var req loginRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	query, err := queries.NewLoginQuery(req.Email, req.Password)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.loginHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, loginResponse{
		Token:   result.Token,
		Account: toAccountResponse(result.Account),
	})
}

// GetCurrentAccount handles GET /api/v1/auth/me.
func (s *Server) GetCurrentAccount(ctx echo.Context) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetAccountQuery(principal.ID(), principal)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.getAccountHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAccountResponse(result))
}

// CreatePickup handles POST /api/v1/pickups.
func (s *Server) CreatePickup(ctx echo.Context) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req createPickupRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	items, err := req.toItems()
	if err != nil {
		return respondError(ctx, err)
	}
	schedule, err := req.toSchedule()
	if err != nil {
		return respondError(ctx, err)
	}
	address, err := req.toAddress()
	if err != nil {
		return respondError(ctx, err)
	}

	pickupID := kernel.NewUUID()
	cmd, err := commands.NewCreatePickupCommand(pickupID, principal, items, schedule, address)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createPickupHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: pickupID.String()})
}

// GetMyPickups handles GET /api/v1/pickups.
func (s *Server) GetMyPickups(ctx echo.Context) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetMyPickupsQuery(principal)
	if err != nil {
		return respondError(ctx, err)
	}

	pickups, err := s.getMyPickupsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toPickupResponses(pickups))
}

// GetAvailablePickups handles GET /api/v1/pickups/available.
func (s *Server) GetAvailablePickups(ctx echo.Context) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetAvailablePickupsQuery(principal)
	if err != nil {
		return respondError(ctx, err)
	}

	pickups, err := s.getAvailablePickupsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toPickupResponses(pickups))
}

// GetAssignedPickups handles GET /api/v1/pickups/assigned.
func (s *Server) GetAssignedPickups(ctx echo.Context) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetAssignedPickupsQuery(principal)
	if err != nil {
		return respondError(ctx, err)
	}

	pickups, err := s.getAssignedPickupsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toPickupResponses(pickups))
}

// GetPickup handles GET /api/v1/pickups/:id.
func (s *Server) GetPickup(ctx echo.Context) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	pickupID, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetPickupQuery(pickupID, principal)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.getPickupHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toPickupResponse(result))
}

// ClaimPickup handles POST /api/v1/pickups/:id/claim.
func (s *Server) ClaimPickup(ctx echo.Context) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	pickupID, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewClaimPickupCommand(pickupID, principal)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.claimPickupHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartPickup handles POST /api/v1/pickups/:id/start.
func (s *Server) StartPickup(ctx echo.Context) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	pickupID, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewStartPickupCommand(pickupID, principal)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.startPickupHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompletePickup handles POST /api/v1/pickups/:id/complete.
func (s *Server) CompletePickup(ctx echo.Context) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	pickupID, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req completePickupRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewCompletePickupCommand(pickupID, principal, req.ClosingNote)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.completePickupHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelPickup handles POST /api/v1/pickups/:id/cancel.
func (s *Server) CancelPickup(ctx echo.Context) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	pickupID, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCancelPickupCommand(pickupID, principal)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.cancelPickupHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SubmitFeedback handles POST /api/v1/pickups/:id/feedback.
func (s *Server) SubmitFeedback(ctx echo.Context) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	pickupID, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req submitFeedbackRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewSubmitFeedbackCommand(pickupID, principal, req.Rating, req.Comment)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.submitFeedbackHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetVerifiedAgents handles GET /api/v1/agents.
func (s *Server) GetVerifiedAgents(ctx echo.Context) error {
	query := queries.NewGetVerifiedAgentsQuery()

	profiles, err := s.getVerifiedAgentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]agentProfileResponse, len(profiles))
	for i, profile := range profiles {
		response[i] = toAgentProfileResponse(profile)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetMyAgentProfile handles GET /api/v1/agents/me.
func (s *Server) GetMyAgentProfile(ctx echo.Context) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetAgentProfileQuery(principal.ID(), principal)
	if err != nil {
		return respondError(ctx, err)
	}

	profile, err := s.getAgentProfileHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAgentProfileResponse(profile))
}

// UpsertMyAgentProfile handles PUT /api/v1/agents/me.
func (s *Server) UpsertMyAgentProfile(ctx echo.Context) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req upsertAgentProfileRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	services, err := req.toServices()
	if err != nil {
		return respondError(ctx, err)
	}
	categories, err := req.toCategories()
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpsertAgentProfileCommand(principal, req.BusinessName, services, categories)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.upsertAgentProfileHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// VerifyAgent handles POST /api/v1/agents/:id/verify.
func (s *Server) VerifyAgent(ctx echo.Context) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	agentAccountID, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewVerifyAgentCommand(agentAccountID, principal)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.verifyAgentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
