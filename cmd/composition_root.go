package cmd

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	httpin "ewaste/internal/adapters/in/http"
	"ewaste/internal/adapters/out/postgres"
	"ewaste/internal/adapters/out/secrets"
	"ewaste/internal/adapters/out/token"
	"ewaste/internal/core/application/usecases/commands"
	"ewaste/internal/core/application/usecases/queries"
	"ewaste/internal/core/ports"
	"ewaste/internal/jobs"

	"gorm.io/gorm"
)

const defaultTokenTTL = 24 * time.Hour

type CompositionRoot struct {
	gormDB        *gorm.DB
	uowFactory    postgres.GormUnitOfWorkFactory
	authenticator ports.Authenticator
	hasher        ports.PasswordHasher
	logger        *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	ttl := defaultTokenTTL
	if config.TokenTTL != "" {
		parsed, err := time.ParseDuration(config.TokenTTL)
		if err != nil {
			return CompositionRoot{}, err
		}
		ttl = parsed
	}

	authenticator, err := token.NewJWTAuthenticator(config.JWTSecret, ttl)
	if err != nil {
		return CompositionRoot{}, err
	}

	cost := 0
	if config.BcryptCost != "" {
		if cost, err = strconv.Atoi(config.BcryptCost); err != nil {
			return CompositionRoot{}, err
		}
	}

	return CompositionRoot{
		gormDB:        gormDB,
		uowFactory:    *postgres.NewGormUnitOfWorkFactory(gormDB),
		authenticator: authenticator,
		hasher:        secrets.NewBcryptHasher(cost),
		logger:        slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}, nil
}

func (c *CompositionRoot) Authenticator() ports.Authenticator {
	return c.authenticator
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) CreateRegisterAccountCommandHandler() commands.RegisterAccountCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterAccountCommandHandler(f, c.hasher)
}

func (c *CompositionRoot) CreateCreatePickupCommandHandler() commands.CreatePickupCommandHandler {
	return commands.NewCreatePickupCommandHandler(c.pickupUoWFactory())
}

func (c *CompositionRoot) CreateClaimPickupCommandHandler() commands.ClaimPickupCommandHandler {
	return commands.NewClaimPickupCommandHandler(c.pickupUoWFactory())
}

func (c *CompositionRoot) CreateStartPickupCommandHandler() commands.StartPickupCommandHandler {
	return commands.NewStartPickupCommandHandler(c.pickupUoWFactory())
}

func (c *CompositionRoot) CreateCompletePickupCommandHandler() commands.CompletePickupCommandHandler {
	return commands.NewCompletePickupCommandHandler(c.pickupUoWFactory())
}

func (c *CompositionRoot) CreateCancelPickupCommandHandler() commands.CancelPickupCommandHandler {
	return commands.NewCancelPickupCommandHandler(c.pickupUoWFactory())
}

func (c *CompositionRoot) CreateSubmitFeedbackCommandHandler() commands.SubmitFeedbackCommandHandler {
	return commands.NewSubmitFeedbackCommandHandler(c.pickupUoWFactory())
}

func (c *CompositionRoot) CreateExpireOverduePickupsCommandHandler() commands.ExpireOverduePickupsCommandHandler {
	return commands.NewExpireOverduePickupsCommandHandler(c.pickupUoWFactory())
}

func (c *CompositionRoot) CreateUpsertAgentProfileCommandHandler() commands.UpsertAgentProfileCommandHandler {
	return commands.NewUpsertAgentProfileCommandHandler(c.agentProfileUoWFactory())
}

func (c *CompositionRoot) CreateVerifyAgentCommandHandler() commands.VerifyAgentCommandHandler {
	return commands.NewVerifyAgentCommandHandler(c.agentProfileUoWFactory())
}

func (c *CompositionRoot) CreateLoginQueryHandler() queries.LoginQueryHandler {
	return queries.NewLoginQueryHandler(c.gormDB, c.hasher, c.authenticator)
}

func (c *CompositionRoot) CreateGetAccountQueryHandler() queries.GetAccountQueryHandler {
	return queries.NewGetAccountQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPickupQueryHandler() queries.GetPickupQueryHandler {
	return queries.NewGetPickupQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMyPickupsQueryHandler() queries.GetMyPickupsQueryHandler {
	return queries.NewGetMyPickupsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailablePickupsQueryHandler() queries.GetAvailablePickupsQueryHandler {
	return queries.NewGetAvailablePickupsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAssignedPickupsQueryHandler() queries.GetAssignedPickupsQueryHandler {
	return queries.NewGetAssignedPickupsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetVerifiedAgentsQueryHandler() queries.GetVerifiedAgentsQueryHandler {
	return queries.NewGetVerifiedAgentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAgentProfileQueryHandler() queries.GetAgentProfileQueryHandler {
	return queries.NewGetAgentProfileQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every handler into the REST adapter.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateRegisterAccountCommandHandler(),
		c.CreateCreatePickupCommandHandler(),
		c.CreateClaimPickupCommandHandler(),
		c.CreateStartPickupCommandHandler(),
		c.CreateCompletePickupCommandHandler(),
		c.CreateCancelPickupCommandHandler(),
		c.CreateSubmitFeedbackCommandHandler(),
		c.CreateUpsertAgentProfileCommandHandler(),
		c.CreateVerifyAgentCommandHandler(),
		c.CreateLoginQueryHandler(),
		c.CreateGetAccountQueryHandler(),
		c.CreateGetPickupQueryHandler(),
		c.CreateGetMyPickupsQueryHandler(),
		c.CreateGetAvailablePickupsQueryHandler(),
		c.CreateGetAssignedPickupsQueryHandler(),
		c.CreateGetVerifiedAgentsQueryHandler(),
		c.CreateGetAgentProfileQueryHandler(),
	)
}

// CreateJobManager wires the background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateExpireOverduePickupsCommandHandler(), c.logger)
}

func (c *CompositionRoot) pickupUoWFactory() commands.PickupUoWFactory {
	return FuncPickupUoWFactory(func() commands.PickupUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) agentProfileUoWFactory() commands.AgentProfileUoWFactory {
	return FuncAgentProfileUoWFactory(func() commands.AgentProfileUoW {
		return c.uowFactory.Create()
	})
}

type FuncPickupUoWFactory func() commands.PickupUoW

func (f FuncPickupUoWFactory) Create() commands.PickupUoW {
	return f()
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}

type FuncAgentProfileUoWFactory func() commands.AgentProfileUoW

func (f FuncAgentProfileUoWFactory) Create() commands.AgentProfileUoW {
	return f()
}
