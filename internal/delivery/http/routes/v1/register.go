package v1

import (
	"log"

	"github.com/gofiber/fiber/v3"

	"talentmatch/internal/config"
	"talentmatch/internal/database"
	"talentmatch/internal/delivery/http/handler"
	"talentmatch/internal/delivery/http/middleware"
	"talentmatch/internal/domain/matching"
	"talentmatch/internal/infrastructure/cache"
	"talentmatch/internal/infrastructure/persistence/postgres"
	"talentmatch/internal/pkg/jwt"
	"talentmatch/internal/repository"
	"talentmatch/internal/search"
	"talentmatch/internal/taxonomy"
	"talentmatch/internal/usecase"
)

type Deps struct {
	Config  config.Config
	DB      database.DB
	Cache   *cache.Redis
	Logger  *log.Logger
	Catalog *taxonomy.Catalog
	Index   *search.Index
	Engine  *matching.Engine
}

// Register wires every v1 endpoint. Auth and skill routes are public,
// the freelancer directory sits behind JWT, and the import webhook is
// guarded by the internal token instead.
func Register(r fiber.Router, deps Deps) error {
	jwtSvc := jwt.NewHMACService(
		deps.Config.JWT.AccessSecret,
		deps.Config.JWT.RefreshSecret,
		deps.Config.JWT.AccessExpiresIn,
		deps.Config.JWT.RefreshExpiresIn,
	)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	clientRepo, err := postgres.NewClientRepository(deps.DB)
	if err != nil {
		return err
	}
	freelancerRepo := repository.NewPostgresFreelancerRepository(deps.DB)

	authUc := usecase.NewAuthUsecase(clientRepo, jwtSvc)
	listUc := usecase.NewFreelancerListUsecase(freelancerRepo, deps.Engine, deps.Cache, deps.Logger)
	skillUc := usecase.NewSkillUsecase(deps.Catalog, deps.Index, deps.Engine)

	authHandler := handler.NewAuthHandler(authUc)
	authHandler.RegisterRoutes(r.Group("/auth"))

	skillHandler := handler.NewSkillHandler(skillUc)
	skillHandler.RegisterRoutes(r)

	importHandler := handler.NewImportCompletedHandler(deps.Config, deps.Cache, deps.Logger)
	importHandler.RegisterRoutes(r)

	protected := r.Group("", authMw.Middleware())
	freelancerHandler := handler.NewFreelancerHandler(listUc)
	freelancerHandler.RegisterRoutes(protected.Group("/freelancers"))
	authHandler.RegisterProtectedRoutes(protected.Group("/auth"))

	return nil
}
