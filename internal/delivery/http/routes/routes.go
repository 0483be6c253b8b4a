package routes

import (
	"talent-match/internal/delivery/http/handler"
	"talent-match/internal/usecase"
	"talent-match/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Usecases struct {
	Catalog        usecase.CatalogUsecase
	Matching       usecase.MatchingUsecase
	Analysis       usecase.AnalysisUsecase
	Team           usecase.TeamUsecase
	Validation     usecase.ValidationUsecase
	Recommendation usecase.RecommendationUsecase
}

type routeRegistrar interface {
	RegisterRoutes(r fiber.Router)
}

type Registry struct {
	health   *handler.HealthHandler
	handlers []routeRegistrar
	ws       *ws.Handler
}

// NewRegistry builds handlers in registration order. Literal employee routes
// must precede the :id ones.
func NewRegistry(uc Usecases, cache handler.Pinger, wsHandler *ws.Handler) *Registry {
	return &Registry{
		health: handler.NewHealthHandler(cache),
		handlers: []routeRegistrar{
			handler.NewEmployeeHandler(uc.Catalog),
			handler.NewTaskHandler(uc.Catalog, uc.Analysis),
			handler.NewMatchHandler(uc.Matching),
			handler.NewTeamHandler(uc.Team),
			handler.NewAssessmentHandler(uc.Validation),
			handler.NewChatHandler(uc.Recommendation),
		},
		ws: wsHandler,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	v1 := app.Group("/api").Group("/v1")
	r.health.RegisterRoutes(v1)
	for _, h := range r.handlers {
		h.RegisterRoutes(v1)
	}
	if r.ws != nil {
		r.ws.RegisterRoutes(v1)
	}
}
