package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lardocepet-api/internal/handler/api"
	"lardocepet-api/internal/handler/middleware"
	"lardocepet-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	bookingHandler *api.BookingHandler,
	reviewHandler *api.ReviewHandler,
	hostHandler *api.HostHandler,
	petHandler *api.PetHandler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, bookingHandler, reviewHandler, hostHandler, petHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	bookingHandler *api.BookingHandler,
	reviewHandler *api.ReviewHandler,
	hostHandler *api.HostHandler,
	petHandler *api.PetHandler,
) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		reservas := apiGroup.Group("/reservas")
		addRoutes(reservas, []route{
			{Method: http.MethodPost, Path: "", Handler: bookingHandler.Create},
			{Method: http.MethodGet, Path: "", Handler: bookingHandler.List},
			{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.Get},
			{Method: http.MethodGet, Path: "/tutor/:id_tutor", Handler: bookingHandler.ListByTutor},
			{Method: http.MethodGet, Path: "/anfitriao/:id_anfitriao", Handler: bookingHandler.ListByHost},
			{Method: http.MethodGet, Path: "/status/:status", Handler: bookingHandler.ListByStatus},
			{Method: http.MethodPatch, Path: "/:id", Handler: bookingHandler.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: bookingHandler.Delete},
		})

		avaliacoes := apiGroup.Group("/avaliacoes")
		addRoutes(avaliacoes, []route{
			{Method: http.MethodPost, Path: "", Handler: reviewHandler.Create},
			{Method: http.MethodGet, Path: "", Handler: reviewHandler.List},
			{Method: http.MethodGet, Path: "/:id", Handler: reviewHandler.Get},
			{Method: http.MethodGet, Path: "/reserva/:id_reserva", Handler: reviewHandler.ListByBooking},
			{Method: http.MethodGet, Path: "/avaliador/:id_avaliador", Handler: reviewHandler.ListByRater},
			{Method: http.MethodGet, Path: "/avaliado/:id_avaliado", Handler: reviewHandler.ListByRated},
			{Method: http.MethodGet, Path: "/media/:id_usuario", Handler: reviewHandler.RatingSummary},
			{Method: http.MethodDelete, Path: "/:id", Handler: reviewHandler.Delete},
		})

		anfitrioes := apiGroup.Group("/anfitrioes")
		addRoutes(anfitrioes, []route{
			{Method: http.MethodPost, Path: "", Handler: hostHandler.Create},
			{Method: http.MethodGet, Path: "", Handler: hostHandler.List},
			{Method: http.MethodGet, Path: "/:id", Handler: hostHandler.Get},
			{Method: http.MethodPatch, Path: "/:id", Handler: hostHandler.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: hostHandler.Delete},
		})

		pets := apiGroup.Group("/pets")
		addRoutes(pets, []route{
			{Method: http.MethodPost, Path: "", Handler: petHandler.Create},
			{Method: http.MethodGet, Path: "", Handler: petHandler.List},
			{Method: http.MethodGet, Path: "/:id", Handler: petHandler.Get},
			{Method: http.MethodGet, Path: "/tutor/:id_tutor", Handler: petHandler.ListByTutor},
			{Method: http.MethodPatch, Path: "/:id", Handler: petHandler.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: petHandler.Delete},
		})
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodPatch:
			g.PATCH(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
