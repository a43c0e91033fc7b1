package router

import (
	"net/http"
	"time"

	"github.com/DoukeUCB/A-Todo-Gas/internal/config"
	"github.com/DoukeUCB/A-Todo-Gas/internal/handler"
	"github.com/DoukeUCB/A-Todo-Gas/internal/middleware"
	"github.com/DoukeUCB/A-Todo-Gas/internal/model"
	"github.com/DoukeUCB/A-Todo-Gas/internal/repository"
	"github.com/DoukeUCB/A-Todo-Gas/internal/service"
	"github.com/DoukeUCB/A-Todo-Gas/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	gasolineraRepo := repository.NewGasolineraRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	surtidorRepo := repository.NewSurtidorRepository(db)
	nivelRepo := repository.NewNivelCombustibleRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	usuarioSvc := service.NewUsuarioService(usuarioRepo, cfg)
	gasolineraSvc := service.NewGasolineraService(gasolineraRepo, rdb)
	ticketSvc := service.NewTicketService(ticketRepo, gasolineraRepo, usuarioRepo, dispatcher, cfg.PDFStoragePath)
	nivelSvc := service.NewNivelService(nivelRepo, surtidorRepo, gasolineraRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	usuariosH := handler.NewUsuariosHandler(usuarioSvc)
	estacionesH := handler.NewEstacionesHandler(gasolineraSvc)
	ticketsH := handler.NewTicketsHandler(ticketSvc)
	nivelesH := handler.NewNivelesHandler(nivelSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"service": "QuickGasoline API", "status": "ok"})
	})

	api := r.Group("/api")

	api.GET("/health", handler.Health(db, rdb))

	users := api.Group("/users")
	{
		users.POST("/register", usuariosH.Registrar)
		users.POST("/login", middleware.LoginRateLimiter(), usuariosH.Login)
		users.GET("/:id", usuariosH.ObtenerPorID)
	}

	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	usersAuth := api.Group("/users", jwtMW)
	{
		usersAuth.PUT("/:id", usuariosH.Actualizar)
		usersAuth.DELETE("/:id", middleware.RequireRole(model.RolGasolinera), usuariosH.Eliminar)
	}

	stations := api.Group("/stations")
	{
		stations.POST("", estacionesH.Crear)
		stations.POST("/register", estacionesH.Registrar)
		stations.GET("", estacionesH.Listar)
		// "available" must be declared before "/:id" so it is not captured
		// as a station id.
		stations.GET("/available", estacionesH.Disponibles)
		stations.GET("/manager/:ci", estacionesH.ObtenerPorManagerCI)
		stations.GET("/:id", estacionesH.ObtenerPorID)
		stations.GET("/:id/dispensers", nivelesH.ListarSurtidores)
	}
	stationsAuth := api.Group("/stations", jwtMW, middleware.RequireRole(model.RolGasolinera))
	{
		stationsAuth.PUT("/:id", estacionesH.Actualizar)
		stationsAuth.DELETE("/:id", estacionesH.Eliminar)
		stationsAuth.POST("/:id/dispensers", nivelesH.CrearSurtidor)
	}

	api.POST("/levels", nivelesH.Registrar)
	dispensers := api.Group("/dispensers")
	{
		dispensers.GET("/:id/levels", nivelesH.Historial)
		dispensers.GET("/:id/levels/latest", nivelesH.UltimoNivel)
	}

	tickets := api.Group("/tickets")
	{
		tickets.POST("", ticketsH.Crear)
		tickets.GET("/user/:ci", ticketsH.ListarPorCI)
		tickets.GET("/station/:id", ticketsH.ListarPorEstacion)
		tickets.GET("/:id", ticketsH.ObtenerPorID)
		tickets.GET("/:id/pdf", ticketsH.ReciboPDF)
	}

	return r
}
