package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"slot-booking/internal/domain/user"
	"slot-booking/internal/handler/api"
	"slot-booking/internal/handler/middleware"
	"slot-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Health      *api.HealthHandler
	Auth        *api.AuthHandler
	Appointment *api.AppointmentHandler
	Service     *api.ServiceHandler
	Admin       *api.AdminHandler
	Schedule    *api.ScheduleHandler
}

type Middlewares struct {
	Auth      *middleware.AuthMiddleware
	RateLimit *middleware.RateLimiter
	Logger    *middleware.Logger
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, mw Middlewares) {
	setupMiddleware(engine, cfg, mw)
	setupRoutes(engine, h, mw)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, mw Middlewares) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(mw.Logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, mw Middlewares) {
	engine.GET("/health", h.Health.Health)
	engine.GET("/ready", h.Health.Ready)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register, Mw: []gin.HandlerFunc{mw.RateLimit.Limit("register")}},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login, Mw: []gin.HandlerFunc{mw.RateLimit.Limit("login")}},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			})

			authRequired := auth.Group("")
			authRequired.Use(mw.Auth.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		users := apiGroup.Group("/users")
		users.Use(mw.Auth.RequireAuth())
		{
			addRoutes(users, []route{
				{Method: http.MethodGet, Path: "/profile", Handler: h.Auth.Me},
				{Method: http.MethodPut, Path: "/profile", Handler: h.Auth.UpdateProfile},
			})
		}

		services := apiGroup.Group("/services")
		{
			addRoutes(services, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Service.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Service.Get},
				{Method: http.MethodGet, Path: "/category/:category", Handler: h.Service.ListByCategory},
			})
		}

		appointments := apiGroup.Group("/appointments")
		appointments.Use(mw.Auth.RequireAuth())
		{
			addRoutes(appointments, []route{
				{Method: http.MethodGet, Path: "/available-slots", Handler: h.Appointment.AvailableSlots},
				{Method: http.MethodGet, Path: "/mine", Handler: h.Appointment.Mine},
				{Method: http.MethodPost, Path: "", Handler: h.Appointment.Create, Mw: []gin.HandlerFunc{mw.RateLimit.Limit("create_appointment")}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Appointment.Get},
				{Method: http.MethodPatch, Path: "/:id/cancel", Handler: h.Appointment.Cancel},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Appointment.Delete},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(mw.Auth.RequireAuth(), mw.Auth.RequireRoleAtLeast(user.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/dashboard", Handler: h.Admin.Dashboard},
				{Method: http.MethodGet, Path: "/calendar", Handler: h.Admin.Calendar},
				{Method: http.MethodGet, Path: "/clients", Handler: h.Admin.Clients},
				{Method: http.MethodGet, Path: "/appointments", Handler: h.Admin.ListAppointments},
				{Method: http.MethodPatch, Path: "/appointments/:id/status", Handler: h.Admin.UpdateStatus},
				{Method: http.MethodPatch, Path: "/appointments/:id/reschedule", Handler: h.Admin.Reschedule},
				{Method: http.MethodGet, Path: "/services", Handler: h.Schedule.ListServices},
				{Method: http.MethodPost, Path: "/services", Handler: h.Schedule.CreateService},
				{Method: http.MethodPut, Path: "/services/:id", Handler: h.Schedule.UpdateService},
				{Method: http.MethodDelete, Path: "/services/:id", Handler: h.Schedule.DeleteService},
				{Method: http.MethodGet, Path: "/time-slots", Handler: h.Schedule.ListSlots},
				{Method: http.MethodPost, Path: "/time-slots", Handler: h.Schedule.CreateSlot},
				{Method: http.MethodPost, Path: "/time-slots/batch", Handler: h.Schedule.CreateSlotsBatch},
				{Method: http.MethodDelete, Path: "/time-slots/:id", Handler: h.Schedule.DeleteSlot},
			})
		}
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
