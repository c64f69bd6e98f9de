package router

import (
	"github.com/gin-gonic/gin"

	"github.com/avolkov/webauth-server/internal/api/http/handler"
	"github.com/avolkov/webauth-server/internal/api/http/httpctx"
	"github.com/avolkov/webauth-server/internal/api/http/middleware"
	"github.com/avolkov/webauth-server/internal/logger"
)

// AuthService bundles the operations the router wires up. It is the
// union of the handler and middleware service contracts.
type AuthService interface {
	handler.AuthService
	handler.UserService
	middleware.TokenService
}

// Router wires handlers and middleware onto a gin engine.
type Router struct {
	authService    AuthService
	db             handler.Pinger
	contextManager *httpctx.Manager
	logger         *logger.Logger
}

// New creates a new Router instance.
func New(
	authService AuthService,
	db handler.Pinger,
	contextManager *httpctx.Manager,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		db:             db,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register builds the gin engine with logging on every route and token
// authentication on the protected ones.
func (r *Router) Register() *gin.Engine {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.authService, r.contextManager, r.logger)

	engine := gin.New()
	engine.Use(gin.Recovery(), logging.Handle)

	authHandler := handler.NewAuth(r.authService, r.logger)
	userHandler := handler.NewUser(r.authService, r.contextManager, r.logger)
	healthHandler := handler.NewHealth(r.db)

	api := engine.Group("/api/user")
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)
	api.GET("", authenticate.Handle, userHandler.Get)

	engine.GET("/healthz", healthHandler.Check)

	return engine
}
