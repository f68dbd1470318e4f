package router

import (
	"net/http"
	"time"

	"github.com/larrykatula12/restaurante/internal/config"
	"github.com/larrykatula12/restaurante/internal/handler"
	"github.com/larrykatula12/restaurante/internal/middleware"
	"github.com/larrykatula12/restaurante/internal/repository"
	"github.com/larrykatula12/restaurante/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

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
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	mesaRepo := repository.NewMesaRepository(db)
	pedidoRepo := repository.NewPedidoRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	usuarioSvc := service.NewUsuarioService(usuarioRepo)
	productoSvc := service.NewProductoService(productoRepo, rdb)
	mesaSvc := service.NewMesaService(mesaRepo)
	pedidoSvc := service.NewPedidoService(pedidoRepo, productoRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(usuarioSvc)
	productosH := handler.NewProductosHandler(productoSvc)
	mesasH := handler.NewMesasHandler(mesaSvc)
	pedidosH := handler.NewPedidosHandler(pedidoSvc, cfg.PDFStoragePath)
	reportesH := handler.NewReportesHandler(pedidoRepo)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Bienvenido a la API del Restaurante"})
	})
	r.GET("/health", handler.Health(db, rdb))

	r.POST("/auth/login", middleware.LoginRateLimiter(), authH.Login)

	// Protected routes — JWT resolves the caller to an active account
	jwtMW := middleware.JWTAuth(cfg.JWTSecret, usuarioRepo)
	adminMW := middleware.RequireAdmin()

	usuarios := r.Group("/usuarios", jwtMW)
	{
		usuarios.GET("", adminMW, usuariosH.Listar)
		usuarios.POST("", adminMW, usuariosH.Crear)
		usuarios.DELETE("/:id", adminMW, usuariosH.Eliminar)
		// self-or-admin checks live in the service
		usuarios.GET("/:id", usuariosH.ObtenerPorID)
		usuarios.PUT("/:id", usuariosH.Actualizar)
	}

	productos := r.Group("/productos", jwtMW)
	{
		productos.GET("", productosH.Listar)
		productos.GET("/:id", productosH.ObtenerPorID)
		productos.POST("", adminMW, productosH.Crear)
		productos.PUT("/:id", adminMW, productosH.Actualizar)
		productos.DELETE("/:id", adminMW, productosH.Eliminar)
	}

	mesas := r.Group("/mesas", jwtMW)
	{
		mesas.GET("", mesasH.Listar)
		mesas.GET("/:id", mesasH.ObtenerPorID)
		mesas.POST("", adminMW, mesasH.Crear)
		mesas.PUT("/:id", adminMW, mesasH.Actualizar)
	}

	pedidos := r.Group("/pedidos", jwtMW)
	{
		pedidos.POST("", pedidosH.Crear)
		pedidos.GET("", pedidosH.Listar)
		pedidos.GET("/:id", pedidosH.ObtenerPorID)
		pedidos.PUT("/:id", pedidosH.Actualizar)
		pedidos.PUT("/:id/cerrar", pedidosH.Cerrar)
		pedidos.POST("/:id/pagos", pedidosH.AgregarPago)
		pedidos.GET("/:id/recibo", pedidosH.Recibo)
	}

	reportes := r.Group("/reportes", jwtMW, adminMW)
	{
		reportes.GET("/pedidos", reportesH.Pedidos)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
