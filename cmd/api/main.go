package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/clairefro/flc-wix/docs"
	"github.com/clairefro/flc-wix/internal/application/auth"
	appdir "github.com/clairefro/flc-wix/internal/application/directory"
	"github.com/clairefro/flc-wix/internal/application/usecase"
	"github.com/clairefro/flc-wix/internal/infrastructure/directoryclient"
	infrapdf "github.com/clairefro/flc-wix/internal/infrastructure/pdf"
	"github.com/clairefro/flc-wix/internal/infrastructure/postgres"
	httpRouter "github.com/clairefro/flc-wix/internal/interfaces/http"
	"github.com/clairefro/flc-wix/internal/interfaces/viewsession"
	"github.com/clairefro/flc-wix/pkg/config"
	"github.com/clairefro/flc-wix/pkg/logger"
)

// @title        FLC Members API
// @version      1.0
// @description  Directorio de practicantes, reportes de certificación y utilidades de miembros.
// @BasePath     /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
// @description                 Bearer <token>
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	practitionerRepo := postgres.NewPractitionerRepository(pool)
	memberRepo := postgres.NewMemberRepository(pool)
	contactRepo := postgres.NewContactRepository(pool)
	progressRepo := postgres.NewProgressEntryRepository(pool)

	directorySvc := appdir.NewService(practitionerRepo)

	// Las páginas del directorio consultan el servicio local salvo que se configure una API remota.
	var query appdir.QueryService = directorySvc
	if cfg.Directory.APIURL != "" {
		query = directoryclient.New(cfg.Directory.APIURL, cfg.Directory.RequestTimeout)
		log.Info().Str("url", cfg.Directory.APIURL).Msg("directorio: servicio de consulta remoto")
	}
	sessions := viewsession.NewStore(query, viewsession.StoreConfig{
		TTL:            cfg.Directory.SessionTTL,
		PageSize:       cfg.Directory.PageSize,
		RequestTimeout: cfg.Directory.RequestTimeout,
	}, log)
	go sessions.RunSweeper(ctx, time.Minute)

	authUC := auth.NewAuthUseCase(memberRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	memberUC := usecase.NewMemberUseCase(contactRepo)

	// PDF: reporte de progreso de certificación
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	certificationUC := usecase.NewCertificationUseCase(progressRepo, pdfGenerator, cfg.Forms.PageSize, logger.Component(log, "certification"))
	adminUC := usecase.NewAdminUseCase(progressRepo, contactRepo, cfg.Forms.PageSize, logger.Component(log, "admin"))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "FLC Members API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "directory_sessions": sessions.Len()})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		DirectorySvc:    directorySvc,
		Sessions:        sessions,
		AuthUC:          authUC,
		MemberUC:        memberUC,
		CertificationUC: certificationUC,
		AdminUC:         adminUC,
		JWTSecret:       cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
