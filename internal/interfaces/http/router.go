package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clairefro/flc-wix/internal/application/auth"
	appdir "github.com/clairefro/flc-wix/internal/application/directory"
	"github.com/clairefro/flc-wix/internal/application/usecase"
	"github.com/clairefro/flc-wix/internal/domain/entity"
	"github.com/clairefro/flc-wix/internal/interfaces/viewsession"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	DirectorySvc    *appdir.Service
	Sessions        *viewsession.Store
	AuthUC          *auth.AuthUseCase
	MemberUC        *usecase.MemberUseCase
	CertificationUC *usecase.CertificationUseCase
	AdminUC         *usecase.AdminUseCase
	JWTSecret       string
}

// Router registra las rutas de la API.
// Permisos: público (Anyone), SiteMember (member o admin) y Admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	siteMember := []fiber.Handler{AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleMember, entity.RoleAdmin)}
	admin := []fiber.Handler{AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin)}

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", append(admin, authHandler.Register)...)

	// Directorio (público)
	practitioners := api.Group("/practitioners")
	practitionerHandler := NewPractitionerHandler(deps.DirectorySvc)
	practitioners.Get("/", practitionerHandler.List)
	practitioners.Get("/count", practitionerHandler.Count)
	practitioners.Get("/regions", practitionerHandler.Regions)
	practitioners.Get("/countries", practitionerHandler.Countries)

	sessions := api.Group("/directory/sessions")
	sessionHandler := NewDirectorySessionHandler(deps.Sessions)
	sessions.Post("/", sessionHandler.Create)
	sessions.Get("/:id", RequireSession(deps.Sessions), sessionHandler.Get)
	sessions.Post("/:id/events", RequireSession(deps.Sessions), sessionHandler.Event)
	sessions.Delete("/:id", sessionHandler.Delete)

	// Utilidades (público)
	api.Post("/base64/decode", DecodeBase64)

	// Miembros (SiteMember)
	memberHandler := NewMemberHandler(deps.MemberUC)
	api.Get("/members/me/address", append(siteMember, memberHandler.Address)...)

	// Certificación
	cert := api.Group("/certification")
	certHandler := NewCertificationHandler(deps.CertificationUC)
	cert.Post("/summary", certHandler.Summary)
	cert.Get("/me", append(siteMember, certHandler.Me)...)
	cert.Get("/me/report.pdf", append(siteMember, certHandler.ReportPDF)...)
	cert.Get("/students", append(admin, certHandler.Students)...)
	cert.Get("/students/:email", append(admin, certHandler.Student)...)

	// Administración (Admin)
	adminGroup := api.Group("/admin", admin...)
	adminHandler := NewAdminHandler(deps.AdminUC)
	adminGroup.Get("/courses/:course/missing-emails", adminHandler.MissingEmails)
	adminGroup.Get("/contacts", adminHandler.Contacts)
}
