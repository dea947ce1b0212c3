package v1

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gurukul-api/middleware"
	"github.com/gurukul-api/repositories"
	"github.com/gurukul-api/services"
	"gorm.io/gorm"
)

// Controllers bundles every v1 controller
type Controllers struct {
	Auth         *AuthController
	Admin        *AdminController
	Admission    *AdmissionController
	Contact      *ContactController
	Gallery      *GalleryController
	Announcement *AnnouncementController

	authService *services.AuthService
}

// NewControllers wires repositories, services and controllers over the
// given database handle
func NewControllers(db *gorm.DB, jwtSecret string, tokenTTL time.Duration) *Controllers {
	userRepo := repositories.NewUserRepository(db)
	admissionRepo := repositories.NewAdmissionRepository(db)
	contactRepo := repositories.NewContactRepository(db)
	galleryRepo := repositories.NewGalleryRepository(db)
	announcementRepo := repositories.NewAnnouncementRepository(db)

	authService := services.NewAuthService(userRepo, jwtSecret, tokenTTL)
	dashboardService := services.NewDashboardService(userRepo, admissionRepo, contactRepo, galleryRepo)

	return &Controllers{
		Auth:         NewAuthController(authService),
		Admin:        NewAdminController(authService, dashboardService),
		Admission:    NewAdmissionController(services.NewAdmissionService(admissionRepo)),
		Contact:      NewContactController(services.NewContactService(contactRepo)),
		Gallery:      NewGalleryController(services.NewGalleryService(galleryRepo)),
		Announcement: NewAnnouncementController(services.NewAnnouncementService(announcementRepo)),
		authService:  authService,
	}
}

// RegisterRoutes registers all v1 API routes
func (c *Controllers) RegisterRoutes(router *gin.RouterGroup) {
	authRequired := middleware.AuthMiddleware(c.authService)
	adminRequired := middleware.AdminMiddleware()

	router.GET("/", Root)
	router.GET("/health", HealthCheck)

	c.Auth.RegisterRoutes(router, authRequired)
	c.Admin.RegisterRoutes(router, authRequired, adminRequired)
	c.Admission.RegisterRoutes(router, authRequired, adminRequired)
	c.Contact.RegisterRoutes(router, authRequired, adminRequired)
	c.Gallery.RegisterRoutes(router, authRequired, adminRequired)
	c.Announcement.RegisterRoutes(router, authRequired, adminRequired)
}
