package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/spa-booking/internal/audit"
	"github.com/BruksfildServices01/spa-booking/internal/catalog"
	"github.com/BruksfildServices01/spa-booking/internal/config"
	domain "github.com/BruksfildServices01/spa-booking/internal/domain/booking"
	"github.com/BruksfildServices01/spa-booking/internal/handlers"
	"github.com/BruksfildServices01/spa-booking/internal/identity"
	infraRepo "github.com/BruksfildServices01/spa-booking/internal/infra/repository"
	"github.com/BruksfildServices01/spa-booking/internal/kv"
	"github.com/BruksfildServices01/spa-booking/internal/media"
	"github.com/BruksfildServices01/spa-booking/internal/middleware"
	"github.com/BruksfildServices01/spa-booking/internal/notify"
	"github.com/BruksfildServices01/spa-booking/internal/upstream"
	ucBooking "github.com/BruksfildServices01/spa-booking/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	cartStorage := kv.NewRedisStorage(rdb)

	salonAPI := upstream.NewClient(cfg.SalonAPIBaseURL, cfg.SalonAPIKey)
	var gateway domain.Gateway = salonAPI

	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	telegram := notify.NewTelegram(cfg.TelegramBotToken, cfg.TelegramChatID)
	uploader := media.NewUploader(cfg)
	otpService := identity.NewOTPService(rdb, cfg.OTPTTLMinutes)

	serviceCatalog := catalog.New(gateway)

	// ======================================================
	// 🧠 USE CASES — BOOKING
	// ======================================================
	getDaySlotsUC := ucBooking.NewGetDaySlots(gateway)

	assignSlotUC := ucBooking.NewAssignSlot(serviceCatalog)

	confirmBookingUC := ucBooking.NewConfirmBooking(
		gateway,
		bookingRepo,
		auditDispatcher,
		telegram,
		cfg.BookingTax,
	)

	cancelBookingUC := ucBooking.NewCancelBooking(
		gateway,
		bookingRepo,
		auditDispatcher,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, otpService, cartStorage)
	meHandler := handlers.NewMeHandler(db, uploader)

	cartHandler := handlers.NewCartHandler(cartStorage, auditDispatcher)
	catalogHandler := handlers.NewCatalogHandler(serviceCatalog, cartStorage)
	slotHandler := handlers.NewSlotHandler(getDaySlotsUC, assignSlotUC, cartStorage)

	bookingHandler := handlers.NewBookingHandler(
		confirmBookingUC,
		cancelBookingUC,
		bookingRepo,
		cartStorage,
	)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/otp", middleware.OTPRateLimit(), authHandler.RequestOTP)
		api.POST("/auth/verify", authHandler.VerifyOTP)

		// ------------------------------
		// 🛍 CATÁLOGO
		// ------------------------------
		api.GET("/locations/:uuid/services", catalogHandler.ListServices)

		// ------------------------------
		// 🛒 SESSÃO (guest ou usuário)
		// ------------------------------
		session := api.Group("/")
		session.Use(middleware.Session(cfg))
		{
			session.GET("/locations/:uuid/operators", catalogHandler.ListOperators)

			session.GET("/cart", cartHandler.Get)
			session.POST("/cart/items", cartHandler.AddItem)
			session.DELETE("/cart/items/:index", cartHandler.RemoveItem)
			session.DELETE("/cart", cartHandler.Clear)
			session.POST("/cart/location", cartHandler.SetLocation)
			session.DELETE("/cart/slot", cartHandler.ResetBookingContext)

			session.GET("/slots", slotHandler.GetDaySlots)
			session.POST("/cart/slot", slotHandler.ChooseSlot)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			session.POST("/bookings", bookingHandler.Create)
			session.GET("/bookings/:id", bookingHandler.Get)
		}

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.RequireAuth(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me", meHandler.UpdateMe)
			secured.PUT("/me/avatar", meHandler.UpdateAvatar)

			secured.POST("/auth/logout", authHandler.Logout)
			secured.DELETE("/bookings/:id", bookingHandler.Cancel)
		}
	}
}
