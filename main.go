package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	adminpkg "github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/admin"
	adminrepo "github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/admin/repository"
	adminsvc "github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/admin/service"
	analyticsrepo "github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/analytics/repository"
	analyticssvc "github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/analytics/service"
	auditrepo "github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/audit/repository"
	authpkg "github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/auth"
	authrepo "github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/auth/repository"
	authsvc "github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/auth/service"
	customerrepo "github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/customer/repository"
	customersvc "github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/customer/service"
	api "github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/handler"
	"github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/logger"
	"github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/middleware"
	notifrepo "github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/notification/repository"
	orderrepo "github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/order/repository"
	ordersvc "github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/order/service"
	profilerepo "github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/profile/repository"
	profilesvc "github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/profile/service"
	vendorrepo "github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/vendors/repository"
	vendorsvc "github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/vendors/service"
)

func main() {
	_ = godotenv.Load()
	log := logger.FromEnv()

	db := setupDatabase()

	fbClient, err := authpkg.InitFirebaseAuth(context.Background())
	if err != nil {
		log.Warn("firebase auth unavailable, customer login disabled", "err", err)
	}

	// repositories
	auditRepo := auditrepo.NewGormAuditRepo(db)
	notifRepo := notifrepo.NewGormNotificationRepo(db)
	vendorRepo := vendorrepo.NewGormVendorRepo(db)
	customerRepo := customerrepo.NewGormCustomerRepo(db)
	orderRepo := orderrepo.NewGormOrderRepo(db)
	profileRepo := profilerepo.NewGormProfileRepo(db)
	analyticsRepo := analyticsrepo.NewGormAnalyticsRepo(db)
	adminRepo := adminrepo.NewGormAdminRepo(db)
	authRepo := authrepo.NewGormAuthRepo(db)

	// services
	vendorService := vendorsvc.NewVendorService(vendorRepo, notifRepo)
	customerService := customersvc.NewCustomerService(customerRepo)
	orderService := ordersvc.NewOrderService(orderRepo)
	profileService := profilesvc.NewProfileService(profileRepo, notifRepo)
	analyticsService := analyticssvc.NewAnalyticsService(analyticsRepo)
	adminService := adminsvc.NewAdminService(adminRepo)
	authService := authsvc.NewAuthService(authRepo)

	seedSuperadmin(log, adminService)

	// handlers
	authHandler := api.NewAuthHandler(authService, customerService)
	vendorHandler := api.NewVendorHandler(vendorService)
	customerHandler := api.NewCustomerHandler(customerService)
	orderHandler := api.NewOrderHandler(orderService)
	statusHandler := api.NewOrderStatusHandler(orderService)
	profileHandler := api.NewProfileHandler(profileService)
	analyticsHandler := api.NewAnalyticsHandler(analyticsService)
	adminHandler := api.NewAdminHandler(
		vendorService, customerService, profileService,
		orderService, adminService, auditRepo, notifRepo,
	)

	r := gin.New()
	r.Use(gin.Recovery(), gin.Logger())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	v1 := r.Group("/api/v1")

	// public
	{
		v1.POST("/vendors/register", vendorHandler.RegisterVendor())
		v1.POST("/vendors/login", authHandler.VendorLogin())
		v1.POST("/admins/login", authHandler.AdminLogin())
		v1.GET("/vendors", vendorHandler.ListVendors())
		v1.GET("/vendors/:id", vendorHandler.GetVendor())
		v1.GET("/vendors/:id/menu", vendorHandler.ListMenu())
	}

	// customer session bootstrap rides on the verified Firebase token
	if fbClient != nil {
		v1.POST("/customers/session", middleware.RequireFirebaseAuth(fbClient), authHandler.CustomerSession())
	}

	customerRoutes := v1.Group("/", middleware.RequireAuth(), middleware.RequireRoles("customer"))
	{
		customerRoutes.GET("/customers/me", customerHandler.Me())
		customerRoutes.PATCH("/customers/me", customerHandler.UpdateMe())
		customerRoutes.GET("/customers/me/favorites", customerHandler.ListFavorites())
		customerRoutes.PUT("/customers/me/favorites/:vendorId", customerHandler.AddFavorite())
		customerRoutes.DELETE("/customers/me/favorites/:vendorId", customerHandler.RemoveFavorite())

		customerRoutes.GET("/profile", profileHandler.Me())
		customerRoutes.PUT("/profile/student-id", profileHandler.SubmitStudentID())
		customerRoutes.PATCH("/profile/preferences", profileHandler.UpdatePreferences())

		customerRoutes.POST("/orders/checkout", orderHandler.Checkout())
		customerRoutes.GET("/orders/mine", orderHandler.MyOrders())
		customerRoutes.POST("/orders/:id/rate", orderHandler.RateOrder())
		customerRoutes.POST("/orders/:id/complete", statusHandler.Complete())
	}

	vendorRoutes := v1.Group("/vendor", middleware.RequireAuth(), middleware.RequireRoles("vendor"))
	{
		vendorRoutes.PATCH("/online", vendorHandler.SetOnline())
		vendorRoutes.GET("/menu", vendorHandler.ListOwnMenu())
		vendorRoutes.POST("/menu", vendorHandler.AddMenuItem())
		vendorRoutes.PATCH("/menu/:itemId", vendorHandler.UpdateMenuItem())

		vendorRoutes.GET("/orders", orderHandler.VendorOrders())
		vendorRoutes.POST("/orders/:id/confirm", statusHandler.Confirm())
		vendorRoutes.POST("/orders/:id/preparing", statusHandler.Preparing())
		vendorRoutes.POST("/orders/:id/ready", statusHandler.Ready())
		vendorRoutes.POST("/orders/:id/picked-up", statusHandler.PickedUp())
		vendorRoutes.POST("/orders/:id/delivered", statusHandler.Delivered())
	}

	// shared by roles that may cancel or read a single order
	orderRoutes := v1.Group("/orders", middleware.RequireAuth())
	{
		orderRoutes.GET("/:id", orderHandler.GetOrder())
		orderRoutes.POST("/:id/cancel", statusHandler.Cancel())
	}

	adminRoutes := v1.Group("/admin", middleware.RequireAuth(), middleware.RequireRoles("admin"))
	{
		adminRoutes.GET("/vendors/pending", adminHandler.ListPendingVendors())
		adminRoutes.POST("/vendors/:id/decision", adminHandler.DecideVendor())
		adminRoutes.PATCH("/vendors/:id/status", adminHandler.SetVendorStatus())
		adminRoutes.GET("/menu-items/pending", adminHandler.ListPendingMenuItems())
		adminRoutes.POST("/menu-items/:itemId/decision", adminHandler.ModerateMenuItem())

		adminRoutes.GET("/customers", adminHandler.ListCustomers())
		adminRoutes.DELETE("/customers/:id", adminHandler.DeleteCustomer())
		adminRoutes.GET("/verifications/pending", adminHandler.ListPendingVerifications())
		adminRoutes.POST("/verifications/:id/decision", adminHandler.DecideStudentID())

		adminRoutes.GET("/orders", orderHandler.AllOrders())
		adminRoutes.PATCH("/orders/:id/payment", adminHandler.SetPaymentStatus())

		adminRoutes.GET("/audit-log", adminHandler.ListAuditLog())
		adminRoutes.GET("/notifications", adminHandler.ListNotifications())
		adminRoutes.POST("/notifications/:id/read", adminHandler.MarkNotificationRead())

		adminRoutes.GET("/admins", adminHandler.ListAdmins())
		adminRoutes.POST("/admins", adminHandler.RegisterAdmin())
		adminRoutes.PATCH("/admins/:id/status", adminHandler.SetAdminStatus())

		adminRoutes.GET("/analytics/overview", analyticsHandler.Overview())
		adminRoutes.GET("/analytics/revenue-series", analyticsHandler.RevenueSeries())
		adminRoutes.GET("/analytics/status-breakdown", analyticsHandler.StatusBreakdown())
		adminRoutes.GET("/analytics/day-of-week", analyticsHandler.DayOfWeekBreakdown())
		adminRoutes.GET("/analytics/top-vendors", analyticsHandler.TopVendors())
	}

	addr := ":" + envOr("PORT", "8080")
	log.Info("listening", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Error("server exited", "err", err)
		os.Exit(1)
	}
}

// seedSuperadmin bootstraps the first admin account from the environment.
// It only fires on an empty admins table.
func seedSuperadmin(log *slog.Logger, admins adminpkg.Service) {
	email := os.Getenv("SUPERADMIN_EMAIL")
	password := os.Getenv("SUPERADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}
	name := envOr("SUPERADMIN_NAME", "Superadmin")
	created, err := admins.SeedSuperadmin(context.Background(), name, email, password)
	if err != nil {
		log.Error("superadmin seed failed", "err", err)
		return
	}
	if created != nil {
		log.Info("seeded superadmin", "email", created.Email)
	}
}
