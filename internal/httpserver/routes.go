package httpserver

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	apperrors "github.com/yayincibotu/twitchviewer/internal/errors"
)

func (s *Server) registerRoutes() {
	s.echo.Use(correlationMiddleware)
	s.echo.Use(s.setupRequestLoggerMiddleware())
	s.echo.Use(middleware.Recover())
	s.echo.Use(apperrors.Middleware())
	s.echo.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:      "",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		HSTSMaxAge:         63072000, // 2 years; only sent over HTTPS
		HSTSPreloadEnabled: true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}))

	s.registerHealthRoutes()
	s.registerAuthRoutes()
	s.registerCatalogRoutes()
	s.registerContentRoutes()
	s.registerCheckoutRoutes()

	s.echo.GET("/sitemap.xml", s.handleSitemap)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

func (s *Server) registerAuthRoutes() {
	s.echo.POST("/api/register", s.handleRegister)
	s.echo.POST("/api/login", s.handleLogin)
	s.echo.POST("/api/logout", s.handleLogout)
	s.echo.GET("/api/user", s.handleCurrentUser, s.requireAuth)
	s.echo.POST("/api/verify-email", s.handleVerifyEmail, s.requireAuth)
	s.echo.POST("/api/request-password-reset", s.handleRequestPasswordReset)
	s.echo.POST("/api/reset-password", s.handleResetPassword)

	if s.config.TwitchOAuthEnabled() {
		s.echo.GET("/api/auth/twitch", s.handleTwitchLogin)
		s.echo.GET("/api/auth/twitch/callback", s.handleTwitchCallback)
	}
}

func (s *Server) registerCatalogRoutes() {
	s.echo.GET("/api/packages", s.handleListPackages)
	s.echo.GET("/api/packages/:id", s.handleGetPackage)
	s.echo.POST("/api/packages", s.handleCreatePackage, s.requireAuth, s.requireAdmin)
	s.echo.PATCH("/api/packages/:id", s.handleUpdatePackage, s.requireAuth, s.requireAdmin)
	s.echo.DELETE("/api/packages/:id", s.handleDeletePackage, s.requireAuth, s.requireAdmin)

	s.echo.GET("/api/seo", s.handleListSeo, s.requireAuth, s.requireAdmin)
	s.echo.GET("/api/seo/:slug", s.handleGetSeo)
	s.echo.POST("/api/seo", s.handleCreateSeo, s.requireAuth, s.requireAdmin)
	s.echo.PATCH("/api/seo/:id", s.handleUpdateSeo, s.requireAuth, s.requireAdmin)
}

func (s *Server) registerContentRoutes() {
	s.echo.GET("/api/blog", s.handleListPosts)
	s.echo.GET("/api/blog/:slug", s.handleGetPost)
	s.echo.POST("/api/blog", s.handleCreatePost, s.requireAuth, s.requireAdmin)
	s.echo.PATCH("/api/blog/:id", s.handleUpdatePost, s.requireAuth, s.requireAdmin)
	s.echo.DELETE("/api/blog/:id", s.handleDeletePost, s.requireAuth, s.requireAdmin)

	s.echo.GET("/api/media", s.handleListMedia, s.requireAuth, s.requireAdmin)
	s.echo.POST("/api/media", s.handleCreateMedia, s.requireAuth, s.requireAdmin)
	s.echo.DELETE("/api/media/:id", s.handleDeleteMedia, s.requireAuth, s.requireAdmin)

	s.echo.GET("/api/faq", s.handleListFaq)
	s.echo.POST("/api/faq/categories", s.handleCreateFaqCategory, s.requireAuth, s.requireAdmin)
	s.echo.PATCH("/api/faq/categories/:id", s.handleUpdateFaqCategory, s.requireAuth, s.requireAdmin)
	s.echo.DELETE("/api/faq/categories/:id", s.handleDeleteFaqCategory, s.requireAuth, s.requireAdmin)
	s.echo.POST("/api/faq/items", s.handleCreateFaqItem, s.requireAuth, s.requireAdmin)
	s.echo.PATCH("/api/faq/items/:id", s.handleUpdateFaqItem, s.requireAuth, s.requireAdmin)
	s.echo.DELETE("/api/faq/items/:id", s.handleDeleteFaqItem, s.requireAuth, s.requireAdmin)

	s.echo.GET("/api/statistics", s.handleListStatistics)
	s.echo.POST("/api/statistics", s.handleCreateStatistic, s.requireAuth, s.requireAdmin)
	s.echo.DELETE("/api/statistics/:id", s.handleDeleteStatistic, s.requireAuth, s.requireAdmin)

	s.echo.GET("/api/success-stories", s.handleListSuccessStories)
	s.echo.POST("/api/success-stories", s.handleCreateSuccessStory, s.requireAuth, s.requireAdmin)
	s.echo.DELETE("/api/success-stories/:id", s.handleDeleteSuccessStory, s.requireAuth, s.requireAdmin)

	s.echo.GET("/api/offers", s.handleListActiveOffers)
	s.echo.GET("/api/offers/all", s.handleListAllOffers, s.requireAuth, s.requireAdmin)
	s.echo.POST("/api/offers", s.handleCreateOffer, s.requireAuth, s.requireAdmin)
	s.echo.PATCH("/api/offers/:id", s.handleUpdateOffer, s.requireAuth, s.requireAdmin)
	s.echo.DELETE("/api/offers/:id", s.handleDeleteOffer, s.requireAuth, s.requireAdmin)

	s.echo.GET("/api/security-badges", s.handleListSecurityBadges)
	s.echo.POST("/api/security-badges", s.handleCreateSecurityBadge, s.requireAuth, s.requireAdmin)
	s.echo.DELETE("/api/security-badges/:id", s.handleDeleteSecurityBadge, s.requireAuth, s.requireAdmin)
}

func (s *Server) registerCheckoutRoutes() {
	s.echo.POST("/api/create-checkout-session", s.handleCreateCheckoutSession, s.requireAuth)
}

func (s *Server) setupRequestLoggerMiddleware() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			}
			if v.Error != nil {
				attrs = append(attrs, "error", v.Error)
			}
			slog.InfoContext(c.Request().Context(), "Request", attrs...)
			return nil
		},
	})
}
