// Package routes maps the HTTP surface onto controllers.
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/pcell/backend/internal/app/controllers"
	"github.com/pcell/backend/internal/middleware"
	"github.com/pcell/backend/internal/pkg/auth"
)

// Controllers groups everything the router mounts.
type Controllers struct {
	Auth         *controllers.AuthController
	User         *controllers.UserController
	Opening      *controllers.OpeningController
	JobInterest  *controllers.JobInterestController
	Selection    *controllers.SelectionController
	Announcement *controllers.AnnouncementController
	Branch       *controllers.BranchController
}

// Setup registers all routes under /api/v1.
func Setup(router *gin.Engine, ctrls Controllers, jwtService *auth.JWTService) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/v1")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/otp/request", ctrls.Auth.RequestOTP)
		authGroup.POST("/otp/verify", ctrls.Auth.VerifyOTP)
		authGroup.POST("/register", ctrls.Auth.Register)
		authGroup.POST("/login", ctrls.Auth.Login)
		authGroup.POST("/refresh", ctrls.Auth.RefreshToken)
		authGroup.POST("/logout", ctrls.Auth.Logout)
		authGroup.POST("/forgot-password", ctrls.Auth.ForgotPassword)
		authGroup.POST("/reset-password", ctrls.Auth.ResetPassword)
	}

	api.GET("/branches", ctrls.Branch.ListBranches)

	authed := api.Group("", middleware.JWTAuth(jwtService))
	{
		authed.GET("/users/me", ctrls.User.GetMe)
		authed.PUT("/users/me", ctrls.User.UpdateMe)

		authed.GET("/openings", ctrls.Opening.ListOpenings)
		authed.GET("/openings/:id", ctrls.Opening.GetOpening)
		authed.POST("/openings/:id/interest", ctrls.JobInterest.ExpressInterest)
		authed.GET("/openings/:id/interest", ctrls.JobInterest.GetInterestStatus)

		authed.GET("/selections/me", ctrls.Selection.GetMySelection)

		authed.GET("/announcements", ctrls.Announcement.ListAnnouncements)
		authed.GET("/announcements/:id", ctrls.Announcement.GetAnnouncement)
	}

	admin := api.Group("", middleware.JWTAuth(jwtService), middleware.AdminRequired())
	{
		admin.GET("/users", ctrls.User.ListUsers)
		admin.GET("/users/:id", ctrls.User.GetUser)
		admin.DELETE("/users/:id", ctrls.User.DeleteUser)

		admin.POST("/openings", ctrls.Opening.CreateOpening)
		admin.PUT("/openings/:id", ctrls.Opening.UpdateOpening)
		admin.DELETE("/openings/:id", ctrls.Opening.DeleteOpening)
		admin.GET("/openings/:id/statistics", ctrls.JobInterest.GetOpeningStatistics)

		admin.POST("/selections", ctrls.Selection.AddSelections)
		admin.GET("/selections", ctrls.Selection.ListSelections)
		admin.GET("/selections/status", ctrls.Selection.CheckStudentStatus)
		admin.DELETE("/selections/:id", ctrls.Selection.DeleteSelection)
		admin.GET("/openings/:id/applicants", ctrls.Selection.GetAppliedAndShortlisted)

		admin.POST("/announcements", ctrls.Announcement.CreateAnnouncement)
		admin.PUT("/announcements/:id", ctrls.Announcement.UpdateAnnouncement)
		admin.DELETE("/announcements/:id", ctrls.Announcement.DeleteAnnouncement)

		admin.POST("/branches", ctrls.Branch.CreateBranch)
		admin.DELETE("/branches/:id", ctrls.Branch.DeleteBranch)
	}
}
