package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/minwoo/dormhub/internal/app/controllers"
	"github.com/minwoo/dormhub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	profileController *controllers.ProfileController,
	dormController *controllers.DormController,
	outingController *controllers.OutingController,
	postController *controllers.PostController,
	inquiryController *controllers.InquiryController,
	noticeController *controllers.NoticeController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/signup", authController.Signup)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	// The board and notices are readable without authentication.
	v1.GET("/posts", postController.List)
	v1.GET("/posts/:id", postController.Get)
	v1.GET("/posts/:id/comments", postController.ListComments)
	v1.GET("/notices", noticeController.List)
	v1.GET("/notices/:id", noticeController.Get)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", authController.Logout)
		authenticated.GET("/mypage", profileController.MyPage)

		// Dorm applications
		dorm := authenticated.Group("/dorm-applications")
		{
			dorm.POST("", dormController.Apply)
			dorm.GET("/me", dormController.GetMine)

			dormStaff := dorm.Group("")
			dormStaff.Use(authMiddleware.StaffRequired())
			{
				dormStaff.GET("", dormController.List)
				dormStaff.GET("/:id", dormController.Get)
				dormStaff.PATCH("/:id", dormController.AssignRoom)
				dormStaff.DELETE("/:id", dormController.Delete)
			}
		}

		// Outing applications
		outings := authenticated.Group("/outings")
		{
			outings.POST("", outingController.Apply)
			outings.GET("", outingController.List)

			outingsStaff := outings.Group("")
			outingsStaff.Use(authMiddleware.StaffRequired())
			{
				outingsStaff.POST("/:id/approve", outingController.Approve)
				outingsStaff.POST("/:id/reject", outingController.Reject)
			}
		}

		// Points and profile search (staff only)
		staff := authenticated.Group("")
		staff.Use(authMiddleware.StaffRequired())
		{
			staff.POST("/points", profileController.AdjustPoints)
			staff.GET("/profiles", profileController.SearchProfiles)
		}

		// Community board writes
		posts := authenticated.Group("/posts")
		{
			posts.POST("", postController.Create)
			posts.PATCH("/:id", postController.Update)
			posts.DELETE("/:id", postController.Delete)
			posts.POST("/:id/like", postController.ToggleLike)
			posts.POST("/:id/comments", postController.AddComment)
		}
		authenticated.DELETE("/comments/:id", postController.DeleteComment)

		// Inquiry desk
		inquiries := authenticated.Group("/inquiries")
		{
			inquiries.POST("", inquiryController.Create)
			inquiries.GET("", inquiryController.List)
			inquiries.GET("/:id", inquiryController.Get)

			inquiriesStaff := inquiries.Group("")
			inquiriesStaff.Use(authMiddleware.StaffRequired())
			{
				inquiriesStaff.POST("/:id/answer", inquiryController.Answer)
			}
		}

		// Notice writes (staff only)
		noticesStaff := authenticated.Group("/notices")
		noticesStaff.Use(authMiddleware.StaffRequired())
		{
			noticesStaff.POST("", noticeController.Create)
			noticesStaff.PATCH("/:id", noticeController.Update)
			noticesStaff.DELETE("/:id", noticeController.Delete)
		}
	}
}
