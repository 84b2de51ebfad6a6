package routes

import (
	"context"
	"net/http"

	"stayhub/config"
	"stayhub/constants"
	"stayhub/controllers"
	middlewares "stayhub/middleware"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
)

func SetupRoutes(router *gin.Engine, m *melody.Melody) {
	controllers.InitNotification(m)
	m.HandleMessage(controllers.HandleChatMessage)

	admins := middlewares.AuthMiddleware(constants.RoleSuperAdmin, constants.RoleAdmin)
	staff := middlewares.AuthMiddleware(constants.RoleSuperAdmin, constants.RoleAdmin, constants.RoleReceptionist)
	anyUser := middlewares.AuthMiddleware()

	v1 := router.Group("/api/v1")
	v1.Use(middlewares.ErrorHandler())

	// auth
	v1.POST("/auth/login", controllers.Login)
	v1.DELETE("/auth/logout", controllers.Logout)
	v1.POST("/auth/register", controllers.RegisterUser)
	v1.POST("/auth/google", controllers.AuthGoogle)
	v1.POST("/verifyCode", controllers.VerifyCode)
	v1.POST("/resendCode", controllers.ResendVerificationCode)
	v1.POST("/forgetPassword", controllers.ForgetPassword)
	v1.POST("/newPassword", controllers.ResetPassword)

	// users
	v1.GET("/profile", anyUser, controllers.GetProfile)
	v1.PUT("/profile", anyUser, controllers.UpdateProfile)
	v1.GET("/users", middlewares.AuthMiddleware(constants.RoleSuperAdmin), controllers.GetUsers)
	v1.PUT("/userStatus", middlewares.AuthMiddleware(constants.RoleSuperAdmin), controllers.ChangeUserStatus)
	v1.PUT("/userHotels", middlewares.AuthMiddleware(constants.RoleSuperAdmin), controllers.AssignHotels)

	// hotel catalog
	v1.GET("/hotels", controllers.GetHotels)
	v1.GET("/hotels/search", controllers.SearchHotels)
	v1.GET("/hotels/:id", controllers.GetHotelDetail)
	v1.POST("/hotels", admins, controllers.CreateHotel)
	v1.PUT("/hotels/:id", admins, controllers.UpdateHotel)

	// rooms
	v1.GET("/hotels/:id/rooms", controllers.GetRooms)
	v1.GET("/hotels/:id/available-rooms", controllers.GetAvailableRooms)
	v1.POST("/hotels/:id/rooms", admins, controllers.AddRoom)
	v1.PUT("/hotels/:id/rooms/:roomNumber", admins, controllers.UpdateRoom)
	v1.PUT("/hotels/:id/rooms/:roomNumber/status", staff, controllers.ChangeRoomStatus)
	v1.DELETE("/hotels/:id/rooms/:roomNumber", admins, controllers.RemoveRoom)

	// bookings
	v1.POST("/bookings", middlewares.OptionalAuthMiddleware(), controllers.CreateBooking)
	v1.POST("/bookings/quote", controllers.GetQuote)
	v1.GET("/bookings", anyUser, controllers.GetBookings)
	v1.GET("/bookings/:id", anyUser, controllers.GetBookingDetail)
	v1.GET("/bookingHistory", anyUser, controllers.GetBookingHistory)
	v1.PUT("/bookings/:id/status", anyUser, controllers.ChangeBookingStatus)

	// payments
	v1.POST("/payments/webhook", controllers.StripeWebhook)
	v1.POST("/payments/events", middlewares.AuthMiddleware(constants.RoleSuperAdmin), controllers.ApplyPaymentEvent)

	// refunds
	v1.POST("/bookings/:id/refund", anyUser, controllers.RequestRefund)
	v1.PUT("/bookings/:id/refund", admins, controllers.ResolveRefund)
	v1.GET("/refundRequests", admins, controllers.ListRefundRequests)

	// reviews
	v1.POST("/reviews", anyUser, controllers.CreateReview)
	v1.GET("/hotels/:id/reviews", controllers.GetHotelReviews)

	// revenue
	v1.GET("/revenue", admins, controllers.GetRevenueSummary)

	// notifications
	v1.GET("/notifications", anyUser, controllers.GetUserNotifications)
	v1.DELETE("/notifications/:id", anyUser, controllers.DeleteNotification)

	// chat
	v1.GET("/chat/ws", middlewares.OptionalAuthMiddleware(), middlewares.SessionMiddleware(), controllers.ChatWS(m))

	// image upload
	v1.POST("/img/multi-upload", admins, func(c *gin.Context) {
		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
			return
		}
		files := form.File["files"]
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
			return
		}

		var urls []string
		for _, file := range files {
			src, err := file.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot open file"})
				return
			}
			defer src.Close()

			ctx := context.Background()
			resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "uploads"})
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
				return
			}
			urls = append(urls, resp.SecureURL)
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload successful",
			"urls":    urls,
		})
	})

	v1.POST("/img/upload", anyUser, func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot open file"})
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "avatars"})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload successful",
			"url":     resp.SecureURL,
		})
	})
}
