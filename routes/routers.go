package routes

import (
	"hrms/controllers"
	middlewares "hrms/middleware"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody) {

	controllers.SetMelody(m)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	v1.Use(middlewares.SessionMiddleware())

	v1.POST("/auth/login", controllers.Login)
	v1.POST("/auth/register", middlewares.AuthMiddleware(1, 2), controllers.RegisterUser)
	v1.POST("/verifyCode", controllers.VerifyCode)
	v1.POST("/auth/google", controllers.AuthGoogle)
	v1.GET("/profile", controllers.GetProfile)
	v1.POST("/attendance/checkin", middlewares.AuthMiddleware(0, 1, 2, 3), controllers.StaffCheckIn)
	v1.GET("/attendance", middlewares.AuthMiddleware(1, 2), controllers.GetAttendance)

	v1.GET("/bookings", middlewares.AuthMiddleware(0, 1, 2, 3), controllers.GetBookings)
	v1.POST("/bookings", middlewares.AuthMiddleware(0, 1, 2, 3), controllers.CreateBooking)
	v1.GET("/bookings/:id", middlewares.AuthMiddleware(0, 1, 2, 3), controllers.GetBookingDetail)
	v1.GET("/bookingByCode", middlewares.AuthMiddleware(0, 1, 2, 3), controllers.GetBookingByCode)
	v1.PUT("/bookings/:id/transition", middlewares.AuthMiddleware(0, 1, 2, 3), controllers.TransitionBooking)
	v1.DELETE("/bookings/:id", middlewares.AuthMiddleware(1, 2), controllers.DeleteBooking)
	v1.GET("/calendar", middlewares.AuthMiddleware(0, 1, 2, 3), controllers.GetRoomCalendar)

	v1.GET("/bookings/:id/ledger", middlewares.AuthMiddleware(0, 1, 2, 3), controllers.GetBookingLedger)
	v1.POST("/payments", middlewares.AuthMiddleware(0, 1, 2, 3), controllers.CreatePayment)
	v1.POST("/payments/cash", middlewares.AuthMiddleware(0, 1, 2, 3), controllers.CreateCashPayment)
	v1.PUT("/payments/:id/confirm", middlewares.AuthMiddleware(1, 2), controllers.ConfirmPayment)
	v1.PUT("/payments/:id/refund", middlewares.AuthMiddleware(1, 2), controllers.RefundPayment)
	v1.POST("/payments/qr", middlewares.AuthMiddleware(0, 1, 2, 3), controllers.GetBankTransferQR)

	v1.GET("/invoices", middlewares.AuthMiddleware(0, 1, 2, 3), controllers.GetInvoices)
	v1.GET("/bookings/:id/invoice", middlewares.AuthMiddleware(0, 1, 2, 3), controllers.GetInvoiceByBooking)
	v1.POST("/bookings/:id/invoice", middlewares.AuthMiddleware(0, 1, 2, 3), controllers.GenerateInvoice)
	v1.GET("/invoices/:id/pdf", middlewares.AuthMiddleware(0, 1, 2, 3), controllers.DownloadInvoicePDF)
	v1.POST("/invoices/:id/email", middlewares.AuthMiddleware(0, 1, 2, 3), controllers.SendInvoiceByEmail)

	v1.GET("/orders", middlewares.AuthMiddleware(0, 1, 2, 3), controllers.GetRestaurantOrders)
	v1.POST("/orders", middlewares.AuthMiddleware(0, 1, 2, 3), controllers.CreateRestaurantOrder)
	v1.GET("/orders/:id", middlewares.AuthMiddleware(0, 1, 2, 3), controllers.GetRestaurantOrderDetail)
	v1.POST("/orders/:id/settle", middlewares.AuthMiddleware(0, 1, 2, 3), controllers.SettleRestaurantOrder)
	v1.GET("/orders/:id/invoice", middlewares.AuthMiddleware(0, 1, 2, 3), controllers.GetRestaurantInvoice)
	v1.POST("/orders/:id/invoice", middlewares.AuthMiddleware(0, 1, 2, 3), controllers.GenerateRestaurantInvoice)

	v1.GET("/rooms", controllers.GetAllRooms)
	v1.POST("/rooms", middlewares.AuthMiddleware(1, 2), controllers.CreateRoom)
	v1.GET("/rooms/:id", controllers.GetRoomDetail)
	v1.PUT("/roomUpdate", middlewares.AuthMiddleware(1, 2), controllers.UpdateRoom)
	v1.PUT("/rooms/:id/status", middlewares.AuthMiddleware(1, 2, 3), controllers.ChangeRoomStatus)
	v1.POST("/img/multi-upload", middlewares.AuthMiddleware(1, 2), controllers.UploadRoomImages)

	v1.GET("/customers", middlewares.AuthMiddleware(0, 1, 2, 3), controllers.GetCustomers)
	v1.GET("/customers/search", middlewares.AuthMiddleware(0, 1, 2, 3), controllers.SearchCustomers)
	v1.POST("/customers", middlewares.AuthMiddleware(0, 1, 2, 3), controllers.CreateCustomer)
	v1.GET("/customers/:id", middlewares.AuthMiddleware(0, 1, 2, 3), controllers.GetCustomerDetail)
	v1.PUT("/customers/:id", middlewares.AuthMiddleware(0, 1, 2, 3), controllers.UpdateCustomer)
}
