package controllers

import (
	"fmt"
	"log"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"hrms/builders"
	"hrms/config"
	"hrms/dto"
	apperrors "hrms/errors"
	"hrms/models"
	"hrms/response"
	"hrms/services"
	"hrms/services/notification"
	"hrms/validator"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
)

var wsMelody *melody.Melody

// SetMelody gắn instance melody để controller phát sự kiện realtime
func SetMelody(m *melody.Melody) {
	wsMelody = m
}

func broadcastBookingEvent(booking *models.Booking, event string) {
	if wsMelody == nil {
		return
	}
	message := notification.NewBookingEventBuilder(booking.Code, event,
		models.BookingStatusName(booking.Status)).Build()
	if err := notification.NewMelodyService(wsMelody).SendMessage(message); err != nil {
		log.Printf("Lỗi khi phát sự kiện booking %s: %v", booking.Code, err)
	}
}

// invalidateBookingCaches xóa cache danh sách booking và lịch phòng
// sau mọi mutation để lần đọc sau dựng lại từ DB
func invalidateBookingCaches() {
	rdb, err := config.ConnectRedis()
	if err != nil {
		return
	}
	for _, pattern := range []string{"bookings:*", "calendar:*"} {
		if err := services.DeleteKeysByPattern(config.Ctx, rdb, pattern); err != nil {
			log.Printf("Lỗi khi xóa cache %s: %v", pattern, err)
		}
	}
}

func convertToBookingResponse(booking *models.Booking) dto.BookingResponse {
	resp := dto.BookingResponse{
		ID:   booking.ID,
		Code: booking.Code,
		Room: dto.BookingRoomResponse{
			ID:       booking.Room.ID,
			RoomName: booking.Room.RoomName,
			Floor:    booking.Room.Floor.Name,
			RoomType: booking.Room.RoomType.Name,
			Price:    booking.Room.Price,
		},
		Guest: dto.ActorResponse{
			Name:        booking.GuestName,
			Email:       booking.GuestEmail,
			PhoneNumber: booking.GuestPhone,
		},
		CheckInDate:        booking.CheckInDate,
		CheckOutDate:       booking.CheckOutDate,
		Status:             booking.Status,
		StatusName:         models.BookingStatusName(booking.Status),
		RoomPrice:          booking.RoomPrice,
		ServiceAmount:      booking.ServiceAmount,
		DiscountPercent:    booking.DiscountPercent,
		TotalAmount:        booking.TotalAmount,
		FinalAmount:        booking.FinalAmount(),
		CancellationReason: booking.CancellationReason,
		RejectReason:       booking.RejectReason,
		CreatedAt:          booking.CreatedAt,
		UpdatedAt:          booking.UpdatedAt,
	}
	if booking.Customer != nil {
		resp.Customer = &dto.ActorResponse{
			Name:        booking.Customer.Name,
			Email:       booking.Customer.Email,
			PhoneNumber: booking.Customer.PhoneNumber,
		}
		if resp.Guest.Name == "" {
			resp.Guest = *resp.Customer
		}
	}
	return resp
}

func GetBookings(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Unauthorized(c)
		return
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if _, _, err := services.GetUserIDFromToken(tokenString); err != nil {
		response.Unauthorized(c)
		return
	}

	codeFilter := c.Query("code")
	statusFilter := c.Query("status")
	roomFilter := c.Query("roomId")

	pageStr := c.Query("page")
	limitStr := c.Query("limit")

	page := 0
	limit := 10

	if pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}

	if limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	cacheKey := "bookings:all"

	rdb, err := config.ConnectRedis()
	if err != nil {
		response.ServerError(c)
		return
	}

	var allBookings []models.Booking

	// Lấy danh sách từ cache nếu có
	if err := services.GetFromRedis(config.Ctx, rdb, cacheKey, &allBookings); err != nil || len(allBookings) == 0 {
		if err := config.DB.Preload("Room").Preload("Room.Floor").Preload("Room.RoomType").
			Preload("Customer").Find(&allBookings).Error; err != nil {
			response.ServerError(c)
			return
		}

		if err := services.SetToRedis(config.Ctx, rdb, cacheKey, allBookings, 10*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu danh sách booking vào Redis: %v", err)
		}
	}

	// Áp dụng filter theo code, status và phòng
	filtered := make([]models.Booking, 0)
	for _, booking := range allBookings {
		if codeFilter != "" {
			decodedCode, _ := url.QueryUnescape(codeFilter)
			if !strings.Contains(strings.ToLower(booking.Code), strings.ToLower(decodedCode)) {
				continue
			}
		}
		if statusFilter != "" {
			status, _ := strconv.Atoi(statusFilter)
			if booking.Status != status {
				continue
			}
		}
		if roomFilter != "" {
			roomID, _ := strconv.Atoi(roomFilter)
			if booking.RoomID != uint(roomID) {
				continue
			}
		}
		filtered = append(filtered, booking)
	}

	// Sắp xếp theo CreatedAt giảm dần
	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})
	total := len(filtered)

	// Phân trang
	start := page * limit
	end := start + limit
	if start >= total {
		filtered = []models.Booking{}
	} else if end > total {
		filtered = filtered[start:]
	} else {
		filtered = filtered[start:end]
	}

	bookingResponses := make([]dto.BookingResponse, 0, len(filtered))
	for i := range filtered {
		bookingResponses = append(bookingResponses, convertToBookingResponse(&filtered[i]))
	}

	response.SuccessWithPagination(c, bookingResponses, page, limit, total)
}

func CreateBooking(c *gin.Context) {
	var request dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateBooking(&request); err != nil {
		respondAppError(c, err)
		return
	}

	builder := builders.NewBookingBuilder().
		WithRoom(request.RoomID).
		WithGuestInfo(request.GuestName, request.GuestPhone, request.GuestEmail).
		WithCheckIn(request.CheckInDate).
		WithCheckOut(request.CheckOutDate).
		WithServiceAmount(request.ServiceAmount).
		WithDiscount(request.DiscountPercent)
	if request.CustomerID != nil {
		builder = builder.WithCustomer(*request.CustomerID)
	}
	booking := builder.Build()

	facade := services.NewBookingFacade(config.DB)
	created, err := facade.CreateBooking(booking)
	if err != nil {
		respondAppError(c, err)
		return
	}

	invalidateBookingCaches()
	broadcastBookingEvent(created, "create")

	full, err := services.NewBookingService(config.DB).GetByID(created.ID)
	if err != nil {
		response.Success(c, created)
		return
	}
	response.Success(c, convertToBookingResponse(full))
}

func GetBookingDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	booking, err := services.NewBookingService(config.DB).GetByID(uint(id))
	if err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, convertToBookingResponse(booking))
}

func GetBookingByCode(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		response.BadRequest(c, "Mã đặt phòng không được để trống")
		return
	}

	booking, err := services.NewBookingService(config.DB).GetByCode(code)
	if err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, convertToBookingResponse(booking))
}

// TransitionBooking chuyển trạng thái booking theo sự kiện:
// confirm, reject, checkIn, checkOut, cancel
func TransitionBooking(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var request dto.TransitionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateTransitionReason(request.Event, request.Reason); err != nil {
		respondAppError(c, err)
		return
	}

	bookingService := services.NewBookingService(config.DB)
	facade := services.NewBookingFacade(config.DB)

	var booking *models.Booking
	switch request.Event {
	case "confirm":
		booking, err = bookingService.Confirm(uint(id))
	case "reject":
		booking, err = bookingService.Reject(uint(id), request.Reason)
	case "checkIn":
		booking, err = bookingService.CheckIn(uint(id), request.Override)
	case "checkOut":
		booking, _, err = facade.CheckOutBooking(uint(id))
	case "cancel":
		booking, err = facade.CancelBooking(uint(id), request.Reason)
	default:
		response.BadRequest(c, fmt.Sprintf("Sự kiện không hợp lệ: %s", request.Event))
		return
	}

	if err != nil {
		respondAppError(c, err)
		return
	}

	invalidateBookingCaches()
	broadcastBookingEvent(booking, request.Event)

	response.Success(c, convertToBookingResponse(booking))
}

func DeleteBooking(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	if err := services.NewBookingService(config.DB).Delete(uint(id)); err != nil {
		respondAppError(c, err)
		return
	}

	invalidateBookingCaches()
	response.Success(c, nil)
}

// GetRoomCalendar trả về lưới lịch phòng theo chi nhánh với bộ lọc
// tầng/loại phòng và cửa sổ ngày
func GetRoomCalendar(c *gin.Context) {
	branchID, err := strconv.Atoi(c.Query("branchId"))
	if err != nil || branchID <= 0 {
		response.BadRequest(c, "Chi nhánh không hợp lệ")
		return
	}

	var floorID, roomTypeID *uint
	if floorStr := c.Query("floorId"); floorStr != "" {
		if parsed, err := strconv.Atoi(floorStr); err == nil && parsed > 0 {
			value := uint(parsed)
			floorID = &value
		}
	}
	if typeStr := c.Query("roomTypeId"); typeStr != "" {
		if parsed, err := strconv.Atoi(typeStr); err == nil && parsed > 0 {
			value := uint(parsed)
			roomTypeID = &value
		}
	}

	fromDate, err := time.Parse(models.DateLayout, c.Query("fromDate"))
	if err != nil {
		response.BadRequest(c, "Ngày bắt đầu không hợp lệ")
		return
	}
	toDate, err := time.Parse(models.DateLayout, c.Query("toDate"))
	if err != nil {
		response.BadRequest(c, "Ngày kết thúc không hợp lệ")
		return
	}
	if toDate.Before(fromDate) {
		response.BadRequest(c, "Ngày kết thúc phải sau ngày bắt đầu")
		return
	}

	calendar, err := services.GetCalendar(uint(branchID), floorID, roomTypeID, fromDate, toDate)
	if err != nil {
		respondAppError(c, err)
		return
	}

	response.Success(c, calendar)
}

// respondAppError ánh xạ AppError sang HTTP status phù hợp
func respondAppError(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	if appErr == nil {
		switch err {
		case apperrors.ErrBookingNotFound, apperrors.ErrRoomNotFound,
			apperrors.ErrInvoiceNotFound, apperrors.ErrPaymentNotFound:
			response.NotFound(c)
		default:
			response.ServerError(c)
		}
		return
	}

	switch appErr.Code {
	case apperrors.ErrCodeRoomNotAvailable, apperrors.ErrCodeDataIntegrity:
		response.Conflict(c)
	case apperrors.ErrCodeNetwork:
		response.ServerError(c)
	default:
		response.BadRequest(c, appErr.Message)
	}
}
