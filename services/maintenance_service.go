package services

import (
	"time"

	"hrms/config"
	"hrms/models"
	"hrms/services/notification"
	"hrms/utils"

	"github.com/olahol/melody"
)

// MaintenanceService dọn dẹp dữ liệu booking định kỳ, chạy bởi cron 0h hằng ngày
type MaintenanceService struct {
	bookings *BookingService
}

func NewMaintenanceService() *MaintenanceService {
	return &MaintenanceService{bookings: NewBookingService(config.DB)}
}

// ExpireStalePending từ chối các booking pending đã qua ngày nhận phòng
// mà không được xác nhận, trả phòng về quỹ trống
func (s *MaintenanceService) ExpireStalePending(m *melody.Melody) error {
	var pendings []models.Booking
	if err := config.DB.Where("status = ?", models.BookingStatusPending).Find(&pendings).Error; err != nil {
		return err
	}

	today := models.Today()
	notifier := notification.NewMelodyService(m)

	for _, booking := range pendings {
		checkIn, err := time.Parse(models.DateLayout, booking.CheckInDate)
		if err != nil {
			utils.LogError("booking %s có ngày nhận phòng không hợp lệ: %v", booking.Code, err)
			continue
		}
		if !checkIn.Before(today) {
			continue
		}

		if _, err := s.bookings.Reject(booking.ID, "quá hạn xác nhận, tự động từ chối"); err != nil {
			utils.LogError("không từ chối được booking quá hạn %s: %v", booking.Code, err)
			continue
		}

		message := notification.NewBookingEventBuilder(booking.Code, "autoExpire",
			models.BookingStatusName(models.BookingStatusRejected)).Build()
		if err := notifier.SendMessage(message); err != nil {
			utils.LogError("không gửi được thông báo hủy booking %s: %v", booking.Code, err)
		}
	}

	return nil
}

// CleanupPastRoomStatuses xóa các khoảng chiếm phòng đã qua để bảng
// room_statuses không phình ra theo thời gian
func (s *MaintenanceService) CleanupPastRoomStatuses() error {
	today := models.Today()
	return config.DB.Where("to_date < ?", today).Delete(&models.RoomStatus{}).Error
}
