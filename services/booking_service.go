package services

import (
	"errors"
	"time"

	"hrms/commands"
	"hrms/constants"
	apperrors "hrms/errors"
	"hrms/models"

	"gorm.io/gorm"
)

// BookingService là đầu mối duy nhất cho vòng đời booking: mọi chuyển
// trạng thái đi qua state machine trước, hợp lệ rồi mới ghi DB; ghi lỗi
// thì trạng thái cục bộ không đổi và lỗi trả về cho caller.
type BookingService struct {
	db *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{db: db}
}

func (s *BookingService) GetByID(bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.Preload("Room").Preload("Customer").First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (s *BookingService) GetByCode(code string) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.Preload("Room").Preload("Customer").Where("code = ?", code).First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// Create tạo booking mới sau khi chặn đặt trùng và tính tiền.
// totalAmount = giá phòng × số đêm + phụ thu dịch vụ, giảm giá tính khi thu.
func (s *BookingService) Create(booking *models.Booking) (*models.Booking, error) {
	checkIn, err := time.Parse(models.DateLayout, booking.CheckInDate)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "ngày nhận phòng không hợp lệ", err)
	}
	checkOut, err := time.Parse(models.DateLayout, booking.CheckOutDate)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "ngày trả phòng không hợp lệ", err)
	}
	if !checkOut.After(checkIn) {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidDateRange, "ngày trả phòng phải sau ngày nhận phòng", nil)
	}

	var room models.Room
	if err := s.db.First(&room, booking.RoomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, err
	}

	overlapping, err := FindOverlappingBookings(s.db, booking.RoomID, checkIn, checkOut, 0)
	if err != nil {
		return nil, err
	}
	if len(overlapping) > 0 {
		return nil, apperrors.NewAppError(apperrors.ErrCodeRoomNotAvailable,
			"phòng đã được đặt trong khoảng thời gian này", nil)
	}

	// Khoảng dọn dẹp/bảo trì cũng chặn đặt phòng
	var blocked []models.RoomStatus
	if err := s.db.Where("room_id = ? AND status IN ? AND from_date < ? AND to_date > ?",
		booking.RoomID,
		[]int{constants.RoomStatusCleaning, constants.RoomStatusMaintenance},
		checkOut, checkIn).Find(&blocked).Error; err != nil {
		return nil, err
	}
	if len(blocked) > 0 {
		return nil, apperrors.NewAppError(apperrors.ErrCodeRoomNotAvailable,
			"phòng đang dọn dẹp hoặc bảo trì trong khoảng thời gian này", nil)
	}

	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	booking.RoomPrice = room.Price
	booking.TotalAmount = room.Price*float64(nights) + booking.ServiceAmount
	booking.Status = models.BookingStatusPending

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := commands.NewCreateBookingCommand(booking, tx).Execute(); err != nil {
			return err
		}
		roomStatus := models.RoomStatus{
			RoomID:    booking.RoomID,
			BookingID: &booking.ID,
			Status:    constants.RoomStatusBooked,
			FromDate:  checkIn,
			ToDate:    checkOut,
		}
		return tx.Create(&roomStatus).Error
	})
	if err != nil {
		return nil, err
	}

	return booking, nil
}

func (s *BookingService) Confirm(bookingID uint) (*models.Booking, error) {
	booking, err := s.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if err := models.GetBookingState(booking.Status).Confirm(booking); err != nil {
		return nil, err
	}
	if err := commands.NewUpdateBookingCommand(booking, s.db).Execute(); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *BookingService) Reject(bookingID uint, reason string) (*models.Booking, error) {
	booking, err := s.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if err := models.GetBookingState(booking.Status).Reject(booking, reason); err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(booking).Error; err != nil {
			return err
		}
		return s.releaseRoomStatus(tx, booking.ID)
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *BookingService) CheckIn(bookingID uint, override bool) (*models.Booking, error) {
	booking, err := s.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if err := models.GetBookingState(booking.Status).CheckIn(booking, override); err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(booking).Error; err != nil {
			return err
		}
		return tx.Model(&models.Room{}).Where("id = ?", booking.RoomID).
			Update("status", constants.RoomStatusBooked).Error
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

// CheckOut trả phòng: phòng chuyển sang dọn dẹp trong ngày.
// Công nợ còn lại không chặn trả phòng, thu nốt ở màn thanh toán.
func (s *BookingService) CheckOut(bookingID uint) (*models.Booking, error) {
	booking, err := s.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if err := models.GetBookingState(booking.Status).CheckOut(booking); err != nil {
		return nil, err
	}

	today := models.Today()
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(booking).Error; err != nil {
			return err
		}
		if err := s.releaseRoomStatus(tx, booking.ID); err != nil {
			return err
		}
		cleaning := models.RoomStatus{
			RoomID:   booking.RoomID,
			Status:   constants.RoomStatusCleaning,
			FromDate: today,
			ToDate:   today.AddDate(0, 0, 1),
			Reason:   "cleaning",
		}
		if err := tx.Create(&cleaning).Error; err != nil {
			return err
		}
		return tx.Model(&models.Room{}).Where("id = ?", booking.RoomID).
			Update("status", constants.RoomStatusCleaning).Error
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *BookingService) Cancel(bookingID uint, reason string) (*models.Booking, error) {
	booking, err := s.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if err := models.GetBookingState(booking.Status).Cancel(booking, reason); err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(booking).Error; err != nil {
			return err
		}
		return s.releaseRoomStatus(tx, booking.ID)
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

// Delete xóa booking chết (pending chưa xác nhận, đã hủy hoặc đã từ chối)
func (s *BookingService) Delete(bookingID uint) error {
	booking, err := s.GetByID(bookingID)
	if err != nil {
		return err
	}
	if err := models.GetBookingState(booking.Status).Delete(booking); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.releaseRoomStatus(tx, booking.ID); err != nil {
			return err
		}
		return commands.NewDeleteBookingCommand(booking.ID, tx).Execute()
	})
}

func (s *BookingService) releaseRoomStatus(tx *gorm.DB, bookingID uint) error {
	return tx.Where("booking_id = ?", bookingID).Delete(&models.RoomStatus{}).Error
}
