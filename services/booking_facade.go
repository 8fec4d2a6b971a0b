package services

import (
	"hrms/models"
	"hrms/services/logger"

	"gorm.io/gorm"
)

// BookingFacade gom các bước nghiệp vụ nhiều service thành một lời gọi
// cho controller: đặt phòng, hủy, trả phòng kèm phát hành hóa đơn.
type BookingFacade struct {
	bookings *BookingService
	ledger   *LedgerService
	invoices *InvoiceService
	log      logger.Logger
}

// NewBookingFacade tạo instance mới của BookingFacade
func NewBookingFacade(db *gorm.DB) *BookingFacade {
	return &BookingFacade{
		bookings: NewBookingService(db),
		ledger:   NewLedgerService(db),
		invoices: NewInvoiceService(db),
		log:      logger.NewDefaultLogger(logger.InfoLevel),
	}
}

// CreateBooking tạo booking mới và gửi email xác nhận nếu có địa chỉ
func (f *BookingFacade) CreateBooking(booking *models.Booking) (*models.Booking, error) {
	created, err := f.bookings.Create(booking)
	if err != nil {
		return nil, err
	}

	if created.GuestEmail != "" {
		if err := SendBookingEmail(created.GuestEmail, created); err != nil {
			// Email hỏng không làm hỏng booking
			f.log.Error("gửi email xác nhận đặt phòng thất bại: %v", err)
		}
	}

	return created, nil
}

// CancelBooking hủy booking và vô hiệu hóa đơn nếu đã phát hành
func (f *BookingFacade) CancelBooking(bookingID uint, reason string) (*models.Booking, error) {
	booking, err := f.bookings.Cancel(bookingID, reason)
	if err != nil {
		return nil, err
	}

	if err := f.invoices.VoidForBooking(booking.ID); err != nil {
		f.log.Error("vô hiệu hóa đơn của booking %d thất bại: %v", booking.ID, err)
	}

	return booking, nil
}

// CheckOutBooking trả phòng rồi phát hành hóa đơn (idempotent) cho booking
func (f *BookingFacade) CheckOutBooking(bookingID uint) (*models.Booking, *models.HotelInvoice, error) {
	booking, err := f.bookings.CheckOut(bookingID)
	if err != nil {
		return nil, nil, err
	}

	invoice, err := f.invoices.GenerateForBooking(booking.ID)
	if err != nil {
		return nil, nil, err
	}

	return booking, invoice, nil
}
