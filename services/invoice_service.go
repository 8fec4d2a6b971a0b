package services

import (
	"errors"
	"time"

	apperrors "hrms/errors"
	"hrms/models"

	"gorm.io/gorm"
)

// InvoiceService xử lý phát hành hóa đơn khách sạn/nhà hàng
type InvoiceService struct {
	db *gorm.DB
}

func NewInvoiceService(db *gorm.DB) *InvoiceService {
	return &InvoiceService{db: db}
}

// GetByBookingID lấy hóa đơn khách sạn theo booking
func (s *InvoiceService) GetByBookingID(bookingID uint) (*models.HotelInvoice, error) {
	var invoice models.HotelInvoice
	if err := s.db.Preload("Payments").Where("booking_id = ?", bookingID).First(&invoice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvoiceNotFound
		}
		return nil, err
	}
	return &invoice, nil
}

// GenerateForBooking phát hành hóa đơn cho booking, idempotent:
// gọi lại cho cùng booking luôn trả về hóa đơn đã có, không tạo bản sao.
// Trạng thái booking tại thời điểm phát hành được chụp vào hóa đơn để
// hóa đơn cũ vẫn đúng khi booking bị sửa về sau.
func (s *InvoiceService) GenerateForBooking(bookingID uint) (*models.HotelInvoice, error) {
	if existing, err := s.GetByBookingID(bookingID); err == nil {
		return existing, nil
	} else if !errors.Is(err, apperrors.ErrInvoiceNotFound) {
		return nil, err
	}

	var booking models.Booking
	if err := s.db.Preload("Room").First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, err
	}

	invoice := models.HotelInvoice{
		BookingID:            booking.ID,
		TotalAmount:          booking.TotalAmount,
		DiscountAmount:       booking.DiscountAmount(),
		FinalAmount:          booking.FinalAmount(),
		PaidAmount:           0,
		RemainingAmount:      booking.FinalAmount(),
		Status:               models.InvoiceStatusUnpaid,
		BookingStatusAtIssue: booking.Status,
		IssueDate:            time.Now(),
	}

	if err := s.db.Create(&invoice).Error; err != nil {
		// Hai request tạo cùng lúc: unique index trên booking_id nổ,
		// coi như thành công và trả về hóa đơn đã có
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			existing, fetchErr := s.GetByBookingID(bookingID)
			if fetchErr != nil {
				return nil, apperrors.NewAppError(apperrors.ErrCodeDuplicateInvoice, "hóa đơn đã tồn tại nhưng không đọc lại được", fetchErr)
			}
			return existing, nil
		}
		return nil, err
	}

	return &invoice, nil
}

// GetByRestaurantOrderID lấy hóa đơn nhà hàng theo order
func (s *InvoiceService) GetByRestaurantOrderID(orderID uint) (*models.RestaurantInvoice, error) {
	var invoice models.RestaurantInvoice
	if err := s.db.Preload("Payments").Where("order_id = ?", orderID).First(&invoice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvoiceNotFound
		}
		return nil, err
	}
	return &invoice, nil
}

// GenerateForRestaurantOrder phát hành hóa đơn nhà hàng, idempotent như bên khách sạn
func (s *InvoiceService) GenerateForRestaurantOrder(orderID uint) (*models.RestaurantInvoice, error) {
	if existing, err := s.GetByRestaurantOrderID(orderID); err == nil {
		return existing, nil
	} else if !errors.Is(err, apperrors.ErrInvoiceNotFound) {
		return nil, err
	}

	var order models.RestaurantOrder
	if err := s.db.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, err
	}

	invoice := models.RestaurantInvoice{
		OrderID:         order.ID,
		TotalAmount:     order.TotalAmount,
		DiscountAmount:  order.TotalAmount * order.DiscountPercent / 100,
		FinalAmount:     order.FinalAmount(),
		PaidAmount:      0,
		RemainingAmount: order.FinalAmount(),
		Status:          models.InvoiceStatusUnpaid,
		IssueDate:       time.Now(),
	}

	if err := s.db.Create(&invoice).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			existing, fetchErr := s.GetByRestaurantOrderID(orderID)
			if fetchErr != nil {
				return nil, apperrors.NewAppError(apperrors.ErrCodeDuplicateInvoice, "hóa đơn đã tồn tại nhưng không đọc lại được", fetchErr)
			}
			return existing, nil
		}
		return nil, err
	}

	return &invoice, nil
}

// RecalculateHotelInvoice tính lại số đã thu/còn lại từ danh sách payment
func (s *InvoiceService) RecalculateHotelInvoice(invoiceID uint) (*models.HotelInvoice, error) {
	var invoice models.HotelInvoice
	if err := s.db.Preload("Payments").First(&invoice, invoiceID).Error; err != nil {
		return nil, err
	}

	paid := PaidTotal(invoice.Payments)
	invoice.PaidAmount = paid
	invoice.RemainingAmount = OutstandingBalance(invoice.FinalAmount, invoice.Payments)
	if invoice.RemainingAmount <= 0 && invoice.Status == models.InvoiceStatusUnpaid {
		invoice.Status = models.InvoiceStatusPaid
		now := time.Now()
		invoice.PaymentDate = &now
	}

	if err := s.db.Save(&invoice).Error; err != nil {
		return nil, err
	}
	return &invoice, nil
}

// VoidForBooking hủy hóa đơn khi booking bị hủy sau khi đã xác nhận
func (s *InvoiceService) VoidForBooking(bookingID uint) error {
	var invoice models.HotelInvoice
	if err := s.db.Where("booking_id = ?", bookingID).First(&invoice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	invoice.Status = models.InvoiceStatusVoided
	return s.db.Save(&invoice).Error
}
