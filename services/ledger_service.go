package services

import (
	"errors"

	apperrors "hrms/errors"
	"hrms/models"

	"gorm.io/gorm"
)

// PaidTotal cộng dồn số đã thu từ danh sách payment: deposit và payment
// cộng vào, refund trừ ra; payment đã hủy không tính.
func PaidTotal(payments []models.Payment) float64 {
	total := 0.0
	for _, p := range payments {
		if p.Status == models.PaymentStatusCancelled {
			continue
		}
		switch p.Type {
		case models.PaymentTypeDeposit, models.PaymentTypePayment:
			total += p.Amount
		case models.PaymentTypeRefund:
			total -= p.Amount
		}
	}
	return total
}

// OutstandingBalance tính công nợ còn lại, không bao giờ âm
func OutstandingBalance(finalAmount float64, payments []models.Payment) float64 {
	balance := finalAmount - PaidTotal(payments)
	if balance < 0 {
		return 0
	}
	return balance
}

// ChangeDue tính tiền thối lại cho thanh toán tiền mặt, không bao giờ âm
func ChangeDue(receivedAmount, outstanding float64) float64 {
	change := receivedAmount - outstanding
	if change < 0 {
		return 0
	}
	return change
}

// LedgerService quản lý sổ thanh toán của booking
type LedgerService struct {
	db       *gorm.DB
	invoices *InvoiceService
}

func NewLedgerService(db *gorm.DB) *LedgerService {
	return &LedgerService{
		db:       db,
		invoices: NewInvoiceService(db),
	}
}

// PaymentsForBooking lấy danh sách payment của booking (qua hóa đơn của nó)
func (s *LedgerService) PaymentsForBooking(bookingID uint) ([]models.Payment, error) {
	invoice, err := s.invoices.GetByBookingID(bookingID)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvoiceNotFound) {
			return []models.Payment{}, nil
		}
		return nil, err
	}
	return invoice.Payments, nil
}

// OutstandingForBooking tính công nợ còn lại của booking
func (s *LedgerService) OutstandingForBooking(bookingID uint) (float64, error) {
	var booking models.Booking
	if err := s.db.First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperrors.ErrBookingNotFound
		}
		return 0, err
	}

	payments, err := s.PaymentsForBooking(bookingID)
	if err != nil {
		return 0, err
	}
	return OutstandingBalance(booking.FinalAmount(), payments), nil
}

// CanCheckout luôn cho phép trả phòng kể cả khi còn công nợ:
// trả phòng và thu tiền là hai bước tách rời, tiền thu ở màn thanh toán sau
func (s *LedgerService) CanCheckout(bookingID uint) bool {
	return true
}

// RecordPayment ghi một payment cho booking. Amount phải dương;
// hóa đơn được phát hành idempotent nếu chưa có rồi payment gắn vào đó.
// Chỉ ghi sổ sau khi DB xác nhận thành công.
func (s *LedgerService) RecordPayment(bookingID uint, amount float64, methodID uint, paymentType int) (*models.Payment, error) {
	if amount <= 0 {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidAmount, "số tiền phải lớn hơn 0", nil)
	}

	var method models.PaymentMethod
	if err := s.db.First(&method, methodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidPaymentMethod, "phương thức thanh toán không tồn tại", nil)
		}
		return nil, err
	}

	invoice, err := s.invoices.GenerateForBooking(bookingID)
	if err != nil {
		return nil, err
	}

	status := models.PaymentStatusPending
	if method.Code == "cash" {
		// Tiền mặt thu tại quầy, xác nhận ngay
		status = models.PaymentStatusConfirmed
	}

	payment := models.Payment{
		HotelInvoiceID: &invoice.ID,
		Type:           paymentType,
		Amount:         amount,
		Status:         status,
		MethodID:       method.ID,
	}
	if err := payment.ValidateInvoiceRef(); err != nil {
		return nil, err
	}

	if err := s.db.Create(&payment).Error; err != nil {
		return nil, err
	}

	if _, err := s.invoices.RecalculateHotelInvoice(invoice.ID); err != nil {
		return nil, err
	}

	payment.Method = method
	return &payment, nil
}

// RecordCashPayment thu tiền mặt tất toán công nợ. Từ chối tại chỗ khi
// tiền khách đưa nhỏ hơn công nợ, không đụng tới DB; trả về tiền thối.
func (s *LedgerService) RecordCashPayment(bookingID uint, receivedAmount float64, methodID uint) (*models.Payment, float64, error) {
	if receivedAmount <= 0 {
		return nil, 0, apperrors.NewAppError(apperrors.ErrCodeInvalidAmount, "số tiền phải lớn hơn 0", nil)
	}

	outstanding, err := s.OutstandingForBooking(bookingID)
	if err != nil {
		return nil, 0, err
	}

	if receivedAmount < outstanding {
		return nil, 0, apperrors.NewAppError(
			apperrors.ErrCodeInsufficientCash,
			"tiền khách đưa không đủ thanh toán công nợ",
			nil,
		)
	}

	change := ChangeDue(receivedAmount, outstanding)

	if outstanding == 0 {
		// Không còn công nợ, không ghi thêm payment
		return nil, change, nil
	}

	payment, err := s.RecordPayment(bookingID, outstanding, methodID, models.PaymentTypePayment)
	if err != nil {
		return nil, 0, err
	}
	return payment, change, nil
}

// ConfirmPayment xác nhận payment đang chờ (chuyển khoản/VNPay đã về)
func (s *LedgerService) ConfirmPayment(paymentID uint) (*models.Payment, error) {
	var payment models.Payment
	if err := s.db.First(&payment, paymentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPaymentNotFound
		}
		return nil, err
	}

	if payment.Status != models.PaymentStatusPending {
		return nil, apperrors.NewAppError(apperrors.ErrCodeValidation, "chỉ xác nhận được payment đang chờ", nil)
	}

	payment.Status = models.PaymentStatusConfirmed
	if err := s.db.Save(&payment).Error; err != nil {
		return nil, err
	}

	if payment.HotelInvoiceID != nil {
		if _, err := s.invoices.RecalculateHotelInvoice(*payment.HotelInvoiceID); err != nil {
			return nil, err
		}
	}
	return &payment, nil
}

// RefundPayment hoàn tiền một payment đã xác nhận: đánh dấu refunded
// và ghi thêm một bản ghi refund cùng số tiền vào sổ
func (s *LedgerService) RefundPayment(paymentID uint) (*models.Payment, error) {
	var payment models.Payment
	if err := s.db.First(&payment, paymentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPaymentNotFound
		}
		return nil, err
	}

	if payment.Status != models.PaymentStatusConfirmed {
		return nil, apperrors.NewAppError(apperrors.ErrCodeValidation, "chỉ hoàn tiền được payment đã xác nhận", nil)
	}

	refund := models.Payment{
		HotelInvoiceID:      payment.HotelInvoiceID,
		RestaurantInvoiceID: payment.RestaurantInvoiceID,
		Type:                models.PaymentTypeRefund,
		Amount:              payment.Amount,
		Status:              models.PaymentStatusConfirmed,
		MethodID:            payment.MethodID,
	}
	if err := s.db.Create(&refund).Error; err != nil {
		return nil, err
	}

	payment.Status = models.PaymentStatusRefunded
	if err := s.db.Save(&payment).Error; err != nil {
		return nil, err
	}

	if payment.HotelInvoiceID != nil {
		if _, err := s.invoices.RecalculateHotelInvoice(*payment.HotelInvoiceID); err != nil {
			return nil, err
		}
	}
	return &refund, nil
}
