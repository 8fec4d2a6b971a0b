package dto

import "time"

// CreatePaymentRequest là DTO cho request ghi một khoản thu cho booking
type CreatePaymentRequest struct {
	BookingID uint    `json:"bookingId" binding:"required"`
	Amount    float64 `json:"amount" binding:"required"`
	MethodID  uint    `json:"methodId" binding:"required"`
	Type      int     `json:"type"` // 0: đặt cọc, 1: thanh toán
}

// CashPaymentRequest là DTO cho request thu tiền mặt tất toán công nợ
type CashPaymentRequest struct {
	BookingID      uint    `json:"bookingId" binding:"required"`
	ReceivedAmount float64 `json:"receivedAmount" binding:"required"`
}

// CashPaymentResponse trả về khoản thu kèm tiền thối lại cho khách
type CashPaymentResponse struct {
	Payment     *PaymentResponse `json:"payment"`
	ChangeDue   float64          `json:"changeDue"`
	Outstanding float64          `json:"outstanding"`
}

// PaymentResponse là DTO cho response của payment
type PaymentResponse struct {
	ID             uint      `json:"id"`
	Type           int       `json:"type"`
	Amount         float64   `json:"amount"`
	Status         int       `json:"status"`
	MethodCode     string    `json:"methodCode"`
	MethodName     string    `json:"methodName"`
	TransactionRef string    `json:"transactionRef,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// LedgerResponse là DTO cho sổ thanh toán của một booking
type LedgerResponse struct {
	BookingID   uint              `json:"bookingId"`
	FinalAmount float64           `json:"finalAmount"`
	PaidAmount  float64           `json:"paidAmount"`
	Outstanding float64           `json:"outstanding"`
	Payments    []PaymentResponse `json:"payments"`
}

// BankTransferQRRequest là DTO cho request tạo mã QR chuyển khoản
type BankTransferQRRequest struct {
	BookingID uint    `json:"bookingId" binding:"required"`
	Amount    float64 `json:"amount" binding:"required"`
}
