package models

import (
	"time"

	"hrms/errors"
)

// Payment type constants
const (
	PaymentTypeDeposit = 0
	PaymentTypePayment = 1
	PaymentTypeRefund  = 2
)

// Payment status constants
const (
	PaymentStatusPending   = 0
	PaymentStatusConfirmed = 1
	PaymentStatusRefunded  = 2
	PaymentStatusCancelled = 3
)

// Payment thuộc về đúng một hóa đơn khách sạn hoặc nhà hàng, không bao giờ cả hai
type Payment struct {
	ID                  uint          `json:"id" gorm:"primaryKey"`
	HotelInvoiceID      *uint         `json:"hotelInvoiceId" gorm:"index"`
	RestaurantInvoiceID *uint         `json:"restaurantInvoiceId" gorm:"index"`
	Type                int           `json:"type"`
	Amount              float64       `json:"amount"` // Luôn dương, refund trừ vào sổ khi tính
	Status              int           `json:"status"`
	MethodID            uint          `json:"methodId"`
	Method              PaymentMethod `json:"method" gorm:"foreignKey:MethodID"`
	TransactionRef      string        `json:"transactionRef,omitempty"`
	Notes               string        `json:"notes,omitempty"`
	CreatedAt           time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt           time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
}

// ValidateInvoiceRef kiểm tra payment gắn với đúng một hóa đơn
func (p *Payment) ValidateInvoiceRef() error {
	if p.HotelInvoiceID == nil && p.RestaurantInvoiceID == nil {
		return errors.NewAppError(errors.ErrCodeInvalidInvoiceRef, "payment phải thuộc về một hóa đơn", nil)
	}
	if p.HotelInvoiceID != nil && p.RestaurantInvoiceID != nil {
		return errors.NewAppError(errors.ErrCodeInvalidInvoiceRef, "payment không được thuộc về cả hai loại hóa đơn", nil)
	}
	return nil
}

type PaymentMethod struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	Code   string `json:"code" gorm:"unique;size:20"`
	Name   string `json:"name"`
	Status int    `json:"status" gorm:"default:1"`
}

// DefaultPaymentMethods danh sách phương thức thanh toán mặc định
func DefaultPaymentMethods() []PaymentMethod {
	return []PaymentMethod{
		{Code: "cash", Name: "Tiền mặt"},
		{Code: "bank_transfer", Name: "Chuyển khoản ngân hàng"},
		{Code: "vnpay", Name: "VNPay"},
	}
}
