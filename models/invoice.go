package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Invoice status constants
const (
	InvoiceStatusUnpaid = 0
	InvoiceStatusPaid   = 1
	InvoiceStatusVoided = 2
)

// HotelInvoice được tạo nhiều nhất một lần cho mỗi booking
type HotelInvoice struct {
	ID                   uint       `json:"id" gorm:"primaryKey"`
	InvoiceCode          string     `json:"invoiceCode" gorm:"unique;size:20"`
	BookingID            uint       `json:"bookingId" gorm:"uniqueIndex"`
	Booking              Booking    `json:"booking" gorm:"foreignKey:BookingID"`
	TotalAmount          float64    `json:"totalAmount"`
	DiscountAmount       float64    `json:"discountAmount"`
	FinalAmount          float64    `json:"finalAmount"`
	PaidAmount           float64    `json:"paidAmount"`
	RemainingAmount      float64    `json:"remainingAmount"`
	Status               int        `json:"status"`
	BookingStatusAtIssue int        `json:"bookingStatusAtIssue"` // Trạng thái booking tại thời điểm phát hành
	IssueDate            time.Time  `json:"issueDate"`
	Notes                string     `json:"notes,omitempty"`
	PaymentDate          *time.Time `json:"paymentDate,omitempty"`
	Payments             []Payment  `json:"payments" gorm:"foreignKey:HotelInvoiceID"`
	CreatedAt            time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt            time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
	AdminID              uint       `json:"adminId"`
}

// Mã hóa đơn suy ra từ booking nên tạo lại hóa đơn cho cùng booking
// luôn cho cùng một mã
func (invoice *HotelInvoice) BeforeCreate(tx *gorm.DB) (err error) {
	if invoice.InvoiceCode == "" {
		invoice.InvoiceCode = fmt.Sprintf("HDKS%06d", invoice.BookingID)
	}
	if invoice.IssueDate.IsZero() {
		invoice.IssueDate = time.Now()
	}
	return nil
}

// RestaurantInvoice được tạo nhiều nhất một lần cho mỗi order nhà hàng
type RestaurantInvoice struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	InvoiceCode     string          `json:"invoiceCode" gorm:"unique;size:20"`
	OrderID         uint            `json:"orderId" gorm:"uniqueIndex"`
	Order           RestaurantOrder `json:"order" gorm:"foreignKey:OrderID"`
	TotalAmount     float64         `json:"totalAmount"`
	DiscountAmount  float64         `json:"discountAmount"`
	FinalAmount     float64         `json:"finalAmount"`
	PaidAmount      float64         `json:"paidAmount"`
	RemainingAmount float64         `json:"remainingAmount"`
	Status          int             `json:"status"`
	IssueDate       time.Time       `json:"issueDate"`
	Notes           string          `json:"notes,omitempty"`
	PaymentDate     *time.Time      `json:"paymentDate,omitempty"`
	Payments        []Payment       `json:"payments" gorm:"foreignKey:RestaurantInvoiceID"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
	AdminID         uint            `json:"adminId"`
}

func (invoice *RestaurantInvoice) BeforeCreate(tx *gorm.DB) (err error) {
	if invoice.InvoiceCode == "" {
		invoice.InvoiceCode = fmt.Sprintf("HDNH%06d", invoice.OrderID)
	}
	if invoice.IssueDate.IsZero() {
		invoice.IssueDate = time.Now()
	}
	return nil
}
