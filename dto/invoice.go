package dto

import "time"

// InvoiceResponse là DTO cho response của hóa đơn
type InvoiceResponse struct {
	ID                   uint              `json:"id"`
	InvoiceCode          string            `json:"invoiceCode"`
	BookingID            uint              `json:"bookingId,omitempty"`
	OrderID              uint              `json:"orderId,omitempty"`
	TotalAmount          float64           `json:"totalAmount"`
	DiscountAmount       float64           `json:"discountAmount"`
	FinalAmount          float64           `json:"finalAmount"`
	PaidAmount           float64           `json:"paidAmount"`
	RemainingAmount      float64           `json:"remainingAmount"`
	Status               int               `json:"status"`
	BookingStatusAtIssue int               `json:"bookingStatusAtIssue,omitempty"`
	IssueDate            time.Time         `json:"issueDate"`
	PaymentDate          *time.Time        `json:"paymentDate,omitempty"`
	Payments             []PaymentResponse `json:"payments"`
}

// SendInvoiceEmailRequest là DTO cho request gửi hóa đơn qua email
type SendInvoiceEmailRequest struct {
	Email string `json:"email" binding:"required"`
}
