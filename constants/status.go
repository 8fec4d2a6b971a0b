package constants

// User status
const (
	UserStatusActive   = 1
	UserStatusInactive = 0
)

// Booking status
const (
	BookingStatusPending    = 0
	BookingStatusConfirmed  = 1
	BookingStatusCheckedIn  = 2
	BookingStatusCheckedOut = 3
	BookingStatusCancelled  = 4
	BookingStatusRejected   = 5
)

// Room status
const (
	RoomStatusAvailable   = 0
	RoomStatusBooked      = 1
	RoomStatusCleaning    = 2
	RoomStatusMaintenance = 3
)

// Payment status
const (
	PaymentStatusPending   = 0
	PaymentStatusConfirmed = 1
	PaymentStatusRefunded  = 2
	PaymentStatusCancelled = 3
)

// Payment type
const (
	PaymentTypeDeposit = 0
	PaymentTypePayment = 1
	PaymentTypeRefund  = 2
)

// Invoice status
const (
	InvoiceStatusUnpaid = 0
	InvoiceStatusPaid   = 1
	InvoiceStatusVoided = 2
)

// Restaurant order status
const (
	RestaurantOrderOpen    = 0
	RestaurantOrderSettled = 1
	RestaurantOrderVoided  = 2
)

// Payment method codes
const (
	PaymentMethodCash         = "cash"
	PaymentMethodBankTransfer = "bank_transfer"
	PaymentMethodVNPay        = "vnpay"
)
