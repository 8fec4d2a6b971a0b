package builders

import (
	"hrms/models"
)

// BookingBuilder giúp tạo booking theo từng bước
type BookingBuilder struct {
	booking *models.Booking
}

// NewBookingBuilder tạo instance mới của BookingBuilder
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		booking: &models.Booking{},
	}
}

// WithRoom thêm thông tin phòng
func (b *BookingBuilder) WithRoom(roomID uint) *BookingBuilder {
	b.booking.RoomID = roomID
	return b
}

// WithCustomer thêm hồ sơ khách đã lưu
func (b *BookingBuilder) WithCustomer(customerID uint) *BookingBuilder {
	b.booking.CustomerID = &customerID
	return b
}

// WithGuestInfo thêm thông tin khách vãng lai
func (b *BookingBuilder) WithGuestInfo(guestName, guestPhone, guestEmail string) *BookingBuilder {
	b.booking.GuestName = guestName
	b.booking.GuestPhone = guestPhone
	b.booking.GuestEmail = guestEmail
	return b
}

// WithCheckIn thêm ngày nhận phòng
func (b *BookingBuilder) WithCheckIn(checkIn string) *BookingBuilder {
	b.booking.CheckInDate = checkIn
	return b
}

// WithCheckOut thêm ngày trả phòng
func (b *BookingBuilder) WithCheckOut(checkOut string) *BookingBuilder {
	b.booking.CheckOutDate = checkOut
	return b
}

// WithStatus thêm trạng thái
func (b *BookingBuilder) WithStatus(status int) *BookingBuilder {
	b.booking.Status = status
	return b
}

// WithServiceAmount thêm phụ thu dịch vụ
func (b *BookingBuilder) WithServiceAmount(amount float64) *BookingBuilder {
	b.booking.ServiceAmount = amount
	return b
}

// WithDiscount thêm phần trăm giảm giá
func (b *BookingBuilder) WithDiscount(percent float64) *BookingBuilder {
	b.booking.DiscountPercent = percent
	return b
}

// Build tạo booking hoàn chỉnh
func (b *BookingBuilder) Build() *models.Booking {
	return b.booking
}
