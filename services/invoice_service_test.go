package services

import (
	"encoding/json"
	"fmt"
	"testing"

	"hrms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateForBookingIdempotent(t *testing.T) {
	db := newTestDB(t)
	booking := seedBooking(t, db, 1000000, models.BookingStatusCheckedOut)
	invoices := NewInvoiceService(db)

	first, err := invoices.GenerateForBooking(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("HDKS%06d", booking.ID), first.InvoiceCode)
	assert.Equal(t, 1000000.0, first.FinalAmount)
	assert.Equal(t, 1000000.0, first.RemainingAmount)

	// Gọi lại trả về đúng hóa đơn cũ, cùng ID và cùng mã
	second, err := invoices.GenerateForBooking(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.InvoiceCode, second.InvoiceCode)

	var count int64
	require.NoError(t, db.Model(&models.HotelInvoice{}).Where("booking_id = ?", booking.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGenerateForBookingSnapshotsStatus(t *testing.T) {
	db := newTestDB(t)
	booking := seedBooking(t, db, 1000000, models.BookingStatusCheckedOut)
	invoices := NewInvoiceService(db)

	invoice, err := invoices.GenerateForBooking(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCheckedOut, invoice.BookingStatusAtIssue)

	// Booking đổi trạng thái sau khi phát hành, hóa đơn giữ nguyên snapshot
	booking.Status = models.BookingStatusCancelled
	require.NoError(t, db.Save(booking).Error)

	reloaded, err := invoices.GetByBookingID(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCheckedOut, reloaded.BookingStatusAtIssue)
}

func TestGenerateForBookingAppliesDiscount(t *testing.T) {
	db := newTestDB(t)
	booking := seedBooking(t, db, 1000000, models.BookingStatusCheckedOut)
	booking.DiscountPercent = 10
	require.NoError(t, db.Save(booking).Error)

	invoice, err := NewInvoiceService(db).GenerateForBooking(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, 1000000.0, invoice.TotalAmount)
	assert.Equal(t, 100000.0, invoice.DiscountAmount)
	assert.Equal(t, 900000.0, invoice.FinalAmount)
}

func TestVoidForBooking(t *testing.T) {
	db := newTestDB(t)
	booking := seedBooking(t, db, 1000000, models.BookingStatusConfirmed)
	invoices := NewInvoiceService(db)

	// Chưa có hóa đơn thì void là no-op
	require.NoError(t, invoices.VoidForBooking(booking.ID))

	invoice, err := invoices.GenerateForBooking(booking.ID)
	require.NoError(t, err)

	require.NoError(t, invoices.VoidForBooking(booking.ID))

	reloaded, err := invoices.GetByBookingID(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, invoice.ID, reloaded.ID)
	assert.Equal(t, models.InvoiceStatusVoided, reloaded.Status)
}

func TestGenerateForRestaurantOrderIdempotent(t *testing.T) {
	db := newTestDB(t)

	items, err := json.Marshal([]map[string]interface{}{
		{"name": "Phở bò", "quantity": 2, "unitPrice": 65000},
	})
	require.NoError(t, err)

	order := models.RestaurantOrder{
		BranchID:        1,
		TableNumber:     5,
		Items:           items,
		TotalAmount:     130000,
		DiscountPercent: 0,
		Status:          models.RestaurantOrderOpen,
	}
	require.NoError(t, db.Create(&order).Error)

	invoices := NewInvoiceService(db)

	first, err := invoices.GenerateForRestaurantOrder(order.ID)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("HDNH%06d", order.ID), first.InvoiceCode)
	assert.Equal(t, 130000.0, first.FinalAmount)

	second, err := invoices.GenerateForRestaurantOrder(order.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}
