package services

import (
	"testing"

	apperrors "hrms/errors"
	"hrms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaidTotal(t *testing.T) {
	payments := []models.Payment{
		{Type: models.PaymentTypeDeposit, Amount: 300000, Status: models.PaymentStatusConfirmed},
		{Type: models.PaymentTypePayment, Amount: 500000, Status: models.PaymentStatusConfirmed},
		{Type: models.PaymentTypeRefund, Amount: 100000, Status: models.PaymentStatusConfirmed},
		// Khoản đã hủy không được tính
		{Type: models.PaymentTypePayment, Amount: 999999, Status: models.PaymentStatusCancelled},
	}

	assert.Equal(t, 700000.0, PaidTotal(payments))
}

func TestOutstandingBalance(t *testing.T) {
	payments := []models.Payment{
		{Type: models.PaymentTypeDeposit, Amount: 300000, Status: models.PaymentStatusConfirmed},
	}

	assert.Equal(t, 700000.0, OutstandingBalance(1000000, payments))

	// Thu dư vẫn không trả về công nợ âm
	overpaid := []models.Payment{
		{Type: models.PaymentTypePayment, Amount: 1500000, Status: models.PaymentStatusConfirmed},
	}
	assert.Equal(t, 0.0, OutstandingBalance(1000000, overpaid))
}

func TestChangeDue(t *testing.T) {
	assert.Equal(t, 0.0, ChangeDue(700000, 700000))
	assert.Equal(t, 50000.0, ChangeDue(750000, 700000))
	assert.Equal(t, 0.0, ChangeDue(500000, 700000))
}

// Kịch bản tất toán: booking 2 đêm x 500.000, cọc 300.000, còn 700.000.
// Khách đưa 600.000 bị từ chối không ghi gì; đưa 700.000 thì tất toán xong.
func TestCashSettlementFlow(t *testing.T) {
	db := newTestDB(t)
	booking := seedBooking(t, db, 1000000, models.BookingStatusCheckedIn)
	ledger := NewLedgerService(db)
	methodID := cashMethodID(t, db)

	// Đặt cọc 300.000
	deposit, err := ledger.RecordPayment(booking.ID, 300000, methodID, models.PaymentTypeDeposit)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusConfirmed, deposit.Status)

	outstanding, err := ledger.OutstandingForBooking(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, 700000.0, outstanding)

	// Khách đưa 600.000: từ chối tại chỗ, không ghi thêm khoản nào
	_, _, err = ledger.RecordCashPayment(booking.ID, 600000, methodID)
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeInsufficientCash))

	payments, err := ledger.PaymentsForBooking(booking.ID)
	require.NoError(t, err)
	assert.Len(t, payments, 1)

	outstanding, err = ledger.OutstandingForBooking(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, 700000.0, outstanding)

	// Khách đưa đủ 700.000: tiền thối 0, công nợ về 0
	payment, change, err := ledger.RecordCashPayment(booking.ID, 700000, methodID)
	require.NoError(t, err)
	require.NotNil(t, payment)
	assert.Equal(t, 0.0, change)
	assert.Equal(t, 700000.0, payment.Amount)

	outstanding, err = ledger.OutstandingForBooking(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, outstanding)

	// Hóa đơn đã được tính lại thành đã thanh toán
	invoice, err := NewInvoiceService(db).GetByBookingID(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.InvoiceStatusPaid, invoice.Status)
	assert.Equal(t, 0.0, invoice.RemainingAmount)
	assert.NotNil(t, invoice.PaymentDate)
}

func TestRecordCashPaymentOverpayReturnsChange(t *testing.T) {
	db := newTestDB(t)
	booking := seedBooking(t, db, 1000000, models.BookingStatusCheckedIn)
	ledger := NewLedgerService(db)
	methodID := cashMethodID(t, db)

	payment, change, err := ledger.RecordCashPayment(booking.ID, 1200000, methodID)
	require.NoError(t, err)
	require.NotNil(t, payment)

	// Chỉ ghi sổ đúng phần công nợ, phần dư thối lại cho khách
	assert.Equal(t, 1000000.0, payment.Amount)
	assert.Equal(t, 200000.0, change)
}

func TestRecordCashPaymentWhenSettled(t *testing.T) {
	db := newTestDB(t)
	booking := seedBooking(t, db, 1000000, models.BookingStatusCheckedIn)
	ledger := NewLedgerService(db)
	methodID := cashMethodID(t, db)

	_, _, err := ledger.RecordCashPayment(booking.ID, 1000000, methodID)
	require.NoError(t, err)

	// Công nợ đã về 0: không ghi thêm khoản thu, toàn bộ tiền đưa là tiền thối
	payment, change, err := ledger.RecordCashPayment(booking.ID, 50000, methodID)
	require.NoError(t, err)
	assert.Nil(t, payment)
	assert.Equal(t, 50000.0, change)

	payments, err := ledger.PaymentsForBooking(booking.ID)
	require.NoError(t, err)
	assert.Len(t, payments, 1)
}

func TestRecordPaymentRejectsNonPositiveAmount(t *testing.T) {
	db := newTestDB(t)
	booking := seedBooking(t, db, 1000000, models.BookingStatusConfirmed)
	ledger := NewLedgerService(db)
	methodID := cashMethodID(t, db)

	for _, amount := range []float64{0, -100} {
		_, err := ledger.RecordPayment(booking.ID, amount, methodID, models.PaymentTypePayment)
		require.Error(t, err)
		assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeInvalidAmount))
	}

	payments, err := ledger.PaymentsForBooking(booking.ID)
	require.NoError(t, err)
	assert.Empty(t, payments)
}

func TestCanCheckoutAlwaysTrue(t *testing.T) {
	db := newTestDB(t)
	booking := seedBooking(t, db, 1000000, models.BookingStatusCheckedIn)
	ledger := NewLedgerService(db)

	// Còn nguyên công nợ vẫn cho trả phòng
	assert.True(t, ledger.CanCheckout(booking.ID))
}

func TestRefundPayment(t *testing.T) {
	db := newTestDB(t)
	booking := seedBooking(t, db, 1000000, models.BookingStatusCheckedIn)
	ledger := NewLedgerService(db)
	methodID := cashMethodID(t, db)

	payment, err := ledger.RecordPayment(booking.ID, 400000, methodID, models.PaymentTypePayment)
	require.NoError(t, err)

	refund, err := ledger.RefundPayment(payment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentTypeRefund, refund.Type)
	assert.Equal(t, 400000.0, refund.Amount)

	// Sổ quay về trạng thái chưa thu
	outstanding, err := ledger.OutstandingForBooking(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, 1000000.0, outstanding)

	// Khoản đã hoàn không hoàn lại lần nữa
	_, err = ledger.RefundPayment(payment.ID)
	require.Error(t, err)
}

func TestPaymentInvoiceRefValidation(t *testing.T) {
	hotelID := uint(1)
	restaurantID := uint(2)

	p := models.Payment{}
	assert.Error(t, p.ValidateInvoiceRef())

	p.HotelInvoiceID = &hotelID
	assert.NoError(t, p.ValidateInvoiceRef())

	p.RestaurantInvoiceID = &restaurantID
	err := p.ValidateInvoiceRef()
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeInvalidInvoiceRef))
}
