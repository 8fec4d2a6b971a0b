package controllers

import (
	"fmt"
	"strconv"

	"hrms/config"
	"hrms/dto"
	"hrms/models"
	"hrms/response"
	"hrms/services"
	"hrms/validator"

	"github.com/gin-gonic/gin"
)

func convertToPaymentResponse(payment *models.Payment) dto.PaymentResponse {
	return dto.PaymentResponse{
		ID:             payment.ID,
		Type:           payment.Type,
		Amount:         payment.Amount,
		Status:         payment.Status,
		MethodCode:     payment.Method.Code,
		MethodName:     payment.Method.Name,
		TransactionRef: payment.TransactionRef,
		CreatedAt:      payment.CreatedAt,
	}
}

// CreatePayment ghi một khoản đặt cọc hoặc thanh toán cho booking
func CreatePayment(c *gin.Context) {
	var request dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateAmount(request.Amount); err != nil {
		respondAppError(c, err)
		return
	}

	ledger := services.NewLedgerService(config.DB)
	payment, err := ledger.RecordPayment(request.BookingID, request.Amount, request.MethodID, request.Type)
	if err != nil {
		respondAppError(c, err)
		return
	}

	invalidateBookingCaches()
	response.Success(c, convertToPaymentResponse(payment))
}

// CreateCashPayment thu tiền mặt tất toán công nợ của booking,
// trả về tiền thối lại cho lễ tân đưa khách
func CreateCashPayment(c *gin.Context) {
	var request dto.CashPaymentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var method models.PaymentMethod
	if err := config.DB.Where("code = ?", "cash").First(&method).Error; err != nil {
		response.ServerError(c)
		return
	}

	ledger := services.NewLedgerService(config.DB)
	payment, change, err := ledger.RecordCashPayment(request.BookingID, request.ReceivedAmount, method.ID)
	if err != nil {
		respondAppError(c, err)
		return
	}

	outstanding, err := ledger.OutstandingForBooking(request.BookingID)
	if err != nil {
		respondAppError(c, err)
		return
	}

	result := dto.CashPaymentResponse{
		ChangeDue:   change,
		Outstanding: outstanding,
	}
	if payment != nil {
		converted := convertToPaymentResponse(payment)
		result.Payment = &converted
	}

	invalidateBookingCaches()
	response.Success(c, result)
}

// GetBookingLedger trả về sổ thanh toán của booking: danh sách khoản thu,
// tổng đã thu và công nợ còn lại
func GetBookingLedger(c *gin.Context) {
	bookingID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	booking, err := services.NewBookingService(config.DB).GetByID(uint(bookingID))
	if err != nil {
		response.NotFound(c)
		return
	}

	ledger := services.NewLedgerService(config.DB)
	payments, err := ledger.PaymentsForBooking(booking.ID)
	if err != nil {
		respondAppError(c, err)
		return
	}

	paymentResponses := make([]dto.PaymentResponse, 0, len(payments))
	for i := range payments {
		paymentResponses = append(paymentResponses, convertToPaymentResponse(&payments[i]))
	}

	response.Success(c, dto.LedgerResponse{
		BookingID:   booking.ID,
		FinalAmount: booking.FinalAmount(),
		PaidAmount:  services.PaidTotal(payments),
		Outstanding: services.OutstandingBalance(booking.FinalAmount(), payments),
		Payments:    paymentResponses,
	})
}

// ConfirmPayment xác nhận khoản thu đang chờ (chuyển khoản/VNPay đã về tài khoản)
func ConfirmPayment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	payment, err := services.NewLedgerService(config.DB).ConfirmPayment(uint(id))
	if err != nil {
		respondAppError(c, err)
		return
	}

	invalidateBookingCaches()
	response.Success(c, convertToPaymentResponse(payment))
}

// RefundPayment hoàn tiền một khoản thu đã xác nhận
func RefundPayment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	refund, err := services.NewLedgerService(config.DB).RefundPayment(uint(id))
	if err != nil {
		respondAppError(c, err)
		return
	}

	invalidateBookingCaches()
	response.Success(c, convertToPaymentResponse(refund))
}

// GetBankTransferQR dựng URL mã QR VietQR cho khoản chuyển khoản của booking
func GetBankTransferQR(c *gin.Context) {
	var request dto.BankTransferQRRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateAmount(request.Amount); err != nil {
		respondAppError(c, err)
		return
	}

	booking, err := services.NewBookingService(config.DB).GetByID(request.BookingID)
	if err != nil {
		response.NotFound(c)
		return
	}

	bankAccount := config.GetEnv("BANK_QR_ACCOUNT")
	bankCode := config.GetEnv("BANK_QR_BANK")
	if bankAccount == "" || bankCode == "" {
		response.ServerError(c)
		return
	}

	qrCodeURL := fmt.Sprintf(
		"https://img.vietqr.io/image/%s-%s-compact.jpg?amount=%.0f&addInfo=Thanh%%20toan%%20%s",
		bankCode, bankAccount, request.Amount, booking.Code,
	)

	response.Success(c, gin.H{"qrCodeUrl": qrCodeURL})
}
