package controllers

import (
	"fmt"
	"log"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"hrms/config"
	"hrms/dto"
	"hrms/models"
	"hrms/response"
	"hrms/services"
	"hrms/validator"

	"github.com/gin-gonic/gin"
)

func convertToInvoiceResponse(invoice *models.HotelInvoice) dto.InvoiceResponse {
	payments := make([]dto.PaymentResponse, 0, len(invoice.Payments))
	for i := range invoice.Payments {
		payments = append(payments, convertToPaymentResponse(&invoice.Payments[i]))
	}
	return dto.InvoiceResponse{
		ID:                   invoice.ID,
		InvoiceCode:          invoice.InvoiceCode,
		BookingID:            invoice.BookingID,
		TotalAmount:          invoice.TotalAmount,
		DiscountAmount:       invoice.DiscountAmount,
		FinalAmount:          invoice.FinalAmount,
		PaidAmount:           invoice.PaidAmount,
		RemainingAmount:      invoice.RemainingAmount,
		Status:               invoice.Status,
		BookingStatusAtIssue: invoice.BookingStatusAtIssue,
		IssueDate:            invoice.IssueDate,
		PaymentDate:          invoice.PaymentDate,
		Payments:             payments,
	}
}

func convertToRestaurantInvoiceResponse(invoice *models.RestaurantInvoice) dto.InvoiceResponse {
	payments := make([]dto.PaymentResponse, 0, len(invoice.Payments))
	for i := range invoice.Payments {
		payments = append(payments, convertToPaymentResponse(&invoice.Payments[i]))
	}
	return dto.InvoiceResponse{
		ID:              invoice.ID,
		InvoiceCode:     invoice.InvoiceCode,
		OrderID:         invoice.OrderID,
		TotalAmount:     invoice.TotalAmount,
		DiscountAmount:  invoice.DiscountAmount,
		FinalAmount:     invoice.FinalAmount,
		PaidAmount:      invoice.PaidAmount,
		RemainingAmount: invoice.RemainingAmount,
		Status:          invoice.Status,
		IssueDate:       invoice.IssueDate,
		PaymentDate:     invoice.PaymentDate,
		Payments:        payments,
	}
}

func GetInvoices(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Unauthorized(c)
		return
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if _, _, err := services.GetUserIDFromToken(tokenString); err != nil {
		response.Unauthorized(c)
		return
	}

	invoiceCodeFilter := c.Query("invoiceCode")
	statusFilter := c.Query("status")

	pageStr := c.Query("page")
	limitStr := c.Query("limit")

	page := 0
	limit := 10

	if pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}

	if limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	cacheKey := "invoices:all"

	rdb, err := config.ConnectRedis()
	if err != nil {
		response.ServerError(c)
		return
	}

	var allInvoices []dto.InvoiceResponse

	// Lấy hóa đơn từ cache nếu có
	if err := services.GetFromRedis(config.Ctx, rdb, cacheKey, &allInvoices); err != nil || len(allInvoices) == 0 {
		var invoices []models.HotelInvoice
		if err := config.DB.Preload("Payments").Preload("Payments.Method").Find(&invoices).Error; err != nil {
			response.ServerError(c)
			return
		}

		for i := range invoices {
			allInvoices = append(allInvoices, convertToInvoiceResponse(&invoices[i]))
		}

		if err := services.SetToRedis(config.Ctx, rdb, cacheKey, allInvoices, 60*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu danh sách hóa đơn vào Redis: %v", err)
		}
	}

	// Áp dụng filter theo invoiceCode và status
	filteredInvoices := make([]dto.InvoiceResponse, 0)
	for _, invoice := range allInvoices {
		if invoiceCodeFilter != "" {
			decodedNameFilter, _ := url.QueryUnescape(invoiceCodeFilter)
			if !strings.Contains(strings.ToLower(invoice.InvoiceCode), strings.ToLower(decodedNameFilter)) {
				continue
			}
		}
		if statusFilter != "" {
			status, _ := strconv.Atoi(statusFilter)
			if invoice.Status != status {
				continue
			}
		}
		filteredInvoices = append(filteredInvoices, invoice)
	}

	// Sắp xếp theo IssueDate giảm dần
	sort.Slice(filteredInvoices, func(i, j int) bool {
		return filteredInvoices[i].IssueDate.After(filteredInvoices[j].IssueDate)
	})
	total := len(filteredInvoices)

	// Phân trang
	start := page * limit
	end := start + limit
	if start >= total {
		filteredInvoices = []dto.InvoiceResponse{}
	} else if end > total {
		filteredInvoices = filteredInvoices[start:]
	} else {
		filteredInvoices = filteredInvoices[start:end]
	}

	response.SuccessWithPagination(c, filteredInvoices, page, limit, total)
}

// GetInvoiceByBooking trả về hóa đơn của booking nếu đã phát hành
func GetInvoiceByBooking(c *gin.Context) {
	bookingID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	invoice, err := services.NewInvoiceService(config.DB).GetByBookingID(uint(bookingID))
	if err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, convertToInvoiceResponse(invoice))
}

// GenerateInvoice phát hành hóa đơn cho booking. Idempotent: gọi lại
// cho cùng booking trả về hóa đơn đã có với cùng mã
func GenerateInvoice(c *gin.Context) {
	bookingID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	invoice, err := services.NewInvoiceService(config.DB).GenerateForBooking(uint(bookingID))
	if err != nil {
		respondAppError(c, err)
		return
	}

	invalidateInvoiceCaches()
	response.Success(c, convertToInvoiceResponse(invoice))
}

// DownloadInvoicePDF tải file PDF của hóa đơn từ dịch vụ render
func DownloadInvoicePDF(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var invoice models.HotelInvoice
	if err := config.DB.First(&invoice, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	data, err := services.DownloadInvoicePDF(invoice.InvoiceCode)
	if err != nil {
		respondAppError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", invoice.InvoiceCode))
	c.Data(200, "application/pdf", data)
}

// SendInvoiceByEmail gửi hóa đơn tới địa chỉ email khách. Không idempotent:
// mỗi lần gọi gửi lại một email, địa chỉ chỉ được kiểm tra cú pháp
func SendInvoiceByEmail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var request dto.SendInvoiceEmailRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if !validator.IsValidEmail(request.Email) {
		response.BadRequest(c, "Email không hợp lệ")
		return
	}

	var invoice models.HotelInvoice
	if err := config.DB.Preload("Booking").First(&invoice, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := services.SendInvoiceEmail(request.Email, &invoice, &invoice.Booking); err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}

// GenerateRestaurantInvoice phát hành hóa đơn cho order nhà hàng, idempotent
func GenerateRestaurantInvoice(c *gin.Context) {
	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	invoice, err := services.NewInvoiceService(config.DB).GenerateForRestaurantOrder(uint(orderID))
	if err != nil {
		respondAppError(c, err)
		return
	}

	invalidateInvoiceCaches()
	response.Success(c, convertToRestaurantInvoiceResponse(invoice))
}

// GetRestaurantInvoice trả về hóa đơn của order nhà hàng nếu đã phát hành
func GetRestaurantInvoice(c *gin.Context) {
	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	invoice, err := services.NewInvoiceService(config.DB).GetByRestaurantOrderID(uint(orderID))
	if err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, convertToRestaurantInvoiceResponse(invoice))
}

func invalidateInvoiceCaches() {
	rdb, err := config.ConnectRedis()
	if err != nil {
		return
	}
	if err := services.DeleteFromRedis(config.Ctx, rdb, "invoices:all"); err != nil {
		log.Printf("Lỗi khi xóa cache hóa đơn: %v", err)
	}
}
