package controllers

import (
	"encoding/json"
	"strconv"

	"hrms/config"
	"hrms/dto"
	"hrms/models"
	"hrms/response"
	"hrms/services"

	"github.com/gin-gonic/gin"
)

func convertToOrderResponse(order *models.RestaurantOrder) dto.OrderResponse {
	return dto.OrderResponse{
		ID:              order.ID,
		Code:            order.Code,
		BranchID:        order.BranchID,
		TableNumber:     order.TableNumber,
		Items:           order.Items,
		TotalAmount:     order.TotalAmount,
		DiscountPercent: order.DiscountPercent,
		FinalAmount:     order.FinalAmount(),
		Status:          order.Status,
		CreatedAt:       order.CreatedAt,
	}
}

// CreateRestaurantOrder mở order nhà hàng mới, tổng tiền tính từ danh sách món
func CreateRestaurantOrder(c *gin.Context) {
	var request dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	total := 0.0
	for _, item := range request.Items {
		if item.Quantity <= 0 || item.UnitPrice < 0 {
			response.BadRequest(c, "Món không hợp lệ: "+item.Name)
			return
		}
		total += float64(item.Quantity) * item.UnitPrice
	}

	itemsJSON, err := json.Marshal(request.Items)
	if err != nil {
		response.BadRequest(c, "Danh sách món không hợp lệ")
		return
	}

	order := models.RestaurantOrder{
		BranchID:        request.BranchID,
		TableNumber:     request.TableNumber,
		CustomerID:      request.CustomerID,
		Items:           itemsJSON,
		TotalAmount:     total,
		DiscountPercent: request.DiscountPercent,
		Status:          models.RestaurantOrderOpen,
	}

	if err := config.DB.Create(&order).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, convertToOrderResponse(&order))
}

func GetRestaurantOrders(c *gin.Context) {
	statusFilter := c.Query("status")
	branchFilter := c.Query("branchId")

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

	tx := config.DB.Model(&models.RestaurantOrder{})
	if statusFilter != "" {
		status, _ := strconv.Atoi(statusFilter)
		tx = tx.Where("status = ?", status)
	}
	if branchFilter != "" {
		branchID, _ := strconv.Atoi(branchFilter)
		tx = tx.Where("branch_id = ?", branchID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var orders []models.RestaurantOrder
	if err := tx.Order("created_at DESC").Offset(page * limit).Limit(limit).Find(&orders).Error; err != nil {
		response.ServerError(c)
		return
	}

	results := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		results = append(results, convertToOrderResponse(&orders[i]))
	}

	response.SuccessWithPagination(c, results, page, limit, int(total))
}

func GetRestaurantOrderDetail(c *gin.Context) {
	var order models.RestaurantOrder
	if err := config.DB.Where("id = ?", c.Param("id")).First(&order).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, convertToOrderResponse(&order))
}

// SettleRestaurantOrder tất toán order: phát hành hóa đơn (idempotent),
// ghi khoản thu bằng đúng số phải thu rồi đóng order
func SettleRestaurantOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var request struct {
		MethodID uint `json:"methodId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var order models.RestaurantOrder
	if err := config.DB.First(&order, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	if order.Status != models.RestaurantOrderOpen {
		response.BadRequest(c, "Order đã tất toán hoặc đã hủy")
		return
	}

	var method models.PaymentMethod
	if err := config.DB.First(&method, request.MethodID).Error; err != nil {
		response.BadRequest(c, "Phương thức thanh toán không tồn tại")
		return
	}

	invoiceService := services.NewInvoiceService(config.DB)
	invoice, err := invoiceService.GenerateForRestaurantOrder(order.ID)
	if err != nil {
		respondAppError(c, err)
		return
	}

	if invoice.RemainingAmount > 0 {
		payment := models.Payment{
			RestaurantInvoiceID: &invoice.ID,
			Type:                models.PaymentTypePayment,
			Amount:              invoice.RemainingAmount,
			Status:              models.PaymentStatusConfirmed,
			MethodID:            method.ID,
		}
		if err := payment.ValidateInvoiceRef(); err != nil {
			respondAppError(c, err)
			return
		}
		if err := config.DB.Create(&payment).Error; err != nil {
			response.ServerError(c)
			return
		}

		invoice.PaidAmount = invoice.FinalAmount
		invoice.RemainingAmount = 0
		invoice.Status = models.InvoiceStatusPaid
		if err := config.DB.Save(invoice).Error; err != nil {
			response.ServerError(c)
			return
		}
	}

	order.Status = models.RestaurantOrderSettled
	if err := config.DB.Save(&order).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateInvoiceCaches()
	response.Success(c, gin.H{
		"order":   convertToOrderResponse(&order),
		"invoice": convertToRestaurantInvoiceResponse(invoice),
	})
}
