package controllers

import (
	"sort"
	"strconv"
	"strings"

	"hrms/config"
	"hrms/dto"
	"hrms/models"
	"hrms/response"
	"hrms/validator"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/gin-gonic/gin"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

func convertToCustomerResponse(customer *models.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:             customer.ID,
		Name:           customer.Name,
		Email:          customer.Email,
		PhoneNumber:    customer.PhoneNumber,
		Gender:         customer.Gender,
		DateOfBirth:    customer.DateOfBirth,
		Address:        customer.Address,
		IdentityNumber: customer.IdentityNumber,
	}
}

// Hàm chuẩn hóa chuỗi
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

// calculateCustomerScore chấm điểm mức khớp của hồ sơ khách với từ khóa tìm kiếm
func calculateCustomerScore(query string, customer models.Customer, cmNames *closestmatch.ClosestMatch) int {
	normalizedQuery := normalizeInput(query)
	score := 0

	normalizedName := normalizeInput(customer.Name)
	if strings.Contains(normalizedName, normalizedQuery) {
		score += 30
	} else {
		closest := cmNames.Closest(normalizedQuery)
		if closest != "" && closest == normalizedName && calculateSimilarity(normalizedQuery, closest) > 0.5 {
			score += 20
		}
	}

	if customer.PhoneNumber != "" && strings.Contains(customer.PhoneNumber, strings.TrimSpace(query)) {
		score += 25
	}
	if customer.Email != "" && strings.Contains(strings.ToLower(customer.Email), normalizedQuery) {
		score += 25
	}
	if customer.IdentityNumber != "" && strings.Contains(customer.IdentityNumber, strings.TrimSpace(query)) {
		score += 25
	}

	return score
}

// SearchCustomers tìm hồ sơ khách theo tên (kể cả gõ không dấu, sai
// chính tả nhẹ), số điện thoại, email hoặc CCCD
func SearchCustomers(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "Từ khóa tìm kiếm không được để trống")
		return
	}

	var customers []models.Customer
	if err := config.DB.Find(&customers).Error; err != nil {
		response.ServerError(c)
		return
	}

	names := make([]string, 0, len(customers))
	for _, customer := range customers {
		if customer.Name != "" {
			names = append(names, normalizeInput(customer.Name))
		}
	}
	cmNames := createMatcher(names)

	type scoredCustomer struct {
		customer models.Customer
		score    int
	}
	var scored []scoredCustomer
	for _, customer := range customers {
		score := calculateCustomerScore(query, customer, cmNames)
		if score > 0 {
			scored = append(scored, scoredCustomer{customer: customer, score: score})
		}
	}

	sort.Slice(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	results := make([]dto.CustomerResponse, 0, len(scored))
	for i := range scored {
		results = append(results, convertToCustomerResponse(&scored[i].customer))
	}

	response.Success(c, results)
}

func GetCustomers(c *gin.Context) {
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

	var customers []models.Customer
	var total int64
	if err := config.DB.Model(&models.Customer{}).Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}
	if err := config.DB.Order("created_at DESC").
		Offset(page * limit).Limit(limit).Find(&customers).Error; err != nil {
		response.ServerError(c)
		return
	}

	results := make([]dto.CustomerResponse, 0, len(customers))
	for i := range customers {
		results = append(results, convertToCustomerResponse(&customers[i]))
	}

	response.SuccessWithPagination(c, results, page, limit, int(total))
}

func CreateCustomer(c *gin.Context) {
	var request dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if request.Email != "" && !validator.IsValidEmail(request.Email) {
		response.BadRequest(c, "Email không hợp lệ")
		return
	}

	customer := models.Customer{
		Name:           request.Name,
		Email:          request.Email,
		PhoneNumber:    request.PhoneNumber,
		Gender:         request.Gender,
		DateOfBirth:    request.DateOfBirth,
		Address:        request.Address,
		IdentityNumber: request.IdentityNumber,
	}

	if err := config.DB.Create(&customer).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, convertToCustomerResponse(&customer))
}

func GetCustomerDetail(c *gin.Context) {
	var customer models.Customer
	if err := config.DB.Where("id = ?", c.Param("id")).First(&customer).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, convertToCustomerResponse(&customer))
}

func UpdateCustomer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var request dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	customer.Name = request.Name
	customer.Email = request.Email
	customer.PhoneNumber = request.PhoneNumber
	customer.Gender = request.Gender
	customer.DateOfBirth = request.DateOfBirth
	customer.Address = request.Address
	customer.IdentityNumber = request.IdentityNumber

	if err := config.DB.Save(&customer).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, convertToCustomerResponse(&customer))
}
