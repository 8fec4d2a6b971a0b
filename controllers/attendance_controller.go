package controllers

import (
	"strings"
	"time"

	"hrms/config"
	"hrms/models"
	"hrms/response"
	"hrms/services"

	"github.com/gin-gonic/gin"
)

// StaffCheckIn chấm công cho nhân viên đang đăng nhập, mỗi ngày một lần
func StaffCheckIn(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Unauthorized(c)
		return
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	userID, _, err := services.GetUserIDFromToken(tokenString)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	record, err := services.NewAttendanceService(config.DB).CheckInToday(userID)
	if err != nil {
		respondAppError(c, err)
		return
	}

	response.Success(c, gin.H{
		"userId":      record.UserID,
		"timeCheckIn": record.Date,
	})
}

// GetAttendance liệt kê chấm công trong khoảng startDate..endDate
func GetAttendance(c *gin.Context) {
	from, err := time.Parse(models.DateLayout, c.Query("startDate"))
	if err != nil {
		response.BadRequest(c, "startDate không hợp lệ")
		return
	}
	to, err := time.Parse(models.DateLayout, c.Query("endDate"))
	if err != nil {
		response.BadRequest(c, "endDate không hợp lệ")
		return
	}

	records, err := services.NewAttendanceService(config.DB).ListBetween(from, to)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, records)
}
