package controllers

import (
	"context"
	"log"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"hrms/config"
	"hrms/constants"
	"hrms/dto"
	"hrms/models"
	"hrms/response"
	"hrms/services"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func convertToRoomResponse(room *models.Room) dto.RoomResponse {
	return dto.RoomResponse{
		ID:          room.ID,
		BranchID:    room.BranchID,
		RoomName:    room.RoomName,
		Floor:       room.Floor.Name,
		RoomType:    room.RoomType.Name,
		Price:       room.Price,
		Status:      room.Status,
		Description: room.Description,
		Avatar:      room.Avatar,
		Img:         room.Img,
		NumBed:      room.NumBed,
		People:      room.People,
	}
}

func GetAllRooms(c *gin.Context) {
	branchFilter := c.Query("branchId")
	nameFilter := c.Query("name")
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

	cacheKey := "rooms:all"

	rdb, err := config.ConnectRedis()
	if err != nil {
		response.ServerError(c)
		return
	}

	var allRooms []models.Room

	if err := services.GetFromRedis(config.Ctx, rdb, cacheKey, &allRooms); err != nil || len(allRooms) == 0 {
		if err := config.DB.Preload("Branch").Preload("Floor").Preload("RoomType").
			Find(&allRooms).Error; err != nil {
			response.ServerError(c)
			return
		}

		if err := services.SetToRedis(config.Ctx, rdb, cacheKey, allRooms, 10*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu danh sách phòng vào Redis: %v", err)
		}
	}

	filtered := make([]models.Room, 0)
	for _, room := range allRooms {
		if branchFilter != "" {
			branchID, _ := strconv.Atoi(branchFilter)
			if room.BranchID != uint(branchID) {
				continue
			}
		}
		if nameFilter != "" {
			decodedName, _ := url.QueryUnescape(nameFilter)
			if !strings.Contains(strings.ToLower(room.RoomName), strings.ToLower(decodedName)) {
				continue
			}
		}
		if statusFilter != "" {
			status, _ := strconv.Atoi(statusFilter)
			if room.Status != status {
				continue
			}
		}
		filtered = append(filtered, room)
	}

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].RoomName < filtered[j].RoomName
	})
	total := len(filtered)

	start := page * limit
	end := start + limit
	if start >= total {
		filtered = []models.Room{}
	} else if end > total {
		filtered = filtered[start:]
	} else {
		filtered = filtered[start:end]
	}

	roomResponses := make([]dto.RoomResponse, 0, len(filtered))
	for i := range filtered {
		roomResponses = append(roomResponses, convertToRoomResponse(&filtered[i]))
	}

	response.SuccessWithPagination(c, roomResponses, page, limit, total)
}

func CreateRoom(c *gin.Context) {
	var request dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	room := models.Room{
		BranchID:    request.BranchID,
		FloorID:     request.FloorID,
		RoomTypeID:  request.RoomTypeID,
		RoomName:    request.RoomName,
		Price:       request.Price,
		Description: request.Description,
		NumBed:      request.NumBed,
		People:      request.People,
		Status:      constants.RoomStatusAvailable,
	}

	if err := config.DB.Create(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateRoomCaches()
	response.Success(c, room)
}

func GetRoomDetail(c *gin.Context) {
	var room models.Room
	if err := config.DB.Preload("Branch").Preload("Floor").Preload("RoomType").
		Where("id = ?", c.Param("id")).First(&room).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, convertToRoomResponse(&room))
}

func UpdateRoom(c *gin.Context) {
	var request models.Room
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	room.RoomName = request.RoomName
	room.Price = request.Price
	room.Description = request.Description
	room.NumBed = request.NumBed
	room.People = request.People
	if len(request.Img) > 0 {
		room.Img = request.Img
	}
	if request.Avatar != "" {
		room.Avatar = request.Avatar
	}

	if err := config.DB.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateRoomCaches()
	response.Success(c, room)
}

// ChangeRoomStatus đổi trạng thái phòng thủ công, kèm khoảng ngày chặn
// khi chuyển sang dọn dẹp/bảo trì
func ChangeRoomStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var request dto.UpdateRoomStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	room.Status = request.Status
	if err := room.ValidateStatus(); err != nil {
		response.BadRequest(c, "Trạng thái không hợp lệ")
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&room).Error; err != nil {
			return err
		}

		// Dọn dẹp/bảo trì có khoảng ngày thì ghi thêm khoảng chặn lịch
		if request.FromDate != "" && request.ToDate != "" &&
			(request.Status == constants.RoomStatusCleaning || request.Status == constants.RoomStatusMaintenance) {
			fromDate, err := time.Parse(models.DateLayout, request.FromDate)
			if err != nil {
				return err
			}
			toDate, err := time.Parse(models.DateLayout, request.ToDate)
			if err != nil {
				return err
			}
			return tx.Create(&models.RoomStatus{
				RoomID:   room.ID,
				Status:   request.Status,
				FromDate: fromDate,
				ToDate:   toDate,
				Reason:   request.Reason,
			}).Error
		}
		return nil
	})
	if err != nil {
		response.ServerError(c)
		return
	}

	invalidateRoomCaches()
	invalidateBookingCaches()
	response.Success(c, convertToRoomResponse(&room))
}

// UploadRoomImages upload ảnh phòng lên Cloudinary và trả về URL
func UploadRoomImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		response.BadRequest(c, "Không có file")
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		response.BadRequest(c, "Không có file")
		return
	}

	var urls []string
	for _, file := range files {
		src, err := file.Open()
		if err != nil {
			response.BadRequest(c, "Lỗi khi mở file")
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "rooms"})
		if err != nil {
			response.ServerError(c)
			return
		}
		urls = append(urls, resp.SecureURL)
	}

	response.Success(c, gin.H{"urls": urls})
}

func invalidateRoomCaches() {
	rdb, err := config.ConnectRedis()
	if err != nil {
		return
	}
	if err := services.DeleteKeysByPattern(config.Ctx, rdb, "rooms:*"); err != nil {
		log.Printf("Lỗi khi xóa cache phòng: %v", err)
	}
}
