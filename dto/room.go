package dto

import "encoding/json"

// CreateRoomRequest là DTO cho request tạo phòng mới
type CreateRoomRequest struct {
	BranchID    uint    `json:"branchId" binding:"required"`
	FloorID     uint    `json:"floorId" binding:"required"`
	RoomTypeID  uint    `json:"roomTypeId" binding:"required"`
	RoomName    string  `json:"roomName" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
	Description string  `json:"description"`
	NumBed      int     `json:"numBed"`
	People      int     `json:"people"`
}

// UpdateRoomStatusRequest là DTO cho request đổi trạng thái phòng thủ công
type UpdateRoomStatusRequest struct {
	Status   int    `json:"status"`
	FromDate string `json:"fromDate,omitempty"`
	ToDate   string `json:"toDate,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

// RoomResponse là DTO cho response của phòng
type RoomResponse struct {
	ID          uint            `json:"id"`
	BranchID    uint            `json:"branchId"`
	RoomName    string          `json:"roomName"`
	Floor       string          `json:"floor"`
	RoomType    string          `json:"roomType"`
	Price       float64         `json:"price"`
	Status      int             `json:"status"`
	Description string          `json:"description"`
	Avatar      string          `json:"avatar"`
	Img         json.RawMessage `json:"img"`
	NumBed      int             `json:"numBed"`
	People      int             `json:"people"`
}
