package controllers

import (
	"errors"
	"strconv"
	"time"

	"stayhub/config"
	"stayhub/dto"
	apperrors "stayhub/errors"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"

	"github.com/gin-gonic/gin"
)

func parseHotelID(c *gin.Context) (uint, bool) {
	hotelID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid hotel id")
		return 0, false
	}
	return uint(hotelID), true
}

// GetRooms lists a hotel's rooms
func GetRooms(c *gin.Context) {
	hotelID, ok := parseHotelID(c)
	if !ok {
		return
	}

	hotel, err := catalogService().GetHotel(hotelID)
	if err != nil {
		response.NotFoundMessage(c, "Hotel not found")
		return
	}

	rooms := make([]dto.RoomResponse, 0, len(hotel.Rooms))
	for _, room := range hotel.Rooms {
		rooms = append(rooms, toRoomResponse(room))
	}
	response.SuccessWithTotal(c, rooms, len(rooms))
}

// AddRoom appends a room to a hotel
func AddRoom(c *gin.Context) {
	hotelID, ok := parseHotelID(c)
	if !ok {
		return
	}

	var input dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	room := models.Room{
		RoomNumber:  input.RoomNumber,
		Type:        input.Type,
		Price:       input.Price,
		Capacity:    input.Capacity,
		Description: input.Description,
		Avatar:      input.Avatar,
		Img:         input.Img,
	}

	if err := catalogService().AddRoom(hotelID, &room); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrHotelNotFound):
			response.NotFoundMessage(c, "Hotel not found")
		case errors.Is(err, apperrors.ErrDuplicateRoomNumber):
			response.Conflict(c, err.Error())
		default:
			response.BadRequest(c, err.Error())
		}
		return
	}

	invalidateHotelsCache()
	response.Created(c, toRoomResponse(room))
}

// UpdateRoom mutates a room identified by its number
func UpdateRoom(c *gin.Context) {
	hotelID, ok := parseHotelID(c)
	if !ok {
		return
	}
	roomNumber, err := strconv.Atoi(c.Param("roomNumber"))
	if err != nil {
		response.BadRequest(c, "Invalid room number")
		return
	}

	var input dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	room, err := catalogService().UpdateRoom(hotelID, roomNumber, &models.Room{
		RoomNumber:  input.RoomNumber,
		Type:        input.Type,
		Price:       input.Price,
		Capacity:    input.Capacity,
		Description: input.Description,
		Avatar:      input.Avatar,
		Img:         input.Img,
	})
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrHotelNotFound), errors.Is(err, apperrors.ErrRoomNotFound):
			response.NotFoundMessage(c, err.Error())
		case errors.Is(err, apperrors.ErrDuplicateRoomNumber):
			response.Conflict(c, err.Error())
		default:
			response.BadRequest(c, err.Error())
		}
		return
	}

	invalidateHotelsCache()
	response.Success(c, toRoomResponse(*room))
}

// ChangeRoomStatus flips the catalog availability switch on a room
func ChangeRoomStatus(c *gin.Context) {
	hotelID, ok := parseHotelID(c)
	if !ok {
		return
	}
	roomNumber, err := strconv.Atoi(c.Param("roomNumber"))
	if err != nil {
		response.BadRequest(c, "Invalid room number")
		return
	}

	var input dto.RoomStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	room, err := catalogService().ChangeRoomStatus(hotelID, roomNumber, input.Status)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrHotelNotFound), errors.Is(err, apperrors.ErrRoomNotFound):
			response.NotFoundMessage(c, err.Error())
		default:
			response.BadRequest(c, err.Error())
		}
		return
	}

	invalidateHotelsCache()
	response.Success(c, toRoomResponse(*room))
}

// RemoveRoom deletes a room from a hotel
func RemoveRoom(c *gin.Context) {
	hotelID, ok := parseHotelID(c)
	if !ok {
		return
	}
	roomNumber, err := strconv.Atoi(c.Param("roomNumber"))
	if err != nil {
		response.BadRequest(c, "Invalid room number")
		return
	}

	if err := catalogService().RemoveRoom(hotelID, roomNumber); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrHotelNotFound), errors.Is(err, apperrors.ErrRoomNotFound):
			response.NotFoundMessage(c, err.Error())
		default:
			response.ServerError(c)
		}
		return
	}

	invalidateHotelsCache()
	response.Success(c, nil)
}

// GetAvailableRooms lists the rooms of a hotel that are free for the
// requested date range, catalog status and overlap check combined.
func GetAvailableRooms(c *gin.Context) {
	hotelID, ok := parseHotelID(c)
	if !ok {
		return
	}

	checkIn, err := time.Parse(dto.DateLayout, c.Query("checkIn"))
	if err != nil {
		response.BadRequest(c, "checkIn is required in dd/MM/yyyy format")
		return
	}
	checkOut, err := time.Parse(dto.DateLayout, c.Query("checkOut"))
	if err != nil {
		response.BadRequest(c, "checkOut is required in dd/MM/yyyy format")
		return
	}
	if !checkOut.After(checkIn) {
		response.BadRequest(c, "checkOut must be after checkIn")
		return
	}

	hotel, err := catalogService().GetHotel(hotelID)
	if err != nil {
		response.NotFoundMessage(c, "Hotel not found")
		return
	}

	available, err := services.AvailableRooms(config.DB, hotel, checkIn, checkOut)
	if err != nil {
		response.ServerError(c)
		return
	}

	rooms := make([]dto.RoomResponse, 0, len(available))
	for _, room := range available {
		rooms = append(rooms, toRoomResponse(room))
	}
	response.SuccessWithTotal(c, rooms, len(rooms))
}
