package services

import (
	"errors"
	"strings"

	"stayhub/constants"
	apperrors "stayhub/errors"
	"stayhub/models"

	"gorm.io/gorm"
)

// CatalogService is the single boundary through which rooms are added,
// updated and removed, so the room-number uniqueness invariant is checked
// in one place. The composite unique index on (hotel_id, room_number)
// backs it up for writes that race past the in-memory check.
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// GetHotel loads a hotel with its rooms
func (s *CatalogService) GetHotel(hotelID uint) (*models.Hotel, error) {
	var hotel models.Hotel
	if err := s.db.Preload("Rooms").First(&hotel, hotelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrHotelNotFound
		}
		return nil, err
	}
	return &hotel, nil
}

// AddRoom appends a room to the hotel's owned list
func (s *CatalogService) AddRoom(hotelID uint, room *models.Room) error {
	hotel, err := s.GetHotel(hotelID)
	if err != nil {
		return err
	}
	if err := room.ValidateType(); err != nil {
		return err
	}
	if err := room.ValidateStatus(); err != nil {
		return err
	}

	room.HotelID = hotel.ID
	hotel.Rooms = append(hotel.Rooms, *room)
	if err := hotel.ValidateRoomNumbers(); err != nil {
		return err
	}

	if err := s.db.Create(room).Error; err != nil {
		return translateDuplicateRoom(err)
	}
	return nil
}

// UpdateRoom mutates a room identified by its number within the hotel
func (s *CatalogService) UpdateRoom(hotelID uint, roomNumber int, updates *models.Room) (*models.Room, error) {
	hotel, err := s.GetHotel(hotelID)
	if err != nil {
		return nil, err
	}
	room := hotel.FindRoom(roomNumber)
	if room == nil {
		return nil, apperrors.ErrRoomNotFound
	}

	if updates.RoomNumber != 0 && updates.RoomNumber != room.RoomNumber {
		if hotel.FindRoom(updates.RoomNumber) != nil {
			return nil, apperrors.ErrDuplicateRoomNumber
		}
		room.RoomNumber = updates.RoomNumber
	}
	if updates.Type != 0 {
		room.Type = updates.Type
	}
	if updates.Price != 0 {
		room.Price = updates.Price
	}
	if updates.Capacity != 0 {
		room.Capacity = updates.Capacity
	}
	if updates.Description != "" {
		room.Description = updates.Description
	}
	if updates.Avatar != "" {
		room.Avatar = updates.Avatar
	}
	if len(updates.Img) > 0 {
		room.Img = updates.Img
	}
	if err := room.ValidateType(); err != nil {
		return nil, err
	}

	if err := s.db.Save(room).Error; err != nil {
		return nil, translateDuplicateRoom(err)
	}
	return room, nil
}

// ChangeRoomStatus flips the catalog-level availability switch
func (s *CatalogService) ChangeRoomStatus(hotelID uint, roomNumber, status int) (*models.Room, error) {
	hotel, err := s.GetHotel(hotelID)
	if err != nil {
		return nil, err
	}
	room := hotel.FindRoom(roomNumber)
	if room == nil {
		return nil, apperrors.ErrRoomNotFound
	}
	room.Status = status
	if err := room.ValidateStatus(); err != nil {
		return nil, err
	}
	if err := s.db.Save(room).Error; err != nil {
		return nil, err
	}
	return room, nil
}

// RemoveRoom deletes a room from the hotel's list. Rooms with active
// bookings keep their ledger entries; the booking references the number,
// not the row.
func (s *CatalogService) RemoveRoom(hotelID uint, roomNumber int) error {
	hotel, err := s.GetHotel(hotelID)
	if err != nil {
		return err
	}
	room := hotel.FindRoom(roomNumber)
	if room == nil {
		return apperrors.ErrRoomNotFound
	}
	return s.db.Delete(&models.Room{}, room.ID).Error
}

// RecalculateHotelRating reloads reviews and rewrites the derived fields
func (s *CatalogService) RecalculateHotelRating(hotelID uint) error {
	var hotel models.Hotel
	if err := s.db.Preload("Reviews").First(&hotel, hotelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrHotelNotFound
		}
		return err
	}
	hotel.RecalculateRating()
	return s.db.Model(&models.Hotel{}).Where("id = ?", hotel.ID).Updates(map[string]interface{}{
		"average_rating": hotel.AverageRating,
		"total_reviews":  hotel.TotalReviews,
		"popularity":     hotel.Popularity,
	}).Error
}

// FirstAvailableRoomOfType picks the first catalog-available room of a type
func FirstAvailableRoomOfType(hotel *models.Hotel, roomType int) *models.Room {
	for i := range hotel.Rooms {
		if hotel.Rooms[i].Type == roomType && hotel.Rooms[i].Status == constants.RoomStatusAvailable {
			return &hotel.Rooms[i]
		}
	}
	return nil
}

// translateDuplicateRoom maps the unique index violation onto the
// domain error.
func translateDuplicateRoom(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "duplicate key") {
		return apperrors.ErrDuplicateRoomNumber
	}
	return err
}
