package models

import (
	"time"

	"github.com/lib/pq"
)

type User struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
	Name          string        `gorm:"default:New User" json:"name"`
	Email         string        `gorm:"unique" json:"email"`
	Password      string        `json:"-"`
	IsVerified    bool          `gorm:"default:false" json:"is_verified"`
	Code          string        `json:"-"`
	CodeCreatedAt time.Time     `gorm:"autoCreateTime" json:"codeCreatedAt"`
	PhoneNumber   string        `gorm:"unique;type:varchar(11);not null" json:"phoneNumber"`
	Avatar        string        `json:"avatar"`
	Role          int           `gorm:"default:0" json:"role"`
	Status        int           `gorm:"default:0" json:"status"`
	Gender        int           `json:"gender"`
	DateOfBirth   string        `gorm:"default:'01/01/2000'" json:"dateOfBirth"`
	Children      []User        `gorm:"foreignKey:AdminId" json:"children,omitempty"`
	AdminId       *uint         `json:"adminId,omitempty"`
	HotelIDs      pq.Int64Array `json:"hotel_ids" gorm:"type:integer[]"` // hotels managed by an admin account
}
