package models

import "time"

type Review struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null" json:"user_id"`
	User       User      `gorm:"foreignKey:UserID" json:"user"`
	ProductID  uint      `gorm:"index;not null" json:"product_id"`
	ReviewText string    `gorm:"not null" json:"review_text"`
	CreatedAt  time.Time `json:"created_at"`
}
