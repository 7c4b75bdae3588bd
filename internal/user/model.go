package user

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Nickname  string    `gorm:"uniqueIndex;size:50;not null" json:"nickname"`
	Language  string    `gorm:"size:10;not null" json:"language"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}
