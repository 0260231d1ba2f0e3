package notification

import "time"

// InAppNotification is a dashboard feed entry for the admins.
type InAppNotification struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Body      string    `gorm:"type:text" json:"body"`
	Kind      string    `gorm:"size:50;not null;index" json:"kind"` // member_joined, ...
	IsRead    bool      `gorm:"default:false;index" json:"is_read"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (InAppNotification) TableName() string {
	return "notifications"
}

// FCMDeviceToken is one registered admin device for push alerts.
type FCMDeviceToken struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Token     string    `gorm:"size:512;uniqueIndex;not null" json:"token"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (FCMDeviceToken) TableName() string {
	return "fcm_device_tokens"
}

// RegisterTokenRequest registers the caller's device for push alerts.
type RegisterTokenRequest struct {
	Token string `json:"token" binding:"required"`
}
