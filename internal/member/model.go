package member

import "time"

// MemberRecord is the durable row behind the join form. The content store
// keeps a lightweight mirror for the admin dashboard listing; this table is
// the system of record.
type MemberRecord struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	RecordID  string    `gorm:"size:36;uniqueIndex;not null" json:"record_id"`
	FullName  string    `gorm:"size:255;not null" json:"full_name"`
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Phone     string    `gorm:"size:20" json:"phone"`
	Course    string    `gorm:"size:255" json:"course"`
	Year      string    `gorm:"column:year_of_study;size:50" json:"year_of_study"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (MemberRecord) TableName() string {
	return "members"
}

// JoinRequest is the signup payload, field names matching the join form.
type JoinRequest struct {
	Name   string `json:"full_name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Course string `json:"course"`
	Year   string `json:"year_of_study"`
}

// MemberJoinedEvent is the broadcast payload for the notification pipeline.
type MemberJoinedEvent struct {
	RecordID string `json:"record_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Course   string `json:"course"`
	JoinedAt string `json:"joined_at"`
}
