package models

import "time"

// EmailConfig stores the SMTP settings used for report delivery. Exactly one
// configuration exists per installation: the relational backend keeps a
// single row with ConfigID 1, the document backend a single document with a
// fixed _id.
type EmailConfig struct {
	ConfigID uint `json:"-" gorm:"primaryKey" bson:"-"`

	SMTPServer string `json:"smtp_server" gorm:"size:200;not null" bson:"smtp_server"`
	SMTPPort   int    `json:"smtp_port" gorm:"not null" bson:"smtp_port"`
	SMTPUser   string `json:"smtp_user" gorm:"size:200;not null" bson:"smtp_user"`
	// write-only: accepted via the request body, never echoed back
	SMTPPassword string `json:"-" gorm:"size:500;not null" bson:"smtp_password"`

	CreatedAt time.Time `json:"-" bson:"CreatedDate,omitempty"`
	UpdatedAt time.Time `json:"updated_at" bson:"UpdatedDate,omitempty"`
}
