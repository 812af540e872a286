package models

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User holds login credentials. The UUID primary key doubles as the Mongo
// document _id, so user IDs look the same on both backends.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey" bson:"_id,omitempty"`
	Username  string    `json:"username" gorm:"size:100;uniqueIndex;not null" bson:"username"`
	Password  []byte    `json:"-" gorm:"not null" bson:"password"`
	CreatedAt time.Time `json:"created_at" bson:"CreatedDate,omitempty"`
	UpdatedAt time.Time `json:"-" bson:"UpdatedDate,omitempty"`
}

func (user *User) BeforeCreate(tx *gorm.DB) (err error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	return
}

func (user *User) SetPassword(password string) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(password), 12)
	user.Password = hashedPassword
}

func (user *User) ComparePassword(password string) error {
	return bcrypt.CompareHashAndPassword(user.Password, []byte(password))
}
