package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"gorm.io/gorm"
)

// CallLogEntry is one logged support interaction. The master profile fields
// are denormalized into the entry at creation time (form auto-fill), so the
// entry stays intact even if the master record changes later.
type CallLogEntry struct {
	SrNo uint               `json:"-" gorm:"primaryKey" bson:"-"`
	OID  primitive.ObjectID `json:"-" gorm:"-" bson:"_id,omitempty"`
	ID   string             `json:"id" gorm:"-" bson:"-"`

	UID         string    `json:"uid" gorm:"size:12" bson:"uid,omitempty"`
	Date        time.Time `json:"date" gorm:"not null;index" bson:"Date"`
	MobileNo    string    `json:"mobile_no" gorm:"size:20;not null" bson:"MobileNo"`
	Project     string    `json:"project" gorm:"size:200" bson:"Project,omitempty"`
	Town        string    `json:"town" gorm:"size:200" bson:"Town,omitempty"`
	Requester   string    `json:"requester" gorm:"size:200" bson:"Requester,omitempty"`
	RDCode      string    `json:"rd_code" gorm:"column:rd_code;size:50" bson:"RDCode,omitempty"`
	RDName      string    `json:"rd_name" gorm:"column:rd_name;size:200" bson:"RDName,omitempty"`
	State       string    `json:"state" gorm:"size:100" bson:"State,omitempty"`
	Designation string    `json:"designation" gorm:"size:200" bson:"Designation,omitempty"`
	Name        string    `json:"name" gorm:"size:200" bson:"Name,omitempty"`
	Module      string    `json:"module" gorm:"size:200" bson:"Module,omitempty"`
	Issue       string    `json:"issue" bson:"Issue,omitempty"`
	Solution    string    `json:"solution" bson:"Solution,omitempty"`
	SolvedOn    string    `json:"solved_on" gorm:"size:200" bson:"SolvedOn,omitempty"`
	CallOn      string    `json:"call_on" gorm:"size:200" bson:"CallOn,omitempty"`
	CallType    string    `json:"call_type" gorm:"column:call_type;size:100" bson:"Type,omitempty"`

	CreatedAt time.Time `json:"created_at" bson:"CreatedDate,omitempty"`
	UpdatedAt time.Time `json:"-" bson:"UpdatedDate,omitempty"`
}

func (e *CallLogEntry) BeforeCreate(tx *gorm.DB) (err error) {
	if e.UID == "" {
		e.UID = NewUID()
	}
	return
}
