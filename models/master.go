package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"gorm.io/gorm"
)

// Master is a contact profile keyed by mobile number. One struct serves both
// backends: gorm tags drive the relational schema, bson tags the document one.
// ID carries the backend-normalized string identifier (decimal SrNo for the
// relational backend, ObjectID hex for the document backend).
type Master struct {
	SrNo uint               `json:"-" gorm:"primaryKey" bson:"-"`
	OID  primitive.ObjectID `json:"-" gorm:"-" bson:"_id,omitempty"`
	ID   string             `json:"id" gorm:"-" bson:"-"`

	UID         string `json:"uid" gorm:"size:12" bson:"uid,omitempty"`
	MobileNo    string `json:"mobile_no" gorm:"size:20;not null;uniqueIndex" bson:"MobileNo"`
	Project     string `json:"project" gorm:"size:200" bson:"Project,omitempty"`
	TownType    string `json:"town_type" gorm:"size:100" bson:"TownType,omitempty"`
	Requester   string `json:"requester" gorm:"size:200" bson:"Requester,omitempty"`
	RDCode      string `json:"rd_code" gorm:"column:rd_code;size:50" bson:"RDCode,omitempty"`
	RDName      string `json:"rd_name" gorm:"column:rd_name;size:200" bson:"RDName,omitempty"`
	Town        string `json:"town" gorm:"size:200" bson:"Town,omitempty"`
	State       string `json:"state" gorm:"size:100" bson:"State,omitempty"`
	Designation string `json:"designation" gorm:"size:200" bson:"Designation,omitempty"`
	Name        string `json:"name" gorm:"size:200" bson:"Name,omitempty"`
	GSTNo       string `json:"gst_no" gorm:"column:gst_no;size:50" bson:"GSTNo,omitempty"`
	EmailID     string `json:"email_id" gorm:"size:200" bson:"EmailID,omitempty"`

	CreatedAt time.Time `json:"created_at" bson:"CreatedDate,omitempty"`
	UpdatedAt time.Time `json:"updated_at" bson:"UpdatedDate,omitempty"`
}

func (m *Master) BeforeCreate(tx *gorm.DB) (err error) {
	if m.UID == "" {
		m.UID = NewUID()
	}
	return
}
