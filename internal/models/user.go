package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const RoleBettor = "bettor"

// User lives in the document database, not in a flat file. The password
// hash is never serialized to JSON.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RegNumber string             `bson:"regNumber" json:"regNumber"`
	FullName  string             `bson:"fullName" json:"fullName"`
	Username  string             `bson:"username" json:"username"`
	Whatsapp  string             `bson:"whatsapp" json:"whatsapp"`
	Password  string             `bson:"password" json:"-"`
	Role      string             `bson:"role" json:"role"`
	IsActive  bool               `bson:"isActive" json:"isActive"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
