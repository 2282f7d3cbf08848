package domain

import (
	"errors"
	"time"
)

// Gender values accepted at registration.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

var ErrUserNotFound = errors.New("user not found")
var ErrDuplicateUID = errors.New("uid already exists")
var ErrDuplicateEmail = errors.New("email already exists")

// User is a registered badge holder. The UID is the canonical uppercase
// hexadecimal identifier of the badge and is unique across the directory.
type User struct {
	ID          string    `json:"_id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	UID         string    `json:"uid" bson:"uid"`
	Gender      string    `json:"gender" bson:"gender"`
	Email       string    `json:"email" bson:"email"`
	PhoneNumber string    `json:"phoneNumber" bson:"phone_number"`
	CreatedAt   time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updated_at"`
}
