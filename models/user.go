package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	GenderMale   = "Male"
	GenderFemale = "Female"
)

// User is a record of the Users collection. ID is the store identity used in
// paths; UserID is the sequential numeric id exposed as "id".
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID    int64              `bson:"id" json:"id"`
	FirstName string             `bson:"first_name" json:"first_name" validate:"required"`
	LastName  string             `bson:"last_name,omitempty" json:"last_name,omitempty"`
	Email     string             `bson:"email" json:"email" validate:"required,email"`
	Gender    string             `bson:"gender" json:"gender" validate:"required,oneof=Male Female"`
	Avatar    string             `bson:"avatar" json:"avatar" validate:"required,url"`
	Domain    string             `bson:"domain" json:"domain" validate:"required"`
	Available bool               `bson:"available" json:"available"`
}

// UserInput is the body of a create request. Available is a pointer so a
// missing field can be told apart from false.
type UserInput struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" validate:"required,email"`
	Gender    string `json:"gender" validate:"required,oneof=Male Female"`
	Avatar    string `json:"avatar" validate:"required,url"`
	Domain    string `json:"domain" validate:"required"`
	Available *bool  `json:"available" validate:"required"`
}

// ToUser builds a new record from the input. The caller assigns both ids.
func (in UserInput) ToUser() User {
	u := User{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Gender:    in.Gender,
		Avatar:    in.Avatar,
		Domain:    in.Domain,
	}
	if in.Available != nil {
		u.Available = *in.Available
	}
	return u
}

// UserPatch is a partial update. Nil fields are left untouched.
type UserPatch struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Gender    *string `json:"gender"`
	Avatar    *string `json:"avatar"`
	Domain    *string `json:"domain"`
	Available *bool   `json:"available"`
}

// IsEmpty reports whether the patch sets no field.
func (p UserPatch) IsEmpty() bool {
	return len(p.Fields()) == 0
}

// ApplyTo overwrites the fields of u that the patch sets.
func (p UserPatch) ApplyTo(u *User) {
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Gender != nil {
		u.Gender = *p.Gender
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
	if p.Domain != nil {
		u.Domain = *p.Domain
	}
	if p.Available != nil {
		u.Available = *p.Available
	}
}

// Fields returns the set fields keyed by their stored names.
func (p UserPatch) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if p.FirstName != nil {
		fields["first_name"] = *p.FirstName
	}
	if p.LastName != nil {
		fields["last_name"] = *p.LastName
	}
	if p.Email != nil {
		fields["email"] = *p.Email
	}
	if p.Gender != nil {
		fields["gender"] = *p.Gender
	}
	if p.Avatar != nil {
		fields["avatar"] = *p.Avatar
	}
	if p.Domain != nil {
		fields["domain"] = *p.Domain
	}
	if p.Available != nil {
		fields["available"] = *p.Available
	}
	return fields
}

// UserPage is one page of the paginated listing.
type UserPage struct {
	Users       []User `json:"users"`
	TotalPages  int64  `json:"totalPages"`
	CurrentPage int64  `json:"currentPage"`
}
