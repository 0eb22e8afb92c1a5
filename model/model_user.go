package model

// Record type discriminants. Users and posts share one physical
// collection and are told apart by the "type" field.
const (
	TypeUser = "user"
	TypePost = "post"
)

type User struct {
	ID           string `json:"id"        bson:"_id"`
	Username     string `json:"username"  bson:"username"`
	PasswordHash string `json:"-"         bson:"password_hash"`
	IsPrivate    bool   `json:"isPrivate" bson:"is_private"`
	Type         string `json:"type"      bson:"type"`
}
