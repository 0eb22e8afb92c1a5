package model

import (
	"time"
)

// Post is authored by exactly one user; user_id is an application-level
// reference, the store does not enforce it.
type Post struct {
	ID        string     `json:"id"                  bson:"_id"`
	UserID    string     `json:"userId"              bson:"user_id"`
	Content   string     `json:"content,omitempty"   bson:"content,omitempty"`
	MediaURL  string     `json:"mediaUrl,omitempty"  bson:"media_url,omitempty"`
	CreatedAt time.Time  `json:"createdAt"           bson:"created_at"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty" bson:"updated_at,omitempty"`
	Type      string     `json:"type"                bson:"type"`
}
