package dto

import "socialspace/model"

// ===== Requests =====

type CreatePostRequest struct {
	Content  string `json:"content"  example:"hello KU!"`
	MediaURL string `json:"mediaUrl" example:"https://cdn.example.com/cat.png"`
}

// UpdatePostRequest uses pointers so an absent field can be told apart
// from an empty one; absent fields keep their stored value.
type UpdatePostRequest struct {
	Content  *string `json:"content"  example:"edited text"`
	MediaURL *string `json:"mediaUrl" example:"https://cdn.example.com/dog.png"`
}

// ===== Responses =====

type PostResponse struct {
	Message string     `json:"message" example:"post created"`
	Post    model.Post `json:"post"`
}

// ===== Error Response =====

type ErrorResponse struct {
	Message string `json:"message" example:"invalid body"`
}
