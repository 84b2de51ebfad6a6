package dto

import "stayhub/response"

// PaginatedResponse is the shared wrapper for paginated payloads
type PaginatedResponse[T any] struct {
	Data       T                   `json:"data"`
	Pagination response.Pagination `json:"pagination"`
}
