package dto

import "Pulse/internal/model"

// Pagination 分页元数据
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// PostsPageDTO 帖子分页结果
type PostsPageDTO struct {
	Posts      []*model.Post `json:"posts"`
	Pagination *Pagination   `json:"pagination"`
}
