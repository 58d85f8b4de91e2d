package model

import "time"

// Post 平台内容条目，ID 仅在平台内唯一
type Post struct {
	ID           string    `json:"id"`
	Platform     string    `json:"platform"`
	Title        string    `json:"title"`
	ThumbnailURL string    `json:"thumbnail,omitempty"`
	Views        int64     `json:"views"`
	Likes        int64     `json:"likes"`
	Comments     int64     `json:"comments"`
	Shares       int64     `json:"shares"`
	DatePosted   time.Time `json:"datePosted"`
	URL          string    `json:"url"`
}
