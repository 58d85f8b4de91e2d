package dto

// APIKeysDTO 每用户的平台凭据集合，单平台可为空
type APIKeysDTO struct {
	UserID       uint64  `json:"userId" binding:"required"`
	YoutubeKey   *string `json:"youtubeKey"`
	InstagramKey *string `json:"instagramKey"`
	TwitterKey   *string `json:"twitterKey"`
	FacebookKey  *string `json:"facebookKey"`
}
