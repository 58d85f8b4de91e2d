package dto

import "time"

// UserDTO 用户信息，密钥类字段已剥离
type UserDTO struct {
	UserID       uint64     `json:"userId"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	FirebaseUID  string     `json:"firebaseUid"`
	AvatarURL    string     `json:"avatarUrl,omitempty"`
	IsPro        bool       `json:"isPro"`
	IsFirstLogin bool       `json:"isFirstLogin"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// SyncUserDTO 按外部身份标识创建或更新用户
type SyncUserDTO struct {
	FirebaseUID string  `json:"firebaseUid" binding:"required"`
	Username    string  `json:"username" validate:"omitempty,max=50"`
	Email       string  `json:"email" validate:"omitempty,email"`
	Password    *string `json:"password"`
	AvatarURL   *string `json:"avatarUrl"`
}

// AuthCheckDTO 外部身份校验结果
type AuthCheckDTO struct {
	Authenticated bool     `json:"authenticated"`
	User          *UserDTO `json:"user,omitempty"`
	Token         string   `json:"token,omitempty"`
}
