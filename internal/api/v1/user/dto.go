package user

type UserResponse struct {
	ID              uint   `json:"id"`
	Email           string `json:"email"`
	Nickname        string `json:"nickname"`
	Bio             string `json:"bio,omitempty"`
	ProfileImageURL string `json:"profile_image_url,omitempty"`
	Role            string `json:"role"`
	Token           string `json:"token,omitempty"`
}

type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

type FollowToggleResponse struct {
	Following      bool  `json:"following"`
	FollowerCount  int64 `json:"follower_count"`
	FollowingCount int64 `json:"following_count"`
}

type FollowStatsResponse struct {
	UserID         uint  `json:"user_id"`
	FollowerCount  int64 `json:"follower_count"`
	FollowingCount int64 `json:"following_count"`
	IsFollowing    *bool `json:"is_following,omitempty"`
}

type FollowListResponse struct {
	Users []UserResponse `json:"users"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

type UpdateProfileInput struct {
	Nickname        *string `json:"nickname"`
	Bio             *string `json:"bio"`
	ProfileImageURL *string `json:"profile_image_url"`
	Password        *string `json:"password" binding:"omitempty,min=8"`
}
