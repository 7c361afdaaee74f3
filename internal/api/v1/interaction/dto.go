package interaction

type ToggleLikeInput struct {
	TargetID   uint   `json:"target_id" binding:"required"`
	TargetType string `json:"target_type" binding:"required,oneof=REVIEW RECIPE COMMENT PROPOSAL"`
}

type ToggleBookmarkInput struct {
	TargetID   uint   `json:"target_id" binding:"required"`
	TargetType string `json:"target_type" binding:"required,oneof=REVIEW RECIPE MODEL"`
}

type ToggleResponse struct {
	Active bool  `json:"active"`
	Count  int64 `json:"count"`
}

type StatusResponse struct {
	Liked      bool `json:"liked,omitempty"`
	Bookmarked bool `json:"bookmarked,omitempty"`
}

type TargetIDsResponse struct {
	TargetIDs []uint `json:"target_ids"`
	Total     int    `json:"total"`
}
