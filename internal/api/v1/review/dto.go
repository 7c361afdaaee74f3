package review

type CreateReviewInput struct {
	ModelID       uint     `json:"model_id" binding:"required"`
	Title         string   `json:"title" binding:"required,max=200"`
	Content       string   `json:"content" binding:"required"`
	Rating        int      `json:"rating" binding:"required,min=1,max=5"`
	UseCase       string   `json:"use_case" binding:"max=100"`
	InputExample  string   `json:"input_example"`
	OutputExample string   `json:"output_example"`
	Tags          []string `json:"tags"`
	ScreenshotURL string   `json:"screenshot_url" binding:"omitempty,url"`
}

type UpdateReviewInput struct {
	Title         *string  `json:"title" binding:"omitempty,max=200"`
	Content       *string  `json:"content"`
	Rating        *int     `json:"rating" binding:"omitempty,min=1,max=5"`
	UseCase       *string  `json:"use_case" binding:"omitempty,max=100"`
	InputExample  *string  `json:"input_example"`
	OutputExample *string  `json:"output_example"`
	ScreenshotURL *string  `json:"screenshot_url" binding:"omitempty,url"`
	Tags          []string `json:"tags"`
}

type ReviewListResponse struct {
	Reviews interface{} `json:"reviews"`
	Total   int64       `json:"total"`
	Page    int         `json:"page"`
	Limit   int         `json:"limit"`
}
