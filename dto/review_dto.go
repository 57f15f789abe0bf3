package dto

// CreateReviewRequest represents the payload for reviewing a hike
type CreateReviewRequest struct {
	Rating  int      `json:"rating" binding:"required,min=1,max=5"`
	Comment string   `json:"comment"`
	Tags    []string `json:"tags"`
}
