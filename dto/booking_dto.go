package dto

// JoinHikeRequest represents the optional payload when joining a hike
type JoinHikeRequest struct {
	Status string `json:"status" binding:"omitempty,oneof=pending confirmed"`
}
