package domain

// Review es una reseña de una propiedad
type Review struct {
	ID         string `json:"id"`
	PropertyID string `json:"property_id"`
	UserID     string `json:"user_id"`
	UserName   string `json:"user_name"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
	Date       string `json:"date"`
	UserAvatar string `json:"user_avatar"`
}
