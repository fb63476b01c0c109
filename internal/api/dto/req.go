package dto

type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"admin@acme.test"`
	Password string `json:"password" binding:"required" example:"password"`
}

type CreateNoteRequest struct {
	Content string `json:"content" binding:"required" example:"remember the milk"`
}
