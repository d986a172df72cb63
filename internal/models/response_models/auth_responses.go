package response_models

type GuestSessionResponse struct {
	Success  bool   `json:"success"`
	Email    string `json:"email"`
	Password string `json:"password"`
	UserID   string `json:"userId"`
	Token    string `json:"token"`
}

type TokenResponse struct {
	Token string `json:"token"`
}
