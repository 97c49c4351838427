package dto

// AuthRequest is the credentials payload shared by register and login.
type AuthRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}
