package dto

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Location string `json:"location"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type LoginResponse struct {
	Status  string `json:"status"`
	Role    string `json:"role"`
	Message string `json:"message"`
}

type MeResponse struct {
	LoggedIn bool   `json:"logged_in"`
	Role     string `json:"role"`
	Username string `json:"username"`
	Location string `json:"location,omitempty"`
}
