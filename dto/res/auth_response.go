package res

type SignUpResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type SignInResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}
