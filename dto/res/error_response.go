package res

type ErrorResponse struct {
	Success     bool     `json:"success"`
	Message     string   `json:"message"`
	StatusCode  int      `json:"statusCode"`
	Error       any      `json:"error"`
	Explanation []string `json:"explanation,omitempty"`
}
