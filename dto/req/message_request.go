package req

type MessageRequest struct {
	Body   string `json:"body" validate:"required"`
	Images string `json:"images,omitempty"`
}
