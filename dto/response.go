package dto

// MessageResponse is the common success/error envelope with a single message.
type MessageResponse struct {
	Message string `json:"message" example:"Blog deleted successfully"`
}

// BlogResponse wraps a single post together with an action message,
// used by create and update.
type BlogResponse struct {
	Message string  `json:"message" example:"Blog created successfully"`
	Blog    BlogDTO `json:"blog"`
}

// ValidationErrorResponse carries one message per invalid field.
type ValidationErrorResponse struct {
	Message string   `json:"message" example:"Validation Error"`
	Errors  []string `json:"errors"`
}
