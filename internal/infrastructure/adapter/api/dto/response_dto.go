package dto

// Response is the envelope every endpoint answers with
type Response struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
}

// ErrorBody carries the machine-readable error code and a human message
type ErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OK wraps a payload in a success envelope
func OK(data any) Response {
	return Response{Success: true, Data: data}
}

// Err wraps an error code and message in a failure envelope
func Err(code int, message string) Response {
	return Response{Success: false, Error: &ErrorBody{Code: code, Message: message}}
}

// PaginationResponse describes the shape of a paginated listing
type PaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}
