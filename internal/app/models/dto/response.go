package dto

// APIResponse is the standard success envelope. Message carries the
// user-visible outcome text for the client to display.
type APIResponse struct {
	Success bool         `json:"success" example:"true"`
	Message string       `json:"message,omitempty" example:"Login Successful"`
	Data    interface{}  `json:"data,omitempty"`
	Error   *ErrorDetail `json:"error,omitempty"`
}
