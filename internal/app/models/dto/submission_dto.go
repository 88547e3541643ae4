package dto

// SubmissionForm carries the fourteen required text fields of the details
// form. Bound from multipart form data; the optional marksheet file is
// handled separately by the controller.
type SubmissionForm struct {
	Name        string `form:"name"`
	Email       string `form:"email"`
	Stream      string `form:"stream"`
	PassingYear string `form:"passing_year"`
	Board       string `form:"board"`
	SchoolName  string `form:"school_name"`
	Percentage  string `form:"percentage"`
	Roll        string `form:"roll"`
	Citizenship string `form:"citizenship"`
	State       string `form:"state"`
	Address     string `form:"address"`
	PinCode     string `form:"pin_code"`
	Caste       string `form:"caste"`
	Message     string `form:"message"`
}

// SubmissionReceipt reports the outcome of a successful submission
type SubmissionReceipt struct {
	Message      string `json:"message"`
	FileAttached bool   `json:"fileAttached"`
}
