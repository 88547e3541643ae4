package dto

// StaffMember represents a staff entry on the about page
type StaffMember struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Photo string `json:"photo"`
}

// Headmaster represents the headmaster block on the about page
type Headmaster struct {
	Name    string `json:"name"`
	Message string `json:"message"`
	Photo   string `json:"photo"`
}

// AboutPage aggregates the static about-page content
type AboutPage struct {
	Staff      []StaffMember `json:"staff"`
	Headmaster Headmaster    `json:"headmaster"`
	Videos     []string      `json:"videos"`
	Photos     []string      `json:"photos"`
}
