package domain

// User represents the current signed-in customer. At most one live
// instance exists per process; it is created by login or registration
// and destroyed by logout.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}
