package domain

// Contact is a CRM record owned entirely by the vendor. The gateway forwards
// it verbatim and makes no assumptions about its fields beyond JSON validity.
type Contact map[string]any

// ContactInput is the create payload accepted from the browser form.
type ContactInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}
