package entity

// Agency is a travel agency registered on the platform.
type Agency struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	Phone  string `json:"phone,omitempty"`
	Wilaya string `json:"wilaya,omitempty"`
}

// EntityID implements Record.
func (a Agency) EntityID() string { return a.ID }

// Field implements Record.
func (a Agency) Field(name string) string {
	switch name {
	case "id":
		return a.ID
	case "name":
		return a.Name
	case "email":
		return a.Email
	case "phone":
		return a.Phone
	case "wilaya":
		return a.Wilaya
	}
	return ""
}

// MergeAgency folds form fields into an agency.
func MergeAgency(a Agency, fields map[string]string) Agency {
	for name, value := range fields {
		switch name {
		case "name":
			a.Name = value
		case "email":
			a.Email = value
		case "phone":
			a.Phone = value
		case "wilaya":
			a.Wilaya = value
		}
	}
	return a
}
