package entity

// Tourist is a traveler account managed by the console.
type Tourist struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Country  string `json:"country,omitempty"`
}

// EntityID implements Record.
func (t Tourist) EntityID() string { return t.ID }

// Field implements Record.
func (t Tourist) Field(name string) string {
	switch name {
	case "id":
		return t.ID
	case "fullName":
		return t.FullName
	case "email":
		return t.Email
	case "phone":
		return t.Phone
	case "country":
		return t.Country
	}
	return ""
}

// MergeTourist folds form fields into a tourist.
func MergeTourist(t Tourist, fields map[string]string) Tourist {
	for name, value := range fields {
		switch name {
		case "fullName":
			t.FullName = value
		case "email":
			t.Email = value
		case "phone":
			t.Phone = value
		case "country":
			t.Country = value
		}
	}
	return t
}
