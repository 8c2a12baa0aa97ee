package entity

// Category is a tour category used to classify published offers.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// EntityID implements Record.
func (c Category) EntityID() string { return c.ID }

// Field implements Record.
func (c Category) Field(name string) string {
	switch name {
	case "id":
		return c.ID
	case "name":
		return c.Name
	case "description":
		return c.Description
	}
	return ""
}

// MergeCategory folds form fields into a category.
func MergeCategory(c Category, fields map[string]string) Category {
	for name, value := range fields {
		switch name {
		case "name":
			c.Name = value
		case "description":
			c.Description = value
		}
	}
	return c
}
