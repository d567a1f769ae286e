package model

// Task fields interpreted by the service.
const (
	TaskFieldTitle       = "title"
	TaskFieldDescription = "description"
	TaskFieldCategory    = "category"
	TaskFieldEmail       = "email"
)

// TaskUpdate replaces title, description and category of a task.
// Values are written as sent, whatever their JSON type; absent fields are stored as null.
type TaskUpdate struct {
	Title       any `json:"title"`
	Description any `json:"description"`
	Category    any `json:"category"`
}

// Fields returns the update as a set of document fields.
func (u TaskUpdate) Fields() Document {
	return Document{
		TaskFieldTitle:       u.Title,
		TaskFieldDescription: u.Description,
		TaskFieldCategory:    u.Category,
	}
}

// CategoryUpdate replaces only the category of a task.
type CategoryUpdate struct {
	Category any `json:"category"`
}

// Fields returns the update as a set of document fields.
func (u CategoryUpdate) Fields() Document {
	return Document{TaskFieldCategory: u.Category}
}
