package models

// Project is a named resource owned by a single user. Non-admin requesters
// only ever see projects they own.
type Project struct {
	// ProjectID is the internal unique identifier of the project.
	ProjectID int64 `json:"id"`

	// Name is the human-readable project name.
	Name string `json:"name"`

	// OwnerID references the user that owns this project.
	OwnerID int64 `json:"owner"`
}

// TableName returns the name of the database table
// associated with the Project model.
func (p Project) TableName() string {
	return "projects"
}
