package models

// Release groups validated assets into a published bundle of the knowledge
// base. Releases are managed by an external collaborator; the core only
// keeps the association.
type Release struct {
	Model
	Name  string `json:"name" gorm:"type:text;not null;"`
	Notes string `json:"notes" gorm:"type:text;"`
}

func (r Release) TableName() string {
	return "releases"
}
