package models

type ResearchSource struct {
	Model
	Title  string `json:"title" gorm:"type:text;not null;"`
	Author string `json:"author" gorm:"type:text;"`
	URL    string `json:"url" gorm:"type:text;"`
}

func (s ResearchSource) TableName() string {
	return "research_sources"
}
