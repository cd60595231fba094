package models

import (
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/forshine-dev/shinebuilder/dtos"
)

// Asset is a single curated piece of content classified against the
// methodology taxonomy. Classification is linked to the taxonomy by name,
// not by foreign key - the taxonomy editor and the curators maintain their
// text independently (see the coverage engine for the consequences).
type Asset struct {
	Model
	HumanID          string           `json:"humanId" gorm:"type:text;uniqueIndex;not null;"`
	Title            string           `json:"title" gorm:"type:text;not null;"`
	Slug             string           `json:"slug" gorm:"type:text;"`
	ContentType      dtos.ContentType `json:"contentType" gorm:"type:text;not null;"`
	PrimaryPillar    string           `json:"primaryPillar" gorm:"type:text;"`
	SecondaryPillars pq.StringArray   `json:"secondaryPillars" gorm:"type:text[];"`
	SubComponent     string           `json:"subComponent" gorm:"type:text;"`
	Competence       string           `json:"competence" gorm:"type:text;"`
	Behavior         string           `json:"behavior" gorm:"type:text;"`
	MaturityLevel    string           `json:"maturityLevel" gorm:"type:text;"`
	TargetRole       string           `json:"targetRole" gorm:"type:text;"`
	Status           dtos.AssetStatus `json:"status" gorm:"type:text;not null;default:'draft';"`
	IPOwner          string           `json:"ipOwner" gorm:"type:text;"`
	IPType           string           `json:"ipType" gorm:"type:text;"`
	Confidentiality  string           `json:"confidentiality" gorm:"type:text;"`
	FileRef          *string          `json:"fileRef" gorm:"type:text;"`
	Version          string           `json:"version" gorm:"type:text;"`
	Observations     string           `json:"observations" gorm:"type:text;"`
	Completeness     int              `json:"completeness" gorm:"default:0;not null;"`

	ReleaseID       *uuid.UUID       `json:"releaseId" gorm:"type:uuid;"`
	Release         *Release         `json:"-" gorm:"foreignKey:ReleaseID;references:ID;"`
	ResearchSources []ResearchSource `json:"researchSources,omitempty" gorm:"many2many:asset_research_sources;"`
}

func (m Asset) TableName() string {
	return "assets"
}

// criticalFieldCount is the fixed number of fields the completeness score is
// computed over: title, type, primary pillar, sub-component, maturity,
// target role, IP owner, file reference, version.
const criticalFieldCount = 9

func fieldFilled(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && !strings.EqualFold(v, dtos.CompletenessPlaceholder)
}

// ComputeCompleteness derives the 0-100 completeness percentage from the
// current field values. Callers recompute it on every write.
func (m *Asset) ComputeCompleteness() int {
	fileRef := ""
	if m.FileRef != nil {
		fileRef = *m.FileRef
	}
	critical := [criticalFieldCount]string{
		m.Title,
		string(m.ContentType),
		m.PrimaryPillar,
		m.SubComponent,
		m.MaturityLevel,
		m.TargetRole,
		m.IPOwner,
		fileRef,
		m.Version,
	}
	filled := 0
	for _, v := range critical {
		if fieldFilled(v) {
			filled++
		}
	}
	return int(math.Round(100 * float64(filled) / float64(criticalFieldCount)))
}
