package models

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/forshine-dev/shinebuilder/dtos"
)

// TaxonomyNode is one node of the strict four-level methodology tree
// (Pillar -> SubComponent -> Competence -> Behavior). The tree is maintained
// by the taxonomy editor; this core only reads it and soft-deletes via the
// active flag.
type TaxonomyNode struct {
	Model
	Name         string         `json:"name" gorm:"type:text;not null;uniqueIndex:idx_taxonomy_parent_name"`
	Slug         string         `json:"slug" gorm:"type:text;not null;"`
	Kind         dtos.NodeKind  `json:"kind" gorm:"type:text;not null;"`
	ParentID     *uuid.UUID     `json:"parentId" gorm:"type:uuid;uniqueIndex:idx_taxonomy_parent_name"`
	Parent       *TaxonomyNode  `json:"-" gorm:"foreignKey:ParentID;references:ID;constraint:OnDelete:CASCADE;"`
	Children     []TaxonomyNode `json:"children,omitempty" gorm:"foreignKey:ParentID;references:ID;"`
	DisplayOrder int            `json:"displayOrder" gorm:"default:0;not null;"`
	Active       bool           `json:"active" gorm:"default:true;not null;"`
}

func (n TaxonomyNode) TableName() string {
	return "taxonomy_nodes"
}

// ValidateParentKind enforces the depth invariant: a pillar has no parent,
// every other kind has a parent of exactly the next shallower kind.
func (n TaxonomyNode) ValidateParentKind(parent *TaxonomyNode) error {
	if n.Kind == dtos.NodeKindPillar {
		if parent != nil {
			return fmt.Errorf("pillar %q must not have a parent", n.Name)
		}
		return nil
	}
	if parent == nil {
		return fmt.Errorf("%s %q needs a parent", n.Kind, n.Name)
	}
	childKind, ok := parent.Kind.ChildKind()
	if !ok || childKind != n.Kind {
		return fmt.Errorf("%s %q cannot be nested under %s %q", n.Kind, n.Name, parent.Kind, parent.Name)
	}
	return nil
}
