package dtos

import "fmt"

type NodeKind string

const (
	NodeKindPillar       NodeKind = "pillar"
	NodeKindSubComponent NodeKind = "subcomponent"
	NodeKindCompetence   NodeKind = "competence"
	NodeKindBehavior     NodeKind = "behavior"
)

// Depth returns the depth a node of this kind lives at in the strict
// four-level tree (pillar 0 ... behavior 3).
func (k NodeKind) Depth() (int, error) {
	switch k {
	case NodeKindPillar:
		return 0, nil
	case NodeKindSubComponent:
		return 1, nil
	case NodeKindCompetence:
		return 2, nil
	case NodeKindBehavior:
		return 3, nil
	default:
		return 0, fmt.Errorf("unknown node kind %q", string(k))
	}
}

// ChildKind returns the kind nodes nested directly below this kind have.
func (k NodeKind) ChildKind() (NodeKind, bool) {
	switch k {
	case NodeKindPillar:
		return NodeKindSubComponent, true
	case NodeKindSubComponent:
		return NodeKindCompetence, true
	case NodeKindCompetence:
		return NodeKindBehavior, true
	default:
		return "", false
	}
}

type TaxonomyNodeDTO struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Kind         NodeKind          `json:"kind"`
	ParentID     *string           `json:"parentId"`
	DisplayOrder int               `json:"displayOrder"`
	Active       bool              `json:"active"`
	Children     []TaxonomyNodeDTO `json:"children,omitempty"`
}
