package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/forshine-dev/shinebuilder/database/models"
	"github.com/forshine-dev/shinebuilder/dtos"
	"github.com/forshine-dev/shinebuilder/shared"
)

type taxonomyService struct {
	taxonomyRepository shared.TaxonomyRepository
}

func NewTaxonomyService(taxonomyRepository shared.TaxonomyRepository) *taxonomyService {
	return &taxonomyService{taxonomyRepository: taxonomyRepository}
}

// Tree returns the full taxonomy nested into the four-level structure,
// children ordered by display order.
func (s *taxonomyService) Tree() ([]dtos.TaxonomyNodeDTO, error) {
	nodes, err := s.taxonomyRepository.All()
	if err != nil {
		return nil, shared.NewUpstreamError("could not fetch taxonomy", err)
	}

	childrenOf := make(map[string][]models.TaxonomyNode)
	var roots []models.TaxonomyNode
	for _, node := range nodes {
		if node.ParentID == nil {
			roots = append(roots, node)
			continue
		}
		key := node.ParentID.String()
		childrenOf[key] = append(childrenOf[key], node)
	}

	var build func(node models.TaxonomyNode) dtos.TaxonomyNodeDTO
	build = func(node models.TaxonomyNode) dtos.TaxonomyNodeDTO {
		dto := dtos.TaxonomyNodeDTO{
			ID:           node.ID.String(),
			Name:         node.Name,
			Kind:         node.Kind,
			DisplayOrder: node.DisplayOrder,
			Active:       node.Active,
		}
		if node.ParentID != nil {
			parentID := node.ParentID.String()
			dto.ParentID = &parentID
		}
		for _, child := range childrenOf[node.ID.String()] {
			dto.Children = append(dto.Children, build(child))
		}
		return dto
	}

	tree := make([]dtos.TaxonomyNodeDTO, 0, len(roots))
	for _, root := range roots {
		tree = append(tree, build(root))
	}
	return tree, nil
}

// yaml seed format used by the management CLI:
//
//	pillars:
//	  - name: Shine In
//	    subcomponents:
//	      - name: Self Awareness
//	        competences:
//	          - name: Emotional Insight
//	            behaviors:
//	              - Names own emotions in the moment
type taxonomyDoc struct {
	Pillars []yamlPillar `yaml:"pillars"`
}

type yamlPillar struct {
	Name          string             `yaml:"name"`
	SubComponents []yamlSubComponent `yaml:"subcomponents"`
}

type yamlSubComponent struct {
	Name        string           `yaml:"name"`
	Competences []yamlCompetence `yaml:"competences"`
}

type yamlCompetence struct {
	Name      string   `yaml:"name"`
	Behaviors []string `yaml:"behaviors"`
}

// ImportYAML seeds or updates the taxonomy tree from a yaml document. Nodes
// are upserted by (parent, name); the whole import runs in one transaction.
// Returns the number of nodes written.
func (s *taxonomyService) ImportYAML(doc []byte) (int, error) {
	var parsed taxonomyDoc
	if err := yaml.Unmarshal(doc, &parsed); err != nil {
		return 0, shared.NewValidationError(fmt.Sprintf("invalid taxonomy document: %s", err))
	}
	if len(parsed.Pillars) == 0 {
		return 0, shared.NewValidationError("taxonomy document contains no pillars")
	}

	count := 0
	err := s.taxonomyRepository.Transaction(func(tx shared.DB) error {
		for pillarOrder, pillar := range parsed.Pillars {
			pillarNode, err := s.upsertNode(tx, nil, dtos.NodeKindPillar, pillar.Name, pillarOrder, &count)
			if err != nil {
				return err
			}
			for subOrder, sub := range pillar.SubComponents {
				subNode, err := s.upsertNode(tx, &pillarNode, dtos.NodeKindSubComponent, sub.Name, subOrder, &count)
				if err != nil {
					return err
				}
				for compOrder, competence := range sub.Competences {
					compNode, err := s.upsertNode(tx, &subNode, dtos.NodeKindCompetence, competence.Name, compOrder, &count)
					if err != nil {
						return err
					}
					for behaviorOrder, behavior := range competence.Behaviors {
						if _, err := s.upsertNode(tx, &compNode, dtos.NodeKindBehavior, behavior, behaviorOrder, &count); err != nil {
							return err
						}
					}
				}
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (s *taxonomyService) upsertNode(tx shared.DB, parent *models.TaxonomyNode, kind dtos.NodeKind, name string, order int, count *int) (models.TaxonomyNode, error) {
	if name == "" {
		return models.TaxonomyNode{}, shared.NewValidationError(fmt.Sprintf("a %s in the taxonomy document has no name", kind))
	}

	var parentID *uuid.UUID
	if parent != nil {
		parentID = &parent.ID
	}

	node, err := s.taxonomyRepository.FindByParentAndName(tx, parentID, name)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return models.TaxonomyNode{}, shared.NewUpstreamError("could not look up taxonomy node", err)
		}
		node = models.TaxonomyNode{
			Name:         name,
			Slug:         slug.Make(name),
			Kind:         kind,
			ParentID:     parentID,
			DisplayOrder: order,
			Active:       true,
		}
		if err := node.ValidateParentKind(parent); err != nil {
			return models.TaxonomyNode{}, shared.NewValidationError(err.Error())
		}
		if err := s.taxonomyRepository.Create(tx, &node); err != nil {
			return models.TaxonomyNode{}, shared.NewUpstreamError("could not create taxonomy node", err)
		}
		*count++
		return node, nil
	}

	if node.Kind != kind {
		return models.TaxonomyNode{}, shared.NewValidationError(fmt.Sprintf("node %q already exists as %s, cannot import it as %s", name, node.Kind, kind))
	}
	if node.DisplayOrder != order || !node.Active {
		node.DisplayOrder = order
		node.Active = true
		if err := s.taxonomyRepository.Save(tx, &node); err != nil {
			return models.TaxonomyNode{}, shared.NewUpstreamError("could not update taxonomy node", err)
		}
		*count++
	}
	return node, nil
}
