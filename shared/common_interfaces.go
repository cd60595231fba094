// Copyright (C) 2025 forshine-dev
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package shared

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/forshine-dev/shinebuilder/database/models"
	"github.com/forshine-dev/shinebuilder/dtos"
)

// Role is the closed set of roles the identity provider may report. The
// provider strings are canonicalized exactly once, at the session boundary
// (see accesscontrol.ParseRole); everything below that point compares
// against these constants only.
type Role string

const (
	RoleAdmin         Role = "admin"
	RoleAuditor       Role = "auditor"
	RoleMethodologist Role = "methodologist"
	RoleCurator       Role = "curator"
	RoleGuest         Role = "guest"
)

// AuthSession is the acting identity attached to every request by the
// session middleware. The core never authenticates anyone itself.
type AuthSession interface {
	GetUserID() string
	GetRole() Role
}

// Actor is the identity a lifecycle operation runs as.
type Actor struct {
	ID   string
	Role Role
}

type RBACMiddleware = func(minRole Role) echo.MiddlewareFunc

type AssetRepository interface {
	Read(id uuid.UUID) (models.Asset, error)
	ReadByHumanID(humanID string) (models.Asset, error)
	All() ([]models.Asset, error)
	GetByStatus(status dtos.AssetStatus) ([]models.Asset, error)
	Create(tx DB, asset *models.Asset) error
	Save(tx DB, asset *models.Asset) error
	Delete(tx DB, id uuid.UUID) error
	Transaction(f func(tx DB) error) error
}

type TaxonomyRepository interface {
	All() ([]models.TaxonomyNode, error)
	GetActiveNodes() ([]models.TaxonomyNode, error)
	FindByParentAndName(tx DB, parentID *uuid.UUID, name string) (models.TaxonomyNode, error)
	Create(tx DB, node *models.TaxonomyNode) error
	Save(tx DB, node *models.TaxonomyNode) error
	Transaction(f func(tx DB) error) error
}

type AuditLogRepository interface {
	Create(tx DB, entry *models.AuditLog) error
	GetByAssetHumanID(humanID string) ([]models.AuditLog, error)
}

type SequenceCounterRepository interface {
	// NextValue atomically increments the counter for the prefix and
	// returns the new value. Values are monotonic and never reused.
	NextValue(prefix string) (int, error)
}

type ReleaseRepository interface {
	Read(id uuid.UUID) (models.Release, error)
	All() ([]models.Release, error)
}

type LifecycleService interface {
	Create(actor Actor, req dtos.AssetCreateRequest) (models.Asset, error)
	SubmitForReview(actor Actor, humanID string) (models.Asset, error)
	Approve(actor Actor, humanID string, req dtos.ApprovalRequest) (models.Asset, error)
	Reject(actor Actor, humanID string, reason string) (models.Asset, error)
	Update(actor Actor, humanID string, patch dtos.AssetPatchRequest) (models.Asset, error)
	CompleteProcessing(humanID string, result dtos.ProcessingResultRequest) (models.Asset, error)
	Delete(actor Actor, humanID string, reason string) error
}

type CoverageService interface {
	Report() (dtos.CoverageReport, error)
}

type IdentifierService interface {
	Next(contentType dtos.ContentType) (string, error)
}

type TaxonomyService interface {
	Tree() ([]dtos.TaxonomyNodeDTO, error)
	ImportYAML(doc []byte) (int, error)
}

// Classifier proposes a taxonomy classification for freshly ingested
// content. It is an external AI collaborator: failures are never fatal to
// the ingestion path.
type Classifier interface {
	Classify(title, observations string) (dtos.ClassificationProposal, error)
}
