package dtos

import (
	"time"

	"github.com/google/uuid"
)

type AssetStatus string

const (
	AssetStatusDraft      AssetStatus = "draft"
	AssetStatusReview     AssetStatus = "review"
	AssetStatusValidated  AssetStatus = "validated"
	AssetStatusProcessing AssetStatus = "processing"
	AssetStatusError      AssetStatus = "error"
)

func (s AssetStatus) Valid() bool {
	switch s {
	case AssetStatusDraft, AssetStatusReview, AssetStatusValidated, AssetStatusProcessing, AssetStatusError:
		return true
	}
	return false
}

type ContentType string

const (
	ContentTypeDocument ContentType = "document"
	ContentTypeVideo    ContentType = "video"
	ContentTypeAudio    ContentType = "audio"
	ContentTypeTemplate ContentType = "template"
	ContentTypeOther    ContentType = "other"
)

// IdentifierPrefix maps a content type to the prefix used for human-readable
// asset identifiers (DOC-001, VID-042, ...).
func (t ContentType) IdentifierPrefix() string {
	switch t {
	case ContentTypeDocument:
		return "DOC"
	case ContentTypeVideo:
		return "VID"
	case ContentTypeAudio:
		return "AUD"
	case ContentTypeTemplate:
		return "TPL"
	default:
		return "AST"
	}
}

// IPOwnerThirdParty marks content whose intellectual property belongs to a
// third party. Approving such an asset requires licensing language in the
// observations field.
const IPOwnerThirdParty = "Tercero"

// CompletenessPlaceholder is the sentinel the curators type into fields they
// still have to fill in. It counts as empty for the completeness score.
const CompletenessPlaceholder = "Completar"

type AssetCreateRequest struct {
	Title            string      `json:"title" validate:"required"`
	ContentType      ContentType `json:"contentType" validate:"required"`
	PrimaryPillar    string      `json:"primaryPillar"`
	SecondaryPillars []string    `json:"secondaryPillars"`
	SubComponent     string      `json:"subComponent"`
	Competence       string      `json:"competence"`
	Behavior         string      `json:"behavior"`
	MaturityLevel    string      `json:"maturityLevel"`
	TargetRole       string      `json:"targetRole"`
	IPOwner          string      `json:"ipOwner"`
	IPType           string      `json:"ipType"`
	Confidentiality  string      `json:"confidentiality"`
	FileRef          *string     `json:"fileRef"`
	Version          string      `json:"version"`
	Observations     string      `json:"observations"`
}

// AssetPatchRequest carries a field-level update. Nil pointers leave the
// corresponding field untouched.
type AssetPatchRequest struct {
	Title            *string  `json:"title"`
	PrimaryPillar    *string  `json:"primaryPillar"`
	SecondaryPillars []string `json:"secondaryPillars"`
	SubComponent     *string  `json:"subComponent"`
	Competence       *string  `json:"competence"`
	Behavior         *string  `json:"behavior"`
	MaturityLevel    *string  `json:"maturityLevel"`
	TargetRole       *string  `json:"targetRole"`
	IPOwner          *string  `json:"ipOwner"`
	IPType           *string  `json:"ipType"`
	Confidentiality  *string  `json:"confidentiality"`
	FileRef          *string  `json:"fileRef"`
	Version          *string  `json:"version"`
	Observations     *string  `json:"observations"`

	// OverrideReason is mandatory when patching an asset that is already
	// validated. It ends up in the audit log, not on the asset.
	OverrideReason string `json:"overrideReason"`
}

func (p AssetPatchRequest) Empty() bool {
	return p.Title == nil && p.PrimaryPillar == nil && p.SecondaryPillars == nil &&
		p.SubComponent == nil && p.Competence == nil && p.Behavior == nil &&
		p.MaturityLevel == nil && p.TargetRole == nil && p.IPOwner == nil &&
		p.IPType == nil && p.Confidentiality == nil && p.FileRef == nil &&
		p.Version == nil && p.Observations == nil
}

// ApprovalChecklist is filled in by the approving auditor. All three criteria
// are independent and all three have to be confirmed.
type ApprovalChecklist struct {
	TechnicalQuality        bool `json:"technicalQuality"`
	MethodologicalCoherence bool `json:"methodologicalCoherence"`
	FileIntegrity           bool `json:"fileIntegrity"`
}

func (c ApprovalChecklist) Complete() bool {
	return c.TechnicalQuality && c.MethodologicalCoherence && c.FileIntegrity
}

// IPAmendments lets the approving auditor fix up IP governance fields in the
// same write that validates the asset.
type IPAmendments struct {
	IPOwner         *string `json:"ipOwner"`
	IPType          *string `json:"ipType"`
	Confidentiality *string `json:"confidentiality"`
}

type ApprovalRequest struct {
	Checklist    ApprovalChecklist `json:"checklist"`
	IPAmendments IPAmendments      `json:"ipAmendments"`
}

type RejectRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// ProcessingResultRequest is reported by the media processing collaborator
// once an async job finished.
type ProcessingResultRequest struct {
	Success bool   `json:"success"`
	Detail  string `json:"detail"`
}

type AssetDTO struct {
	ID               uuid.UUID   `json:"id"`
	HumanID          string      `json:"humanId"`
	Title            string      `json:"title"`
	ContentType      ContentType `json:"contentType"`
	PrimaryPillar    string      `json:"primaryPillar"`
	SecondaryPillars []string    `json:"secondaryPillars"`
	SubComponent     string      `json:"subComponent"`
	Competence       string      `json:"competence"`
	Behavior         string      `json:"behavior"`
	MaturityLevel    string      `json:"maturityLevel"`
	TargetRole       string      `json:"targetRole"`
	Status           AssetStatus `json:"status"`
	IPOwner          string      `json:"ipOwner"`
	IPType           string      `json:"ipType"`
	Confidentiality  string      `json:"confidentiality"`
	FileRef          *string     `json:"fileRef"`
	Version          string      `json:"version"`
	Observations     string      `json:"observations"`
	Completeness     int         `json:"completeness"`
	CreatedAt        time.Time   `json:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt"`
}
