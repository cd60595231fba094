package dtos

// ClassificationProposal is what the AI classification collaborator returns
// for a piece of content. All values are plain taxonomy names; matching
// against the tree stays name-based.
type ClassificationProposal struct {
	PrimaryPillar string `json:"primaryPillar"`
	SubComponent  string `json:"subComponent"`
	Competence    string `json:"competence"`
	Behavior      string `json:"behavior"`
	MaturityLevel string `json:"maturityLevel"`
}

func (p ClassificationProposal) Empty() bool {
	return p.PrimaryPillar == "" && p.SubComponent == "" && p.Competence == "" && p.Behavior == ""
}
