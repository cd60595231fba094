package services

import (
	"fmt"

	"github.com/forshine-dev/shinebuilder/dtos"
	"github.com/forshine-dev/shinebuilder/shared"
)

type identifierService struct {
	counterRepository shared.SequenceCounterRepository
}

func NewIdentifierService(counterRepository shared.SequenceCounterRepository) *identifierService {
	return &identifierService{counterRepository: counterRepository}
}

// Next allocates the next human-readable identifier for the content type,
// e.g. DOC-001. The counter lives in the database and is incremented
// atomically, so identifiers stay monotonic and are never reused.
func (s *identifierService) Next(contentType dtos.ContentType) (string, error) {
	prefix := contentType.IdentifierPrefix()
	value, err := s.counterRepository.NextValue(prefix)
	if err != nil {
		return "", shared.NewUpstreamError(fmt.Sprintf("could not allocate identifier for prefix %s", prefix), err)
	}
	return fmt.Sprintf("%s-%03d", prefix, value), nil
}
