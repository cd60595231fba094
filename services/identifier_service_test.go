package services

import (
	"testing"

	"github.com/forshine-dev/shinebuilder/dtos"
	"github.com/forshine-dev/shinebuilder/mocks"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestIdentifierNext(t *testing.T) {
	t.Run("should zero-pad to three digits", func(t *testing.T) {
		counterRepository := mocks.NewSequenceCounterRepository(t)
		counterRepository.On("NextValue", "DOC").Return(7, nil)

		service := NewIdentifierService(counterRepository)

		humanID, err := service.Next(dtos.ContentTypeDocument)

		assert.NoError(t, err)
		assert.Equal(t, "DOC-007", humanID)
	})

	t.Run("should grow past three digits without truncating", func(t *testing.T) {
		counterRepository := mocks.NewSequenceCounterRepository(t)
		counterRepository.On("NextValue", "VID").Return(1042, nil)

		service := NewIdentifierService(counterRepository)

		humanID, err := service.Next(dtos.ContentTypeVideo)

		assert.NoError(t, err)
		assert.Equal(t, "VID-1042", humanID)
	})

	t.Run("should use the generic prefix for unknown content types", func(t *testing.T) {
		counterRepository := mocks.NewSequenceCounterRepository(t)
		counterRepository.On("NextValue", "AST").Return(1, nil)

		service := NewIdentifierService(counterRepository)

		humanID, err := service.Next(dtos.ContentType("podcast"))

		assert.NoError(t, err)
		assert.Equal(t, "AST-001", humanID)
	})

	t.Run("should propagate counter failures", func(t *testing.T) {
		counterRepository := mocks.NewSequenceCounterRepository(t)
		counterRepository.On("NextValue", "DOC").Return(0, errors.New("deadlock detected"))

		service := NewIdentifierService(counterRepository)

		_, err := service.Next(dtos.ContentTypeDocument)

		assert.Error(t, err)
	})
}
