package domain_test

import (
	"testing"

	"outreach-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestCanMarkViewed(t *testing.T) {
	assert.True(t, domain.StatusCreated.CanMarkViewed())
	assert.True(t, domain.StatusSent.CanMarkViewed())

	for _, s := range []domain.Status{
		domain.StatusViewed, domain.StatusAccepted, domain.StatusDeclined, domain.StatusInquiry,
	} {
		assert.False(t, s.CanMarkViewed(), "status %s must not re-fire the viewed transition", s)
	}
}

func TestStatusForResponse(t *testing.T) {
	assert.Equal(t, domain.StatusAccepted, domain.StatusForResponse(domain.ResponseAccepted))
	assert.Equal(t, domain.StatusDeclined, domain.StatusForResponse(domain.ResponseDeclined))
	assert.Equal(t, domain.StatusDeclined, domain.StatusForResponse(domain.ResponseDeclinedNoContact))
	assert.Equal(t, domain.StatusInquiry, domain.StatusForResponse(domain.ResponseInquiry))
}

func TestStatusValid(t *testing.T) {
	assert.True(t, domain.StatusSent.Valid())
	assert.False(t, domain.Status("archived").Valid())
}

func TestDecodePayload(t *testing.T) {
	t.Run("Acceptance payload round-trips", func(t *testing.T) {
		p, err := domain.DecodePayload(domain.ResponseAccepted, []byte(`{"name":"Kim","email":"k@x.co","contact":"010-1234"}`))
		assert.NoError(t, err)
		assert.Equal(t, domain.AcceptancePayload{Name: "Kim", Email: "k@x.co", Contact: "010-1234"}, p)
	})

	t.Run("No-contact decline decodes to empty payload", func(t *testing.T) {
		p, err := domain.DecodePayload(domain.ResponseDeclinedNoContact, []byte(`{}`))
		assert.NoError(t, err)
		assert.Equal(t, domain.NoContactPayload{}, p)
	})

	t.Run("Unknown kind is an error", func(t *testing.T) {
		_, err := domain.DecodePayload(domain.ResponseKind("bogus"), nil)
		assert.Error(t, err)
	})
}
