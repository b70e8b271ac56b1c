package lead

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInquiry(t *testing.T) {
	i, err := NewInquiry("Pat Vaughn", "PAT@Example.com", "555-0101", "Managed IT", "We need a quote for 3 campuses", "/services")
	require.NoError(t, err)

	assert.Equal(t, "pat@example.com", i.Email())
	assert.Equal(t, InquiryStatusNew, i.Status())
	assert.Equal(t, "/services", i.SourcePage())
}

func TestNewInquiry_Validation(t *testing.T) {
	_, err := NewInquiry("", "a@b.c", "", "", "msg", "")
	assert.Error(t, err)

	_, err = NewInquiry("n", "not-an-email", "", "", "msg", "")
	assert.Error(t, err)

	_, err = NewInquiry("n", "a@b.c", "", "", "", "")
	assert.Error(t, err)
}

func TestInquiry_SetStatus(t *testing.T) {
	i, err := NewInquiry("n", "a@b.c", "", "", "msg", "")
	require.NoError(t, err)

	require.NoError(t, i.SetStatus(InquiryStatusContacted))
	assert.Equal(t, InquiryStatusContacted, i.Status())
	assert.Error(t, i.SetStatus(InquiryStatus("spam")))
}

func TestSubscription(t *testing.T) {
	s, err := NewSubscription("News@Example.com ")
	require.NoError(t, err)
	assert.Equal(t, "news@example.com", s.Email())
	assert.False(t, s.Unsubscribed())

	s.Unsubscribe()
	assert.True(t, s.Unsubscribed())
	s.Resubscribe()
	assert.False(t, s.Unsubscribed())
}
