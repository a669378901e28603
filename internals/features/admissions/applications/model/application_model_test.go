package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplicationStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to ApplicationStatus
		ok       bool
	}{
		{ApplicationDraft, ApplicationSubmitted, true},
		{ApplicationSubmitted, ApplicationUnderReview, true},
		{ApplicationUnderReview, ApplicationAccepted, true},
		{ApplicationUnderReview, ApplicationRejected, true},
		{ApplicationAccepted, ApplicationEnrolled, true},
		{ApplicationAccepted, ApplicationRejected, true},

		{ApplicationDraft, ApplicationAccepted, false},
		{ApplicationSubmitted, ApplicationEnrolled, false},
		{ApplicationRejected, ApplicationSubmitted, false},
		{ApplicationEnrolled, ApplicationRejected, false},
		{ApplicationAccepted, ApplicationAccepted, false},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.ok, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}
