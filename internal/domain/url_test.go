package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"shortlink/internal/domain"
)

func TestMapping_Accessible(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Second)
	future := now.Add(time.Second)

	tests := []struct {
		name      string
		mapping   domain.Mapping
		expired   bool
		reachable bool
	}{
		{"active without expiry", domain.Mapping{IsActive: true}, false, true},
		{"active with future expiry", domain.Mapping{IsActive: true, ExpiresAt: &future}, false, true},
		{"active with past expiry", domain.Mapping{IsActive: true, ExpiresAt: &past}, true, false},
		{"expiry equal to now", domain.Mapping{IsActive: true, ExpiresAt: &now}, true, false},
		{"inactive", domain.Mapping{IsActive: false}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expired, tt.mapping.Expired(now))
			assert.Equal(t, tt.reachable, tt.mapping.Accessible(now))
		})
	}
}

func TestMapping_Clone(t *testing.T) {
	exp := time.Now().Add(time.Hour)
	m := &domain.Mapping{ShortCode: "abc", ExpiresAt: &exp, IsActive: true}

	c := m.Clone()
	c.IsActive = false
	*c.ExpiresAt = exp.Add(time.Hour)

	assert.True(t, m.IsActive)
	assert.Equal(t, exp, *m.ExpiresAt)
}
