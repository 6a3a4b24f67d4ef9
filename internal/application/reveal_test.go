package application_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/caffxin/studiosite/internal/application"
)

func TestCascade(t *testing.T) {
	assert.Nil(t, application.Cascade(0, 0))

	assert.Equal(t,
		[]time.Duration{200 * time.Millisecond, 400 * time.Millisecond, 600 * time.Millisecond},
		application.Cascade(0, 3))

	assert.Equal(t,
		[]time.Duration{300 * time.Millisecond, 500 * time.Millisecond},
		application.Cascade(100*time.Millisecond, 2))
}
