package krw

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "0", Format(0))
	assert.Equal(t, "980", Format(980))
	assert.Equal(t, "3,840", Format(3840))
	assert.Equal(t, "1,234,567", Format(1234567))
	assert.Equal(t, "12,000원", Won(12000))
}
