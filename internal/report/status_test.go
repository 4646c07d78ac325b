package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStatus(t *testing.T) {
	assert.Equal(t, "alpha", NormalizeStatus("private"))
	assert.Equal(t, "public", NormalizeStatus("public"))
	assert.Equal(t, "beta", NormalizeStatus("beta"))
	assert.Equal(t, "", NormalizeStatus(""))
}
