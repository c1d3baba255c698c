package driverinfo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vvka-141/rfconn/internal/driverinfo"
	"github.com/vvka-141/rfconn/pkg/rfconn"
)

func TestProperties(t *testing.T) {
	props := driverinfo.Properties()
	assert.Len(t, props, len(rfconn.RequiredFields)+1)

	var names []string
	for i, p := range props {
		names = append(names, p.Name)
		assert.NotEmpty(t, p.Description, p.Name)
		if i < len(rfconn.RequiredFields) {
			assert.True(t, p.Required, p.Name)
		}
	}

	assert.ElementsMatch(t, append([]string{rfconn.FieldVerifyCA}, rfconn.RequiredFields...), names)
	assert.Equal(t, rfconn.FieldVerifyCA, props[len(props)-1].Name)
	assert.False(t, props[len(props)-1].Required)
}
