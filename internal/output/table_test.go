package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable_String(t *testing.T) {
	out := NewTable("ID", "NAME").
		Row("linux", "Linux").
		Row("html5", "HTML5").
		String()

	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "linux")
	assert.Contains(t, out, "HTML5")
}
