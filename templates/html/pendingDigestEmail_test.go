package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderPendingDigestEmail(t *testing.T) {
	html := RenderPendingDigestEmail([]string{
		"Case 3/2024 (Central): arrest decision pending for all accused",
		"Case <7/2023>: warrant outstanding",
	})

	assert.Contains(t, html, "Case 3/2024 (Central)")
	// content is escaped
	assert.Contains(t, html, "&lt;7/2023&gt;")
	assert.NotContains(t, html, "<7/2023>")
}
