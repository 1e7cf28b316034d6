package roundicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExec_OutputPathShouldInsertSuffix(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("icon_rounded.png", OutputPath("icon.png", "-"))
	assert.Equal("assets/app_rounded.jpeg", OutputPath("assets/app.jpeg", "-"))
	assert.Equal("icon_rounded", OutputPath("icon", "-"))
}

func TestExec_OutputPathShouldKeepPipeName(t *testing.T) {
	assert.Equal(t, "-", OutputPath("-", "-"))
}

func TestExec_OutputPathShouldResolveUrlBaseName(t *testing.T) {
	assert.Equal(t, "icon_rounded.png", OutputPath("https://example.com/assets/icon.png", "-"))
}
