package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameColorIsStable(t *testing.T) {
	assert.Equal(t, NameColor("Alice"), NameColor("Alice"))
	assert.NotEqual(t, NameColor("Alice"), NameColor("Bob"))
}

func TestNameColorFormatAndRange(t *testing.T) {
	hexColor := regexp.MustCompile(`^#[0-9A-F]{6}$`)

	for i := 0; i < 50; i++ {
		color := NameColor(fmt.Sprintf("staff-%d", i))
		require.Regexp(t, hexColor, color)

		for c := 0; c < 3; c++ {
			channel, err := strconv.ParseUint(color[1+c*2:3+c*2], 16, 8)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, channel, uint64(64))
			assert.LessOrEqual(t, channel, uint64(191))
		}
	}
}
