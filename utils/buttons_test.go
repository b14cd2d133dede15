package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseButtonLines(t *testing.T) {
	specs, err := ParseButtonLines("Saytimiz | https://milliybrend.uz\n\nTelegram | https://t.me/milliybrend")
	require.NoError(t, err)
	require.Len(t, specs, 2)
	assert.Equal(t, ButtonSpec{Label: "Saytimiz", URL: "https://milliybrend.uz"}, specs[0])
	assert.Equal(t, ButtonSpec{Label: "Telegram", URL: "https://t.me/milliybrend"}, specs[1])
}

func TestParseButtonLinesErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "missing separator", input: "Saytimiz https://milliybrend.uz"},
		{name: "empty label", input: " | https://milliybrend.uz"},
		{name: "empty url", input: "Saytimiz | "},
		{name: "bad scheme", input: "Saytimiz | ftp://milliybrend.uz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseButtonLines(tt.input)
			require.Error(t, err)
			var specErr *ButtonSpecError
			assert.ErrorAs(t, err, &specErr)
		})
	}
}

func TestParseButtonLinesEmptyInput(t *testing.T) {
	specs, err := ParseButtonLines("   \n  ")
	require.NoError(t, err)
	assert.Empty(t, specs)
}
