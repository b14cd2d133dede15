package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileRefsRoundTrip(t *testing.T) {
	refs := []FileRef{
		{Type: "photo", FileID: "photo-1"},
		{Type: "document", FileID: "doc-1"},
	}

	order := Order{Files: EncodeFileRefs(refs)}
	assert.Equal(t, refs, order.FileRefs())
}

func TestFileRefsEmptyAndMalformed(t *testing.T) {
	assert.Equal(t, "[]", EncodeFileRefs(nil))

	empty := Order{Files: "[]"}
	assert.Empty(t, empty.FileRefs())

	// A corrupted column degrades to no attachments instead of an error.
	malformed := Order{Files: "{not json"}
	assert.Nil(t, malformed.FileRefs())
}

func TestEncodeStringList(t *testing.T) {
	assert.Equal(t, "[]", EncodeStringList(nil))
	assert.Equal(t, `["orders/MBR-1001/0_photo-1"]`, EncodeStringList([]string{"orders/MBR-1001/0_photo-1"}))
}
