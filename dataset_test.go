package emojiwebp

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataset_ShouldLoadBundledDataset(t *testing.T) {
	assert := assert.New(t)

	ds, err := DefaultDataset()
	assert.NoError(err)
	assert.NotEmpty(ds)

	var images int
	for _, rec := range ds {
		if s, ok := rec.Emoji(); ok && IsDataURI(s) {
			_, err := ParseDataURI(s)
			assert.NoError(err)
			images++
		}
	}
	assert.Greater(images, 0)
}

func TestDataset_ParseShouldCompactValues(t *testing.T) {
	assert := assert.New(t)

	ds, err := ParseDataset(strings.NewReader(`[
		{"name": "heart", "tags": [ "love",  "red" ], "emoji": "❤"}
	]`))
	assert.NoError(err)
	assert.Len(ds, 1)
	assert.Equal(json.RawMessage(`["love","red"]`), ds[0]["tags"])

	s, ok := ds[0].Emoji()
	assert.True(ok)
	assert.Equal("❤", s)
}

func TestDataset_ParseErrors(t *testing.T) {
	for _, src := range []string{`{"emoji": "x"}`, `[{"emoji": }]`, `[null]`, `[1, 2]`} {
		_, err := ParseDataset(strings.NewReader(src))
		assert.Error(t, err, src)
		assert.True(t, IsKind(err, KindDataset), src)
	}
}

func TestDataset_EmojiField(t *testing.T) {
	assert := assert.New(t)

	_, ok := Record{"name": json.RawMessage(`"x"`)}.Emoji()
	assert.False(ok)

	_, ok = Record{"emoji": json.RawMessage(`42`)}.Emoji()
	assert.False(ok)
}

func TestDataset_CloneShouldBeIndependent(t *testing.T) {
	assert := assert.New(t)

	src := Dataset{
		newRecord(t, map[string]any{"name": "a", "emoji": "data:image/png;base64,AAAA"}),
		newRecord(t, map[string]any{"name": "b"}),
	}
	cp := src.Clone()
	assert.Equal(src, cp)

	cp[0]["emoji"][1] = 'X'
	cp[1]["extra"] = json.RawMessage(`true`)

	s, _ := src[0].Emoji()
	assert.Equal("data:image/png;base64,AAAA", s)
	assert.NotContains(src[1], "extra")
}
