package emojiwebp

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/webp"
)

func TestExecute_ShouldConvertMixedDataset(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()

	png10, png1 := testPNG(t, 10, 10), testPNG(t, 1, 1)
	src := Dataset{
		newRecord(t, map[string]any{"name": "ten", "emoji": DataURI{MimeType: "image/png", Data: png10}.String()}),
		newRecord(t, map[string]any{"name": "one", "emoji": DataURI{MimeType: "image/png", Data: png1}.String()}),
		newRecord(t, map[string]any{"name": "text", "emoji": "not-an-image"}),
	}
	var console bytes.Buffer
	op := &Ops{
		Source:     src,
		BackupPath: filepath.Join(dir, "backup", "emojis.js"),
		OutputPath: filepath.Join(dir, "emojis.webp.js"),
		Console:    &console,
	}

	summary, err := op.Execute(context.Background())
	assert.NoError(err)
	assert.Equal(3, summary.Total)
	assert.Equal(int64(len(png10)+len(png1)), summary.Original)

	out, err := ReadModule(op.OutputPath, DefaultExport)
	assert.NoError(err)
	assert.Len(out, 3)
	assert.Equal(src[2], out[2])

	var optimized int64
	for i := 0; i < 2; i++ {
		assert.Equal(src[i]["name"], out[i]["name"])
		s, _ := out[i].Emoji()
		assert.True(strings.HasPrefix(s, "data:image/webp;base64,"))

		uri, err := ParseDataURI(s)
		assert.NoError(err)
		optimized += int64(len(uri.Data))

		cfg, err := webp.DecodeConfig(bytes.NewReader(uri.Data))
		assert.NoError(err)
		assert.Equal(42, cfg.Width)
		assert.Equal(42, cfg.Height)
	}
	assert.Equal(optimized, summary.Optimized)

	backup, err := ReadModule(op.BackupPath, DefaultExport)
	assert.NoError(err)
	assert.Equal(src, backup)

	assert.Contains(console.String(), "3/3")
	assert.Contains(console.String(), "converted successfully")

	var report bytes.Buffer
	PrintSummary(&report, summary)
	assert.Contains(report.String(), op.OutputPath)
	assert.Contains(report.String(), "2 converted, 1 unchanged, 0 failed (of 3)")
}

func TestExecute_ShouldNotWriteOutputOnFailure(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()

	src := Dataset{
		newRecord(t, map[string]any{"name": "ok", "emoji": pngURI(t, 8, 8)}),
		newRecord(t, map[string]any{"name": "corrupt", "emoji": "data:image/png;base64,iVBORw0KGgoAAAAAAA=="}),
	}
	op := &Ops{
		Source:     src,
		BackupPath: filepath.Join(dir, "backup", "emojis.js"),
		OutputPath: filepath.Join(dir, "emojis.webp.js"),
		Console:    &bytes.Buffer{},
	}

	_, err := op.Execute(context.Background())
	assert.Error(err)
	assert.True(IsKind(err, KindTranscode))

	_, statErr := os.Stat(op.OutputPath)
	assert.True(os.IsNotExist(statErr))

	backup, err := ReadModule(op.BackupPath, DefaultExport)
	assert.NoError(err)
	assert.Equal(src, backup)
}

func TestExecute_ShouldFailWhenBackupCannotBeWritten(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()

	blocker := filepath.Join(dir, "backup")
	assert.NoError(os.WriteFile(blocker, nil, 0644))

	op := &Ops{
		Source:     Dataset{newRecord(t, map[string]any{"emoji": pngURI(t, 2, 2)})},
		BackupPath: filepath.Join(blocker, "emojis.js"),
		OutputPath: filepath.Join(dir, "emojis.webp.js"),
		Console:    &bytes.Buffer{},
	}
	_, err := op.Execute(context.Background())
	assert.True(IsKind(err, KindFilesystem))

	_, statErr := os.Stat(op.OutputPath)
	assert.True(os.IsNotExist(statErr))
}

func TestExecute_ShouldConvertBundledDataset(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()

	op := &Ops{
		BackupPath: filepath.Join(dir, "backup", "emojis.js"),
		OutputPath: filepath.Join(dir, "emojis.webp.js"),
		Console:    &bytes.Buffer{},
	}
	summary, err := op.Execute(context.Background())
	assert.NoError(err)

	src, err := DefaultDataset()
	assert.NoError(err)
	assert.Equal(len(src), summary.Total)
	assert.Greater(summary.Converted, 0)
	assert.Greater(summary.Saved(), int64(0))
}
