package main

import (
	"os"
	"path"
	"testing"

	"github.com/godist/ldagibbs/core/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	docs := utils.LoadDocumentsOrDie("./testdata/corpus", nil, 0, 0)
	dir := t.TempDir()

	require.NoError(t, run(docs, &options{
		topics: 2,
		passes: 30,
		every:  3,
		words:  []string{"apple", "cat"},
		seed:   1,
		outdir: dir,
	}))

	for _, name := range []string{"trajectory.png", "wdist.png", "doclen.png"} {
		fi, e := os.Stat(path.Join(dir, name))
		if assert.NoError(t, e, name) {
			assert.True(t, fi.Size() > 0, name)
		}
	}
}

func TestRunErrors(t *testing.T) {
	docs := utils.LoadDocumentsOrDie("./testdata/corpus", nil, 0, 0)
	dir := t.TempDir()

	assert.Error(t, run(docs, &options{topics: 0, outdir: dir}))
	assert.Error(t, run(docs, &options{topics: 2, topic: 2, outdir: dir}))
	assert.Error(t, run(docs, &options{topics: 2, passes: 2, words: []string{"mango"}, outdir: dir}))
}
