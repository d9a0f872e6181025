package figplot

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type runResult struct {
	res *Result
	err error
}

func TestWatchRerendersOnDataChange(t *testing.T) {
	debounceDelay = 20 * time.Millisecond
	t.Cleanup(func() { debounceDelay = 300 * time.Millisecond })

	dir := t.TempDir()
	writeCSV(t, dir, "t,a,b\n0,1,2\n1,2,3\n")
	path := writeConfig(t, dir, nil)

	ctx, cancel := context.WithCancel(context.Background())
	results := make(chan runResult, 8)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, Options{ConfigPath: path}, func(res *Result, err error) {
			results <- runResult{res, err}
		})
	}()

	next := func() runResult {
		t.Helper()
		select {
		case r := <-results:
			return r
		case <-time.After(5 * time.Second):
			t.Fatal("no render within 5s")
			return runResult{}
		}
	}

	first := next()
	require.NoError(t, first.err)
	assert.Equal(t, 2, first.res.Series)

	// A broken data file is reported and watching continues.
	writeCSV(t, dir, "t,a,b\n0,x,2\n")
	broken := next()
	assert.Error(t, broken.err)

	writeCSV(t, dir, "t,a\n0,1\n1,2\n")
	fixed := next()
	require.NoError(t, fixed.err)
	assert.Equal(t, 1, fixed.res.Series)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}

func TestWatchIgnoresUnrelatedFiles(t *testing.T) {
	debounceDelay = 20 * time.Millisecond
	t.Cleanup(func() { debounceDelay = 300 * time.Millisecond })

	dir := t.TempDir()
	writeCSV(t, dir, "t,a\n0,1\n")
	path := writeConfig(t, dir, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	results := make(chan runResult, 8)
	go func() {
		_ = Watch(ctx, Options{ConfigPath: path}, func(res *Result, err error) {
			results <- runResult{res, err}
		})
	}()

	select {
	case r := <-results:
		require.NoError(t, r.err)
	case <-time.After(5 * time.Second):
		t.Fatal("no initial render")
	}

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	select {
	case <-results:
		t.Fatal("unrelated file triggered a render")
	case <-time.After(300 * time.Millisecond):
	}
}
