package fakefs_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fakefs "github.com/balinomad/go-fakefs"
)

func TestRecorderCounts(t *testing.T) {
	t.Parallel()

	rec := fakefs.NewRecorder()
	assert.Equal(t, 0, rec.Count(fakefs.OpStat))

	rec.Record(fakefs.OpStat, []any{"a.txt"}, nil)
	rec.Record(fakefs.OpStat, []any{"b.txt"}, nil)
	rec.Record(fakefs.OpReadFile, []any{"a.txt", "utf8"}, "x")

	assert.Equal(t, 2, rec.Count(fakefs.OpStat))
	assert.Equal(t, 1, rec.Count(fakefs.OpReadFile))
	assert.Equal(t, 0, rec.Count(fakefs.OpMkdir))
}

func TestRecorderCallLog(t *testing.T) {
	t.Parallel()

	rec := fakefs.NewRecorder()
	rec.Record(fakefs.OpReadFile, []any{"a.txt", "utf8"}, "hello")
	rec.Record(fakefs.OpWriteFile, []any{"a.txt", "bye", "utf8"}, nil)
	rec.Record(fakefs.OpReadFile, []any{"b.txt", "utf8"}, "world")

	reads := rec.Calls(fakefs.OpReadFile)
	require.Len(t, reads, 2)
	assert.Equal(t, []any{"a.txt", "utf8"}, reads[0].Args)
	assert.Equal(t, "hello", reads[0].Result)
	assert.Equal(t, []any{"b.txt", "utf8"}, reads[1].Args)
	assert.Equal(t, "world", reads[1].Result)

	all := rec.All()
	require.Len(t, all, 3)
	assert.Equal(t, fakefs.OpReadFile, all[0].Op)
	assert.Equal(t, fakefs.OpWriteFile, all[1].Op)
	assert.Equal(t, fakefs.OpReadFile, all[2].Op)
}

func TestRecorderSnapshot(t *testing.T) {
	t.Parallel()

	rec := fakefs.NewRecorder()
	rec.Record(fakefs.OpMkdir, []any{"dir"}, nil)
	rec.Record(fakefs.OpMkdir, []any{"dir2"}, nil)
	rec.Record(fakefs.OpRealpath, []any{"x"}, "/x")

	var want [fakefs.NumOperations]int
	want[fakefs.OpMkdir] = 2
	want[fakefs.OpRealpath] = 1
	assert.Equal(t, want, rec.Snapshot())
}

func TestRecorderReset(t *testing.T) {
	t.Parallel()

	rec := fakefs.NewRecorder()
	rec.Record(fakefs.OpStat, []any{"a.txt"}, nil)
	require.Equal(t, 1, rec.Count(fakefs.OpStat))

	rec.Reset()

	assert.Equal(t, 0, rec.Count(fakefs.OpStat))
	assert.Empty(t, rec.All())
	assert.Equal(t, [fakefs.NumOperations]int{}, rec.Snapshot())
}

func TestRecorderIgnoresInvalidOperations(t *testing.T) {
	t.Parallel()

	rec := fakefs.NewRecorder()
	rec.Record(fakefs.InvalidOperation, []any{"x"}, nil)
	rec.Record(fakefs.NumOperations, []any{"x"}, nil)

	assert.Empty(t, rec.All())
	assert.Equal(t, 0, rec.Count(fakefs.InvalidOperation))
	assert.Equal(t, 0, rec.Count(fakefs.NumOperations))
}

func TestRecorderConcurrentRecord(t *testing.T) {
	t.Parallel()

	rec := fakefs.NewRecorder()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec.Record(fakefs.OpStat, []any{"a.txt"}, nil)
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, rec.Count(fakefs.OpStat))
	assert.Len(t, rec.All(), 50)
}
