package progrock_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vito/progrock"
	recorder "go.trai.ch/cmini/internal/adapters/telemetry/progrock"
)

type captureWriter struct {
	mu      sync.Mutex
	updates []*progrock.StatusUpdate
	closed  bool
}

func (w *captureWriter) WriteStatus(u *progrock.StatusUpdate) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.updates = append(w.updates, u)
	return nil
}

func (w *captureWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	return nil
}

func (w *captureWriter) vertexes(name string) []*progrock.Vertex {
	w.mu.Lock()
	defer w.mu.Unlock()
	var out []*progrock.Vertex
	for _, u := range w.updates {
		for _, v := range u.Vertexes {
			if v.Name == name {
				out = append(out, v)
			}
		}
	}
	return out
}

func (w *captureWriter) logs() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	var out string
	for _, u := range w.updates {
		for _, l := range u.Logs {
			out += string(l.Data)
		}
	}
	return out
}

func TestNew(t *testing.T) {
	rec := recorder.New()
	require.NotNil(t, rec)

	_, v := rec.Record(t.Context(), "qwerty")
	v.Log("recomputed 2 corpora")
	v.Complete(nil)
	require.NoError(t, rec.Close())
}

func TestRecorder_Cached(t *testing.T) {
	w := &captureWriter{}
	rec := recorder.NewRecorder(w)

	_, v := rec.Record(t.Context(), "semimak")
	v.Cached()
	v.Complete(nil)

	states := w.vertexes("semimak")
	require.NotEmpty(t, states)
	last := states[len(states)-1]
	assert.True(t, last.Cached)
	assert.Nil(t, last.Error)
}

func TestRecorder_LogAndFailure(t *testing.T) {
	w := &captureWriter{}
	rec := recorder.NewRecorder(w)

	_, v := rec.Record(t.Context(), "dvorak")
	v.Log("corpus is empty")
	v.Complete(errors.New("corpus is empty"))

	assert.Contains(t, w.logs(), "corpus is empty\n")

	states := w.vertexes("dvorak")
	require.NotEmpty(t, states)
	last := states[len(states)-1]
	require.NotNil(t, last.Error)
	assert.Equal(t, "corpus is empty", *last.Error)

	require.NoError(t, rec.Close())
	assert.True(t, w.closed)
}
