package storage

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/odekit/internal/dynamo"
)

func sampleTrajectory() *dynamo.Trajectory {
	tr := dynamo.NewTrajectory(3)
	tr.Append(0, dynamo.State{1.0, 0.0})
	tr.Append(0.1, dynamo.State{0.995004165278026, -0.0998334166468282})
	tr.Append(0.25, dynamo.State{0.9689124217106447, -0.24740395925452294})
	tr.Stats = dynamo.Stats{Steps: 2, Rejected: 1, Evaluations: 10}
	return tr
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	require.NoError(t, st.Init())

	meta := RunMetadata{
		Problem: "oscillator",
		Method:  "rk23",
		Span:    dynamo.Span{T0: 0, Tf: 0.25},
		Tol:     1e-6,
		U0:      []float64{1, 0},
		Params:  map[string]float64{"omega": 1},
	}
	runID, err := st.Save(meta, sampleTrajectory())
	require.NoError(t, err)
	require.NotEmpty(t, runID)

	loaded, err := st.Load(runID)
	require.NoError(t, err)
	assert.Equal(t, "oscillator", loaded.Problem)
	assert.Equal(t, "rk23", loaded.Method)
	assert.Equal(t, 3, loaded.Points)
	assert.Equal(t, 1, loaded.Stats.Rejected)
	assert.Equal(t, 1.0, loaded.Params["omega"])
	assert.False(t, loaded.Timestamp.IsZero())

	tr, err := st.LoadTrajectory(runID)
	require.NoError(t, err)
	require.Equal(t, 3, tr.Len())
	orig := sampleTrajectory()
	for i := range orig.Times {
		assert.Equal(t, orig.Times[i], tr.Times[i])
		assert.Equal(t, orig.States[i], tr.States[i])
	}
	assert.Equal(t, orig.Stats, tr.Stats)
}

func TestStoreList(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)
	require.NoError(t, st.Init())

	runs, err := st.List()
	require.NoError(t, err)
	assert.Empty(t, runs)

	first, err := st.Save(RunMetadata{Problem: "zero", Method: "euler"}, sampleTrajectory())
	require.NoError(t, err)
	second, err := st.Save(RunMetadata{Problem: "zero", Method: "rk4"}, sampleTrajectory())
	require.NoError(t, err)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "not-a-run"), 0755))

	runs, err = st.List()
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, first, runs[0].ID)
	assert.Equal(t, second, runs[1].ID)
}

func TestStoreList_MissingDir(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "absent"))
	runs, err := st.List()
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestStoreLoad_Missing(t *testing.T) {
	st := New(t.TempDir())
	_, err := st.Load("nope")
	assert.Error(t, err)
	_, err = st.LoadTrajectory("nope")
	assert.Error(t, err)
}

func TestExportJSON(t *testing.T) {
	var buf bytes.Buffer
	meta := RunMetadata{ID: "x", Problem: "oscillator", Method: "rk4", N: 2}
	require.NoError(t, ExportJSON(&buf, meta, sampleTrajectory()))

	var decoded ExportData
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "oscillator", decoded.Problem)
	assert.Equal(t, 2, decoded.N)
	assert.Len(t, decoded.Times, 3)
	assert.Len(t, decoded.States, 3)
	assert.Equal(t, []float64{1.0, 0.0}, decoded.States[0])
}
