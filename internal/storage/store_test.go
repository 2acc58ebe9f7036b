package storage

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/san-kum/icesim/internal/icesheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult(n int, offset float64) *icesheet.Result {
	r := &icesheet.Result{
		Times:    make([]float64, n),
		Controls: make([]float64, n),
		EqTop:    make([]float64, n),
		EqBottom: make([]float64, n),
		Volumes:  make([]float64, n),
	}
	for t := 1; t < n; t++ {
		r.Times[t] = float64(t)
		r.Controls[t] = float64(t)/float64(n) + offset
		r.EqTop[t] = 1 - r.Controls[t] + 0.1
		r.EqBottom[t] = 1 - r.Controls[t] - 0.1
		r.Volumes[t] = 0.5 + offset
	}
	return r
}

func TestSaveLoadSingle(t *testing.T) {
	st := New(t.TempDir())
	require.NoError(t, st.Init())

	primary := sampleResult(50, 0)

	runID, err := st.Save(RunMetadata{
		Curve: "simple", Forcing: "triangle", RateModel: "constant",
		Period: 20, TimeMax: 50, StepLength: 1.0, Start: "zero",
		Summary: map[string]float64{"final_volume": 0.5},
	}, primary, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, runID)

	meta, err := st.Load(runID)
	require.NoError(t, err)
	assert.Equal(t, runID, meta.ID)
	assert.Equal(t, "simple", meta.Curve)
	assert.False(t, meta.DualRun)
	assert.Equal(t, 0.5, meta.Summary["final_volume"])

	loaded, second, err := st.LoadSeries(runID)
	require.NoError(t, err)
	assert.Nil(t, second)
	require.Equal(t, primary.Len(), loaded.Len())
	assert.InDelta(t, primary.Volumes[25], loaded.Volumes[25], 1e-6)
	assert.InDelta(t, primary.EqTop[25], loaded.EqTop[25], 1e-6)
	assert.InDelta(t, primary.Controls[25], loaded.Controls[25], 1e-6)
}

func TestSaveLoadDual(t *testing.T) {
	st := New(t.TempDir())
	require.NoError(t, st.Init())

	primary := sampleResult(30, 0)
	secondary := sampleResult(30, 0.1)

	runID, err := st.Save(RunMetadata{Curve: "hysteresis", TimeMax: 30}, primary, secondary)
	require.NoError(t, err)

	meta, err := st.Load(runID)
	require.NoError(t, err)
	assert.True(t, meta.DualRun)

	first, second, err := st.LoadSeries(runID)
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.InDelta(t, primary.Volumes[10], first.Volumes[10], 1e-6)
	assert.InDelta(t, secondary.Volumes[10], second.Volumes[10], 1e-6)
	assert.InDelta(t, secondary.Controls[10], second.Controls[10], 1e-6)
}

func TestSaveSameSecondKeepsBothRuns(t *testing.T) {
	st := New(t.TempDir())
	require.NoError(t, st.Init())

	// Back-to-back saves of the same curve land within one clock
	// second; each must still get its own directory.
	ids := make(map[string]bool)
	for i := 0; i < 3; i++ {
		runID, err := st.Save(RunMetadata{Curve: "simple"}, sampleResult(10, 0), nil)
		require.NoError(t, err)
		ids[runID] = true
	}
	assert.Len(t, ids, 3)

	runs, err := st.List()
	require.NoError(t, err)
	assert.Len(t, runs, 3)

	for runID := range ids {
		_, _, err := st.LoadSeries(runID)
		assert.NoError(t, err)
	}
}

func TestList(t *testing.T) {
	st := New(t.TempDir())
	require.NoError(t, st.Init())

	runs, err := st.List()
	require.NoError(t, err)
	assert.Empty(t, runs)

	_, err = st.Save(RunMetadata{Curve: "simple"}, sampleResult(10, 0), nil)
	require.NoError(t, err)

	runs, err = st.List()
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestListMissingDir(t *testing.T) {
	st := New(t.TempDir() + "/nowhere")

	runs, err := st.List()
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestLoadUnknownRun(t *testing.T) {
	st := New(t.TempDir())
	require.NoError(t, st.Init())

	_, err := st.Load("simple_0")
	assert.Error(t, err)
	_, _, err = st.LoadSeries("simple_0")
	assert.Error(t, err)
}

func TestExportJSON(t *testing.T) {
	primary := sampleResult(10, 0)
	meta := &RunMetadata{ID: "simple_42", Curve: "simple", Forcing: "triangle"}

	var buf bytes.Buffer
	require.NoError(t, ExportJSON(&buf, meta, primary, nil))

	var data ExportData
	require.NoError(t, json.Unmarshal(buf.Bytes(), &data))
	assert.Equal(t, "simple_42", data.ID)
	assert.Equal(t, 10, data.Steps)
	assert.Len(t, data.Volumes, 10)
	assert.Nil(t, data.Second)

	buf.Reset()
	require.NoError(t, ExportJSON(&buf, meta, primary, sampleResult(10, 0.1)))
	require.NoError(t, json.Unmarshal(buf.Bytes(), &data))
	require.NotNil(t, data.Second)
	assert.Len(t, data.Second.Volumes, 10)
}
