package storage

import (
	"encoding/json"
	"io"

	"github.com/san-kum/icesim/internal/icesheet"
)

type ExportData struct {
	ID         string             `json:"id"`
	Curve      string             `json:"curve"`
	Forcing    string             `json:"forcing"`
	RateModel  string             `json:"rate_model"`
	StepLength float64            `json:"step_length"`
	Steps      int                `json:"steps"`
	Times      []float64          `json:"times"`
	Controls   []float64          `json:"controls"`
	EqTop      []float64          `json:"eq_top"`
	EqBottom   []float64          `json:"eq_bottom"`
	Volumes    []float64          `json:"volumes"`
	Second     *ExportSeries      `json:"second,omitempty"`
	Summary    map[string]float64 `json:"summary,omitempty"`
}

type ExportSeries struct {
	Controls []float64 `json:"controls"`
	EqTop    []float64 `json:"eq_top"`
	EqBottom []float64 `json:"eq_bottom"`
	Volumes  []float64 `json:"volumes"`
}

// ExportJSON writes a run as a single JSON document.
func ExportJSON(w io.Writer, meta *RunMetadata, primary, secondary *icesheet.Result) error {
	data := ExportData{
		ID:         meta.ID,
		Curve:      meta.Curve,
		Forcing:    meta.Forcing,
		RateModel:  meta.RateModel,
		StepLength: meta.StepLength,
		Steps:      primary.Len(),
		Times:      primary.Times,
		Controls:   primary.Controls,
		EqTop:      primary.EqTop,
		EqBottom:   primary.EqBottom,
		Volumes:    primary.Volumes,
		Summary:    meta.Summary,
	}
	if secondary != nil {
		data.Second = &ExportSeries{
			Controls: secondary.Controls,
			EqTop:    secondary.EqTop,
			EqBottom: secondary.EqBottom,
			Volumes:  secondary.Volumes,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
