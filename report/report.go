// Package report renders a VAM result as an aligned text table or as JSON.
//
// Build turns a problem and its vam.Result into a Document, the single view
// both renderers share. Labels come from the problem; a dummy origin or
// destination added by balancing is labelled DummyLabel unless HideDummy
// strips it.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/vogel/problem"
	"github.com/katalvlaran/vogel/vam"
)

// DummyLabel names the synthetic line added by balancing.
const DummyLabel = "Dummy"

// Options controls rendering.
type Options struct {
	// HideDummy drops the dummy row or column from the tables.
	HideDummy bool

	// ShowSteps includes the iteration trace (the result must carry Steps).
	ShowSteps bool

	// Precision is the number of decimals in text output; <= 0 prints the
	// shortest exact representation.
	Precision int
}

// Shipment is one positive cell of the allocation table.
type Shipment struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Quantity float64 `json:"quantity"`
	UnitCost float64 `json:"unitCost"`
	Cost     float64 `json:"cost"`
}

// StepView is a labelled vam.Step.
type StepView struct {
	Iteration int     `json:"iteration"`
	Line      string  `json:"line"`
	Label     string  `json:"label"`
	Penalty   float64 `json:"penalty"`
	MinCost   float64 `json:"minCost"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	Quantity  float64 `json:"quantity"`
	UnitCost  float64 `json:"unitCost"`
}

// Document is the serialisable view of a solved problem.
type Document struct {
	Name             string      `json:"name,omitempty"`
	Origins          []string    `json:"origins"`
	Destinations     []string    `json:"destinations"`
	Supply           []float64   `json:"supply"`
	Demand           []float64   `json:"demand"`
	Costs            [][]float64 `json:"costs"`
	Allocations      [][]float64 `json:"allocations"`
	Shipments        []Shipment  `json:"shipments"`
	TotalCost        float64     `json:"totalCost"`
	AddedDummyRow    bool        `json:"addedDummyRow"`
	AddedDummyColumn bool        `json:"addedDummyColumn"`
	BasicCells       int         `json:"basicCells"`
	Degenerate       bool        `json:"degenerate"`
	Steps            []StepView  `json:"steps,omitempty"`
}

// Build assembles the Document for res. p may be nil, in which case the
// default O1.. / D1.. labels are used.
func Build(p *problem.Problem, res vam.Result, opts Options) Document {
	origins, destinations := labels(p, res)

	doc := Document{
		AddedDummyRow:    res.AddedDummyRow,
		AddedDummyColumn: res.AddedDummyColumn,
		TotalCost:        res.TotalCost,
		BasicCells:       res.BasicCells(),
		Degenerate:       res.Degenerate(),
	}
	if p != nil {
		doc.Name = p.Name
	}
	if opts.ShowSteps {
		doc.Steps = stepViews(res.Steps, origins, destinations)
	}

	view := res
	if opts.HideDummy {
		view = res.Trimmed()
		origins = origins[:len(view.Supply)]
		destinations = destinations[:len(view.Demand)]
	}
	doc.Origins = origins
	doc.Destinations = destinations
	doc.Supply = view.Supply
	doc.Demand = view.Demand
	doc.Costs = view.Costs
	doc.Allocations = view.Allocations
	doc.Shipments = shipments(view, origins, destinations)

	return doc
}

// labels returns one name per line of the balanced result.
func labels(p *problem.Problem, res vam.Result) (origins, destinations []string) {
	m, n := len(res.Supply), len(res.Demand)
	if res.AddedDummyRow {
		m--
	}
	if res.AddedDummyColumn {
		n--
	}

	src := &problem.Problem{Supply: make([]float64, m), Demand: make([]float64, n)}
	if p != nil && len(p.Supply) == m && len(p.Demand) == n {
		src = p
	}
	origins, destinations = src.Labels()
	if res.AddedDummyRow {
		origins = append(origins, DummyLabel)
	}
	if res.AddedDummyColumn {
		destinations = append(destinations, DummyLabel)
	}

	return origins, destinations
}

func shipments(res vam.Result, origins, destinations []string) []Shipment {
	out := make([]Shipment, 0, len(origins)+len(destinations))
	for i, row := range res.Allocations {
		for j, q := range row {
			if q <= 0 {
				continue
			}
			c := res.Costs[i][j]
			out = append(out, Shipment{
				From:     origins[i],
				To:       destinations[j],
				Quantity: q,
				UnitCost: c,
				Cost:     q * c,
			})
		}
	}

	return out
}

func stepViews(steps []vam.Step, origins, destinations []string) []StepView {
	out := make([]StepView, 0, len(steps))
	for _, st := range steps {
		label := origins[st.Line.Index]
		if st.Line.Kind == vam.Column {
			label = destinations[st.Line.Index]
		}
		out = append(out, StepView{
			Iteration: st.Iteration,
			Line:      st.Line.Kind.String(),
			Label:     label,
			Penalty:   st.Penalty,
			MinCost:   st.MinCost,
			From:      origins[st.Row],
			To:        destinations[st.Col],
			Quantity:  st.Quantity,
			UnitCost:  st.UnitCost,
		})
	}

	return out
}

// JSON writes Build(p, res, opts) as indented JSON.
func JSON(w io.Writer, p *problem.Problem, res vam.Result, opts Options) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Build(p, res, opts)); err != nil {
		return fmt.Errorf("report: encode json: %w", err)
	}

	return nil
}
