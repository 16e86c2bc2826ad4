package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/vogel/problem"
	"github.com/katalvlaran/vogel/vam"
)

// Text writes the allocation table, the total cost, balancing and
// degeneracy notes and, with ShowSteps, the iteration trace.
//
// Layout:
//
//	          North  East  South  West  Supply
//	Plant A   -      250   -      -     250
//	Plant B   200    -     150    -     350
//	Plant C   -      50    200    150   400
//	Demand    200    300   350    150
//
//	Total cost: 2450
func Text(w io.Writer, p *problem.Problem, res vam.Result, opts Options) error {
	doc := Build(p, res, opts)
	num := formatter(opts.Precision)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if doc.Name != "" {
		fmt.Fprintf(tw, "%s\n\n", doc.Name)
	}

	fmt.Fprintf(tw, "\t%s\tSupply\n", strings.Join(doc.Destinations, "\t"))
	for i, row := range doc.Allocations {
		cells := make([]string, len(row))
		for j, q := range row {
			cells[j] = "-"
			if q > 0 {
				cells[j] = num(q)
			}
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", doc.Origins[i], strings.Join(cells, "\t"), num(doc.Supply[i]))
	}
	demand := make([]string, len(doc.Demand))
	for j, d := range doc.Demand {
		demand[j] = num(d)
	}
	fmt.Fprintf(tw, "Demand\t%s\t\n\n", strings.Join(demand, "\t"))

	fmt.Fprintf(tw, "Total cost: %s\n", num(doc.TotalCost))
	switch {
	case doc.AddedDummyRow:
		fmt.Fprintf(tw, "Balanced with a dummy origin (%s units)\n", num(res.Supply[len(res.Supply)-1]))
	case doc.AddedDummyColumn:
		fmt.Fprintf(tw, "Balanced with a dummy destination (%s units)\n", num(res.Demand[len(res.Demand)-1]))
	}
	if doc.Degenerate {
		fmt.Fprintf(tw, "Degenerate: %d occupied cells, %d expected\n",
			doc.BasicCells, len(res.Supply)+len(res.Demand)-1)
	}

	if opts.ShowSteps && len(doc.Steps) > 0 {
		fmt.Fprintf(tw, "\n#\tLine\tPenalty\tMin cost\tCell\tQuantity\tUnit cost\n")
		for _, st := range doc.Steps {
			fmt.Fprintf(tw, "%d\t%s %s\t%s\t%s\t%s -> %s\t%s\t%s\n",
				st.Iteration, st.Line, st.Label, num(st.Penalty), num(st.MinCost),
				st.From, st.To, num(st.Quantity), num(st.UnitCost))
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("report: write text: %w", err)
	}

	return nil
}

// formatter returns the number renderer for a precision setting.
func formatter(precision int) func(float64) string {
	if precision <= 0 {
		precision = -1
	}

	return func(v float64) string {
		return strconv.FormatFloat(v, 'f', precision, 64)
	}
}
