package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/tsawler/chartwatch/model"
)

var (
	headerColor  = color.New(color.FgHiCyan, color.Bold)
	sectionColor = color.New(color.FgYellow, color.Bold)
	okColor      = color.New(color.FgGreen)
)

const rule = "============================================================"

// Render writes a human-readable change report for result to w.
func Render(w io.Writer, result model.ComparisonResult) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	headerColor.Fprintln(w, "AIRPORT DIAGRAM CHANGE REPORT")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Airport:        %s\n", result.AirportCode)
	fmt.Fprintf(w, "Old Cycle:      %s\n", result.OldCycle)
	fmt.Fprintf(w, "New Cycle:      %s\n", result.NewCycle)
	fmt.Fprintln(w, rule)

	renderSummary(w, result.Summary)

	if len(result.TaxiwayChanges) > 0 {
		section(w, "Taxiway Changes")
		for _, c := range result.TaxiwayChanges {
			fmt.Fprintf(w, "  [%-8s] %s\n", c.Kind, c.Description)
			fmt.Fprintf(w, "             Location: (%.0f, %.0f)\n", c.X, c.Y)
		}
	}

	if len(result.RunwayChanges) > 0 {
		section(w, "Runway Changes")
		for _, c := range result.RunwayChanges {
			fmt.Fprintf(w, "  [%-15s] %s\n", c.Kind, c.Description)
		}
	}

	if len(result.GeometryChanges) > 0 {
		section(w, "Geometry Changes")
		for _, c := range result.GeometryChanges {
			fmt.Fprintf(w, "  [%s] %s\n", c.Kind, c.Description)
		}
	}

	if !result.HasChanges() {
		fmt.Fprintln(w)
		okColor.Fprintln(w, "  No significant changes detected between cycles.")
	}

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)
}

func renderSummary(w io.Writer, s model.Summary) {
	fmt.Fprintln(w)
	sectionColor.Fprintln(w, "Summary")

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Metric", "Old", "New"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.Append([]string{"Taxiway labels", strconv.Itoa(s.OldLabelCount), strconv.Itoa(s.NewLabelCount)})
	table.Append([]string{"Unique designators", strconv.Itoa(s.OldUniqueDesignators), strconv.Itoa(s.NewUniqueDesignators)})
	table.Append([]string{"Runways", strconv.Itoa(s.OldRunwayCount), strconv.Itoa(s.NewRunwayCount)})
	table.Render()

	fmt.Fprintf(w, "  Taxiways added:   %d\n", s.TaxiwaysAdded)
	fmt.Fprintf(w, "  Taxiways removed: %d\n", s.TaxiwaysRemoved)
	fmt.Fprintf(w, "  Taxiways renamed: %d\n", s.TaxiwaysRenamed)
	fmt.Fprintf(w, "  Runway changes:   %d\n", s.RunwayChanges)
	fmt.Fprintf(w, "  Geometry changes: %d\n", s.GeometryChanges)
}

func section(w io.Writer, title string) {
	fmt.Fprintln(w)
	sectionColor.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("-", 60))
}
