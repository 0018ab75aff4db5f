// Package pkg provides the libraries behind stackchart.
//
// # Overview
//
// Stackchart draws line charts whose layout is a graph of derived values:
// change the data, the size or the pointer and only the affected parts of
// the chart recompute. The pkg directory is organized into four areas:
//
//  1. Core state: [reactive], [bounds], [layout], [projection], [watch]
//  2. Chart parts: [ticks], [edge], [inner], [series], [colour], [fonts]
//  3. Assembly: [state], [chart], [render]
//  4. Infrastructure: [config], [dataset], [cache], [pipeline], [inspect],
//     [errors], [observability]
//
// # Architecture
//
// The typical data flow through stackchart:
//
//	chart.toml + CSV/XLSX
//	         ↓
//	    [config] and [dataset] packages (describe + load)
//	         ↓
//	    [chart] package (mount: build the state graph)
//	         ↓
//	    [state] package (outer → edges → inner → projection → ticks)
//	         ↓
//	    [render] package (SVG, then PNG/PDF)
//
// [pipeline] runs these steps with caching; [inspect] draws the state
// graph itself with Graphviz.
package pkg
