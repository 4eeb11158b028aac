// Package chart renders the iteration table of an iterative solve as a
// convergence chart: one line per variable against the iteration number, or
// the maximum error per iteration on a log scale.
//
// Values and MaxError build static gonum/plot charts (PNG, SVG, PDF via
// Save). WriteHTML renders both as one interactive go-echarts page.
package chart
