// Package chart renders the department distribution as an embeddable SVG
// bar chart using gonum/plot.
//
// Render builds a figure (plot + SVG canvas), extracts its markup and
// releases the figure before returning, so no drawing state outlives the
// call. Render does no file I/O.
package chart
