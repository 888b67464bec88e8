// Package report assembles the standalone HTML report: title, contact
// line, the embedded chart, a summary table, optional check results and the
// generating code.
//
// The code listing is either highlighted with chroma using inline styles or
// escaped by html/template into a plain <pre><code> block. In both cases
// markup inside the listing is escaped and cannot break the page.
package report
