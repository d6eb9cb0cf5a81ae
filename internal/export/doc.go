// Package export writes calculator results to files and streams.
//
//   - [WriteCSV]: one (x, y) series with a header row
//   - [SeriesToSVG], [OutlineToSVG]: standalone SVG drawings
//   - [Workbook]: an XLSX workbook with a summary and every sampled series
//   - [Report]: a one-page PDF engineering report
//
// Every writer takes an io.Writer so the same code serves the CLI and the
// HTTP API.
package export
