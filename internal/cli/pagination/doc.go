// Package pagination provides sorting and paging of evaluated ledger rows
// for the CLI.
//
//   - Params: --limit/--offset or --page/--page-size flags and validation
//   - Meta: page metadata printed under paged output
//   - ResultSorter: field-validated sorting of engine results
package pagination
