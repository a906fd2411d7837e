// Package export renders record rows as CSV or XLSX for download.
//
// Both formats share the same header:
//
//	Filename, Title, Path, Last Modified, Record Created
package export
