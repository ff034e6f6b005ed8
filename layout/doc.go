// Package layout reconstructs geometric structure from positioned OCR
// tokens: visual lines, key-value pairs, and table rows.
//
// # Line grouping
//
// [GroupIntoLines] clusters tokens into visual lines by vertical
// proximity: tokens are sorted by top coordinate and joined to the current
// line while their top stays within the tolerance of the line's first
// token. Each line is sorted left to right before it closes.
//
// # Key-value pairs
//
// [ExtractKeyValuePairs] looks for invoice-style label/value structure in
// each line. Colon-separated lines split on the first colon; the key must
// match one of the fixed domain label patterns or pass a length
// plausibility check. Lines without colons are scanned pairwise: a token
// matching a label pattern followed closely by another token yields a
// pair.
//
// # Tables
//
// [ExtractTables] treats any line with enough tokens as a table row unless
// its text contains a header keyword, in which case the line is consumed
// as a header and excluded from output. This is purely count-based; a
// dense paragraph line can qualify as a row, a known and accepted
// limitation of geometric reconstruction without a layout model.
//
// All extraction in this package degrades to empty output on internal
// failure; nothing here can abort the pipeline.
package layout
