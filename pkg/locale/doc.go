// Package locale formats numeric template output for a configured locale.
//
// The locale affects exactly one thing: the decimal-separator glyph. Values
// are rendered with their shortest round-trip decimal representation, no
// grouping separators and no fixed precision, then the separator is swapped
// for the locale's.
//
// Example usage:
//
//	f, err := locale.NewFormatter("de-DE")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	f.Format(1234.56) // "1234,56"
package locale
