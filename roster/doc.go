// Package roster loads the name lists fed to the assignment engine.
//
// A roster file holds one name per line. Lines may end in "\n" or "\r\n";
// surrounding whitespace is trimmed and blank lines are dropped. Names are
// NFKC-normalised by default (golang.org/x/text/unicode/norm) so that visually
// identical names score identically. In strict mode a name without any
// letters is rejected with its line number.
//
// LoadPair reads the street and driver files concurrently.
package roster
