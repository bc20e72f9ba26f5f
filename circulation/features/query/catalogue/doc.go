// Package catalogue is the catalogue read model: titles with their copies and the loan state of each copy.
//
// Search is a case-insensitive substring match on name and author; an empty term matches everything.
package catalogue
