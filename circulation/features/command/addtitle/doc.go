// Package addtitle adds a title to the catalogue. A title is identified by name and author;
// adding the same pair under another id is rejected, adding the same id again is a no-op.
package addtitle
