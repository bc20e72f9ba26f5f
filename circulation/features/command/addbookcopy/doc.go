// Package addbookcopy puts a new physical copy of a catalogued title into circulation.
package addbookcopy
