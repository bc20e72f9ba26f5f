// Package returnbookcopy is the return use case keyed by the copy identifier alone,
// e.g. for a drop box where nobody tells the desk who returned the copy.
package returnbookcopy
