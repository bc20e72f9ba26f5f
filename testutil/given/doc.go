// Package given builds the domain events tests arrange their history with.
// Every builder takes *testing.T so a bad fixture fails the test where it is used.
package given
