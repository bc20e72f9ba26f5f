package core

import (
	"fmt"
	"strings"
)

// BookFormat is the physical format of a title.
type BookFormat string

const (
	Paperback    BookFormat = "Paperback"
	Hardback     BookFormat = "Hardback"
	GraphicNovel BookFormat = "GraphicNovel"
)

// ParseBookFormat accepts the format names case-insensitively.
func ParseBookFormat(s string) (BookFormat, error) {
	for _, f := range []BookFormat{Paperback, Hardback, GraphicNovel} {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}

	return "", fmt.Errorf("unknown book format %q", s)
}
