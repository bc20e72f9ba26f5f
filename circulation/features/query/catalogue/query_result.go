package catalogue

import (
	"strings"
	"time"

	"github.com/AntonStoeckl/circulation-engine-go/circulation/core"
	"github.com/AntonStoeckl/circulation-engine-go/circulation/ledger"
)

// Title is one catalogued title with its copies in ingestion order.
type Title struct {
	TitleID core.TitleIDString
	Name    string
	Author  string
	ISBN    string
	Format  core.BookFormat
	Copies  []ledger.StockUnit
}

// Entry is one copy as shown by a catalogue search.
type Entry struct {
	TitleID     core.TitleIDString
	Name        string
	Author      string
	ISBN        string
	Format      core.BookFormat
	CopyID      core.CopyIDString
	Available   bool
	OnLoanTo    string // borrower name
	BorrowerID  core.BorrowerIDString
	LoanEndDate time.Time
}

// Catalogue is the result of a catalogue query, titles in catalogue order.
type Catalogue struct {
	Titles         []Title
	Entries        []Entry
	SequenceNumber uint
}

// Find picks the title a caller means. An exact (case-insensitive) name and author match wins,
// otherwise the first matching title in catalogue order is used.
func (c Catalogue) Find(name string, author string) (Title, error) {
	if len(c.Titles) == 0 {
		return Title{}, core.ErrBookNotFound
	}

	for _, title := range c.Titles {
		if strings.EqualFold(title.Name, strings.TrimSpace(name)) && strings.EqualFold(title.Author, strings.TrimSpace(author)) {
			return title, nil
		}
	}

	return c.Titles[0], nil
}

// Resolve is Find for circulation: only titles with copies can be lent, reserved or returned,
// so titles without copies are skipped. It fails with core.ErrBookNotFound when no matching title has copies.
func (c Catalogue) Resolve(name string, author string) (Title, error) {
	stocked := Catalogue{Titles: make([]Title, 0, len(c.Titles))}

	for _, title := range c.Titles {
		if len(title.Copies) > 0 {
			stocked.Titles = append(stocked.Titles, title)
		}
	}

	return stocked.Find(name, author)
}
