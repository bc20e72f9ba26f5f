package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/AntonStoeckl/circulation-engine-go/circulation/core"
	"github.com/AntonStoeckl/circulation-engine-go/circulation/engine"
	"github.com/AntonStoeckl/circulation-engine-go/circulation/shell"
)

type seedTitle struct {
	name   string
	author string
	isbn   string
	format core.BookFormat
	copies int
}

var seedTitles = []seedTitle{
	{"The Importance of Clay", "Ernest Monkjack", "1305718181", core.Paperback, 2},
	{"Agile Project Management - A Primer", "Sarah Kennedy", "1293910102", core.Hardback, 1},
	{"Rust Development Cookbook", "Margaret Jones", "3134324111", core.Paperback, 1},
	{"Marvel Civil War", "Mark Millar", "9781905239603", core.GraphicNovel, 1},
	{"Avengers vs. X-Men", "Brian Michael Bendis", "9780785138938", core.GraphicNovel, 2},
	{"Spider-Man Ultimate Collection Vol. 1", "J M Straczynski", "9780785163176", core.GraphicNovel, 1},
	{"Marvel Infinity", "Johnathan Hickman", "9780785184232", core.GraphicNovel, 1},
}

var seedBorrowers = []struct {
	name  string
	email string
}{
	{"Dave Smith", "dave@smithy.com"},
	{"Liana James", "liana@gmail.com"},
	{"Chris Barrett", "cpbarrett91@gmail.com"},
}

// seedStep is one circulation operation, daysAgo days before now.
type seedStep struct {
	daysAgo  int
	borrower string
	title    string
	returned bool
}

// The loan period is 7 days: Dave's copy is due today, Liana's next week, Chris is overdue
// on two books and already paid for a late return of the Rust cookbook (3 days late, 5.25).
var seedSteps = []seedStep{
	{daysAgo: 14, borrower: "Chris Barrett", title: "Marvel Civil War"},
	{daysAgo: 14, borrower: "Chris Barrett", title: "Avengers vs. X-Men"},
	{daysAgo: 13, borrower: "Chris Barrett", title: "Rust Development Cookbook"},
	{daysAgo: 7, borrower: "Dave Smith", title: "The Importance of Clay"},
	{daysAgo: 3, borrower: "Chris Barrett", title: "Rust Development Cookbook", returned: true},
	{daysAgo: 0, borrower: "Liana James", title: "Agile Project Management - A Primer"},
}

// seed loads the demo data unless borrowers are already registered.
// All events of one run share a correlation id.
func seed(ctx context.Context, e *engine.Engine, logger *slog.Logger) error {
	existing, err := e.Borrowers(ctx)
	if err != nil {
		return err
	}

	if len(existing) > 0 {
		logger.Info("seed data already present, skipping", "borrowers", len(existing))
		return nil
	}

	ctx = shell.WithCorrelationID(ctx, shell.NewMessageID())
	now := time.Now()
	catalogued := e.ActingAt(now.AddDate(0, 0, -30))

	for _, t := range seedTitles {
		if _, err = catalogued.AddTitle(ctx, t.name, t.author, t.isbn, t.format); err != nil {
			return fmt.Errorf("seeding title %q: %w", t.name, err)
		}

		for range t.copies {
			if _, err = catalogued.AddBookCopy(ctx, t.name, t.author); err != nil {
				return fmt.Errorf("seeding a copy of %q: %w", t.name, err)
			}
		}
	}

	for _, b := range seedBorrowers {
		if _, err = catalogued.RegisterBorrower(ctx, b.name, b.email); err != nil {
			return fmt.Errorf("seeding borrower %q: %w", b.name, err)
		}
	}

	for _, step := range seedSteps {
		acting := e.ActingAt(now.AddDate(0, 0, -step.daysAgo))
		request := engine.Request{Title: step.title, Borrower: step.borrower}

		if step.returned {
			_, err = acting.ReturnBook(ctx, request)
		} else {
			_, err = acting.LoanBook(ctx, request)
		}

		if err != nil {
			return fmt.Errorf("seeding circulation of %q for %s: %w", step.title, step.borrower, err)
		}
	}

	logger.Info("seed data loaded", "titles", len(seedTitles), "borrowers", len(seedBorrowers))

	return nil
}
