package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/AntonStoeckl/circulation-engine-go/circulation/core"
	"github.com/AntonStoeckl/circulation-engine-go/circulation/engine"
)

type command struct {
	name    string
	summary string
	run     func(ctx context.Context, e *engine.Engine, logger *slog.Logger, args []string, stdout io.Writer) error
}

func commands() []command {
	return []command{
		{"loan", "loan a book, or join its reservation queue", runLoan},
		{"return", "return a borrowed book", runReturn},
		{"return-copy", "return a copy by its identifier", runReturnCopy},
		{"availability", "when a reserved book is expected to be available", runAvailability},
		{"loans", "list all borrowers with active loans", runLoans},
		{"search", "search the catalogue by title and author", runSearch},
		{"add-title", "add a title to the catalogue", runAddTitle},
		{"add-copy", "add a copy of a catalogued title", runAddCopy},
		{"register", "register a borrower", runRegister},
		{"borrowers", "list registered borrowers and their fines", runBorrowers},
		{"seed", "load the demo catalogue, borrowers and loans", runSeed},
	}
}

// requestFlags binds the -title, -author and -borrower flags shared by loan, return and availability.
func requestFlags(name string, args []string) (engine.Request, error) {
	var request engine.Request

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&request.Title, "title", "", "book title, or part of it")
	fs.StringVar(&request.Author, "author", "", "author, or part of the name")
	fs.StringVar(&request.Borrower, "borrower", "", "full name of the borrower")

	if err := parse(fs, args); err != nil {
		return engine.Request{}, err
	}

	if request.Borrower == "" {
		return engine.Request{}, fmt.Errorf("%w: %s needs -borrower", errUsage, name)
	}

	return request, nil
}

func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return errors.Join(errUsage, err)
	}

	return nil
}

func printMessage(stdout io.Writer, msg string, err error) error {
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(stdout, msg)

	return err
}

func runLoan(ctx context.Context, e *engine.Engine, _ *slog.Logger, args []string, stdout io.Writer) error {
	request, err := requestFlags("loan", args)
	if err != nil {
		return err
	}

	msg, err := e.LoanBook(ctx, request)

	return printMessage(stdout, msg, err)
}

func runReturn(ctx context.Context, e *engine.Engine, _ *slog.Logger, args []string, stdout io.Writer) error {
	request, err := requestFlags("return", args)
	if err != nil {
		return err
	}

	msg, err := e.ReturnBook(ctx, request)

	return printMessage(stdout, msg, err)
}

func runReturnCopy(ctx context.Context, e *engine.Engine, _ *slog.Logger, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("return-copy", flag.ContinueOnError)
	copyID := fs.String("copy", "", "identifier of the copy")

	if err := parse(fs, args); err != nil {
		return err
	}

	msg, err := e.ReturnBookCopy(ctx, *copyID)

	return printMessage(stdout, msg, err)
}

func runAvailability(ctx context.Context, e *engine.Engine, _ *slog.Logger, args []string, stdout io.Writer) error {
	request, err := requestFlags("availability", args)
	if err != nil {
		return err
	}

	msg, err := e.GetAvailability(ctx, request)

	return printMessage(stdout, msg, err)
}

func runLoans(ctx context.Context, e *engine.Engine, _ *slog.Logger, _ []string, stdout io.Writer) error {
	overview, err := e.GetLoans(ctx)
	if err != nil {
		return err
	}

	if len(overview) == 0 {
		_, err = fmt.Fprintln(stdout, "No books are on loan.")
		return err
	}

	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "BORROWER\tBOOKS")

	for _, loans := range overview {
		_, _ = fmt.Fprintf(tw, "%s\t%s\n", loans.Borrower, strings.Join(loans.Books, "; "))
	}

	return tw.Flush()
}

func runSearch(ctx context.Context, e *engine.Engine, _ *slog.Logger, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	title := fs.String("title", "", "book title, or part of it")
	author := fs.String("author", "", "author, or part of the name")

	if err := parse(fs, args); err != nil {
		return err
	}

	entries, err := e.SearchCatalogue(ctx, *title, *author)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "TITLE\tAUTHOR\tFORMAT\tCOPY\tSTATUS")

	for _, entry := range entries {
		status := "available"
		if !entry.Available {
			status = fmt.Sprintf("on loan to %s until %s", entry.OnLoanTo, entry.LoanEndDate.Format("2006-01-02"))
		}

		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", entry.Name, entry.Author, entry.Format, entry.CopyID, status)
	}

	return tw.Flush()
}

func runAddTitle(ctx context.Context, e *engine.Engine, _ *slog.Logger, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("add-title", flag.ContinueOnError)
	title := fs.String("title", "", "book title")
	author := fs.String("author", "", "author")
	isbn := fs.String("isbn", "", "ISBN")
	formatName := fs.String("format", string(core.Paperback), "Paperback, Hardback or GraphicNovel")

	if err := parse(fs, args); err != nil {
		return err
	}

	format, err := core.ParseBookFormat(*formatName)
	if err != nil {
		return errors.Join(errUsage, err)
	}

	titleID, err := e.AddTitle(ctx, *title, *author, *isbn, format)

	return printMessage(stdout, "Title added: "+titleID, err)
}

func runAddCopy(ctx context.Context, e *engine.Engine, _ *slog.Logger, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("add-copy", flag.ContinueOnError)
	title := fs.String("title", "", "book title, or part of it")
	author := fs.String("author", "", "author, or part of the name")

	if err := parse(fs, args); err != nil {
		return err
	}

	copyID, err := e.AddBookCopy(ctx, *title, *author)

	return printMessage(stdout, "Copy added: "+copyID, err)
}

func runRegister(ctx context.Context, e *engine.Engine, _ *slog.Logger, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	name := fs.String("name", "", "full name, unique among borrowers")
	email := fs.String("email", "", "email address")

	if err := parse(fs, args); err != nil {
		return err
	}

	borrowerID, err := e.RegisterBorrower(ctx, *name, *email)

	return printMessage(stdout, "Borrower registered: "+borrowerID, err)
}

func runBorrowers(ctx context.Context, e *engine.Engine, _ *slog.Logger, _ []string, stdout io.Writer) error {
	all, err := e.Borrowers(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "NAME\tEMAIL\tFINES OWED")

	for _, b := range all {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", b.Name, b.EmailAddress, b.FinesOwed.StringFixed(2))
	}

	return tw.Flush()
}

func runSeed(ctx context.Context, e *engine.Engine, logger *slog.Logger, _ []string, stdout io.Writer) error {
	return printMessage(stdout, "Demo data loaded.", seed(ctx, e, logger))
}
