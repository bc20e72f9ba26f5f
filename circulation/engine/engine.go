package engine

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/circulation-engine-go/circulation/core"
	"github.com/AntonStoeckl/circulation-engine-go/circulation/features/command/addbookcopy"
	"github.com/AntonStoeckl/circulation-engine-go/circulation/features/command/addtitle"
	"github.com/AntonStoeckl/circulation-engine-go/circulation/features/command/loanbook"
	"github.com/AntonStoeckl/circulation-engine-go/circulation/features/command/registerborrower"
	"github.com/AntonStoeckl/circulation-engine-go/circulation/features/command/returnbook"
	"github.com/AntonStoeckl/circulation-engine-go/circulation/features/command/returnbookcopy"
	"github.com/AntonStoeckl/circulation-engine-go/circulation/features/query/borrowers"
	"github.com/AntonStoeckl/circulation-engine-go/circulation/features/query/catalogue"
	"github.com/AntonStoeckl/circulation-engine-go/circulation/features/query/expectedavailability"
	"github.com/AntonStoeckl/circulation-engine-go/circulation/features/query/loans"
	"github.com/AntonStoeckl/circulation-engine-go/circulation/shell"
	"github.com/AntonStoeckl/circulation-engine-go/eventstore"
)

// Request names a title and a borrower the way a person at the counter would.
type Request struct {
	Title    string
	Author   string
	Borrower string
}

// Clock returns the current time.
type Clock func() time.Time

// Engine is the circulation engine: plain data in, message out.
type Engine struct {
	eventStore   shell.EventStore
	logger       eventstore.Logger
	clock        Clock
	retryOptions []shell.RetryOption

	handlers handlerBundle
}

type handlerBundle struct {
	loanBook         loanbook.CommandHandler
	returnBook       returnbook.CommandHandler
	returnBookCopy   returnbookcopy.CommandHandler
	addTitle         addtitle.CommandHandler
	addBookCopy      addbookcopy.CommandHandler
	registerBorrower registerborrower.CommandHandler

	catalogue    catalogue.QueryHandler
	borrowers    borrowers.QueryHandler
	loans        loans.QueryHandler
	availability expectedavailability.QueryHandler
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock replaces the wall clock, mostly for tests.
func WithClock(clock Clock) Option {
	return func(e *Engine) {
		if clock != nil {
			e.clock = clock
		}
	}
}

// WithLogger logs every operation outcome and every retry.
func WithLogger(logger eventstore.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithRetryOptions tunes the retry schedule of all command handlers.
func WithRetryOptions(opts ...shell.RetryOption) Option {
	return func(e *Engine) {
		e.retryOptions = opts
	}
}

// New creates an Engine on top of eventStore.
func New(eventStore shell.EventStore, opts ...Option) *Engine {
	e := &Engine{
		eventStore: eventStore,
		clock:      time.Now,
	}

	for _, opt := range opts {
		opt(e)
	}

	e.handlers = e.buildHandlers()

	return e
}

// ActingAt returns a copy of the engine whose clock is frozen at t.
// The seed loader uses it to write a plausible history.
func (e *Engine) ActingAt(t time.Time) *Engine {
	acting := *e
	acting.clock = func() time.Time { return t }

	return &acting
}

func (e *Engine) buildHandlers() handlerBundle {
	return handlerBundle{
		loanBook: loanbook.NewCommandHandler(e.eventStore,
			loanbook.WithRetryOptions(e.retryOptionsFor(loanbook.Command{}.CommandType())...)),
		returnBook: returnbook.NewCommandHandler(e.eventStore,
			returnbook.WithRetryOptions(e.retryOptionsFor(returnbook.Command{}.CommandType())...)),
		returnBookCopy: returnbookcopy.NewCommandHandler(e.eventStore,
			returnbookcopy.WithRetryOptions(e.retryOptionsFor(returnbookcopy.Command{}.CommandType())...)),
		addTitle: addtitle.NewCommandHandler(e.eventStore,
			addtitle.WithRetryOptions(e.retryOptionsFor(addtitle.Command{}.CommandType())...)),
		addBookCopy: addbookcopy.NewCommandHandler(e.eventStore,
			addbookcopy.WithRetryOptions(e.retryOptionsFor(addbookcopy.Command{}.CommandType())...)),
		registerBorrower: registerborrower.NewCommandHandler(e.eventStore,
			registerborrower.WithRetryOptions(e.retryOptionsFor(registerborrower.Command{}.CommandType())...)),

		catalogue:    catalogue.NewQueryHandler(e.eventStore, catalogue.WithLogging(e.logger)),
		borrowers:    borrowers.NewQueryHandler(e.eventStore, borrowers.WithLogging(e.logger)),
		loans:        loans.NewQueryHandler(e.eventStore, loans.WithLogging(e.logger)),
		availability: expectedavailability.NewQueryHandler(e.eventStore, expectedavailability.WithLogging(e.logger)),
	}
}

func (e *Engine) retryOptionsFor(commandType string) []shell.RetryOption {
	opts := append([]shell.RetryOption{}, e.retryOptions...)

	if e.logger != nil {
		opts = append(opts, shell.WithRetryLogger(e.logger, commandType))
	}

	return opts
}

func (e *Engine) now() time.Time {
	return e.clock()
}

// LoanBook lends a copy of the requested title or, when none is free, queues the borrower for it.
func (e *Engine) LoanBook(ctx context.Context, request Request) (string, error) {
	borrower, title, err := e.resolve(ctx, request)
	if err != nil {
		return "", err
	}

	command := loanbook.BuildCommand(title.TitleID, borrower.BorrowerID, e.now())
	start := time.Now()
	result, err := e.handlers.loanBook.Handle(ctx, command)
	shell.LogCommandOutcome(e.logger, command.CommandType(), result.HandlerResult, err, time.Since(start))

	if err != nil {
		return "", err
	}

	if result.Lent {
		return loanMessage(result.LoanEndDate), nil
	}

	return reservationMessage(result.Rank), nil
}

// ReturnBook checks in the borrower's copy of the requested title and charges a fine when it is late.
func (e *Engine) ReturnBook(ctx context.Context, request Request) (string, error) {
	borrower, title, err := e.resolve(ctx, request)
	if err != nil {
		return "", err
	}

	command := returnbook.BuildCommand(title.TitleID, borrower.BorrowerID, e.now())
	start := time.Now()
	result, err := e.handlers.returnBook.Handle(ctx, command)
	shell.LogCommandOutcome(e.logger, command.CommandType(), result.HandlerResult, err, time.Since(start))

	if err != nil {
		return "", err
	}

	return returnMessage(result.Fine), nil
}

// ReturnBookCopy checks in a copy by its identifier.
func (e *Engine) ReturnBookCopy(ctx context.Context, copyID core.CopyIDString) (string, error) {
	command := returnbookcopy.BuildCommand(copyID, e.now())
	start := time.Now()
	result, err := e.handlers.returnBookCopy.Handle(ctx, command)
	shell.LogCommandOutcome(e.logger, command.CommandType(), result.HandlerResult, err, time.Since(start))

	if err != nil {
		return "", err
	}

	return returnMessage(result.Fine), nil
}

// GetAvailability tells a queued borrower when a copy of the requested title is expected for them.
func (e *Engine) GetAvailability(ctx context.Context, request Request) (string, error) {
	borrower, title, err := e.resolve(ctx, request)
	if err != nil {
		return "", err
	}

	prediction, err := e.handlers.availability.Handle(
		ctx,
		expectedavailability.BuildQuery(title.TitleID, borrower.BorrowerID, e.now()),
	)
	if err != nil {
		return "", err
	}

	return availabilityMessage(prediction), nil
}

// GetLoans lists every borrower with active loans and the titles they hold.
func (e *Engine) GetLoans(ctx context.Context) ([]loans.BorrowerLoans, error) {
	overview, err := e.handlers.loans.Handle(ctx)
	if err != nil {
		return nil, err
	}

	return overview.Borrowers, nil
}

// SearchCatalogue lists the copies of all titles matching name and author.
func (e *Engine) SearchCatalogue(ctx context.Context, name string, author string) ([]catalogue.Entry, error) {
	result, err := e.handlers.catalogue.Handle(ctx, catalogue.BuildQuery(name, author))
	if err != nil {
		return nil, err
	}

	return result.Entries, nil
}

// Borrowers lists the borrower directory with the fines each borrower owes.
func (e *Engine) Borrowers(ctx context.Context) ([]borrowers.Borrower, error) {
	result, err := e.handlers.borrowers.Handle(ctx)
	if err != nil {
		return nil, err
	}

	return result.Borrowers, nil
}

// AddTitle adds a title to the catalogue and returns its identifier.
func (e *Engine) AddTitle(
	ctx context.Context,
	name string,
	author string,
	isbn string,
	format core.BookFormat,
) (core.TitleIDString, error) {

	titleID := uuid.Must(uuid.NewV7())
	command := addtitle.BuildCommand(titleID, name, author, isbn, format, e.now())
	start := time.Now()
	result, err := e.handlers.addTitle.Handle(ctx, command)
	shell.LogCommandOutcome(e.logger, command.CommandType(), result, err, time.Since(start))

	if err != nil {
		return "", err
	}

	return titleID.String(), nil
}

// AddBookCopy puts one more copy of the named title into circulation and returns the copy identifier.
func (e *Engine) AddBookCopy(ctx context.Context, name string, author string) (core.CopyIDString, error) {
	found, err := e.handlers.catalogue.Handle(ctx, catalogue.BuildQuery(name, author))
	if err != nil {
		return "", err
	}

	title, err := found.Find(name, author)
	if err != nil {
		return "", err
	}

	titleID, err := uuid.Parse(title.TitleID)
	if err != nil {
		return "", err
	}

	copyID := uuid.Must(uuid.NewV7())
	command := addbookcopy.BuildCommand(copyID, titleID, e.now())
	start := time.Now()
	result, err := e.handlers.addBookCopy.Handle(ctx, command)
	shell.LogCommandOutcome(e.logger, command.CommandType(), result, err, time.Since(start))

	if err != nil {
		return "", err
	}

	return copyID.String(), nil
}

// RegisterBorrower registers a borrower under a unique name and returns the borrower identifier.
func (e *Engine) RegisterBorrower(ctx context.Context, name string, emailAddress string) (core.BorrowerIDString, error) {
	borrowerID := uuid.Must(uuid.NewV7())
	command := registerborrower.BuildCommand(borrowerID, name, emailAddress, e.now())
	start := time.Now()
	result, err := e.handlers.registerBorrower.Handle(ctx, command)
	shell.LogCommandOutcome(e.logger, command.CommandType(), result, err, time.Since(start))

	if err != nil {
		return "", err
	}

	return borrowerID.String(), nil
}

// resolve turns the names of a request into the borrower and the title with its copies.
func (e *Engine) resolve(ctx context.Context, request Request) (borrowers.Borrower, catalogue.Title, error) {
	directory, err := e.handlers.borrowers.Handle(ctx)
	if err != nil {
		return borrowers.Borrower{}, catalogue.Title{}, err
	}

	borrower, err := directory.FindByName(request.Borrower)
	if err != nil {
		return borrowers.Borrower{}, catalogue.Title{}, err
	}

	found, err := e.handlers.catalogue.Handle(ctx, catalogue.BuildQuery(request.Title, request.Author))
	if err != nil {
		return borrowers.Borrower{}, catalogue.Title{}, err
	}

	title, err := found.Resolve(request.Title, request.Author)
	if err != nil {
		return borrowers.Borrower{}, catalogue.Title{}, err
	}

	return borrower, title, nil
}
