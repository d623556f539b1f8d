// Package reading owns the saved reading position. A single actor goroutine
// serializes every read and write of the save file; callers talk to it
// through a Client over a bounded queue.
package reading

import (
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/FocuswithJustin/bibleread/core/catalog"
	"github.com/FocuswithJustin/bibleread/core/errors"
	"github.com/FocuswithJustin/bibleread/core/position"
	"github.com/FocuswithJustin/bibleread/core/savefile"
	"github.com/FocuswithJustin/bibleread/internal/logging"
)

type op int

const (
	opGetFromFile op = iota
	opSetCurrent
	opSaveToFile
	opGetCurrent
)

func (o op) String() string {
	switch o {
	case opGetFromFile:
		return "get_from_file"
	case opSetCurrent:
		return "set_current"
	case opSaveToFile:
		return "save_to_file"
	case opGetCurrent:
		return "get_current"
	default:
		return "unknown"
	}
}

type request struct {
	id    uuid.UUID
	op    op
	pos   position.Position
	reply chan response
}

type response struct {
	pos  position.Position
	cell *Cell
	err  error
}

// Option configures Launch.
type Option func(*actor)

// WithLogger sets the actor's logger. The default discards.
func WithLogger(logger *slog.Logger) Option {
	return func(a *actor) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithCodec overrides the save file format picked from the path's
// extension.
func WithCodec(codec savefile.Codec) Option {
	return func(a *actor) {
		if codec != nil {
			a.codec = codec
		}
	}
}

type actor struct {
	path   string
	cat    *catalog.Catalog
	codec  savefile.Codec
	logger *slog.Logger
	cell   *Cell
}

// Launch starts the actor for the save file at path and returns the first
// Client. capacity bounds the number of queued requests; values below 1
// are raised to 1. The actor exits once every Client has been closed and
// the queue has drained.
func Launch(capacity int, path string, cat *catalog.Catalog, opts ...Option) *Client {
	a := &actor{
		path:   path,
		cat:    cat,
		codec:  savefile.ForPath(path),
		logger: logging.Discard(),
		cell:   &Cell{},
	}
	for _, opt := range opts {
		opt(a)
	}
	if capacity < 1 {
		capacity = 1
	}

	q := &queue{
		requests: make(chan request, capacity),
		done:     make(chan struct{}),
		refs:     1,
	}

	a.logger.Debug("reading actor starting",
		slog.String("path", path),
		slog.String("codec", a.codec.Name()),
		slog.Int("capacity", capacity))

	go a.run(q)
	return &Client{q: q}
}

func (a *actor) run(q *queue) {
	defer close(q.done)
	for req := range q.requests {
		req.reply <- a.handle(req)
	}
	a.logger.Debug("reading actor stopped", slog.String("path", a.path))
}

func (a *actor) handle(req request) response {
	log := a.logger.With(
		slog.String("request_id", req.id.String()),
		slog.String("op", req.op.String()))
	log.Debug("handling request")

	switch req.op {
	case opGetFromFile:
		p, err := a.load()
		if err != nil {
			log.Warn("failed to get saved position", slog.String("path", a.path), slog.Any("error", err))
			return response{err: &Error{Op: req.op.String(), Kind: ErrFailedToGetSave, Err: err}}
		}
		a.cell.store(p)
		log.Debug("loaded saved position", slog.String("position", p.String()))
		return response{pos: p}

	case opSetCurrent:
		p, err := a.accept(req.pos)
		if err != nil {
			log.Debug("rejected position", slog.Any("error", err))
			return response{err: &Error{Op: req.op.String(), Kind: errors.ErrInvalidInput, Err: err}}
		}
		a.cell.store(p)
		return response{}

	case opSaveToFile:
		p, ok := a.cell.Load()
		if !ok {
			return response{err: &Error{Op: req.op.String(), Kind: ErrNoDataToSave}}
		}
		if err := a.save(p); err != nil {
			log.Warn("failed to save position", slog.String("path", a.path), slog.Any("error", err))
			return response{err: &Error{Op: req.op.String(), Kind: ErrFailedToSave, Err: err}}
		}
		log.Debug("saved position", slog.String("position", p.String()))
		return response{}

	case opGetCurrent:
		return response{cell: a.cell}
	}

	return response{err: &Error{Op: req.op.String(), Kind: errors.ErrUnsupported}}
}

// accept rebinds p to the actor's catalog. The zero Position and positions
// the catalog does not contain are rejected.
func (a *actor) accept(p position.Position) (position.Position, error) {
	if p.IsZero() {
		return position.Position{}, errors.NewValidation("position", "", "no position given")
	}
	return position.New(a.cat, p.Book(), p.Chapter(), p.Verse())
}

func (a *actor) load() (position.Position, error) {
	data, err := os.ReadFile(a.path)
	if err != nil {
		return position.Position{}, errors.NewIO("read", a.path, err)
	}
	p, err := a.codec.Decode(data, a.cat)
	if err != nil {
		var pe *errors.ParseError
		if errors.As(err, &pe) && pe.Path == "" {
			pe.Path = a.path
		}
		return position.Position{}, err
	}
	return p, nil
}

func (a *actor) save(p position.Position) error {
	data, err := a.codec.Encode(p)
	if err != nil {
		return err
	}
	if err := os.WriteFile(a.path, data, 0o644); err != nil {
		return errors.NewIO("write", a.path, err)
	}
	return nil
}
