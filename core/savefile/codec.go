package savefile

import (
	"bytes"
	"encoding/json"
	"io"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/FocuswithJustin/bibleread/core/catalog"
	"github.com/FocuswithJustin/bibleread/core/errors"
	"github.com/FocuswithJustin/bibleread/core/position"
)

// Codec converts a position to and from save file bytes.
type Codec interface {
	Name() string
	Encode(p position.Position) ([]byte, error)
	Decode(data []byte, cat *catalog.Catalog) (position.Position, error)
}

// Clock returns the time stamped into new records.
type Clock func() time.Time

// JSONCodec writes indented JSON. It is the default format.
type JSONCodec struct {
	Now Clock
}

// YAMLCodec writes YAML.
type YAMLCodec struct {
	Now Clock
}

// ForPath picks a codec from the file extension: .yaml and .yml get YAML,
// everything else gets JSON.
func ForPath(path string) Codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAMLCodec{}
	default:
		return JSONCodec{}
	}
}

func stamp(now Clock) time.Time {
	if now == nil {
		return time.Now()
	}
	return now()
}

func (JSONCodec) Name() string { return "json" }

func (c JSONCodec) Encode(p position.Position) ([]byte, error) {
	if p.IsZero() {
		return nil, errors.NewValidation("position", "", "nothing to encode")
	}
	data, err := json.MarshalIndent(FromPosition(p, stamp(c.Now)), "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode save file")
	}
	return append(data, '\n'), nil
}

func (JSONCodec) Decode(data []byte, cat *catalog.Catalog) (position.Position, error) {
	var s SavedState
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return position.Position{}, parseErr("json", "malformed save file", err)
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); err != io.EOF {
		return position.Position{}, parseErr("json", "trailing data after save record", err)
	}
	return decodeState("json", s, cat)
}

func (YAMLCodec) Name() string { return "yaml" }

func (c YAMLCodec) Encode(p position.Position) ([]byte, error) {
	if p.IsZero() {
		return nil, errors.NewValidation("position", "", "nothing to encode")
	}
	data, err := yaml.Marshal(FromPosition(p, stamp(c.Now)))
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode save file")
	}
	return data, nil
}

func (YAMLCodec) Decode(data []byte, cat *catalog.Catalog) (position.Position, error) {
	var s SavedState
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return position.Position{}, parseErr("yaml", "malformed save file", err)
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); err != io.EOF {
		return position.Position{}, parseErr("yaml", "more than one document in save file", err)
	}
	return decodeState("yaml", s, cat)
}

func decodeState(format string, s SavedState, cat *catalog.Catalog) (position.Position, error) {
	if s.Book == "" {
		return position.Position{}, parseErr(format, "save file has no book", nil)
	}
	p, err := s.Position(cat)
	if err != nil {
		return position.Position{}, parseErr(format, "save file holds an invalid position", err)
	}
	return p, nil
}

func parseErr(format, message string, cause error) *errors.ParseError {
	if cause != nil {
		message += ": " + cause.Error()
	}
	pe := errors.NewParse(format, "", message)
	pe.Err = cause
	return pe
}
