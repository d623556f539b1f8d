// Package config resolves runtime settings. Sources, lowest precedence
// first: built-in defaults, an optional YAML file, then explicit overrides
// from flags or the environment.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/FocuswithJustin/bibleread/core/errors"
	"github.com/FocuswithJustin/bibleread/internal/logging"
	"github.com/FocuswithJustin/bibleread/internal/validation"
)

// Defaults.
const (
	DefaultPath          = "reading.json"
	DefaultQueueCapacity = 1
	DefaultLogLevel      = "warn"
	DefaultLogFormat     = "text"
)

// Config holds the resolved settings.
type Config struct {
	// Path is the save file location.
	Path string `yaml:"path" validate:"required"`
	// QueueCapacity bounds the persistence actor's request queue.
	QueueCapacity int    `yaml:"queue_capacity" validate:"min=1,max=1024"`
	LogLevel      string `yaml:"log_level" validate:"oneof=debug info warn warning error"`
	LogFormat     string `yaml:"log_format" validate:"oneof=text json"`

	// Sources lists where values came from, in the order applied.
	Sources []string `yaml:"-"`
}

// Overrides carries explicitly set values. Zero fields are left alone.
type Overrides struct {
	Path          string
	QueueCapacity int
	LogLevel      string
	LogFormat     string
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Path:          DefaultPath,
		QueueCapacity: DefaultQueueCapacity,
		LogLevel:      DefaultLogLevel,
		LogFormat:     DefaultLogFormat,
		Sources:       []string{"defaults"},
	}
}

// Load starts from the defaults and applies the YAML file at path, if path
// is non-empty. A named file that does not exist is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.NewIO("open config", path, err)
	}
	defer f.Close()

	if err := cfg.decode(f); err != nil {
		pe := errors.NewParse("config", path, err.Error())
		pe.Err = err
		return Config{}, pe
	}
	cfg.Sources = append(cfg.Sources, path)
	return cfg, nil
}

func (c *Config) decode(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(c)
}

// Apply overlays the non-zero overrides.
func (c *Config) Apply(o Overrides) {
	applied := false
	if o.Path != "" {
		c.Path = o.Path
		applied = true
	}
	if o.QueueCapacity != 0 {
		c.QueueCapacity = o.QueueCapacity
		applied = true
	}
	if o.LogLevel != "" {
		c.LogLevel = strings.ToLower(o.LogLevel)
		applied = true
	}
	if o.LogFormat != "" {
		c.LogFormat = strings.ToLower(o.LogFormat)
		applied = true
	}
	if applied {
		c.Sources = append(c.Sources, "flags")
	}
}

var validate = func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Use yaml tag names in error messages
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}()

// Validate checks every field and the save path.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			ve := errors.NewValidation(fe.Field(), fmt.Sprint(fe.Value()), friendlyMessage(fe))
			ve.Err = fmt.Errorf("%w: %w", errors.ErrInvalidInput, err)
			return ve
		}
		return err
	}

	if err := validation.ValidateSavePath(c.Path); err != nil {
		ve := errors.NewValidation("path", c.Path, err.Error())
		ve.Err = fmt.Errorf("%w: %w", errors.ErrInvalidInput, err)
		return ve
	}
	return nil
}

func friendlyMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must not exceed %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

// Logging converts the log settings for logging.New.
func (c Config) Logging(w io.Writer) (logging.Config, error) {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return logging.Config{}, err
	}
	format, err := logging.ParseFormat(c.LogFormat)
	if err != nil {
		return logging.Config{}, err
	}
	return logging.Config{Level: level, Format: format, Writer: w}, nil
}
