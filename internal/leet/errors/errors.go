// Package errors defines the closed set of failure kinds the scaffolding
// pipeline can report.
package errors

import "errors"

// Kind identifies where a failure came from and how the CLI reacts to it.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindConfigNotFound
	KindFileOpen
	KindYamlParse
	KindValidation
	KindEnvMissing
	KindUnknownTemplate
	KindTransport
	KindAPI
	KindMalformedResponse
	KindLanguageNotAvailable
	KindTemplate
	KindDirectoryExists
	KindIO
)

// Sentinel errors, one per kind. errors.Is(err, ErrX) matches any *Error of that kind.
var (
	// Configuration errors
	ErrConfigNotFound = errors.New("config not found in the default paths")
	ErrFileOpen       = errors.New("failed to open file")
	ErrYamlParse      = errors.New("failed to parse config")
	ErrValidation     = errors.New("validation error")
	ErrEnvMissing     = errors.New("environment variable not found")

	// Catalog errors
	ErrUnknownTemplate = errors.New("unknown template")

	// Fetch errors
	ErrTransport         = errors.New("request failed")
	ErrAPI               = errors.New("graphql error")
	ErrMalformedResponse = errors.New("malformed response")

	// Render and scaffold errors
	ErrLanguageNotAvailable = errors.New("language not available")
	ErrTemplate             = errors.New("templating failed")
	ErrDirectoryExists      = errors.New("directory already exists")
	ErrIO                   = errors.New("io error")
)

var sentinels = map[Kind]error{
	KindConfigNotFound:       ErrConfigNotFound,
	KindFileOpen:             ErrFileOpen,
	KindYamlParse:            ErrYamlParse,
	KindValidation:           ErrValidation,
	KindEnvMissing:           ErrEnvMissing,
	KindUnknownTemplate:      ErrUnknownTemplate,
	KindTransport:            ErrTransport,
	KindAPI:                  ErrAPI,
	KindMalformedResponse:    ErrMalformedResponse,
	KindLanguageNotAvailable: ErrLanguageNotAvailable,
	KindTemplate:             ErrTemplate,
	KindDirectoryExists:      ErrDirectoryExists,
	KindIO:                   ErrIO,
}

// String returns the sentinel message for the kind
func (k Kind) String() string {
	if s, ok := sentinels[k]; ok {
		return s.Error()
	}
	return "unknown error"
}

// Error is the single error type produced by the pipeline.
// Subject names the path, template, variable or language involved.
type Error struct {
	Kind    Kind
	Subject string
	Err     error
}

// E builds an *Error
func E(kind Kind, subject string, err error) *Error {
	return &Error{Kind: kind, Subject: subject, Err: err}
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Subject != "" {
		msg += ": " + e.Subject
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel of the error's kind
func (e *Error) Is(target error) bool {
	s, ok := sentinels[e.Kind]
	return ok && s == target
}

// KindOf returns the kind of the first *Error in err's chain
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Is checks if the error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As checks if the error can be unwrapped to the target type
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
