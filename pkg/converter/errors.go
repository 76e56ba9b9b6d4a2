package converter

import (
	"errors"
	"fmt"
)

// ErrParse marks unrecoverable connection table input: a malformed counts
// line, a negative count or an unparseable coordinate field. Parsing aborts
// instead of guessing.
var ErrParse = errors.New("malformed structure")

// ErrEmptyStructure marks a parse that produced no atoms. There is nothing
// to render, so the pipeline stops before the scene builder runs.
var ErrEmptyStructure = errors.New("empty structure")

type makeNewGeneralErrorFuncType = func(message string, formatedValues ...interface{}) error

// StructureParseError builds an ErrParse error with details.
var StructureParseError = makeNewGeneralErrorFunc(ErrParse)

// EmptyStructureError builds an ErrEmptyStructure error with details.
var EmptyStructureError = makeNewGeneralErrorFunc(ErrEmptyStructure)

// StructureError reports an inconsistency in an already parsed molecule.
var StructureError = makeNewGeneralErrorFunc(ErrParse)

func makeNewGeneralErrorFunc(sentinel error) makeNewGeneralErrorFuncType {
	return func(message string, formatedValues ...interface{}) error {
		details := fmt.Sprintf(message, formatedValues...)
		return fmt.Errorf("[converter] %w: %s", sentinel, details)
	}
}
