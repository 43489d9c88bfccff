package codec

import (
	"io"
	"unicode/utf8"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin/binding"
	"github.com/pkg/errors"
)

// ErrMalformedPayload is returned when a payload is not valid UTF-8 JSON,
// does not match the target type, or leaves required fields empty.
var ErrMalformedPayload = errors.New("malformed payload")

// Decoder materializes a byte stream into v.
type Decoder interface {
	Decode(r io.Reader, v any) error
}

// JSON decodes with sonic in encoding/json compatible mode and then runs
// the gin binding validator over the result.
type JSON struct {
	api       sonic.API
	validator binding.StructValidator
}

// NewJSON returns the default JSON decoder.
func NewJSON() *JSON {
	return &JSON{
		api:       sonic.ConfigStd,
		validator: binding.Validator,
	}
}

// Decode reads r to the end and fills v. Partial results are never accepted:
// on error v must be discarded by the caller.
func (d *JSON) Decode(r io.Reader, v any) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, "read payload")
	}
	if len(data) == 0 {
		return errors.Wrap(ErrMalformedPayload, "empty payload")
	}
	if !utf8.Valid(data) {
		return errors.Wrap(ErrMalformedPayload, "payload is not valid UTF-8")
	}

	if err := d.api.Unmarshal(data, v); err != nil {
		return errors.Wrapf(ErrMalformedPayload, "decode json: %v", err)
	}

	if d.validator != nil {
		if err := d.validator.ValidateStruct(v); err != nil {
			return errors.Wrapf(ErrMalformedPayload, "validate: %v", err)
		}
	}
	return nil
}
