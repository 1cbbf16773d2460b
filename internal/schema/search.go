// Package schema validates incoming prospect search bodies and decodes them into
// models.SearchRequest. The geo filter is a tagged union: a body is accepted when geo matches
// the zip variant or the city/state variant, and the zip variant wins when both match.
package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"prospector-api/internal/models"

	"github.com/xeipuuv/gojsonschema"
)

const searchRequestSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["service", "geo"],
	"properties": {
		"service": {"type": "string", "minLength": 1},
		"geo": {
			"type": "object",
			"anyOf": [
				{
					"required": ["zip", "radiusMiles"],
					"properties": {
						"zip": {"type": "string"},
						"radiusMiles": {"type": "integer"}
					}
				},
				{
					"required": ["city", "state", "radiusMiles"],
					"properties": {
						"city": {"type": "string"},
						"state": {"type": "string"},
						"radiusMiles": {"type": "integer"}
					}
				}
			]
		}
	}
}`

// rootContext is how gojsonschema names the document root in error contexts.
const rootContext = "(root)"

var searchSchema = mustCompile(searchRequestSchema)

func mustCompile(src string) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("schema: invalid search request schema: %v", err))
	}
	return s
}

// FieldError describes one offending field of a request body.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// ValidationError is returned when a request body does not match its schema.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		parts[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return "schema: validation failed: " + strings.Join(parts, "; ")
}

// searchBody mirrors the JSON body once it has passed schema validation. geo stays loosely typed
// because keys outside the matched variant may hold any JSON value.
type searchBody struct {
	Service string         `json:"service"`
	Geo     map[string]any `json:"geo"`
}

// maxExactRadius bounds radii written in exponent form, beyond it float64 drops digits.
const maxExactRadius = 1 << 53

// ValidateSearchRequest checks raw against the search request schema and decodes it
func ValidateSearchRequest(raw []byte) (models.SearchRequest, error) {
	result, err := searchSchema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return models.SearchRequest{}, invalidJSON("body is not valid JSON")
	}
	if !result.Valid() {
		return models.SearchRequest{}, &ValidationError{Errors: fieldErrors(result.Errors())}
	}

	var body searchBody
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil {
		return models.SearchRequest{}, invalidJSON(err.Error())
	}

	num, _ := body.Geo["radiusMiles"].(json.Number)
	radius, ok := parseRadius(num)
	if !ok {
		return models.SearchRequest{}, &ValidationError{Errors: []FieldError{{
			Field:   "geo.radiusMiles",
			Message: fmt.Sprintf("radiusMiles %s is out of range", num),
			Code:    "out_of_range",
		}}}
	}

	req := models.SearchRequest{Service: body.Service}
	if zip, ok := body.Geo["zip"].(string); ok {
		req.Geo = models.ZipFilter(zip, radius)
		return req, nil
	}

	// zip is absent or not a string, so the city/state variant is the one that matched
	city, cityOK := body.Geo["city"].(string)
	state, stateOK := body.Geo["state"].(string)
	if !cityOK || !stateOK {
		return models.SearchRequest{}, &ValidationError{Errors: []FieldError{{
			Field:   "geo",
			Message: "geo must hold either zip or city and state",
			Code:    "number_any_of",
		}}}
	}
	req.Geo = models.CityStateFilter(city, state, radius)
	return req, nil
}

func invalidJSON(msg string) *ValidationError {
	return &ValidationError{Errors: []FieldError{{
		Field:   "body",
		Message: msg,
		Code:    "invalid_json",
	}}}
}

// parseRadius converts an integral JSON number to an int without going through float64 for
// plain digits. 15, 15.0 and 1e2 are accepted; anything that does not fit an int is not.
func parseRadius(n json.Number) (int, bool) {
	s := n.String()
	if i := strings.IndexByte(s, '.'); i >= 0 && !strings.ContainsAny(s, "eE") && strings.Trim(s[i+1:], "0") == "" {
		s = s[:i]
	}

	v, err := strconv.ParseInt(s, 10, strconv.IntSize)
	if err == nil {
		return int(v), true
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > maxExactRadius {
		return 0, false
	}
	return int(f), true
}

func fieldErrors(errs []gojsonschema.ResultError) []FieldError {
	out := make([]FieldError, 0, len(errs))
	for _, e := range errs {
		out = append(out, FieldError{
			Field:   fieldName(e),
			Message: e.Description(),
			Code:    e.Type(),
		})
	}
	return out
}

// fieldName turns a gojsonschema context such as "(root).geo" into "geo", appending the
// missing property for "required" errors.
func fieldName(e gojsonschema.ResultError) string {
	field := strings.TrimPrefix(e.Context().String(), rootContext)
	field = strings.TrimPrefix(field, ".")

	if e.Type() == "required" {
		if prop, ok := e.Details()["property"].(string); ok && prop != "" {
			switch {
			case field == "":
				return prop
			case field == prop || strings.HasSuffix(field, "."+prop):
				return field
			default:
				return field + "." + prop
			}
		}
	}
	if field == "" {
		return "body"
	}
	return field
}
