// Package validators provides the pipeline steps that guard dish and order
// mutations. Every step either passes the request on untouched or fails
// with a ValidationError or NotFoundError that names the offending field,
// index or id.
package validators

import (
	"fmt"
	"strconv"

	"github.com/yeremiapane/grubdash/pipeline"
	"github.com/yeremiapane/grubdash/utils"
)

// BodyDataHas fails unless data.<field> is present, not null and not an
// empty string. resource is used in the message ("Dish", "Order").
func BodyDataHas(resource, field string) pipeline.Step {
	return func(r *pipeline.Request) error {
		if !r.Data.Has(field) {
			return utils.Validationf("%s must include a %s", resource, field)
		}
		return nil
	}
}

// BodyDataHasAll is BodyDataHas for several fields, checked in order.
func BodyDataHasAll(resource string, fields ...string) []pipeline.Step {
	steps := make([]pipeline.Step, len(fields))
	for i, f := range fields {
		steps[i] = BodyDataHas(resource, f)
	}
	return steps
}

// BodyDataIsText fails when data.<field> is an object or an array. Strings,
// numbers and booleans pass; numbers and booleans are stored as their text.
func BodyDataIsText(resource, field string) pipeline.Step {
	return func(r *pipeline.Request) error {
		if r.Data.Has(field) && !r.Data.IsText(field) {
			return utils.Validationf("%s %s must be a string", resource, field)
		}
		return nil
	}
}

// BodyDataAreText is BodyDataIsText for several fields, checked in order.
func BodyDataAreText(resource string, fields ...string) []pipeline.Step {
	steps := make([]pipeline.Step, len(fields))
	for i, f := range fields {
		steps[i] = BodyDataIsText(resource, f)
	}
	return steps
}

// IDMatchesParam fails when the body carries an id that differs from the
// path parameter. Falsy body ids (missing, null, "", 0, false) are ignored.
func IDMatchesParam(resource, param string) pipeline.Step {
	return func(r *pipeline.Request) error {
		raw, _ := r.Data.Value("id")
		id, ok := bodyID(raw)
		if !ok {
			return nil
		}
		if pathID := r.Param(param); id != pathID {
			return utils.Validationf("%s id in url (%s) does not match id in request body (%s)", resource, pathID, id)
		}
		return nil
	}
}

func bodyID(v interface{}) (string, bool) {
	switch id := v.(type) {
	case nil:
		return "", false
	case string:
		return id, id != ""
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64), id != 0
	case bool:
		return strconv.FormatBool(id), id
	default:
		return fmt.Sprint(id), true
	}
}
