package intrinio

import (
	"fmt"
	"net/url"

	"github.com/oapi-codegen/runtime"
)

// request collects everything an endpoint method knows about one call. The
// first argument error is kept in err and reported by invoke.
type request struct {
	operation  string
	method     string
	path       string
	pathParams map[string]string
	query      url.Values
	accept     string
	body       any
	err        error
}

func newRequest(operation, method, path string) *request {
	return &request{
		operation:  operation,
		method:     method,
		path:       path,
		pathParams: map[string]string{},
		query:      url.Values{},
		accept:     contentTypeJSON,
	}
}

func (r *request) fail(param, reason string) {
	if r.err != nil {
		return
	}
	r.err = &InvalidArgumentError{Operation: r.operation, Param: param, Reason: reason}
}

func (r *request) pathParam(name, value string) *request {
	if value == "" {
		r.fail(name, "required parameter is empty")
		return r
	}
	styled, err := runtime.StyleParamWithLocation("simple", false, name, runtime.ParamLocationPath, value)
	if err != nil {
		r.fail(name, err.Error())
		return r
	}
	r.pathParams[name] = styled
	return r
}

func (r *request) requiredQuery(name, value string) *request {
	if value == "" {
		r.fail(name, "required parameter is empty")
		return r
	}
	addQuery(r, name, value)
	return r
}

func (r *request) acceptText() *request {
	r.accept = contentTypeText
	return r
}

func (r *request) withBody(body any) *request {
	r.body = body
	return r
}

// setQuery adds v to the query string when it was supplied.
func setQuery[T any](r *request, name string, v *T) {
	if v == nil {
		return
	}
	addQuery(r, name, *v)
}

func addQuery(r *request, name string, value any) {
	if r.err != nil {
		return
	}
	styled, err := runtime.StyleParamWithLocation("form", true, name, runtime.ParamLocationQuery, value)
	if err != nil {
		r.fail(name, err.Error())
		return
	}
	parsed, err := url.ParseQuery(styled)
	if err != nil {
		r.fail(name, fmt.Sprintf("invalid query value: %v", err))
		return
	}
	for k, vs := range parsed {
		for _, v := range vs {
			r.query.Add(k, v)
		}
	}
}
