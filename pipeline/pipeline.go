// Package pipeline runs an ordered list of validation steps in front of a
// single terminal operation. The first failing step stops the run.
package pipeline

import (
	"context"
	"net/http"
)

// Request is the per-request state shared by the steps of one run.
type Request struct {
	ctx    context.Context
	params map[string]string
	locals map[string]interface{}

	Data Payload
}

// NewRequest builds a Request. A nil data payload is replaced by an empty one.
func NewRequest(ctx context.Context, params map[string]string, data Payload) *Request {
	if ctx == nil {
		ctx = context.Background()
	}
	if data == nil {
		data = Payload{}
	}
	if params == nil {
		params = map[string]string{}
	}
	return &Request{
		ctx:    ctx,
		params: params,
		locals: make(map[string]interface{}),
		Data:   data,
	}
}

func (r *Request) Context() context.Context { return r.ctx }

// Param returns the named path parameter.
func (r *Request) Param(name string) string { return r.params[name] }

// Set stores a value for later steps, typically a resolved record.
func (r *Request) Set(key string, value interface{}) { r.locals[key] = value }

// Get returns a value stored with Set.
func (r *Request) Get(key string) (interface{}, bool) {
	v, ok := r.locals[key]
	return v, ok
}

// Step checks or enriches a Request. Returning an error aborts the run.
type Step func(*Request) error

// Result is what a terminal operation produces on success.
type Result struct {
	Status int
	Data   interface{}
}

func OK(data interface{}) Result      { return Result{Status: http.StatusOK, Data: data} }
func Created(data interface{}) Result { return Result{Status: http.StatusCreated, Data: data} }
func NoContent() Result               { return Result{Status: http.StatusNoContent} }

// Terminal is the operation a pipeline guards.
type Terminal func(*Request) (Result, error)

type Pipeline struct {
	steps []Step
}

func New(steps ...Step) Pipeline {
	return Pipeline{steps: steps}
}

// Then returns a copy of p with more steps appended.
func (p Pipeline) Then(steps ...Step) Pipeline {
	all := make([]Step, 0, len(p.steps)+len(steps))
	all = append(all, p.steps...)
	all = append(all, steps...)
	return Pipeline{steps: all}
}

func (p Pipeline) Len() int { return len(p.steps) }

// Run executes the steps in order and returns the first error.
func (p Pipeline) Run(req *Request) error {
	for _, step := range p.steps {
		if err := step(req); err != nil {
			return err
		}
	}
	return nil
}

// Execute runs the steps and, when all of them pass, the terminal.
func (p Pipeline) Execute(req *Request, terminal Terminal) (Result, error) {
	if err := p.Run(req); err != nil {
		return Result{}, err
	}
	return terminal(req)
}
