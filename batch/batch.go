// Package batch evaluates JSON documents holding a list of point operations.
package batch

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kpfaulkner/point-go/options"
	"github.com/santhosh-tekuri/jsonschema/v5"
	log "github.com/sirupsen/logrus"
)

type Document struct {
	Operations []Operation `json:"operations"`
}

type Evaluator struct {
	opts   *options.CalcOptions
	schema *jsonschema.Schema
}

func NewEvaluator(opts *options.CalcOptions) (*Evaluator, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, strings.NewReader(documentSchema)); err != nil {
		return nil, fmt.Errorf("failed to add batch schema: %w", err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("failed to compile batch schema: %w", err)
	}

	e := &Evaluator{
		opts:   options.NewCalcOptions(opts),
		schema: schema,
	}
	e.opts.ApplyLogLevel()
	return e, nil
}

// Evaluate validates doc and runs every operation in order. A document that
// fails validation is an error. A single failing operation only sets
// Result.Error and evaluation carries on with the next one.
func (e *Evaluator) Evaluate(doc []byte) ([]Result, error) {
	var raw interface{}
	if err := json.Unmarshal(doc, &raw); err != nil {
		return nil, fmt.Errorf("invalid batch json: %w", err)
	}
	if err := e.schema.Validate(raw); err != nil {
		return nil, fmt.Errorf("batch document failed validation: %w", err)
	}

	var d Document
	if err := json.Unmarshal(doc, &d); err != nil {
		return nil, fmt.Errorf("invalid batch document: %w", err)
	}

	results := make([]Result, 0, len(d.Operations))
	for i, op := range d.Operations {
		res, err := Apply(e.opts, op)
		if err != nil {
			log.Warnf("operation %d (%s) failed: %v", i, op.Op, err)
			res.Error = err.Error()
		} else {
			log.Debugf("operation %d (%s) ok", i, op.Op)
		}
		results = append(results, res)
	}
	return results, nil
}
