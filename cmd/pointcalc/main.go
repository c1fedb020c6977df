package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/kpfaulkner/point-go/batch"
	"github.com/kpfaulkner/point-go/options"
	"github.com/kpfaulkner/point-go/point"
	"github.com/kpfaulkner/point-go/script"
	log "github.com/sirupsen/logrus"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("pointcalc", flag.ContinueOnError)
	fs.SetOutput(errOut)
	op := fs.String("op", "", "operation: add, sub, scale, dot, equals, neg, div, rotate_cw, rotate_acw, rotate_180, dist, dist_squared, manhattan, line")
	a := fs.String("a", "", "first point, e.g. 1,2")
	b := fs.String("b", "", "second point")
	k := fs.String("k", "", "scalar for scale and div")
	batchFile := fs.String("batch", "", "json batch file to evaluate")
	scriptFile := fs.String("script", "", "lua script to run")
	checked := fs.Bool("checked", false, "fail on int32 overflow instead of wrapping")
	debug := fs.Bool("debug", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	opts := options.NewCalcOptions(&options.CalcOptions{Checked: *checked, Debug: *debug})
	opts.ApplyLogLevel()

	var err error
	switch {
	case *batchFile != "":
		err = runBatch(opts, *batchFile, out)
	case *scriptFile != "":
		err = runScript(opts, *scriptFile)
	case *op != "":
		err = runOp(opts, *op, *a, *b, *k, out)
	default:
		fmt.Fprintf(errOut, "one of -op, -batch or -script must be specified\n")
		fs.Usage()
		return 1
	}

	if err != nil {
		log.Errorf("pointcalc: %v", err)
		return 1
	}
	return 0
}

func runOp(opts *options.CalcOptions, opName string, a string, b string, k string, out io.Writer) error {
	if a == "" {
		return fmt.Errorf("-a must be specified")
	}
	pa, err := point.Parse(a)
	if err != nil {
		return err
	}

	operation := batch.Operation{Op: opName, A: pa}
	if b != "" {
		pb, err := point.Parse(b)
		if err != nil {
			return err
		}
		operation.B = &pb
	}
	if k != "" {
		v, err := strconv.ParseInt(k, 10, 32)
		if err != nil {
			return fmt.Errorf("invalid -k %q: %w", k, err)
		}
		scalar := int32(v)
		operation.K = &scalar
	}

	res, err := batch.Apply(opts, operation)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, formatResult(res))
	return nil
}

func formatResult(res batch.Result) string {
	switch {
	case res.Point != nil:
		return res.Point.String()
	case res.Scalar != nil:
		return strconv.FormatInt(int64(*res.Scalar), 10)
	case res.Float != nil:
		return strconv.FormatFloat(*res.Float, 'g', -1, 64)
	case res.Bool != nil:
		return strconv.FormatBool(*res.Bool)
	case res.Points != nil:
		parts := make([]string, 0, len(res.Points))
		for _, p := range res.Points {
			parts = append(parts, p.String())
		}
		return strings.Join(parts, " ")
	}
	return ""
}

func runBatch(opts *options.CalcOptions, filename string, out io.Writer) error {
	doc, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("error opening batch file: %w", err)
	}

	evaluator, err := batch.NewEvaluator(opts)
	if err != nil {
		return err
	}
	results, err := evaluator.Evaluate(doc)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

func runScript(opts *options.CalcOptions, filename string) error {
	code, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("error opening script: %w", err)
	}

	engine := script.NewEngine(opts)
	defer engine.Close()
	return engine.Run(string(code))
}
