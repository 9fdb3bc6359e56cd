package engine

import (
	"database/sql/driver"
	"fmt"

	"github.com/viant/kdtree/tree"
	sqlite "modernc.org/sqlite"
)

func registerFunctions() error {
	if err := sqlite.RegisterDeterministicScalarFunction("vec_l2", 2, vecL2Impl); err != nil {
		return fmt.Errorf("engine: register vec_l2: %w", err)
	}
	if err := sqlite.RegisterDeterministicScalarFunction("vec_sqrdist", 2, vecSqrDistImpl); err != nil {
		return fmt.Errorf("engine: register vec_sqrdist: %w", err)
	}
	return nil
}

func asVector(arg driver.Value) (tree.Vector, error) {
	switch v := arg.(type) {
	case nil:
		return nil, nil
	case []byte:
		return DecodeVector(v)
	default:
		return nil, fmt.Errorf("engine: unsupported argument type %T for vector; want BLOB", arg)
	}
}

func vectorArgs(name string, args []driver.Value) (tree.Vector, tree.Vector, error) {
	if len(args) != 2 {
		return nil, nil, fmt.Errorf("%s: expected 2 arguments, got %d", name, len(args))
	}
	a, err := asVector(args[0])
	if err != nil {
		return nil, nil, err
	}
	b, err := asVector(args[1])
	if err != nil {
		return nil, nil, err
	}
	if a != nil && b != nil && len(a) != len(b) {
		return nil, nil, fmt.Errorf("%s: dimension mismatch %d vs %d", name, len(a), len(b))
	}
	return a, b, nil
}

func vecL2Impl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	a, b, err := vectorArgs("vec_l2", args)
	if err != nil || a == nil || b == nil {
		return nil, err
	}
	return float64(a.Distance(b)), nil
}

func vecSqrDistImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	a, b, err := vectorArgs("vec_sqrdist", args)
	if err != nil || a == nil || b == nil {
		return nil, err
	}
	return a.SqrDist(b), nil
}
