// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package genvalidate_test

import (
	"strings"
	"testing"

	"github.com/ashgti/diskapigen/internal/genmodel"
	"github.com/ashgti/diskapigen/internal/genvalidate"
)

func baseCall() genmodel.Call {
	return genmodel.Call{
		Name:            "touch",
		Args:            []genmodel.Arg{{Name: "path", Kind: genmodel.ArgString}},
		Return:          genmodel.Return{Kind: genmodel.RetErr},
		ProcedureNumber: 3,
		ShortDesc:       "touch a file",
		LongDesc:        "Touches a file.",
	}
}

func TestValidateRealModel(t *testing.T) {
	if err := genvalidate.Validate(genmodel.New()); err != nil {
		t.Fatalf("compiled-in model failed validation: %v", err)
	}
}

func TestValidateHyphenInName(t *testing.T) {
	c := baseCall()
	c.Name = "set-path"
	m := genmodel.Model{Calls: []genmodel.Call{c}}
	if err := genvalidate.Validate(m); err == nil {
		t.Fatal("expected an error for a hyphenated call name")
	}
}

func TestValidateTrailingNewlineInLongDesc(t *testing.T) {
	c := baseCall()
	c.LongDesc = "Touches a file.\n"
	m := genmodel.Model{Calls: []genmodel.Call{c}}
	err := genvalidate.Validate(m)
	if err == nil {
		t.Fatal("expected an error for a trailing newline in the long description")
	}
	if !strings.Contains(err.Error(), "line terminator") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateDuplicateProcedureNumbers(t *testing.T) {
	a := baseCall()
	a.Name = "a"
	a.ProcedureNumber = 7
	b := baseCall()
	b.Name = "b"
	b.ProcedureNumber = 7
	m := genmodel.Model{Calls: []genmodel.Call{a, b}}

	err := genvalidate.Validate(m)
	if err == nil {
		t.Fatal("expected an error for duplicate procedure numbers")
	}
	if !strings.Contains(err.Error(), "a") || !strings.Contains(err.Error(), "b") || !strings.Contains(err.Error(), "7") {
		t.Fatalf("diagnostic does not name both calls and the duplicated number: %v", err)
	}
}

func TestValidateClientOnlyCallMustCarrySentinel(t *testing.T) {
	c := baseCall()
	c.ProcedureNumber = genmodel.NoProcedure - 1
	m := genmodel.Model{Calls: []genmodel.Call{c}}
	if err := genvalidate.Validate(m); err == nil {
		t.Fatal("expected an error for a non-sentinel, non-positive procedure number")
	}
}

func TestValidateDaemonCallMustBePositive(t *testing.T) {
	c := baseCall()
	c.ProcedureNumber = 0
	m := genmodel.Model{Calls: []genmodel.Call{c}}
	if err := genvalidate.Validate(m); err == nil {
		t.Fatal("expected an error for a zero procedure number on a reachable call")
	}
}

func TestValidateConstStringOnDaemonCall(t *testing.T) {
	c := baseCall()
	c.Name = "foo"
	c.ProcedureNumber = 9
	c.Return = genmodel.Return{Kind: genmodel.RetConstString, FieldName: "x"}
	m := genmodel.Model{Calls: []genmodel.Call{c}}

	err := genvalidate.Validate(m)
	if err == nil {
		t.Fatal("expected an error for const_string on a daemon call")
	}
	if !strings.Contains(err.Error(), "const_string") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateConstStringAllowedOnClientOnlyCall(t *testing.T) {
	c := baseCall()
	c.Name = "get_last_error"
	c.ProcedureNumber = genmodel.NoProcedure
	c.Return = genmodel.Return{Kind: genmodel.RetConstString, FieldName: "message"}
	m := genmodel.Model{Calls: []genmodel.Call{c}}

	if err := genvalidate.Validate(m); err != nil {
		t.Fatalf("const_string should be allowed on a client-only call: %v", err)
	}
}
