// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

// Package genvalidate checks the invariants of a genmodel.Model before any
// emission starts. A violation is a defect in the compiled-in table, not a
// runtime condition, so it is reported as a single diagnostic line and
// emission never begins.
package genvalidate

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/ashgti/diskapigen/internal/genmodel"
)

var nameRE = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// Validate returns nil iff every invariant in the model's defining
// specification holds. On the first violation it returns an error naming
// the offending call(s) and the rule that was broken.
func Validate(m genmodel.Model) error {
	if err := checkNames(m.Calls); err != nil {
		return err
	}
	if err := checkLongDescriptions(m.Calls); err != nil {
		return err
	}
	if err := checkProcedureNumbers(m.Calls); err != nil {
		return err
	}
	if err := checkNoConstStringOnDaemon(m.Calls); err != nil {
		return err
	}
	return nil
}

func checkNames(calls []genmodel.Call) error {
	seen := make(map[string]bool, len(calls))
	for _, c := range calls {
		if !nameRE.MatchString(c.Name) {
			return fmt.Errorf("invalid call name %q: names must match [a-z_][a-z0-9_]* and contain no hyphen", c.Name)
		}
		if seen[c.Name] {
			return fmt.Errorf("duplicate call name %q", c.Name)
		}
		seen[c.Name] = true
	}
	return nil
}

func checkLongDescriptions(calls []genmodel.Call) error {
	for _, c := range calls {
		if strings.HasSuffix(c.LongDesc, "\n") || strings.HasSuffix(c.LongDesc, "\r") {
			return fmt.Errorf("call %q: long description must not end with a line terminator", c.Name)
		}
	}
	return nil
}

func checkProcedureNumbers(calls []genmodel.Call) error {
	type numbered struct {
		name string
		num  int
	}
	var daemon []numbered
	for _, c := range calls {
		if c.IsDaemon() {
			if c.ProcedureNumber <= 0 {
				return fmt.Errorf("call %q: daemon calls require a positive procedure number, got %d", c.Name, c.ProcedureNumber)
			}
			daemon = append(daemon, numbered{c.Name, c.ProcedureNumber})
		} else if c.ProcedureNumber != genmodel.NoProcedure {
			return fmt.Errorf("call %q: client-only calls must carry the sentinel procedure number, got %d", c.Name, c.ProcedureNumber)
		}
	}

	sort.Slice(daemon, func(i, j int) bool { return daemon[i].num < daemon[j].num })
	for i := 1; i < len(daemon); i++ {
		if daemon[i].num == daemon[i-1].num {
			return fmt.Errorf("calls %q and %q share duplicate procedure number %d", daemon[i-1].name, daemon[i].name, daemon[i].num)
		}
	}
	return nil
}

func checkNoConstStringOnDaemon(calls []genmodel.Call) error {
	for _, c := range calls {
		if c.IsDaemon() && c.Return.Kind == genmodel.RetConstString {
			return fmt.Errorf("call %q: const_string return kind is forbidden on daemon calls", c.Name)
		}
	}
	return nil
}
