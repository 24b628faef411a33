// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

// Package invariant holds the fatal assertion used by the structures in this
// module. Violations are programmer errors: they are traced and then raised
// as a panic carrying the error, never returned.
package invariant

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'intrusive'
func tracer() tracing.Trace {
	return tracing.Select("intrusive")
}

// Fail traces err and panics with it. A nil err is a no-op so that checkers
// can be chained as invariant.Fail(check()).
func Fail(err error) {
	if err == nil {
		return
	}
	tracer().Errorf("invariant violated: %v", err)
	panic(err)
}

// Assert panics with an error wrapping sentinel if cond does not hold.
func Assert(cond bool, sentinel error, format string, args ...interface{}) {
	if cond {
		return
	}
	Fail(fmt.Errorf("%w: "+format, append([]interface{}{sentinel}, args...)...))
}
