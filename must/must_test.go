// Copyright 2019 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package must_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/csa-go/csa/mask"
	"github.com/csa-go/csa/must"
)

func TestNilPassesThroughANilValue(t *testing.T) {
	called := false
	defer func(f func(...interface{})) { must.Func = f }(must.Func)
	must.Func = func(...interface{}) { called = true }

	must.Nil(nil)
	assert.False(t, called)
}

func TestTrueAndNeverInvokeFuncOnFailure(t *testing.T) {
	var messages []string
	defer func(f func(...interface{})) { must.Func = f }(must.Func)
	must.Func = func(v ...interface{}) { messages = append(messages, fmt.Sprint(v...)) }

	must.True(true)
	must.True(false, "a condition failed")
	must.Never("unreachable")

	assert.Equal(t, []string{"a condition failed", "unreachable"}, messages)
}

func TestFiniteMaskPassesThroughAFiniteMask(t *testing.T) {
	called := false
	defer func(f func(...interface{})) { must.Func = f }(must.Func)
	must.Func = func(...interface{}) { called = true }

	explicit := mask.Explicit([]mask.Pair{{I: 0, J: 0}})
	got := must.FiniteMask(explicit, "explicit set")
	assert.False(t, called)
	assert.Equal(t, explicit, got)
}

func TestFiniteMaskFailsOnAnUnboundedMask(t *testing.T) {
	var messages []string
	defer func(f func(...interface{})) { must.Func = f }(must.Func)
	must.Func = func(v ...interface{}) { messages = append(messages, fmt.Sprint(v...)) }

	must.FiniteMask(mask.OneToOne{}, "diagonal")
	assert.Equal(t, []string{"diagonal: not a finite mask"}, messages)
}

func Example() {
	must.Func = func(v ...interface{}) {
		fmt.Print(v...)
		fmt.Print("\n")
	}

	must.Nil(errors.New("unexpected condition"))
	must.Nil(nil)
	must.Nil(errors.New("i/o error"), "reading file")

	must.True(false)
	must.True(true, "something happened")
	must.True(false, "a condition failed")

	// Output:
	// unexpected condition
	// reading file: i/o error
	// must: assertion failed
	// a condition failed
}
