// Licensed to the LF AI & Data foundation under one
// or more contributor license agreements. See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership. The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License. You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package merr

import (
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

const (
	CanceledCode int32 = 10000
	TimeoutCode  int32 = 10001
)

// Define leaf errors here,
// WARN: take care to add new error,
// check whether you can use the errors below before adding a new one.
// Name: Err + related prefix + error name
var (
	// Protocol plug-in related
	ErrProtocolNotFound  = newCaladanError("protocol not found", 1, false)
	ErrProtocolDuplicate = newCaladanError("protocol already registered", 2, false)
	ErrTransportUnknown  = newCaladanError("unknown transport", 3, false)

	// Wire related
	ErrSinkWrite = newCaladanError("write to byte sink failed", 100, true)
	ErrShortRead = newCaladanError("short read from connection", 101, true)

	// Parameter related
	ErrParameterInvalid = newCaladanError("invalid parameter", 200, false)
	ErrWorkloadInvalid  = newCaladanError("invalid workload descriptor", 201, false)

	errUnexpected = newCaladanError("unexpected error", (1<<16)-1, false)
)

// leafErrors lists every exported leaf error so that Code and
// IsRetriable can also resolve errors whose original I/O cause was kept
// in the chain via errors.Join instead of being replaced by the leaf.
var leafErrors = []caladanError{
	ErrProtocolNotFound,
	ErrProtocolDuplicate,
	ErrTransportUnknown,
	ErrSinkWrite,
	ErrShortRead,
	ErrParameterInvalid,
	ErrWorkloadInvalid,
}

type caladanError struct {
	msg       string
	detail    string
	retriable bool
	errCode   int32
}

func newCaladanError(msg string, code int32, retriable bool) caladanError {
	return caladanError{
		msg:       msg,
		detail:    msg,
		retriable: retriable,
		errCode:   code,
	}
}

func (e caladanError) code() int32 {
	return e.errCode
}

func (e caladanError) Error() string {
	return e.msg
}

func (e caladanError) Detail() string {
	return e.detail
}

func (e caladanError) Is(err error) bool {
	cause := errors.Cause(err)
	if cause, ok := cause.(caladanError); ok {
		return e.errCode == cause.errCode
	}
	return false
}

type multiErrors struct {
	errs []error
}

func (e multiErrors) Unwrap() error {
	if len(e.errs) <= 1 {
		return nil
	}
	// To make merr work for multi errors,
	// we need cause of multi errors, which defined as the last error
	if len(e.errs) == 2 {
		return e.errs[1]
	}

	return multiErrors{
		errs: e.errs[1:],
	}
}

func (e multiErrors) Error() string {
	final := e.errs[0]
	for i := 1; i < len(e.errs); i++ {
		final = errors.Wrap(e.errs[i], final.Error())
	}
	return final.Error()
}

func (e multiErrors) Is(err error) bool {
	for _, item := range e.errs {
		if errors.Is(item, err) {
			return true
		}
	}
	return false
}

func Combine(errs ...error) error {
	errs = lo.Filter(errs, func(err error, _ int) bool { return err != nil })
	if len(errs) == 0 {
		return nil
	}
	return multiErrors{
		errs,
	}
}
