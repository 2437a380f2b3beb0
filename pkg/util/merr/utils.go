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
	"context"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// Code returns the error code of the given error.
// Marked errors (see the wire wrappers below) keep their original cause
// in the chain, so the lookup falls back to the mark when the cause is
// not a caladanError itself.
func Code(err error) int32 {
	if err == nil {
		return 0
	}

	cause := errors.Cause(err)
	switch specificErr := cause.(type) {
	case caladanError:
		return specificErr.code()

	default:
		if errors.Is(specificErr, context.Canceled) {
			return CanceledCode
		} else if errors.Is(specificErr, context.DeadlineExceeded) {
			return TimeoutCode
		}
	}

	for _, leaf := range leafErrors {
		if errors.Is(err, leaf) {
			return leaf.code()
		}
	}
	return errUnexpected.code()
}

func IsRetriable(err error) bool {
	if err == nil {
		return false
	}

	if cause, ok := errors.Cause(err).(caladanError); ok {
		return cause.retriable
	}

	for _, leaf := range leafErrors {
		if errors.Is(err, leaf) {
			return leaf.retriable
		}
	}
	return false
}

func IsCanceledOrTimeout(err error) bool {
	return errors.IsAny(err, context.Canceled, context.DeadlineExceeded)
}

// withCause attaches leaf to the chain of cause without discarding it:
// errors.Is reports true for both leaf and the underlying I/O error.
// The wire contract requires the I/O cause to stay observable.
func withCause(cause error, leaf caladanError, msg ...string) error {
	if cause == nil {
		return nil
	}
	err := errors.Join(leaf, cause)
	if len(msg) > 0 {
		err = errors.Wrap(err, strings.Join(msg, "->"))
	}
	return err
}

// Wire related

// WrapErrSinkWrite marks a failed write to the request byte sink.
// Returns nil when err is nil.
func WrapErrSinkWrite(err error, msg ...string) error {
	return withCause(err, ErrSinkWrite, msg...)
}

// WrapErrShortRead marks a connection that yielded fewer bytes than the
// fixed message length before closing or erroring.
// Returns nil when err is nil.
func WrapErrShortRead(err error, msg ...string) error {
	return withCause(err, ErrShortRead, msg...)
}

// Protocol plug-in related

func WrapErrProtocolNotFound(name string, msg ...string) error {
	err := wrapFields(ErrProtocolNotFound, value("protocol", name))
	if len(msg) > 0 {
		err = errors.Wrap(err, strings.Join(msg, "->"))
	}
	return err
}

func WrapErrProtocolDuplicate(name string, msg ...string) error {
	err := wrapFields(ErrProtocolDuplicate, value("protocol", name))
	if len(msg) > 0 {
		err = errors.Wrap(err, strings.Join(msg, "->"))
	}
	return err
}

func WrapErrTransportUnknown(name string, msg ...string) error {
	err := wrapFields(ErrTransportUnknown, value("transport", name))
	if len(msg) > 0 {
		err = errors.Wrap(err, strings.Join(msg, "->"))
	}
	return err
}

// Parameter related

func WrapErrParameterInvalid[T any](expected, actual T, msg ...string) error {
	err := wrapFields(ErrParameterInvalid,
		value("expected", expected),
		value("actual", actual),
	)
	if len(msg) > 0 {
		err = errors.Wrap(err, strings.Join(msg, "->"))
	}
	return err
}

func WrapErrParameterInvalidMsg(format string, args ...any) error {
	return errors.Wrapf(ErrParameterInvalid, format, args...)
}

func WrapErrWorkloadInvalid(err error, msg ...string) error {
	return withCause(err, ErrWorkloadInvalid, msg...)
}

func wrapFields(err caladanError, fields ...errorField) error {
	for i := range fields {
		err.msg += fmt.Sprintf("[%s]", fields[i].String())
	}
	err.detail = err.msg
	return err
}

type errorField interface {
	String() string
}

type valueField struct {
	name  string
	value any
}

func value(name string, value any) valueField {
	return valueField{
		name,
		value,
	}
}

func (f valueField) String() string {
	return fmt.Sprintf("%s=%v", f.name, f.value)
}
