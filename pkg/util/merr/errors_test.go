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
	"io"
	"os"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/suite"
)

type ErrSuite struct {
	suite.Suite
}

func (s *ErrSuite) TestCode() {
	err := WrapErrProtocolNotFound("synthetic")
	errors.Wrap(err, "failed to build protocol")
	s.ErrorIs(err, ErrProtocolNotFound)
	s.Equal(Code(ErrProtocolNotFound), Code(err))
	s.Equal(TimeoutCode, Code(context.DeadlineExceeded))
	s.Equal(CanceledCode, Code(context.Canceled))
	s.Equal(errUnexpected.errCode, Code(errUnexpected))

	sameCodeErr := newCaladanError("new error", ErrProtocolNotFound.errCode, false)
	s.True(sameCodeErr.Is(ErrProtocolNotFound))
}

func (s *ErrSuite) TestMarkKeepsCause() {
	err := WrapErrShortRead(io.ErrUnexpectedEOF, "read response")

	s.ErrorIs(err, ErrShortRead)
	s.ErrorIs(err, io.ErrUnexpectedEOF)
	s.Equal(ErrShortRead.errCode, Code(err))
	s.True(IsRetriable(err))

	err = WrapErrSinkWrite(os.ErrClosed)
	s.ErrorIs(err, ErrSinkWrite)
	s.ErrorIs(err, os.ErrClosed)
	s.Equal(ErrSinkWrite.errCode, Code(err))
}

func (s *ErrSuite) TestWrap() {
	// Protocol plug-in related
	s.ErrorIs(WrapErrProtocolNotFound("memcached", "failed to build"), ErrProtocolNotFound)
	s.ErrorIs(WrapErrTransportUnknown("rdma", "failed to parse"), ErrTransportUnknown)

	// Wire related
	s.ErrorIs(WrapErrSinkWrite(os.ErrClosed, "gen request"), ErrSinkWrite)
	s.ErrorIs(WrapErrShortRead(io.EOF, "read response"), ErrShortRead)
	s.NoError(WrapErrSinkWrite(nil))
	s.NoError(WrapErrShortRead(nil))

	// Parameter related
	s.ErrorIs(WrapErrParameterInvalid(16, 8, "scratch too small"), ErrParameterInvalid)
	s.ErrorIs(WrapErrParameterInvalidMsg("scratch buffer of %d bytes", 8), ErrParameterInvalid)
	s.ErrorIs(WrapErrWorkloadInvalid(errors.New("bad json"), "parse workload"), ErrWorkloadInvalid)
}

func (s *ErrSuite) TestRetriable() {
	s.True(IsRetriable(ErrShortRead))
	s.True(IsRetriable(ErrSinkWrite))
	s.False(IsRetriable(ErrProtocolNotFound))
	s.False(IsRetriable(nil))
	s.False(IsRetriable(errors.New("plain")))
}

func (s *ErrSuite) TestCombine() {
	var (
		errFirst  = errors.New("first")
		errSecond = errors.New("second")
		errThird  = errors.New("third")
	)

	err := Combine(errFirst, errSecond)
	s.True(errors.Is(err, errFirst))
	s.True(errors.Is(err, errSecond))
	s.False(errors.Is(err, errThird))

	s.Equal("first: second", err.Error())
}

func (s *ErrSuite) TestCombineWithNil() {
	err := errors.New("non-nil")

	err = Combine(nil, err)
	s.NotNil(err)
}

func (s *ErrSuite) TestCombineOnlyNil() {
	err := Combine(nil, nil)
	s.Nil(err)
}

func (s *ErrSuite) TestCombineCode() {
	err := Combine(WrapErrTransportUnknown("rdma"), WrapErrProtocolNotFound("synthetic"))
	s.Equal(Code(ErrProtocolNotFound), Code(err))
}

func TestErrors(t *testing.T) {
	suite.Run(t, new(ErrSuite))
}
