package protocol_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Mutinifni/caladan/internal/protocol"
	"github.com/Mutinifni/caladan/internal/protocol/synthetic"
	"github.com/Mutinifni/caladan/pkg/log"
	"github.com/Mutinifni/caladan/pkg/util/merr"
)

// stubProtocol 是仅用于注册表测试的协议变体：请求为单字节序号。
type stubProtocol struct{}

func (stubProtocol) GenReq(i uint64, _ *protocol.Workload, w io.Writer) error {
	_, err := w.Write([]byte{byte(i)})
	return err
}

func (stubProtocol) ReadResponse(conn io.Reader, scratch []byte) (uint64, error) {
	if _, err := io.ReadFull(conn, scratch[:1]); err != nil {
		return 0, merr.WrapErrShortRead(err)
	}
	return uint64(scratch[0]), nil
}

type RegistrySuite struct {
	suite.Suite
}

func (s *RegistrySuite) SetupSuite() {
	logger, props, err := log.InitTestLogger(s.T(), &log.Config{Level: "debug"})
	s.Require().NoError(err)
	log.ReplaceGlobals(logger, props)
}

func (s *RegistrySuite) TestBuildSynthetic() {
	p, err := protocol.Build(synthetic.Name, nil, protocol.TransportTCP)
	s.NoError(err)
	s.NotNil(p)
}

func (s *RegistrySuite) TestBuildUnknown() {
	_, err := protocol.Build("no-such-protocol", nil, protocol.TransportTCP)
	s.Error(err)
	s.ErrorIs(err, merr.ErrProtocolNotFound)
}

func (s *RegistrySuite) TestRegisterAndBuild() {
	protocol.Register("stub-a", []string{"stub-flag"}, func(_ *protocol.Args, _ protocol.Transport) (protocol.Protocol, error) {
		return stubProtocol{}, nil
	})

	p, err := protocol.Build("stub-a", nil, protocol.TransportUDP)
	s.Require().NoError(err)

	var buf bytes.Buffer
	s.Require().NoError(p.GenReq(7, &protocol.Workload{}, &buf))

	scratch := make([]byte, 1)
	index, err := p.ReadResponse(&buf, scratch)
	s.Require().NoError(err)
	s.EqualValues(7, index)

	opts, ok := protocol.Options("stub-a")
	s.Require().True(ok)
	s.True(opts.Contain("stub-flag"))
	s.Equal(1, opts.Len())
}

func (s *RegistrySuite) TestRegisterDuplicatePanics() {
	build := func(_ *protocol.Args, _ protocol.Transport) (protocol.Protocol, error) {
		return stubProtocol{}, nil
	}

	protocol.Register("stub-dup", nil, build)
	s.Panics(func() {
		protocol.Register("stub-dup", nil, build)
	})
}

func (s *RegistrySuite) TestNamesSorted() {
	names := protocol.Names()
	s.Contains(names, synthetic.Name)
	for i := 1; i < len(names); i++ {
		s.Less(names[i-1], names[i])
	}
}

func (s *RegistrySuite) TestOptionsUnknown() {
	_, ok := protocol.Options("no-such-protocol")
	s.False(ok)
}

func (s *RegistrySuite) TestMarshalRequest() {
	p, err := protocol.Build(synthetic.Name, nil, protocol.TransportTCP)
	s.Require().NoError(err)

	wrk := &protocol.Workload{WorkIterations: 123}

	data, err := protocol.MarshalRequest(p, 9, wrk)
	s.Require().NoError(err)

	var want bytes.Buffer
	s.Require().NoError(p.GenReq(9, wrk, &want))
	s.Equal(want.Bytes(), data)
}

func TestRegistry(t *testing.T) {
	suite.Run(t, new(RegistrySuite))
}
