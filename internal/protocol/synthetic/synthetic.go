package synthetic

import (
	"bytes"
	"io"

	"github.com/Mutinifni/caladan/internal/protocol"
	"github.com/Mutinifni/caladan/pkg/metrics"
	"github.com/Mutinifni/caladan/pkg/util/merr"
)

// Name 为该协议在注册表中的名字。
const Name = "synthetic"

// Protocol 实现 synthetic 压测协议：请求与响应均为 16 字节 Payload，
// 服务端执行 work_iterations 次工作后在响应中原样回传请求序号。
//
// Protocol 不持有任何可变状态，单个实例可被多个 goroutine 并发使用；
// 每条连接的 scratch 缓冲区由调用方独占。
type Protocol struct{}

// 编译期断言：确保 Protocol 实现了 protocol.Protocol 接口。
var _ protocol.Protocol = Protocol{}

func init() {
	// synthetic 协议没有自身的命令行选项。
	protocol.Register(Name, nil, New)
}

// New 基于 harness 解析好的参数和选定的传输方式构造协议实例。
// 两个入参在该协议变体中均被忽略，构造永不失败。
func New(_ *protocol.Args, _ protocol.Transport) (protocol.Protocol, error) {
	return Protocol{}, nil
}

// GenReq 实现 protocol.Protocol.GenReq。
func (Protocol) GenReq(i uint64, wrk *protocol.Workload, w io.Writer) error {
	p := Payload{
		WorkIterations: wrk.WorkIterations,
		Index:          i,
	}
	if err := p.SerializeInto(w); err != nil {
		return err
	}

	metrics.RequestsEncoded.WithLabelValues(Name).Inc()
	metrics.RequestBytes.WithLabelValues(Name).Add(PayloadSize)
	return nil
}

// ReadResponse 实现 protocol.Protocol.ReadResponse。
//
// 从 conn 中读满 scratch 的前 16 字节后解码，返回响应携带的请求序号。
// 序号不会与在途请求集合做任何比对，匹配由 harness 负责。
func (Protocol) ReadResponse(conn io.Reader, scratch []byte) (uint64, error) {
	if len(scratch) < PayloadSize {
		metrics.DecodeFailures.WithLabelValues(Name, metrics.ReasonBadScratch).Inc()
		return 0, merr.WrapErrParameterInvalid(PayloadSize, len(scratch), "scratch buffer too small")
	}

	if _, err := io.ReadFull(conn, scratch[:PayloadSize]); err != nil {
		metrics.DecodeFailures.WithLabelValues(Name, metrics.ReasonShortRead).Inc()
		return 0, merr.WrapErrShortRead(err, "read response")
	}

	p, err := DeserializePayload(bytes.NewReader(scratch[:PayloadSize]))
	if err != nil {
		return 0, err
	}

	metrics.ResponsesDecoded.WithLabelValues(Name).Inc()
	metrics.ResponseBytes.WithLabelValues(Name).Add(PayloadSize)
	return p.Index, nil
}
