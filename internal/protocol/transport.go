package protocol

import (
	"strings"

	"github.com/Mutinifni/caladan/pkg/util/merr"
)

// Transport 标识 harness 为协议选定的传输方式。
//
// 协议层只把它当作一个标签：连接的建立、关闭以及具体的收发
// 都由 harness 负责，协议变体可以据此微调报文生成策略
//（synthetic 协议对两种传输方式的报文完全一致）。
type Transport int

const (
	TransportTCP Transport = iota
	TransportUDP
)

func (t Transport) String() string {
	switch t {
	case TransportTCP:
		return "tcp"
	case TransportUDP:
		return "udp"
	default:
		return "unknown"
	}
}

// ParseTransport 解析传输方式名字，大小写不敏感。
func ParseTransport(s string) (Transport, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tcp":
		return TransportTCP, nil
	case "udp":
		return TransportUDP, nil
	default:
		return 0, merr.WrapErrTransportUnknown(s, "parse transport")
	}
}
