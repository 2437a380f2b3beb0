package protocol

import (
	"go.uber.org/atomic"
)

// Sequence 为出站请求分配从 0 开始单调递增的序号。
//
// 供 harness 在发送路径使用；协议编解码对序号没有单调性假设，
// 只负责原样往返任意 uint64 取值。零值即可用。
type Sequence struct {
	next atomic.Uint64
}

// Next 返回下一个请求序号，可被多个 goroutine 并发调用。
func (s *Sequence) Next() uint64 {
	return s.next.Add(1) - 1
}
