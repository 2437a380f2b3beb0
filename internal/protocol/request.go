package protocol

import (
	"github.com/Mutinifni/caladan/internal/pool/bytebuffer"
)

// MarshalRequest 生成第 i 个请求并以新分配的切片返回其字节序列。
//
// 与直接调用 GenReq 等价，适合 harness 的发送路径需要持有
// 独立字节切片的场景；编码过程中的暂存缓冲区取自内部缓冲池。
func MarshalRequest(p Protocol, i uint64, wrk *Workload) ([]byte, error) {
	buf := bytebuffer.Get()
	defer bytebuffer.Put(buf)

	if err := p.GenReq(i, wrk, buf); err != nil {
		return nil, err
	}

	out := make([]byte, len(buf.B))
	copy(out, buf.B)
	return out, nil
}
