package synthetic

import (
	"encoding/binary"
	"io"

	"github.com/Mutinifni/caladan/pkg/util/merr"
)

// PayloadSize 为一条报文在线上的固定长度，单位字节。
const PayloadSize = 16

// Payload 是 synthetic 协议与服务端交换的唯一报文。
//
// 线上格式固定为 16 字节，没有长度前缀和分隔符，
// 两端需在带外约定该固定长度：
//
//	[0, 8)   work_iterations，大端无符号整型
//	[8, 16)  index，大端无符号整型
//
// 字节序固定为大端，这是线上兼容性约束，不可配置。
// Payload 本身没有独立的生命周期：编码前即时构造，解码后即时丢弃。
type Payload struct {
	WorkIterations uint64
	Index          uint64
}

// SerializeInto 将 Payload 按线上格式写入 w。
// 对任意字段取值都恰好产生 16 字节；唯一的失败场景是底层写失败，
// 此时返回携带原始 I/O 错误的 merr.ErrSinkWrite。
func (p Payload) SerializeInto(w io.Writer) error {
	var buf [PayloadSize]byte
	binary.BigEndian.PutUint64(buf[0:8], p.WorkIterations)
	binary.BigEndian.PutUint64(buf[8:16], p.Index)

	if _, err := w.Write(buf[:]); err != nil {
		return merr.WrapErrSinkWrite(err, "serialize payload")
	}
	return nil
}

// DeserializePayload 按 SerializeInto 的写出顺序从 r 中读取一个 Payload。
//
// 恰好消费 16 字节；r 在凑齐 16 字节之前结束或出错时返回携带
// 原始 I/O 错误的 merr.ErrShortRead，不会返回部分解析结果。
func DeserializePayload(r io.Reader) (Payload, error) {
	var buf [PayloadSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return Payload{}, merr.WrapErrShortRead(err, "deserialize payload")
	}

	return Payload{
		WorkIterations: binary.BigEndian.Uint64(buf[0:8]),
		Index:          binary.BigEndian.Uint64(buf[8:16]),
	}, nil
}
