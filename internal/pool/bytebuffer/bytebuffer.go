package bytebuffer

import (
	"github.com/valyala/bytebufferpool"
)

// ByteBuffer 复用 valyala/bytebufferpool 的缓冲区类型。
// 通过 B 字段直接访问底层切片。
type ByteBuffer = bytebufferpool.ByteBuffer

// pool 为本项目内部共享的缓冲区池。
// 单独建池是为了避免与其它使用方的缓冲区大小分布互相干扰。
var pool bytebufferpool.Pool

// Get 从池中取出一个空的 ByteBuffer。
// 使用完毕后应调用 Put 归还。
func Get() *ByteBuffer {
	return pool.Get()
}

// Put 将 ByteBuffer 归还到池中。
// 归还后调用方不得再持有或访问该缓冲区。
func Put(b *ByteBuffer) {
	pool.Put(b)
}
