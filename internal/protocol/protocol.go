package protocol

import (
	"io"

	"github.com/Mutinifni/caladan/pkg/util/viper"
)

// Args 承载 harness 解析完成的命令行选项，
// 在构造协议实例时原样传入，由各协议自行取用自己声明过的 key。
type Args = viper.Config

// Protocol 抽象了压测客户端的“单个探测协议”能力。
//
// 约定：
//   - 实现必须是无可变状态的策略对象，构造一次后可被多个
//     worker goroutine 并发使用，内部不需要任何加锁；
//   - 每次调用都是一次原子的编码或解码操作，没有中间状态；
//   - 响应中携带的请求序号是 harness 把异步响应与请求
//     对应起来（例如测量时延）的唯一机制；
//   - 任何 I/O 失败都原样上抛，重试与超时策略由 harness 决定。
type Protocol interface {
	// GenReq 依据工作负载描述生成第 i 个请求的完整字节序列并写入 w。
	//
	//   - i   ：由 harness 分配的从 0 开始的请求序号。编解码只负责
	//           原样往返该值，不假设其单调性；
	//   - wrk ：当前请求的工作负载描述，由 harness 按调用提供；
	//   - w   ：请求字节的目的地（通常为出站连接或暂存缓冲区）。
	//
	// 除底层写失败外不会出错。
	GenReq(i uint64, wrk *Workload, w io.Writer) error

	// ReadResponse 从 conn 中读取一条完整响应并返回其中携带的请求序号。
	//
	//   - conn    ：harness 持有的字节流连接，阻塞语义由 harness 的
	//               I/O 模型决定；
	//   - scratch ：调用方持有的临时缓冲区，同一缓冲区同一时刻只能
	//               被一个在途的 ReadResponse 使用。
	//
	// 连接在凑齐一条完整响应之前关闭或出错即为硬失败，
	// 不存在部分解析结果。
	ReadResponse(conn io.Reader, scratch []byte) (uint64, error)
}

// BuildFunc 基于 harness 解析好的命令行参数和选定的传输方式构造协议实例。
//
// args 与 tport 对不需要自身选项的协议（如 synthetic）可以被忽略；
// 构造出的实例会被所有 worker 共享，只读使用。
type BuildFunc func(args *Args, tport Transport) (Protocol, error)
