package protocol

import (
	"github.com/Mutinifni/caladan/internal/json"
	"github.com/Mutinifni/caladan/pkg/util/merr"
)

// Workload 描述一次请求要求服务端执行的工作量。
//
// 由 harness 按请求提供，协议层只读不改；WorkIterations 对协议层
// 是不透明的数值，其具体含义（自旋次数、访存次数等）由服务端解释。
type Workload struct {
	WorkIterations uint64 `json:"work_iterations" mapstructure:"work_iterations"`
}

// ParseWorkload 从 JSON 描述中解析工作负载。
// 供 harness 从配置文件加载压测档位时使用。
func ParseWorkload(data []byte) (*Workload, error) {
	var wrk Workload
	if err := json.Unmarshal(data, &wrk); err != nil {
		return nil, merr.WrapErrWorkloadInvalid(err, "parse workload descriptor")
	}
	return &wrk, nil
}
