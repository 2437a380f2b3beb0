package json

import (
	"github.com/bytedance/sonic"
)

// api 使用与标准库 encoding/json 兼容的行为配置。
var api = sonic.ConfigStd

// Marshal 将任意对象编码为 JSON 字节序列。
func Marshal(v any) ([]byte, error) {
	return api.Marshal(v)
}

// Unmarshal 将 JSON 字节序列解码到目标对象。
// v 通常为指针类型，用于接收解码结果。
func Unmarshal(data []byte, v any) error {
	return api.Unmarshal(data, v)
}
