package log

import (
	"go.uber.org/zap"
)

const (
	FieldNameModule    = "module"
	FieldNameProtocol  = "protocol"
	FieldNameTransport = "transport"
)

// FieldModule 返回一个包含模块名的 zap 字段。
func FieldModule(module string) zap.Field {
	return zap.String(FieldNameModule, module)
}

// FieldProtocol 返回一个包含协议名的 zap 字段。
func FieldProtocol(protocol string) zap.Field {
	return zap.String(FieldNameProtocol, protocol)
}

// FieldTransport 返回一个包含传输方式的 zap 字段。
func FieldTransport(transport string) zap.Field {
	return zap.String(FieldNameTransport, transport)
}

// FieldRequestIndex 返回一个包含请求序号的 zap 字段。
func FieldRequestIndex(index uint64) zap.Field {
	return zap.Uint64("request_index", index)
}
