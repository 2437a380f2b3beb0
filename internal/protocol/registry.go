package protocol

import (
	"sort"
	"sync"

	"github.com/samber/lo"

	"github.com/Mutinifni/caladan/pkg/log"
	"github.com/Mutinifni/caladan/pkg/util/merr"
	"github.com/Mutinifni/caladan/pkg/util/typeutil"
)

// registry 维护 “协议名 -> 构造函数 + 选项契约” 的映射。
//
// 协议变体在启动阶段通过 Register 注册（通常在各自包的 init 中），
// harness 再按名字使用 Build 选出其中一个。注册表只在启动阶段写入，
// 运行期间为只读，使用读写锁保证并发安全。
type registry struct {
	mu       sync.RWMutex
	builders map[string]BuildFunc
	options  map[string]typeutil.Set[string]
}

var global = &registry{
	builders: make(map[string]BuildFunc),
	options:  make(map[string]typeutil.Set[string]),
}

// Register 注册一个协议变体。
//
//   - name    ：协议名，harness 据此选择变体；
//   - options ：该协议识别的命令行选项 key（可为空）；
//   - build   ：协议构造函数。
//
// 重复注册同名协议属于接线错误，直接 panic。
func Register(name string, options []string, build BuildFunc) {
	global.mu.Lock()
	defer global.mu.Unlock()

	if _, ok := global.builders[name]; ok {
		panic(merr.WrapErrProtocolDuplicate(name, "register protocol"))
	}
	global.builders[name] = build
	global.options[name] = typeutil.NewSet(options...)
}

// Build 按名字构造协议实例。
// args 与 tport 会原样传给协议自身的构造函数。
func Build(name string, args *Args, tport Transport) (Protocol, error) {
	global.mu.RLock()
	build, ok := global.builders[name]
	global.mu.RUnlock()

	if !ok {
		return nil, merr.WrapErrProtocolNotFound(name, "build protocol")
	}

	p, err := build(args, tport)
	if err != nil {
		return nil, err
	}

	log.Debug("protocol built",
		log.FieldProtocol(name),
		log.FieldTransport(tport.String()))
	return p, nil
}

// Names 返回所有已注册协议名，按字典序排序。
func Names() []string {
	global.mu.RLock()
	defer global.mu.RUnlock()

	names := lo.Keys(global.builders)
	sort.Strings(names)
	return names
}

// Options 返回指定协议识别的命令行选项 key 集合。
// 第二个返回值表示该协议是否已注册。
func Options(name string) (typeutil.Set[string], bool) {
	global.mu.RLock()
	defer global.mu.RUnlock()

	opts, ok := global.options[name]
	if !ok {
		return nil, false
	}
	return opts.Clone(), true
}
