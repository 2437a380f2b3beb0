package viper

import (
	"path/filepath"

	spfviper "github.com/spf13/viper"
)

// Config 封装 spf13/viper 实例，对外提供精简的配置读取接口。
//
// 在压测场景下它承担两种职责：
//   - 从 YAML/JSON 配置文件加载压测配置；
//   - 承载 harness 解析完成的命令行选项（FromMap），
//     并原样传递给各协议插件的构造函数。
type Config struct {
	v *spfviper.Viper
}

// New 创建一个空的 Config。
// 在调用 Unmarshal/UnmarshalKey 之前需要先调用 LoadFile 或 FromMap 填充配置。
func New() *Config {
	return &Config{
		v: spfviper.New(),
	}
}

// FromMap 基于给定键值对创建 Config。
// 主要用于 harness 把解析好的命令行选项传递给协议插件。
func FromMap(values map[string]any) *Config {
	cfg := New()
	for key, val := range values {
		cfg.v.Set(key, val)
	}
	return cfg
}

// LoadFile 将 YAML 或 JSON 配置文件加载到 Config 中。
// 文件类型通过扩展名（.yaml/.yml/.json）推断。
func (c *Config) LoadFile(path string) error {
	if c.v == nil {
		c.v = spfviper.New()
	}

	c.v.SetConfigFile(path)

	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		c.v.SetConfigType("yaml")
	case ".json":
		c.v.SetConfigType("json")
	default:
		// 让 viper 自行推断类型，或在读取时返回清晰的错误信息。
	}

	return c.v.ReadInConfig()
}

// IsSet 判断指定 key 是否被显式设置过。
func (c *Config) IsSet(key string) bool {
	if c == nil || c.v == nil {
		return false
	}
	return c.v.IsSet(key)
}

// GetString 返回指定 key 的字符串值，未设置时返回空字符串。
func (c *Config) GetString(key string) string {
	if c == nil || c.v == nil {
		return ""
	}
	return c.v.GetString(key)
}

// GetUint64 返回指定 key 的 uint64 值，未设置时返回 0。
func (c *Config) GetUint64(key string) uint64 {
	if c == nil || c.v == nil {
		return 0
	}
	return c.v.GetUint64(key)
}

// GetBool 返回指定 key 的布尔值，未设置时返回 false。
func (c *Config) GetBool(key string) bool {
	if c == nil || c.v == nil {
		return false
	}
	return c.v.GetBool(key)
}

// Unmarshal 将完整配置反序列化到 dst。
// dst 应为结构体或 map 的指针。
func (c *Config) Unmarshal(dst interface{}) error {
	if c == nil || c.v == nil {
		return nil
	}
	return c.v.Unmarshal(dst)
}

// UnmarshalKey 将指定 key 对应的子配置反序列化到 dst。
// dst 应为结构体或 map 的指针。
func (c *Config) UnmarshalKey(key string, dst interface{}) error {
	if c == nil || c.v == nil {
		return nil
	}
	return c.v.UnmarshalKey(key, dst)
}
