// Package docstore 提供按集合名存取记录序列的文档存储。
// 每个集合整体序列化为一个JSON文档，键为集合名。
package docstore

import "context"

// Store 集合持久化接口。Load 在集合不存在时保持 out 的默认值不变、
// 不返回错误；调用方将持久化失败视为非致命（仅记录日志）。
type Store interface {
	// Load 读取集合并反序列化到 out（记录切片指针）
	Load(ctx context.Context, collection string, out interface{}) error
	// Save 用 records 整体替换集合
	Save(ctx context.Context, collection string, records interface{}) error
	// Close 释放底层连接
	Close() error
}
