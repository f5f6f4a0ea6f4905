package repository

import "strings"

// IsMissingTable 判断错误是否由目标表尚未建立引起
//
// 库表由外部流水线在首次运行时建立，在那之前所有表都不存在。
// 读接口据此吞掉错误返回空值，写接口由上层映射为"未就绪"。
func IsMissingTable(err error) bool {
	return err != nil && strings.Contains(err.Error(), "no such table")
}
