package util

import (
	"path/filepath"
	"strings"
)

// 可识别的表格文件扩展名
var tabularExtensions = map[string]bool{
	".csv": true,
}

// IsTabularFile 按扩展名判断是否为可导入的表格文件
func IsTabularFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return tabularExtensions[ext]
}

// SafeFilename 归档前清洗文件名，只保留字母数字和 ._-
func SafeFilename(filename string) string {
	base := filepath.Base(filename)
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '_'
		}
	}, base)
}
