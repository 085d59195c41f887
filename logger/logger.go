package logger

import "go.uber.org/zap"

// New 构建进程级 logger；GIN_MODE=release 时用生产配置
func New(release bool) (*zap.Logger, error) {
	if release {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
