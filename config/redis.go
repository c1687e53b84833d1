package config

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

var RedisClient *redis.Client

// InitRedis 初始化Redis客户端
// 未配置REDIS_HOST时跳过，此时因素目录缓存被禁用
func InitRedis(config Config) error {
	if config.RedisHost == "" {
		Logger.Infow("未配置Redis，因素目录缓存已禁用")
		return nil
	}

	RedisClient = redis.NewClient(&redis.Options{
		Addr:     config.GetRedisConnString(),
		Password: config.RedisPassword,
		DB:       config.RedisDB,
	})

	// 测试连接
	if _, err := RedisClient.Ping(context.Background()).Result(); err != nil {
		return fmt.Errorf("Redis连接测试失败: %v", err)
	}

	return nil
}
