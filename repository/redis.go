// redis.go
package repository

import (
	"context"
	"fmt"
	"os"

	"github.com/go-redis/redis/v8"

	"go-splendor/entities"
)

// NewRedis 按环境变量连接 Redis，REDIS_ADDR 为空表示不启用
func NewRedis(ctx context.Context) (*redis.Client, error) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return nil, nil
	}
	redisDB := 0
	if dbEnv := os.Getenv("REDIS_DB"); dbEnv != "" {
		fmt.Sscanf(dbEnv, "%d", &redisDB)
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       redisDB,
	})
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("Redis 连接失败: %w", err)
	}
	return rdb, nil
}

// RoomIndex 大厅用的房间目录，挂在 Redis 上，掉了也不影响对局本身。
// key 结构沿用 room:<id>:info 的哈希。
type RoomIndex struct {
	rdb *redis.Client
}

func NewRoomIndex(rdb *redis.Client) *RoomIndex {
	if rdb == nil {
		return nil
	}
	return &RoomIndex{rdb: rdb}
}

func roomInfoKey(gameID string) string {
	return fmt.Sprintf("room:%s:info", gameID)
}

const roomSetKey = "rooms"

// Put 写入或刷新一条房间摘要
func (idx *RoomIndex) Put(ctx context.Context, summary entities.RoomSummary) error {
	if idx == nil {
		return nil
	}
	fields := map[string]interface{}{
		"gameId":      summary.GameID,
		"hostName":    summary.HostName,
		"playerCount": summary.PlayerCount,
		"state":       string(summary.State),
		"winnerId":    summary.WinnerID,
	}
	if err := idx.rdb.HSet(ctx, roomInfoKey(summary.GameID), fields).Err(); err != nil {
		return fmt.Errorf("写入房间信息失败: %w", err)
	}
	return idx.rdb.SAdd(ctx, roomSetKey, summary.GameID).Err()
}

// Delete 对局销毁时清掉目录项
func (idx *RoomIndex) Delete(ctx context.Context, gameID string) error {
	if idx == nil {
		return nil
	}
	if err := idx.rdb.Del(ctx, roomInfoKey(gameID)).Err(); err != nil {
		return fmt.Errorf("删除房间信息失败: %w", err)
	}
	return idx.rdb.SRem(ctx, roomSetKey, gameID).Err()
}

// List 拉取全部房间摘要
func (idx *RoomIndex) List(ctx context.Context) ([]entities.RoomSummary, error) {
	if idx == nil {
		return nil, nil
	}
	ids, err := idx.rdb.SMembers(ctx, roomSetKey).Result()
	if err != nil {
		return nil, fmt.Errorf("获取房间列表失败: %w", err)
	}
	out := make([]entities.RoomSummary, 0, len(ids))
	for _, id := range ids {
		m, err := idx.rdb.HGetAll(ctx, roomInfoKey(id)).Result()
		if err != nil || len(m) == 0 {
			continue
		}
		count := 0
		fmt.Sscanf(m["playerCount"], "%d", &count)
		out = append(out, entities.RoomSummary{
			GameID:      m["gameId"],
			HostName:    m["hostName"],
			PlayerCount: count,
			State:       entities.GameState(m["state"]),
			WinnerID:    m["winnerId"],
		})
	}
	return out, nil
}
