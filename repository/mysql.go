package repository

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// NewMySQL 按环境变量连接 MySQL，MYSQL_DSN 为空表示不启用归档
func NewMySQL(ctx context.Context) (*sql.DB, error) {
	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		return nil, nil
	}
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("MySQL 打开失败: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("MySQL 连接失败: %w", err)
	}
	return db, nil
}

// Archive 结束对局的归档表，只追加不修改
type Archive struct {
	db *sql.DB
}

func NewArchive(ctx context.Context, db *sql.DB) (*Archive, error) {
	if db == nil {
		return nil, nil
	}
	const ddl = `CREATE TABLE IF NOT EXISTS game_results (
		id           BIGINT AUTO_INCREMENT PRIMARY KEY,
		game_id      VARCHAR(64)  NOT NULL,
		winner_id    VARCHAR(64)  NOT NULL DEFAULT '',
		winner_name  VARCHAR(128) NOT NULL DEFAULT '',
		points       INT          NOT NULL DEFAULT 0,
		player_count INT          NOT NULL,
		finished_at  DATETIME     NOT NULL
	)`
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return nil, fmt.Errorf("建归档表失败: %w", err)
	}
	return &Archive{db: db}, nil
}

// GameResult 一局的最终结果
type GameResult struct {
	GameID      string
	WinnerID    string
	WinnerName  string
	Points      int
	PlayerCount int
	FinishedAt  time.Time
}

func (a *Archive) SaveResult(ctx context.Context, r GameResult) error {
	if a == nil {
		return nil
	}
	const q = `INSERT INTO game_results
		(game_id, winner_id, winner_name, points, player_count, finished_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	if _, err := a.db.ExecContext(ctx, q,
		r.GameID, r.WinnerID, r.WinnerName, r.Points, r.PlayerCount, r.FinishedAt); err != nil {
		return fmt.Errorf("写入对局结果失败: %w", err)
	}
	return nil
}
