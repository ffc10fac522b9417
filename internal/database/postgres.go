package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// pgxpoolNew 建立連線池，測試可覆寫此變數。
var pgxpoolNew = pgxpool.New

// NewPgxPool 建立資料庫連線池並以 DB 介面回傳
// 連線的取得與釋放皆由 pool 管理，呼叫端毋須逐一歸還
func NewPgxPool(ctx context.Context, url string) (DB, error) {
	pool, err := pgxpoolNew(ctx, url)
	if err != nil {
		return nil, err
	}
	return pool, nil
}
