package repository

import (
	"errors"

	"github.com/bookie/bookie_server/internal/models"

	"github.com/go-sql-driver/mysql"
)

// mysqlDuplicateEntry MySQLの一意制約違反エラーコード
const mysqlDuplicateEntry = 1062

// translateDBError データベースエラーをドメインエラーに変換
func translateDBError(err error) error {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
		return &models.ConstraintViolation{Message: "一意制約に違反しています: " + mysqlErr.Message}
	}
	return err
}
