package program

import "github.com/heyfarai/simplyteams/pkg/txmanager"

// DBExecutor интерфейс для работы с БД (поддерживает *sql.DB и *sql.Tx)
type DBExecutor = txmanager.DBExecutor
