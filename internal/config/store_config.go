package config

const (
	userStoreVar = "USER_STORE"
	sqliteDSNVar = "SQLITE_DSN"

	UserStoreMemory = "memory"
	UserStoreSQLite = "sqlite"
)

type StoreConfig interface {
	GetUserStore() string
	GetSQLiteDSN() string
}

type Store struct{}

var _ StoreConfig = Store{}

// GetUserStore selects the credential store backend: "memory" or "sqlite".
func (Store) GetUserStore() string {
	return GetEnv(userStoreVar, UserStoreMemory)
}

func (Store) GetSQLiteDSN() string {
	return GetEnv(sqliteDSNVar, "file:users.db?_pragma=busy_timeout(5000)")
}
