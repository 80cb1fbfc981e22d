package iodb

import (
	"database/sql"
	"fmt"

	"github.com/enadata/consmeta/pkg/config"
	"github.com/godror/godror"
)

// newOracleOperator creates an operator for the archive's Oracle
// database. Client libraries are loaded from DatabaseConfig.ClientLibDir.
func newOracleOperator() *sqlOperator {
	return &sqlOperator{
		driver:      "oracle",
		placeholder: ":1",
		open:        openOracle,
	}
}

func openOracle(cfg *config.DatabaseConfig) (*sql.DB, string, error) {
	target := oracleConnectString(cfg)

	var params godror.ConnectionParams
	params.Username = cfg.User
	params.Password = godror.NewPassword(cfg.Password)
	params.ConnectString = target
	params.LibDir = cfg.ClientLibDir

	return sql.OpenDB(godror.NewConnector(params)), target, nil
}

// oracleConnectString builds an Easy Connect string host:port/service.
func oracleConnectString(cfg *config.DatabaseConfig) string {
	return fmt.Sprintf("%s:%d/%s", cfg.Host, cfg.Port, cfg.Service)
}
