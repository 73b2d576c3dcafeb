package gormcli

import (
	"fmt"
	"sync"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/nickshouse/Chao-Bot-sub000/configs"
)

var (
	db   *gorm.DB
	once sync.Once
)

func openDb() {
	dbConfig := configs.GetGlobalConfig().DbConfig

	var err error
	switch dbConfig.Driver {
	case "sqlite":
		db, err = gorm.Open(sqlite.Open(dbConfig.SqlitePath), &gorm.Config{})
	default:
		connArgs := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			dbConfig.User, dbConfig.Password, dbConfig.Host, dbConfig.Port, dbConfig.Dbname)
		db, err = gorm.Open(mysql.Open(connArgs), &gorm.Config{})
	}
	if err != nil {
		panic(fmt.Sprintf("connect database error: %s", err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		panic(fmt.Sprintf("fetch database error: %s", err))
	}
	sqlDB.SetMaxIdleConns(dbConfig.MaxIdleConn)
	sqlDB.SetMaxOpenConns(dbConfig.MaxOpenConn)
	sqlDB.SetConnMaxLifetime(time.Duration(dbConfig.MaxIdleTime) * time.Second)
}

func GetDb() *gorm.DB {
	once.Do(openDb)
	return db
}
