package main

import (
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/spf13/viper"

	"github.com/handup/handup-api/schema"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("handup")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	db, err := gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		panic(err)
	}

	if err := db.Exec(`CREATE SCHEMA IF NOT EXISTS handup`).Error; err != nil {
		panic(err)
	}

	if err := db.Exec("SET search_path TO handup").Error; err != nil {
		panic(err)
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		panic(err)
	}

	if err := db.AutoMigrate(
		&schema.Account{},
		&schema.Profile{},
		&schema.HelpRequest{},
		&schema.Notification{},
	).Error; err != nil {
		panic(err)
	}
}
