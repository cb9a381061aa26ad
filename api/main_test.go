package api

import (
	"os"
	"testing"

	"github.com/spf13/viper"

	"github.com/handup/handup-api/utils"
)

func TestMain(m *testing.M) {
	viper.Set("i18n.dir", "../i18n")
	utils.InitI18NBundle()

	os.Exit(m.Run())
}
