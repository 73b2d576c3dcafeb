package configs

import (
	"fmt"
	"os"
	"sync"
	"time"

	rlog "github.com/lestrrat-go/file-rotatelogs"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var (
	globalConfig GlobalConfig
	once         sync.Once
)

type GlobalConfig struct {
	AppConfig        AppConf        `yaml:"app" mapstructure:"app"`
	LogConfig        LogConf        `yaml:"log" mapstructure:"log"`
	DbConfig         DbConf         `yaml:"db" mapstructure:"db"`
	ScheduleConfig   ScheduleConf   `yaml:"scheduler" mapstructure:"scheduler"`
	ChaoConfig       ChaoConf       `yaml:"chao" mapstructure:"chao"`
	CredentialConfig CredentialConf `yaml:"credential" mapstructure:"credential"`
}

type AppConf struct {
	AppName string `yaml:"app_name" mapstructure:"app_name"`
	Version string `yaml:"version" mapstructure:"version"`
	Port    int    `yaml:"port" mapstructure:"port"`
	RunMod  string `yaml:"run_mod" mapstructure:"run_mod"`
}

type LogConf struct {
	LogPattern string `yaml:"log_pattern" mapstructure:"log_pattern"`
	LogPath    string `yaml:"log_path" mapstructure:"log_path"`
	SaveDays   uint   `yaml:"save_days" mapstructure:"save_days"`
	Level      string `yaml:"level" mapstructure:"level"`
}

type DbConf struct {
	Driver      string `yaml:"driver" mapstructure:"driver"`
	Host        string `yaml:"host" mapstructure:"host"`
	Port        int    `yaml:"port" mapstructure:"port"`
	User        string `yaml:"user" mapstructure:"user"`
	Password    string `yaml:"password" mapstructure:"password"`
	Dbname      string `yaml:"dbname" mapstructure:"db_name"`
	SqlitePath  string `yaml:"sqlite_path" mapstructure:"sqlite_path"`
	MaxIdleConn int    `yaml:"max_idle_conn" mapstructure:"max_idle_conn"`
	MaxOpenConn int    `yaml:"max_open_conn" mapstructure:"max_open_conn"`
	MaxIdleTime int    `yaml:"max_idle_time" mapstructure:"max_idle_time"`
}

type ScheduleConf struct {
	TickSecond int `yaml:"tick_second" mapstructure:"tick_second"`
}

// ChaoConf carries the gameplay tuning knobs: cocoon countdown, the vital
// decay table and the hatch vitals. Unset fields fall back to the built-in
// values in internal/constant.
type ChaoConf struct {
	CocoonSeconds int `yaml:"cocoon_seconds" mapstructure:"cocoon_seconds"`

	BellyDecayMinutes     int `yaml:"belly_decay_minutes" mapstructure:"belly_decay_minutes"`
	HappinessDecayMinutes int `yaml:"happiness_decay_minutes" mapstructure:"happiness_decay_minutes"`
	EnergyDecayMinutes    int `yaml:"energy_decay_minutes" mapstructure:"energy_decay_minutes"`
	HPDecayMinutes        int `yaml:"hp_decay_minutes" mapstructure:"hp_decay_minutes"`

	HatchBelly     int `yaml:"hatch_belly" mapstructure:"hatch_belly"`
	HatchHappiness int `yaml:"hatch_happiness" mapstructure:"hatch_happiness"`
	HatchEnergy    int `yaml:"hatch_energy" mapstructure:"hatch_energy"`
	HatchHP        int `yaml:"hatch_hp" mapstructure:"hatch_hp"`
}

type CredentialConf struct {
	Token string `yaml:"token" mapstructure:"token"`
}

func GetGlobalConfig() *GlobalConfig {
	once.Do(readConf)
	return &globalConfig
}

func readConf() {
	setDefaults()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		// No config file means an embedded run (tests, first boot): keep the
		// sqlite/stdout defaults instead of failing.
		fmt.Println("read config failed, using defaults: " + err.Error())
	}
	if err := viper.Unmarshal(&globalConfig); err != nil {
		panic("unmarshal config error " + err.Error())
	}
}

func setDefaults() {
	viper.SetDefault("app.app_name", "chao_bot")
	viper.SetDefault("app.port", 8080)
	viper.SetDefault("app.run_mod", "release")
	viper.SetDefault("log.log_pattern", "stdout")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.save_days", 7)
	viper.SetDefault("db.driver", "sqlite")
	viper.SetDefault("db.sqlite_path", "file::memory:?cache=shared")
	viper.SetDefault("db.max_idle_conn", 4)
	viper.SetDefault("db.max_open_conn", 16)
	viper.SetDefault("db.max_idle_time", 300)
	viper.SetDefault("scheduler.tick_second", 60)
	viper.SetDefault("chao.cocoon_seconds", 60)
	viper.SetDefault("chao.belly_decay_minutes", 180)
	viper.SetDefault("chao.happiness_decay_minutes", 240)
	viper.SetDefault("chao.energy_decay_minutes", 240)
	viper.SetDefault("chao.hp_decay_minutes", 720)
	viper.SetDefault("chao.hatch_belly", 5)
	viper.SetDefault("chao.hatch_happiness", 10)
	viper.SetDefault("chao.hatch_energy", 10)
	viper.SetDefault("chao.hatch_hp", 10)
}

func InitGlobalConfig() {
	config := GetGlobalConfig()
	level, err := log.ParseLevel(config.LogConfig.Level)
	if err != nil {
		panic("parse log level error " + err.Error())
	}
	log.SetFormatter(&logFormatter{
		TextFormatter: log.TextFormatter{
			DisableColors:   true,
			TimestampFormat: "2006-01-02 15:04:05",
			FullTimestamp:   true,
		},
	})

	log.SetReportCaller(true)
	log.SetLevel(level)
	switch globalConfig.LogConfig.LogPattern {
	case "stdout":
		log.SetOutput(os.Stdout)
	case "stderr":
		log.SetOutput(os.Stderr)
	case "file":
		logger, err := rlog.New(
			config.LogConfig.LogPath+".%Y%m%d",
			rlog.WithRotationTime(time.Hour*24),
			rlog.WithRotationCount(config.LogConfig.SaveDays))
		if err != nil {
			panic("log conf err" + err.Error())
		}
		log.SetOutput(logger)
	default:
		panic("log init err")
	}
}
