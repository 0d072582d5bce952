package config

import (
	"database/sql"
	"errors"
	"fmt"
	"os"

	_ "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Config carrega tudo que o processo precisa para subir. Sem credenciais
// embutidas: valores obrigatórios ausentes derrubam o boot.
type Config struct {
	DBHost       string
	DBUser       string
	DBPassword   string
	DBName       string
	DBPort       string
	MasterDBName string
	JWTSecret    string
	Port         string
	GinMode      string
}

// Load lê a configuração do ambiente (.env já carregado pelo main).
func Load() (*Config, error) {
	cfg := &Config{
		DBHost:       os.Getenv("DB_HOST"),
		DBUser:       os.Getenv("DB_USER"),
		DBPassword:   os.Getenv("DB_PASSWORD"),
		DBName:       os.Getenv("DB_NAME"),
		DBPort:       os.Getenv("DB_PORT"),
		MasterDBName: os.Getenv("MASTER_DB_NAME"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		Port:         os.Getenv("PORT"),
		GinMode:      os.Getenv("GIN_MODE"),
	}

	if cfg.DBHost == "" || cfg.DBUser == "" || cfg.DBName == "" {
		return nil, errors.New("DB_HOST, DB_USER e DB_NAME são obrigatórios")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET é obrigatório")
	}
	if cfg.DBPort == "" {
		cfg.DBPort = "3306"
	}
	if cfg.MasterDBName == "" {
		cfg.MasterDBName = "barfesta_master"
	}
	if cfg.Port == "" {
		cfg.Port = "3001"
	}
	return cfg, nil
}

func (c *Config) dsn(database string) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, database)
}

// DSN retorna a string de conexão do banco principal.
func (c *Config) DSN() string {
	return c.dsn(c.DBName)
}

// MasterDSN retorna a string de conexão do banco mestre (registro de tenants).
func (c *Config) MasterDSN() string {
	return c.dsn(c.MasterDBName)
}

// InitDB abre o pool de conexões com o banco principal.
func InitDB(cfg *Config) (*gorm.DB, error) {
	return gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
}

// InitMasterDB abre o banco mestre, criando-o se ainda não existir.
func InitMasterDB(cfg *Config) (*gorm.DB, error) {
	admin, err := sql.Open("mysql", fmt.Sprintf("%s:%s@tcp(%s:%s)/",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort))
	if err != nil {
		return nil, err
	}
	defer admin.Close()

	stmt := fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s` CHARACTER SET utf8mb4", cfg.MasterDBName)
	if _, err := admin.Exec(stmt); err != nil {
		return nil, err
	}

	return gorm.Open(mysql.Open(cfg.MasterDSN()), &gorm.Config{})
}
