package services

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"

	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/alesxandro/barfesta-app/database"
	"github.com/alesxandro/barfesta-app/models"
	"github.com/alesxandro/barfesta-app/utils"
)

var (
	ErrTenantExists     = errors.New("Banco de dados já cadastrado")
	ErrInvalidDBName    = errors.New("Nome do banco inválido")
	ErrProvisionFailure = errors.New("Erro ao provisionar instalação")
)

// Identificadores não podem ser parametrizados em DDL; só aceitamos nomes
// simples.
var dbNamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// TenantConfig são as coordenadas do banco isolado de uma instalação.
type TenantConfig struct {
	Name       string
	DBName     string
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     int
}

// TenantProvisioner cria o banco de um novo tenant, aplica o esquema fixo e
// registra as coordenadas no banco mestre. DDL no MySQL não é transacional,
// então a falha em qualquer passo dispara um DROP DATABASE compensatório.
//
// AdminExec, OpenTenant e Schema são campos para os testes trocarem o MySQL
// real por SQLite.
type TenantProvisioner struct {
	Master     *gorm.DB
	Schema     []string
	AdminExec  func(cfg TenantConfig, stmt string) error
	OpenTenant func(cfg TenantConfig) (*gorm.DB, error)
}

func NewTenantProvisioner(master *gorm.DB) *TenantProvisioner {
	return &TenantProvisioner{
		Master:     master,
		Schema:     database.SchemaStatements(),
		AdminExec:  mysqlAdminExec,
		OpenTenant: mysqlOpenTenant,
	}
}

// mysqlAdminExec roda um statement de nível de servidor (CREATE/DROP
// DATABASE), conectando sem schema padrão.
func mysqlAdminExec(cfg TenantConfig, stmt string) error {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/", cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort)
	conn, err := sql.Open("mysql", dsn)
	if err != nil {
		return err
	}
	defer conn.Close()

	_, err = conn.Exec(stmt)
	return err
}

func mysqlOpenTenant(cfg TenantConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)
	return gorm.Open(gormmysql.Open(dsn), &gorm.Config{})
}

// Provision executa o bootstrap completo de uma instalação e devolve o
// registro gravado no banco mestre.
func (tp *TenantProvisioner) Provision(cfg TenantConfig) (*models.Tenant, error) {
	if !dbNamePattern.MatchString(cfg.DBName) {
		return nil, ErrInvalidDBName
	}

	// Registro central; a tabela nasce no primeiro provisionamento.
	if err := tp.Master.AutoMigrate(&models.Tenant{}); err != nil {
		utils.ErrorLogger.Printf("Erro ao preparar registro de tenants: %v", err)
		return nil, ErrProvisionFailure
	}

	var count int64
	tp.Master.Model(&models.Tenant{}).Where("db_name = ?", cfg.DBName).Count(&count)
	if count > 0 {
		return nil, ErrTenantExists
	}

	createStmt := fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s` CHARACTER SET utf8mb4", cfg.DBName)
	if err := tp.AdminExec(cfg, createStmt); err != nil {
		utils.ErrorLogger.Printf("Erro ao criar banco %s: %v", cfg.DBName, err)
		return nil, ErrProvisionFailure
	}

	tenantDB, err := tp.OpenTenant(cfg)
	if err != nil {
		tp.dropDatabase(cfg)
		utils.ErrorLogger.Printf("Erro ao conectar no banco %s: %v", cfg.DBName, err)
		return nil, ErrProvisionFailure
	}

	for _, stmt := range tp.Schema {
		if err := tenantDB.Exec(stmt).Error; err != nil {
			tp.dropDatabase(cfg)
			utils.ErrorLogger.Printf("Erro ao aplicar esquema em %s: %v", cfg.DBName, err)
			return nil, ErrProvisionFailure
		}
	}

	if err := database.SeedAdminUser(tenantDB); err != nil {
		tp.dropDatabase(cfg)
		utils.ErrorLogger.Printf("Erro ao criar usuário admin em %s: %v", cfg.DBName, err)
		return nil, ErrProvisionFailure
	}

	tenant := &models.Tenant{
		Name:       cfg.Name,
		DBName:     cfg.DBName,
		DBHost:     cfg.DBHost,
		DBUser:     cfg.DBUser,
		DBPassword: cfg.DBPassword,
		DBPort:     cfg.DBPort,
	}
	if err := tp.Master.Create(tenant).Error; err != nil {
		tp.dropDatabase(cfg)
		utils.ErrorLogger.Printf("Erro ao registrar tenant %s: %v", cfg.Name, err)
		return nil, ErrProvisionFailure
	}

	utils.InfoLogger.Printf("Tenant %s provisionado (banco=%s, host=%s)", cfg.Name, cfg.DBName, cfg.DBHost)
	return tenant, nil
}

func (tp *TenantProvisioner) dropDatabase(cfg TenantConfig) {
	stmt := fmt.Sprintf("DROP DATABASE IF EXISTS `%s`", cfg.DBName)
	if err := tp.AdminExec(cfg, stmt); err != nil {
		utils.ErrorLogger.Printf("Erro ao desfazer banco %s: %v", cfg.DBName, err)
	}
}
