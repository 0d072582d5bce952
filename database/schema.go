package database

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/alesxandro/barfesta-app/models"
)

// Esquema aplicado em cada banco de tenant recém-criado. As colunas seguem
// exatamente os modelos GORM deste repositório.
const tenantSchema = `
CREATE TABLE IF NOT EXISTS users (
	id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	email VARCHAR(255) NOT NULL UNIQUE,
	password VARCHAR(255) NOT NULL,
	role VARCHAR(20) NOT NULL,
	active BOOLEAN NOT NULL DEFAULT TRUE,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
CREATE TABLE IF NOT EXISTS units (
	id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	address VARCHAR(255) NOT NULL,
	phone VARCHAR(30),
	active BOOLEAN NOT NULL DEFAULT TRUE,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
CREATE TABLE IF NOT EXISTS tables (
	id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
	unit_id BIGINT UNSIGNED NOT NULL,
	number INT NOT NULL,
	seats INT NOT NULL,
	status VARCHAR(20) NOT NULL DEFAULT 'disponível',
	active BOOLEAN NOT NULL DEFAULT TRUE,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL,
	FOREIGN KEY (unit_id) REFERENCES units(id)
);
CREATE TABLE IF NOT EXISTS product_categories (
	id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(100) NOT NULL UNIQUE,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
CREATE TABLE IF NOT EXISTS products (
	id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
	category_id BIGINT UNSIGNED NOT NULL,
	name VARCHAR(255) NOT NULL,
	description TEXT,
	price DECIMAL(10,2) NOT NULL,
	cost DECIMAL(10,2) NOT NULL,
	is_rental BOOLEAN NOT NULL DEFAULT FALSE,
	active BOOLEAN NOT NULL DEFAULT TRUE,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL,
	FOREIGN KEY (category_id) REFERENCES product_categories(id)
);
CREATE TABLE IF NOT EXISTS customers (
	id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	email VARCHAR(255),
	phone VARCHAR(30),
	address VARCHAR(255),
	document VARCHAR(30),
	notes TEXT,
	type VARCHAR(20),
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
CREATE TABLE IF NOT EXISTS orders (
	id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
	unit_id BIGINT UNSIGNED NOT NULL,
	table_id BIGINT UNSIGNED,
	customer_id BIGINT UNSIGNED,
	user_id BIGINT UNSIGNED NOT NULL,
	status VARCHAR(20) NOT NULL DEFAULT 'novo',
	total DECIMAL(10,2) NOT NULL DEFAULT 0.00,
	payment_status VARCHAR(20) NOT NULL DEFAULT 'pendente',
	payment_method VARCHAR(30),
	notes TEXT,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL,
	FOREIGN KEY (unit_id) REFERENCES units(id),
	FOREIGN KEY (customer_id) REFERENCES customers(id),
	FOREIGN KEY (user_id) REFERENCES users(id)
);
CREATE TABLE IF NOT EXISTS order_items (
	id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
	order_id BIGINT UNSIGNED NOT NULL,
	product_id BIGINT UNSIGNED NOT NULL,
	quantity INT NOT NULL,
	unit_price DECIMAL(10,2) NOT NULL,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL,
	FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE,
	FOREIGN KEY (product_id) REFERENCES products(id)
);
CREATE TABLE IF NOT EXISTS reservations (
	id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
	customer_id BIGINT UNSIGNED NOT NULL,
	date DATETIME NOT NULL,
	time_start VARCHAR(8) NOT NULL,
	time_end VARCHAR(8) NOT NULL,
	people INT NOT NULL,
	status VARCHAR(20) NOT NULL DEFAULT 'pendente',
	table_id BIGINT UNSIGNED,
	contact VARCHAR(50),
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL,
	FOREIGN KEY (customer_id) REFERENCES customers(id)
);
CREATE TABLE IF NOT EXISTS rentals (
	id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
	customer_id BIGINT UNSIGNED NOT NULL,
	event_date DATETIME NOT NULL,
	total DECIMAL(10,2) NOT NULL,
	status VARCHAR(20) NOT NULL DEFAULT 'pendente',
	payment_status VARCHAR(20) NOT NULL DEFAULT 'pendente',
	notes TEXT,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL,
	FOREIGN KEY (customer_id) REFERENCES customers(id)
)`

// SchemaStatements separa o script em statements individuais, executados em
// ordem pelo provisionador.
func SchemaStatements() []string {
	var statements []string
	for _, stmt := range strings.Split(tenantSchema, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		statements = append(statements, stmt)
	}
	return statements
}

// Credenciais iniciais de cada instalação; a senha deve ser trocada no
// primeiro acesso.
const (
	SeedAdminName     = "Administrador"
	SeedAdminEmail    = "admin@barfesta.com"
	SeedAdminPassword = "admin123"
)

// SeedAdminUser garante o usuário admin inicial no banco informado.
func SeedAdminUser(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).
		Where("email = ? AND role = ?", SeedAdminEmail, models.RoleAdmin).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(SeedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return db.Create(&models.User{
		Name:     SeedAdminName,
		Email:    SeedAdminEmail,
		Password: string(hashed),
		Role:     models.RoleAdmin,
		Active:   true,
	}).Error
}
