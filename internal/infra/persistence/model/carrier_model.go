package model

import (
	"github.com/google/uuid"
)

// CarrierModel is the GORM-specific struct for the 'app_transportadoras' table.
// Column names follow the spreadsheet the table is synchronized from.
type CarrierModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OriginCity      string    `gorm:"column:cidade_origem;type:varchar(255);not null;index:idx_app_transportadoras_origem"`
	OriginState     string    `gorm:"column:uf_origem;type:char(2);not null;index:idx_app_transportadoras_origem"`
	GroupName       string    `gorm:"column:nome_grupo;type:varchar(255)"`
	CarrierName     string    `gorm:"column:transportadora;type:varchar(255)"`
	Company         string    `gorm:"column:empresa;type:varchar(255)"`
	Contact         string    `gorm:"column:contato;type:varchar(255)"`
	HasLoaded       bool      `gorm:"column:ja_carregamos;not null;default:false"`
	HasRegistration bool      `gorm:"column:temos_cadastro;not null;default:false"`
	Product         string    `gorm:"column:produto;type:varchar(255)"`
	Price           float64   `gorm:"column:preco;type:decimal(12,2)"`
	Latitude        *float64  `gorm:"column:latitude;type:decimal(10,8)"`
	Longitude       *float64  `gorm:"column:longitude;type:decimal(11,8)"`
}

// TableName explicitly sets the table name for GORM.
func (CarrierModel) TableName() string {
	return "app_transportadoras"
}

// CarrierColumns lists every column the carrier store must expose.
var CarrierColumns = []string{
	"id",
	"cidade_origem",
	"uf_origem",
	"nome_grupo",
	"transportadora",
	"empresa",
	"contato",
	"ja_carregamos",
	"temos_cadastro",
	"produto",
	"preco",
	"latitude",
	"longitude",
}
