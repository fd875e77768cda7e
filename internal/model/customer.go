package model

import "gorm.io/gorm"

type Customer struct {
	gorm.Model
	FirstName string `gorm:"column:first_name;not null"`
	LastName  string `gorm:"column:last_name;not null"`
	Email     string `gorm:"column:email;unique;not null"`
	Phone     string `gorm:"column:phone"`
	City      string `gorm:"column:city;index"`
	Active    bool   `gorm:"column:active;default:true;not null"`
}

var (
	CustomerFilterable = []string{"first_name", "last_name", "email", "city", "active"}
	CustomerSortable   = []string{"first_name", "last_name", "city", "created_at"}
)
