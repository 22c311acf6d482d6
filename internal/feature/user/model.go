package user

import (
	"time"

	"bankclients/internal/domain"
)

// UserModel db 数据源的表结构，地址/公司拍平成列
type UserModel struct {
	ID       int    `gorm:"primaryKey;autoIncrement:false"`
	Name     string `gorm:"size:128;not null"`
	Username string `gorm:"size:64"`
	Email    string `gorm:"size:255"`
	Phone    string `gorm:"size:64"`
	Website  string `gorm:"size:255"`

	Street  string `gorm:"size:255"`
	Suite   string `gorm:"size:64"`
	City    string `gorm:"size:128"`
	Zipcode string `gorm:"size:32"`
	GeoLat  string `gorm:"size:32"`
	GeoLng  string `gorm:"size:32"`

	CompanyName        string `gorm:"size:128"`
	CompanyCatchPhrase string `gorm:"size:255"`
	CompanyBS          string `gorm:"column:company_bs;size:255"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (UserModel) TableName() string { return "users" }

// ToDomain 全空的地址/公司映射为 nil
func (m UserModel) ToDomain() domain.User {
	u := domain.User{
		ID:       m.ID,
		Name:     m.Name,
		Username: m.Username,
		Email:    m.Email,
		Phone:    m.Phone,
		Website:  m.Website,
	}
	if m.Street != "" || m.Suite != "" || m.City != "" || m.Zipcode != "" || m.GeoLat != "" || m.GeoLng != "" {
		u.Address = &domain.Address{Street: m.Street, Suite: m.Suite, City: m.City, Zipcode: m.Zipcode}
		if m.GeoLat != "" || m.GeoLng != "" {
			u.Address.Geo = &domain.Geo{Lat: m.GeoLat, Lng: m.GeoLng}
		}
	}
	if m.CompanyName != "" || m.CompanyCatchPhrase != "" || m.CompanyBS != "" {
		u.Company = &domain.Company{Name: m.CompanyName, CatchPhrase: m.CompanyCatchPhrase, BS: m.CompanyBS}
	}
	return u
}

func FromDomain(u domain.User) UserModel {
	m := UserModel{
		ID:       u.ID,
		Name:     u.Name,
		Username: u.Username,
		Email:    u.Email,
		Phone:    u.Phone,
		Website:  u.Website,
	}
	if a := u.Address; a != nil {
		m.Street, m.Suite, m.City, m.Zipcode = a.Street, a.Suite, a.City, a.Zipcode
		if a.Geo != nil {
			m.GeoLat, m.GeoLng = a.Geo.Lat, a.Geo.Lng
		}
	}
	if c := u.Company; c != nil {
		m.CompanyName, m.CompanyCatchPhrase, m.CompanyBS = c.Name, c.CatchPhrase, c.BS
	}
	return m
}
