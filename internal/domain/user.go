package domain

import (
	"context"
	"time"
)

// User 银行客户，字段与上游 JSON 一一对应
type User struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Username string   `json:"username,omitempty"`
	Email    string   `json:"email,omitempty"`
	Address  *Address `json:"address,omitempty"`
	Phone    string   `json:"phone,omitempty"`
	Website  string   `json:"website,omitempty"`
	Company  *Company `json:"company,omitempty"`
}

type Address struct {
	Street  string `json:"street,omitempty"`
	Suite   string `json:"suite,omitempty"`
	City    string `json:"city,omitempty"`
	Zipcode string `json:"zipcode,omitempty"`
	Geo     *Geo   `json:"geo,omitempty"`
}

type Geo struct {
	Lat string `json:"lat,omitempty"`
	Lng string `json:"lng,omitempty"`
}

type Company struct {
	Name        string `json:"name,omitempty"`
	CatchPhrase string `json:"catchPhrase,omitempty"`
	BS          string `json:"bs,omitempty"`
}

// Clone 深拷贝，地址/坐标/公司不与原值共享
func (u User) Clone() User {
	if u.Address != nil {
		a := *u.Address
		if a.Geo != nil {
			g := *a.Geo
			a.Geo = &g
		}
		u.Address = &a
	}
	if u.Company != nil {
		c := *u.Company
		u.Company = &c
	}
	return u
}

// CloneUsers nil 进 nil 出
func CloneUsers(users []User) []User {
	if users == nil {
		return nil
	}
	out := make([]User, len(users))
	for i, u := range users {
		out[i] = u.Clone()
	}
	return out
}

// CacheStats 内存缓存快照信息
type CacheStats struct {
	Size        int       `json:"size"`
	RefreshedAt time.Time `json:"refreshedAt"`
	Refreshes   int64     `json:"refreshes"`
	Failures    int64     `json:"failures"`
}

// UserDataSource 数据源（远端 HTTP / redis / db），不解释错误原因
type UserDataSource interface {
	FetchUsers(ctx context.Context) ([]User, error)
}

// UserRepository 缓存层。
//
// GetUsers(forceRemote=true) 走数据源并整体替换缓存；forceRemote=false 只读缓存，
// 缓存为空时返回 ErrCacheNotAvailable。GetUser 只查缓存，不会触发远端请求。
type UserRepository interface {
	GetUsers(ctx context.Context, forceRemote bool) ([]User, error)
	GetUser(ctx context.Context, id int) (User, error)
	Stats() CacheStats
}
