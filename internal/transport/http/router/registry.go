package router

import (
	"sort"
	"sync"

	"github.com/gin-gonic/gin"
)

// 模块按需实现其中一个或多个接口
type APIModule interface{ MountAPI(*gin.RouterGroup) }
type AdminModule interface{ MountAdmin(*gin.RouterGroup) }

// PublicModule 挂在 /admin/v1 下但不需要登录（如 /auth/login）
type PublicModule interface{ MountPublic(*gin.RouterGroup) }

// 可选：数值越小越先挂，默认 100
type prioritizer interface{ Priority() int }

type Registry struct {
	mu     sync.RWMutex
	api    []APIModule
	admin  []AdminModule
	public []PublicModule
}

func NewRegistry() *Registry { return &Registry{} }

// Register 按类型断言分发
func (r *Registry) Register(mods ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, mod := range mods {
		if m, ok := mod.(APIModule); ok {
			r.api = append(r.api, m)
		}
		if m, ok := mod.(AdminModule); ok {
			r.admin = append(r.admin, m)
		}
		if m, ok := mod.(PublicModule); ok {
			r.public = append(r.public, m)
		}
	}
}

func (r *Registry) MountAllAPI(api *gin.RouterGroup) {
	for _, m := range sorted(r, r.api) {
		m.MountAPI(api)
	}
}

func (r *Registry) MountAllAdmin(public, admin *gin.RouterGroup) {
	for _, m := range sorted(r, r.public) {
		m.MountPublic(public)
	}
	for _, m := range sorted(r, r.admin) {
		m.MountAdmin(admin)
	}
}

func sorted[T any](r *Registry, mods []T) []T {
	r.mu.RLock()
	out := append([]T(nil), mods...)
	r.mu.RUnlock()
	sort.SliceStable(out, func(i, j int) bool {
		return priorityOf(out[i]) < priorityOf(out[j])
	})
	return out
}

func priorityOf(v any) int {
	if p, ok := v.(prioritizer); ok {
		return p.Priority()
	}
	return 100
}
