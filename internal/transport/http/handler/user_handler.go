package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bankclients/internal/domain"
	"bankclients/internal/service"
	"bankclients/internal/transport/http/ez"
	resp "bankclients/internal/transport/http/response"
)

// 面向终端用户的文案
const (
	MsgNetworkUnavailable = "Internet access not available, check your internet connection"
	MsgCacheNotAvailable  = "Cached data is not available. Try fetching remote data"
	MsgUserNotFound       = "User not found"
	MsgSomethingWrong     = "Something went wrong, please try again later"
)

// toActionErr 仓库错误 → 业务码；原始错误挂在 AErr.Err 上进访问日志
func toActionErr(err error) error {
	switch domain.KindOf(err) {
	case domain.KindNetworkUnavailable:
		return ez.Unavailable(MsgNetworkUnavailable, err)
	case domain.KindCacheNotAvailable:
		return &ez.AErr{Code: resp.CodeConflict, Msg: MsgCacheNotAvailable, Err: err}
	case domain.KindNotFound:
		return &ez.AErr{Code: resp.CodeNotFound, Msg: MsgUserNotFound, Err: err}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &ez.AErr{Code: resp.CodeTimeout, Msg: "timeout", Err: err}
	}
	return ez.Internal(MsgSomethingWrong, err)
}

type UserHandler struct {
	svc *service.UserService
}

func NewUserHandler(svc *service.UserService) *UserHandler { return &UserHandler{svc: svc} }

type listQ struct {
	ForceRemote bool `form:"force_remote"`
}

type listOut struct {
	Total int               `json:"total"`
	Items []domain.UserItem `json:"items"`
}

// MountAPI GET /users, GET /users/:id
func (h *UserHandler) MountAPI(api *gin.RouterGroup) {
	e := ez.New(api)

	ez.RegisterAction(e, ez.Action[listQ, listOut]{
		Method: http.MethodGet,
		Path:   "/users",
		Binder: ez.BindQuery,
		Handler: func(c *gin.Context, in *listQ) (listOut, error) {
			items, err := h.svc.ListItems(c.Request.Context(), in.ForceRemote)
			if err != nil {
				return listOut{}, toActionErr(err)
			}
			return listOut{Total: len(items), Items: items}, nil
		},
	})

	ez.RegisterAction(e, ez.Action[struct{}, domain.User]{
		Method: http.MethodGet,
		Path:   "/users/:id",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (domain.User, error) {
			id, err := strconv.Atoi(c.Param("id"))
			if err != nil {
				return domain.User{}, ez.BadRequest("invalid id")
			}
			u, err := h.svc.GetUser(c.Request.Context(), id)
			if err != nil {
				return domain.User{}, toActionErr(err)
			}
			return u, nil
		},
	})
}
