package handler

import (
	"net/http"

	"github.com/MON4LX-FINANCE/frontier/internal/logic"
	"github.com/MON4LX-FINANCE/frontier/internal/svc"
	"github.com/MON4LX-FINANCE/frontier/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func removeTransactionHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.TransactionHashRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := logic.NewRemoveTransactionLogic(r.Context(), svcCtx)
		resp, err := l.RemoveTransaction(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
