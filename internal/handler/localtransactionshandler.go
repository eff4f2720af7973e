package handler

import (
	"net/http"

	"github.com/MON4LX-FINANCE/frontier/internal/logic"
	"github.com/MON4LX-FINANCE/frontier/internal/svc"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func localTransactionsHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := logic.NewLocalTransactionsLogic(r.Context(), svcCtx)
		resp, err := l.LocalTransactions()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
