package handler

import (
	"net/http"

	"github.com/MON4LX-FINANCE/frontier/internal/svc"
	"github.com/zeromicro/go-zero/rest"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodPost,
				Path:    "/transactions",
				Handler: sendRawTransactionHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/transactions",
				Handler: localTransactionsHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/transactions/:hash",
				Handler: getTransactionHandler(serverCtx),
			},
			{
				Method:  http.MethodDelete,
				Path:    "/transactions/:hash",
				Handler: removeTransactionHandler(serverCtx),
			},
		},
	)
}
