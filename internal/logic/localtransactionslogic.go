package logic

import (
	"context"

	"github.com/MON4LX-FINANCE/frontier/internal/svc"
	rpctypes "github.com/MON4LX-FINANCE/frontier/rpc/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/zeromicro/go-zero/core/logx"
)

type LocalTransactionsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewLocalTransactionsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *LocalTransactionsLogic {
	return &LocalTransactionsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// LocalTransactions returns the lifecycle status of every transaction
// submitted through this node, keyed by hash.
func (l *LocalTransactionsLogic) LocalTransactions() (map[common.Hash]rpctypes.LocalTransactionStatus, error) {
	return l.svcCtx.Tracker.Statuses(), nil
}
