package logic

import (
	"context"

	"github.com/MON4LX-FINANCE/frontier/internal/svc"
	"github.com/MON4LX-FINANCE/frontier/internal/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/zeromicro/go-zero/core/logx"
)

type RemoveTransactionLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewRemoveTransactionLogic(ctx context.Context, svcCtx *svc.ServiceContext) *RemoveTransactionLogic {
	return &RemoveTransactionLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// RemoveTransaction cancels a pending transaction on request of its
// submitter. The raw envelope stays in the store; only the queue entry goes.
func (l *RemoveTransactionLogic) RemoveTransaction(req *types.TransactionHashRequest) (*types.RemoveTransactionResponse, error) {
	hash := common.HexToHash(req.Hash)
	removed := l.svcCtx.Tracker.Canceled(hash)
	if removed {
		l.Infof("transaction %s canceled", hash)
	}
	return &types.RemoveTransactionResponse{Removed: removed}, nil
}
