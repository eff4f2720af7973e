package logic

import (
	"context"
	"errors"
	"fmt"

	"github.com/MON4LX-FINANCE/frontier/internal/svc"
	"github.com/MON4LX-FINANCE/frontier/internal/types"
	rpctypes "github.com/MON4LX-FINANCE/frontier/rpc/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/zeromicro/go-zero/core/logx"
)

var ErrTxNotFound = errors.New("transaction not tracked")

type GetTransactionLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetTransactionLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetTransactionLogic {
	return &GetTransactionLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// GetTransaction returns the canonical record of a tracked transaction:
// pending entries first, then transactions that already left the queue but
// still carry a record on their status.
func (l *GetTransactionLogic) GetTransaction(req *types.TransactionHashRequest) (*rpctypes.Transaction, error) {
	hash := common.HexToHash(req.Hash)
	if entry := l.svcCtx.Tracker.Pending().Get(hash); entry != nil {
		return entry.Transaction, nil
	}
	if status, ok := l.svcCtx.Tracker.Status(hash); ok && status.Transaction() != nil {
		return status.Transaction(), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrTxNotFound, hash)
}
