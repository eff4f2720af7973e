package logic

import (
	"context"
	"fmt"

	ctypes "github.com/MON4LX-FINANCE/frontier/core/types"
	"github.com/MON4LX-FINANCE/frontier/internal/svc"
	"github.com/MON4LX-FINANCE/frontier/internal/types"
	rpctypes "github.com/MON4LX-FINANCE/frontier/rpc/types"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/zeromicro/go-zero/core/logx"
)

type SendRawTransactionLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewSendRawTransactionLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SendRawTransactionLogic {
	return &SendRawTransactionLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// SendRawTransaction decodes a signed envelope, normalizes it into the
// canonical record, recovers the sender and tracks it as pending. A
// resubmission for the same sender and nonce replaces the old entry.
func (l *SendRawTransactionLogic) SendRawTransaction(req *types.SendRawTransactionRequest) (*rpctypes.RichRawTransaction, error) {
	raw, err := hexutil.Decode(req.Raw)
	if err != nil {
		return nil, fmt.Errorf("invalid raw transaction hex: %w", err)
	}

	tx := new(ctypes.Transaction)
	if err := tx.UnmarshalBinary(raw); err != nil {
		return nil, fmt.Errorf("undecodable transaction envelope: %w", err)
	}

	record := rpctypes.NewTransaction(tx)

	// Enrichment: fill the sender, which normalization leaves unset.
	from, err := ctypes.Sender(l.svcCtx.Signer, tx)
	if err != nil {
		l.svcCtx.Tracker.Rejected(record, err.Error())
		return nil, fmt.Errorf("sender recovery failed: %w", err)
	}
	record.From = from

	if err := l.svcCtx.Store.Put(l.ctx, record.Hash, record.Raw); err != nil {
		return nil, err
	}
	if replaced := l.svcCtx.Tracker.Submitted(from, record, l.svcCtx.HeadBlock()); replaced != nil {
		l.Infof("transaction %s replaced by %s", replaced, record.Hash)
	}

	return &rpctypes.RichRawTransaction{Raw: record.Raw, Transaction: record}, nil
}
