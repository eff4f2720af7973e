package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MON4LX-FINANCE/frontier/cmd/utils"
	ctypes "github.com/MON4LX-FINANCE/frontier/core/types"
	"github.com/MON4LX-FINANCE/frontier/node"
	"github.com/MON4LX-FINANCE/frontier/internal/config"
	"github.com/MON4LX-FINANCE/frontier/internal/handler"
	"github.com/MON4LX-FINANCE/frontier/internal/svc"
	"github.com/MON4LX-FINANCE/frontier/node/nodecfg"
	rpctypes "github.com/MON4LX-FINANCE/frontier/rpc/types"
	"github.com/MON4LX-FINANCE/frontier/turbo/app"
	frontiercli "github.com/MON4LX-FINANCE/frontier/turbo/cli"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ledgerwatch/log/v3"
	"github.com/urfave/cli/v2"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/rest"
)

func main() {
	defer func() {
		panicRes := recover()
		if panicRes == nil {
			return
		}
		log.Error("catch panic", "err", panicRes)
		os.Exit(1)
	}()
	app := app.MakeApp("frontier", runFrontier, frontiercli.DefaultFlags)
	if err := app.Run(os.Args); err != nil {
		utils.Fatalf("%v", err)
	}
}

func runFrontier(cliCtx *cli.Context) error {
	logger := log.New()

	var c config.Config
	if path := cliCtx.String(utils.ConfigFlag.Name); path != "" {
		conf.MustLoad(path, &c)
	} else {
		c.Name = "frontier-node"
	}
	if cliCtx.IsSet(utils.HTTPHostFlag.Name) || c.Host == "" {
		c.Host = cliCtx.String(utils.HTTPHostFlag.Name)
	}
	if cliCtx.IsSet(utils.HTTPPortFlag.Name) || c.Port == 0 {
		c.Port = cliCtx.Int(utils.HTTPPortFlag.Name)
	}
	if cliCtx.IsSet(utils.ChainIDFlag.Name) || c.ChainID == 0 {
		c.ChainID = cliCtx.Uint64(utils.ChainIDFlag.Name)
	}
	if cliCtx.IsSet(utils.DataDirFlag.Name) {
		c.DataDir = cliCtx.String(utils.DataDirFlag.Name)
	}

	nodeCfg := nodecfg.DefaultConfig("frontier", c.DataDir)
	stack, err := node.New(nodeCfg, logger)
	if err != nil {
		log.Error("Frontier startup", "err", err)
		return err
	}
	defer stack.Close()

	db, err := stack.OpenDatabase()
	if err != nil {
		log.Error("Opening the local transaction store", "err", err)
		return err
	}
	store := node.NewTxStore(db)

	svcCtx := svc.NewServiceContext(c, store)
	if err := reloadLocals(svcCtx, store, logger); err != nil {
		log.Error("Reloading stored transactions", "err", err)
		return err
	}

	server := rest.MustNewServer(c.RestConf)
	handler.RegisterHandlers(server, svcCtx)
	stack.RegisterLifecycle(&restLifecycle{server: server})

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		logger.Info("Got interrupt, shutting down")
		stack.Close()
	}()

	if err := stack.Start(); err != nil {
		log.Error("error while serving a Frontier node", "err", err)
		return err
	}
	logger.Info("Frontier node started", "host", c.Host, "port", c.Port, "chainid", c.ChainID)
	stack.Wait()
	return nil
}

// reloadLocals re-decodes every stored envelope and tracks it as pending
// again, so a restart does not lose locally submitted transactions. Entries
// that no longer decode or recover are pruned.
func reloadLocals(svcCtx *svc.ServiceContext, store *node.TxStore, logger log.Logger) error {
	ctx := context.Background()
	var stale []common.Hash
	err := store.Walk(ctx, func(hash common.Hash, raw []byte) error {
		tx := new(ctypes.Transaction)
		if err := tx.UnmarshalBinary(raw); err != nil {
			logger.Warn("Dropping undecodable stored transaction", "hash", hash, "err", err)
			stale = append(stale, hash)
			return nil
		}
		record := rpctypes.NewTransaction(tx)
		from, err := ctypes.Sender(svcCtx.Signer, tx)
		if err != nil {
			logger.Warn("Dropping stored transaction of a foreign chain", "hash", hash, "err", err)
			stale = append(stale, hash)
			return nil
		}
		record.From = from
		svcCtx.Tracker.Submitted(from, record, svcCtx.HeadBlock())
		return nil
	})
	if err != nil {
		return err
	}
	for _, hash := range stale {
		if err := store.Delete(ctx, hash); err != nil {
			return err
		}
	}
	svcCtx.Tracker.Pending().Range(func(hash common.Hash, tx *rpctypes.PendingTransaction) {
		logger.Debug("Reloaded local transaction", "hash", hash, "atBlock", tx.AtBlock)
	})
	return nil
}

// restLifecycle adapts the go-zero REST server to the node lifecycle.
type restLifecycle struct {
	server *rest.Server
}

func (l *restLifecycle) Start() error {
	go l.server.Start()
	return nil
}

func (l *restLifecycle) Stop() error {
	l.server.Stop()
	return nil
}
