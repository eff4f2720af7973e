package node

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"

	"github.com/MON4LX-FINANCE/frontier/node/nodecfg"
	"github.com/c2h5oh/datasize"
	"github.com/gofrs/flock"
	"github.com/ledgerwatch/erigon-lib/kv"
	"github.com/ledgerwatch/erigon-lib/kv/mdbx"
	"github.com/ledgerwatch/log/v3"
	"golang.org/x/sync/semaphore"
)

const (
	initializingState = iota
	runningState
	closedState
)

// Lifecycle encompasses the behavior of services that can be started and
// stopped on a node.
type Lifecycle interface {
	Start() error
	Stop() error
}

// Node is a container on which services can be registered. It owns the
// instance directory lock and the databases opened under it.
type Node struct {
	config        *nodecfg.Config
	logger        log.Logger
	dirLock       *flock.Flock  // prevents concurrent use of the instance directory
	stop          chan struct{} // channel to wait for termination notifications
	startStopLock sync.Mutex    // guards Start/Close
	state         int           // tracks the lifecycle state of the node

	lock       sync.Mutex
	lifecycles []Lifecycle // all registered services that have a lifecycle

	databases []kv.Closer
}

// New creates a node ready for service registration.
func New(conf *nodecfg.Config, logger log.Logger) (*Node, error) {
	confCopy := *conf
	conf = &confCopy

	if strings.ContainsAny(conf.Name, `/\`) {
		return nil, errors.New(`Config.Name must not contain '/' or '\'`)
	}

	node := &Node{
		config:    conf,
		logger:    logger,
		stop:      make(chan struct{}),
		databases: make([]kv.Closer, 0),
	}

	// Acquire the instance directory lock.
	if err := node.openDataDir(); err != nil {
		return nil, err
	}

	return node, nil
}

// Start starts all registered lifecycles. A node can only be started once.
func (n *Node) Start() error {
	n.startStopLock.Lock()
	defer n.startStopLock.Unlock()

	n.lock.Lock()
	switch n.state {
	case runningState:
		n.lock.Unlock()
		return ErrNodeRunning
	case closedState:
		n.lock.Unlock()
		return ErrNodeStopped
	}
	n.state = runningState
	lifecycles := make([]Lifecycle, len(n.lifecycles))
	copy(lifecycles, n.lifecycles)
	n.lock.Unlock()

	var started []Lifecycle //nolint:prealloc
	var err error
	for _, lifecycle := range lifecycles {
		if err = lifecycle.Start(); err != nil {
			break
		}
		started = append(started, lifecycle)
	}
	// Check if any lifecycle failed to start.
	if err != nil {
		if stopErr := n.stopServices(started); stopErr != nil {
			n.logger.Warn("Failed to stop services of a partially started node", "err", stopErr)
		}
		if closeErr := n.doClose(nil); closeErr != nil {
			n.logger.Warn("Failed to close a partially started node", "err", closeErr)
		}
	}
	return err
}

// Close stops the Node and releases resources acquired in New().
func (n *Node) Close() error {
	n.startStopLock.Lock()
	defer n.startStopLock.Unlock()

	n.lock.Lock()
	state := n.state
	n.lock.Unlock()
	switch state {
	case initializingState:
		// The node was never started.
		return n.doClose(nil)
	case runningState:
		// The node was started, release resources acquired by Start().
		var errs []error
		if err := n.stopServices(n.lifecycles); err != nil {
			errs = append(errs, err)
		}
		return n.doClose(errs)
	case closedState:
		return ErrNodeStopped
	default:
		panic(fmt.Sprintf("node is in unknown state %d", state))
	}
}

// doClose releases resources acquired by New(), collecting errors.
func (n *Node) doClose(errs []error) error {
	// Close the databases under the state lock to prevent concurrent open/close.
	n.lock.Lock()
	n.state = closedState
	for _, closer := range n.databases {
		closer.Close()
	}
	n.lock.Unlock()

	n.closeDataDir()

	// Unblock n.Wait.
	close(n.stop)

	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	default:
		return fmt.Errorf("%v", errs)
	}
}

// stopServices stops the given lifecycles in reverse registration order.
func (n *Node) stopServices(running []Lifecycle) error {
	failure := &StopError{Services: make(map[reflect.Type]error)}
	for i := len(running) - 1; i >= 0; i-- {
		if err := running[i].Stop(); err != nil {
			failure.Services[reflect.TypeOf(running[i])] = err
		}
	}
	if len(failure.Services) > 0 {
		return failure
	}
	return nil
}

func (n *Node) openDataDir() error {
	if n.config.Dirs.DataDir == "" {
		return nil
	}

	instanceDir := n.config.Dirs.DataDir
	if err := os.MkdirAll(instanceDir, 0700); err != nil {
		return err
	}

	// Lock the instance directory to prevent concurrent use by another
	// instance as well as accidental use of the instance directory as a
	// database.
	l := flock.New(filepath.Join(instanceDir, "LOCK"))
	locked, err := l.TryLock()
	if err != nil {
		return convertFileLockError(err)
	}
	if !locked {
		return fmt.Errorf("%w: %s", ErrDataDirUsed, instanceDir)
	}
	n.dirLock = l
	return nil
}

func (n *Node) closeDataDir() {
	if n.dirLock != nil {
		if err := n.dirLock.Unlock(); err != nil {
			n.logger.Error("Can't release datadir lock", "err", err)
		}
		n.dirLock = nil
	}
}

// containsLifecycle checks if 'lfs' contains 'l'.
func containsLifecycle(lfs []Lifecycle, l Lifecycle) bool {
	for _, obj := range lfs {
		if obj == l {
			return true
		}
	}
	return false
}

// Wait blocks until the node is closed.
func (n *Node) Wait() {
	<-n.stop
}

// RegisterLifecycle registers the given lifecycle on the node.
func (n *Node) RegisterLifecycle(lifecycle Lifecycle) {
	n.lock.Lock()
	defer n.lock.Unlock()

	if n.state != initializingState {
		panic("can't register lifecycle on running/stopped node")
	}
	if containsLifecycle(n.lifecycles, lifecycle) {
		panic(fmt.Sprintf("attempt to register lifecycle %T more than once", lifecycle))
	}
	n.lifecycles = append(n.lifecycles, lifecycle)
}

// Config returns the configuration of node.
func (n *Node) Config() *nodecfg.Config {
	return n.config
}

// DataDir retrieves the current datadir used by the node.
func (n *Node) DataDir() string {
	return n.config.Dirs.DataDir
}

// registerDatabase tracks an open database so Close tears it down.
func (n *Node) registerDatabase(db kv.Closer) {
	n.lock.Lock()
	defer n.lock.Unlock()
	n.databases = append(n.databases, db)
}

// OpenDatabase opens the node's local-transaction database and ties its
// lifetime to the node.
func (n *Node) OpenDatabase() (kv.RwDB, error) {
	db, err := OpenDatabase(n.config, n.logger)
	if err != nil {
		return nil, err
	}
	n.registerDatabase(db)
	return db, nil
}

// OpenDatabase opens the local-transaction database described by config. An
// empty datadir yields an in-memory environment, used by tests and by nodes
// run without persistence.
func OpenDatabase(config *nodecfg.Config, logger log.Logger) (kv.RwDB, error) {
	roTxLimit := int64(32)
	roTxsLimiter := semaphore.NewWeighted(roTxLimit) // 1 less than max to allow unlocking to happen

	opts := mdbx.NewMDBX(logger).
		Label(kv.TxPoolDB).
		WithTableCfg(frontierTablesCfg).
		DBVerbosity(config.DatabaseVerbosity).
		RoTxsLimiter(roTxsLimiter)

	if config.Dirs.DataDir == "" {
		opts = opts.InMem("")
	} else {
		dbPath := filepath.Join(config.Dirs.DataDir, "txstore")
		logger.Info("Opening Database", "label", kv.TxPoolDB, "path", dbPath)
		opts = opts.Path(dbPath)
		if config.MdbxPageSize.Bytes() > 0 {
			opts = opts.PageSize(config.MdbxPageSize.Bytes())
		}
		if config.MdbxDBSizeLimit > 0 {
			opts = opts.MapSize(config.MdbxDBSizeLimit)
		}
		if config.MdbxGrowthStep > 0 {
			opts = opts.GrowthStep(config.MdbxGrowthStep)
		} else {
			opts = opts.GrowthStep(16 * datasize.MB)
		}
	}

	return opts.Open()
}
