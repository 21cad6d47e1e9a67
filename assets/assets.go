// Package assets provides asynchronous loading and caching of the data files
// used by the renderer: shader categories, atlases, shader sources, glTF
// models and raw files.
//
// Load* methods queue a load and return immediately. The matching getter
// blocks until the asset is loaded, loading it synchronously if it was never
// queued.
//
package assets

import (
	"io"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/db47h/ofs"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var errMissingAsset = errors.New("asset not found")

type errorList map[key]error

func (e errorList) Error() string {
	var ss []string
	for k, err := range e {
		ss = append(ss, k.String()+": "+err.Error())
	}
	sort.Strings(ss)
	return strings.Join(ss, "\n")
}

// Kind is the kind of an asset.
//
type Kind int

const (
	KindFile Kind = iota
	KindCategory
	KindAtlas
	KindShader
	KindModel
)

var kindNames = [...]string{"file", "category", "atlas", "shader", "model"}

func (k Kind) String() string { return kindNames[k] }

type key struct {
	kind Kind
	name string
}

func (k key) String() string { return k.kind.String() + " " + k.name }

type loader func(r io.Reader, name string) (interface{}, error)

// A Manager loads assets from a file system. Loaded assets are cached until
// discarded.
//
type Manager struct {
	fs     ofs.FileSystem
	cfg    *config
	m      sync.Mutex
	cond   *sync.Cond
	errs   errorList
	assets map[key]interface{}
	ps     map[key]struct{}
	cs     chan func()
	wg     sync.WaitGroup
}

type config struct {
	paths   [len(kindNames)]string
	workers int
	log     *zap.Logger
}

// Option is implemented by option functions passed as arguments to NewManager.
//
type Option interface {
	set(*config)
}

type cfn func(*config)

func (f cfn) set(cfg *config) {
	f(cfg)
}

func pathOption(k Kind, p string) Option {
	return cfn(func(cfg *config) {
		cfg.paths[k] = p
	})
}

// FilePath sets the directory of raw files.
//
func FilePath(p string) Option { return pathOption(KindFile, p) }

// CategoryPath sets the directory of shader category files.
//
func CategoryPath(p string) Option { return pathOption(KindCategory, p) }

// AtlasPath sets the directory of atlas files.
//
func AtlasPath(p string) Option { return pathOption(KindAtlas, p) }

// ShaderPath sets the directory of shader sources.
//
func ShaderPath(p string) Option { return pathOption(KindShader, p) }

// ModelPath sets the directory of glTF models.
//
func ModelPath(p string) Option { return pathOption(KindModel, p) }

// Workers sets the number of loading goroutines. The default is 4.
//
func Workers(n int) Option {
	return cfn(func(cfg *config) {
		if n > 0 {
			cfg.workers = n
		}
	})
}

// Logger sets the logger. The default is a no-op logger.
//
func Logger(l *zap.Logger) Option {
	return cfn(func(cfg *config) {
		if l != nil {
			cfg.log = l
		}
	})
}

// NewManager returns a new asset Manager reading files from fs.
//
func NewManager(fs ofs.FileSystem, options ...Option) *Manager {
	cfg := &config{workers: 4, log: zap.NewNop()}
	for _, o := range options {
		o.set(cfg)
	}
	m := &Manager{
		fs:     fs,
		cfg:    cfg,
		errs:   make(errorList),
		assets: make(map[key]interface{}),
		ps:     make(map[key]struct{}),
		cs:     make(chan func(), 256),
	}
	m.cond = sync.NewCond(&m.m)
	m.wg.Add(cfg.workers)
	for i := 0; i < cfg.workers; i++ {
		go func() {
			defer m.wg.Done()
			for f := range m.cs {
				f()
			}
		}()
	}
	return m
}

func (m *Manager) path(k key) string {
	return path.Join(m.cfg.paths[k.kind], k.name)
}

// loadStart marks k as pending. It returns false if k is already loaded or
// pending.
//
func (m *Manager) loadStartNoLock(k key) bool {
	if _, ok := m.ps[k]; ok {
		return false
	}
	if _, ok := m.assets[k]; ok {
		return false
	}
	delete(m.errs, k)
	m.ps[k] = struct{}{}
	return true
}

func (m *Manager) read(k key, ld loader) (interface{}, error) {
	name := m.path(k)
	f, err := m.fs.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ld(f, name)
}

func (m *Manager) complete(k key, v interface{}, err error) {
	m.m.Lock()
	if err != nil {
		m.errs[k] = err
		m.cfg.log.Debug("asset load failed", zap.Stringer("asset", k), zap.Error(err))
	} else {
		m.assets[k] = v
		m.cfg.log.Debug("asset loaded", zap.Stringer("asset", k))
	}
	delete(m.ps, k)
	m.cond.Broadcast()
	m.m.Unlock()
}

// queue queues the loading of k.
//
func (m *Manager) queue(k key, ld loader) {
	m.m.Lock()
	ok := m.loadStartNoLock(k)
	m.m.Unlock()
	if !ok {
		return
	}
	m.cs <- func() {
		v, err := m.read(k, ld)
		m.complete(k, v, err)
	}
}

// get returns the asset k, waiting for it if it is being loaded or loading it
// synchronously if it has never been queued.
//
func (m *Manager) get(k key, ld loader) (interface{}, error) {
	m.m.Lock()
	defer m.m.Unlock()
	for {
		if v, ok := m.assets[k]; ok {
			return v, nil
		}
		if _, ok := m.ps[k]; ok {
			m.cond.Wait()
			continue
		}
		if err, ok := m.errs[k]; ok {
			return nil, errors.Wrap(err, k.String())
		}
		m.loadStartNoLock(k)
		m.m.Unlock()
		v, err := m.read(k, ld)
		m.complete(k, v, err)
		m.m.Lock()
	}
}

// Discard removes the given asset from the cache.
//
func (m *Manager) Discard(kind Kind, name string) error {
	k := key{kind, name}
	m.m.Lock()
	defer m.m.Unlock()
	for {
		if _, ok := m.assets[k]; ok {
			delete(m.assets, k)
			return nil
		}
		if _, ok := m.ps[k]; !ok {
			return errors.Wrap(errMissingAsset, k.String())
		}
		m.cond.Wait()
	}
}

// QueueSize returns the number of pending loads.
//
func (m *Manager) QueueSize() int {
	m.m.Lock()
	s := len(m.ps)
	m.m.Unlock()
	return s
}

// Wait waits for all pending loads to complete and returns the load errors so
// far, if any.
//
func (m *Manager) Wait() error {
	m.m.Lock()
	defer m.m.Unlock()
	for len(m.ps) > 0 {
		m.cond.Wait()
	}
	if len(m.errs) == 0 {
		return nil
	}
	errs := make(errorList, len(m.errs))
	for k, err := range m.errs {
		errs[k] = err
	}
	return errs
}

// Close waits for pending loads, stops the loading goroutines and empties the
// cache. The Manager must not be used afterwards.
//
func (m *Manager) Close() error {
	err := m.Wait()
	close(m.cs)
	m.wg.Wait()
	m.m.Lock()
	m.assets = make(map[key]interface{})
	m.m.Unlock()
	return err
}
