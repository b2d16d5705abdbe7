package driver

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"sysdl/internal/ast"
	"sysdl/internal/source"
)

// Current schema version - increment when DiskPayload format changes
const diskCacheSchemaVersion uint16 = 1

// ErrCacheMiss is returned when no payload exists for a hash.
var ErrCacheMiss = errors.New("cache miss")

// DiskCache хранит разобранные деревья по content-hash файла.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// NodePayload — один узел в плоской сериализуемой форме. Индексы детей
// 1-based, как в арене.
type NodePayload struct {
	Kind     uint8              `msgpack:"kind"`
	StrProps map[string]string  `msgpack:"str,omitempty"`
	NumProps map[string]float64 `msgpack:"num,omitempty"`
	Children []uint32           `msgpack:"children,omitempty"`
}

// DiskPayload stores a flattened parse tree keyed by source content hash.
type DiskPayload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16 `msgpack:"schema"`

	Path        string        `msgpack:"path"`
	ContentHash [32]byte      `msgpack:"hash"`
	Root        uint32        `msgpack:"root"`
	Nodes       []NodePayload `msgpack:"nodes"`
	HadErrors   bool          `msgpack:"had_errors"`
}

// NewDiskCache creates (or reuses) a cache directory.
func NewDiskCache(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &DiskCache{dir: dir}, nil
}

// Dir returns the cache directory.
func (c *DiskCache) Dir() string {
	return c.dir
}

func (c *DiskCache) pathFor(hash [32]byte) string {
	return filepath.Join(c.dir, hex.EncodeToString(hash[:])+".sysdlc")
}

// Put сериализует результат разбора под хешем содержимого файла.
func (c *DiskCache) Put(file *source.File, builder *ast.Builder, root ast.NodeID, hadErrors bool) error {
	payload := DiskPayload{
		Schema:      diskCacheSchemaVersion,
		Path:        file.Path,
		ContentHash: file.Hash,
		Root:        uint32(root),
		Nodes:       flattenNodes(builder),
		HadErrors:   hadErrors,
	}

	data, err := msgpack.Marshal(&payload)
	if err != nil {
		return fmt.Errorf("marshal cache payload: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	tmp := c.pathFor(file.Hash) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write cache payload: %w", err)
	}
	return os.Rename(tmp, c.pathFor(file.Hash))
}

// Get восстанавливает Builder и корень по хешу содержимого.
// Возвращает ErrCacheMiss, если записи нет или схема устарела.
func (c *DiskCache) Get(hash [32]byte) (*ast.Builder, ast.NodeID, bool, error) {
	c.mu.RLock()
	data, err := os.ReadFile(c.pathFor(hash))
	c.mu.RUnlock()
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ast.NoNodeID, false, ErrCacheMiss
		}
		return nil, ast.NoNodeID, false, err
	}

	var payload DiskPayload
	if err := msgpack.Unmarshal(data, &payload); err != nil {
		return nil, ast.NoNodeID, false, fmt.Errorf("unmarshal cache payload: %w", err)
	}
	if payload.Schema != diskCacheSchemaVersion || payload.ContentHash != hash {
		return nil, ast.NoNodeID, false, ErrCacheMiss
	}

	builder := rebuildNodes(payload.Nodes)
	return builder, ast.NodeID(payload.Root), payload.HadErrors, nil
}

// Clear удаляет все записи кеша.
func (c *DiskCache) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".sysdlc" {
			continue
		}
		if err := os.Remove(filepath.Join(c.dir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}

// Stats возвращает количество записей и суммарный размер в байтах.
func (c *DiskCache) Stats() (entries int, bytes int64, err error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	dirEntries, err := os.ReadDir(c.dir)
	if err != nil {
		return 0, 0, err
	}
	for _, e := range dirEntries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".sysdlc" {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return 0, 0, err
		}
		entries++
		bytes += info.Size()
	}
	return entries, bytes, nil
}

func flattenNodes(builder *ast.Builder) []NodePayload {
	nodes := builder.Nodes.Slice()
	out := make([]NodePayload, 0, len(nodes))
	for i := range nodes {
		n := &nodes[i]
		p := NodePayload{Kind: uint8(n.Kind)}
		for k, v := range n.Props {
			switch v.Kind {
			case ast.PropNum:
				if p.NumProps == nil {
					p.NumProps = make(map[string]float64)
				}
				p.NumProps[k] = v.Num
			default:
				if p.StrProps == nil {
					p.StrProps = make(map[string]string)
				}
				p.StrProps[k] = v.Str
			}
		}
		for _, child := range n.Children {
			p.Children = append(p.Children, uint32(child))
		}
		out = append(out, p)
	}
	return out
}

func rebuildNodes(payload []NodePayload) *ast.Builder {
	builder := ast.NewBuilder(ast.Hints{Nodes: uint(len(payload))})
	for _, p := range payload {
		id := builder.NewNode(ast.NodeKind(p.Kind), source.Span{})
		for k, v := range p.StrProps {
			builder.SetStr(id, k, v)
		}
		for k, v := range p.NumProps {
			builder.SetNum(id, k, v)
		}
		for _, child := range p.Children {
			builder.PushChild(id, ast.NodeID(child))
		}
	}
	return builder
}
