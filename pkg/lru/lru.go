package lru

import (
	"fmt"
	"iter"

	"github.com/go-viper/mapstructure/v2"

	"github.com/pmkol/glist/pkg/list"
)

// LRU is a fixed size least recently used cache. It is not safe for
// concurrent use.
type LRU[K comparable, V any] struct {
	maxSize int
	onEvict func(key K, v V)

	l *list.List[KV[K, V]]
	m map[K]*list.Elem[KV[K, V]]

	stats Stats
}

type KV[K comparable, V any] struct {
	key K
	v   V
}

// Stats counts cache activity since the LRU was created.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

type Config struct {
	MaxSize int `yaml:"max_size"`
}

func NewLRU[K comparable, V any](maxSize int, onEvict func(key K, v V)) *LRU[K, V] {
	if maxSize <= 0 {
		panic(fmt.Sprintf("LRU: invalid max size: %d", maxSize))
	}

	return &LRU[K, V]{
		maxSize: maxSize,
		onEvict: onEvict,
		l:       list.New[KV[K, V]](),
		m:       make(map[K]*list.Elem[KV[K, V]], maxSize),
	}
}

// NewFromConfig decodes args (usually a section of a yaml config) into
// a Config and builds an LRU from it.
func NewFromConfig[K comparable, V any](args map[string]any, onEvict func(key K, v V)) (*LRU[K, V], error) {
	cfg := new(Config)
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused:      true,
		TagName:          "yaml",
		WeaklyTypedInput: true,
		Result:           cfg,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(args); err != nil {
		return nil, fmt.Errorf("failed to decode lru config, %w", err)
	}
	if cfg.MaxSize <= 0 {
		return nil, fmt.Errorf("invalid max size %d", cfg.MaxSize)
	}
	return NewLRU[K, V](cfg.MaxSize, onEvict), nil
}

func (q *LRU[K, V]) Add(key K, v V) {
	// Update existing
	if e, ok := q.m[key]; ok {
		e.Value.v = v
		q.l.MoveToBack(e)
		return
	}

	// Reuse oldest element if full (zero allocation path)
	if q.l.Len() >= q.maxSize {
		e := q.l.Front()
		q.stats.Evictions++

		if q.onEvict != nil {
			q.onEvict(e.Value.key, e.Value.v)
		}

		delete(q.m, e.Value.key)

		e.Value.key = key
		e.Value.v = v

		q.m[key] = e
		q.l.MoveToBack(e)
		return
	}

	// Normal allocation path
	e := list.NewElem(KV[K, V]{
		key: key,
		v:   v,
	})
	q.m[key] = e
	q.l.PushBack(e)
}

func (q *LRU[K, V]) Get(key K) (v V, ok bool) {
	e, ok := q.m[key]
	if !ok {
		q.stats.Misses++
		return
	}
	q.stats.Hits++
	q.l.MoveToBack(e)
	return e.Value.v, true
}

// Peek is like Get but does not refresh the entry or touch Stats.
func (q *LRU[K, V]) Peek(key K) (v V, ok bool) {
	e, ok := q.m[key]
	if !ok {
		return
	}
	return e.Value.v, true
}

func (q *LRU[K, V]) Del(key K) {
	e := q.m[key]
	if e == nil {
		return
	}
	q.delElem(e)
}

func (q *LRU[K, V]) PopOldest() (key K, v V, ok bool) {
	e := q.l.Front()
	if e == nil {
		return
	}

	q.l.PopElem(e)
	delete(q.m, e.Value.key)

	key, v = e.Value.key, e.Value.v
	ok = true
	return
}

func (q *LRU[K, V]) Clean(f func(key K, v V) bool) (removed int) {
	e := q.l.Front()
	for e != nil {
		next := e.Next()
		key, v := e.Value.key, e.Value.v

		if f(key, v) {
			q.delElem(e)
			removed++
		}

		e = next
	}
	return
}

// Keys iterates over the keys from the oldest to the newest entry.
// The cache must not be modified during the iteration.
func (q *LRU[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for kv := range q.l.All() {
			if !yield(kv.key) {
				return
			}
		}
	}
}

func (q *LRU[K, V]) Len() int {
	return q.l.Len()
}

func (q *LRU[K, V]) Stats() Stats {
	return q.stats
}

func (q *LRU[K, V]) delElem(e *list.Elem[KV[K, V]]) {
	key, v := e.Value.key, e.Value.v
	q.l.PopElem(e)
	delete(q.m, key)

	if q.onEvict != nil {
		q.onEvict(key, v)
	}
}
