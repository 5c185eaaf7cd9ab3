package table

import "sync/atomic"

// Live holds the current settings of one table and swaps them on Reload.
type Live struct {
	loader *Loader
	table  string
	cur    atomic.Pointer[Settings]
}

// NewLive loads table once; the initial load must succeed.
func NewLive(loader *Loader, table string) (*Live, error) {
	l := &Live{loader: loader, table: table}
	if err := l.Reload(); err != nil {
		return nil, err
	}
	return l, nil
}

// Reload re-reads the table files. On error the previous settings stay active.
func (l *Live) Reload() error {
	l.loader.Invalidate()
	raw, err := l.loader.Load(l.table)
	if err != nil {
		return err
	}
	s, err := Resolve(raw)
	if err != nil {
		return err
	}
	l.cur.Store(&s)
	return nil
}

func (l *Live) Settings() Settings { return *l.cur.Load() }

// Files lists the files backing the table, for the watcher.
func (l *Live) Files() []string { return l.loader.Paths().Files(l.table) }
