package prefabs

import (
	"fmt"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
)

// Reloader turns watcher events for one tuning file into decoded specs.
// Saves that leave the file content unchanged are ignored.
type Reloader struct {
	name    string
	watcher *Watcher
	sum     uint64
}

func NewReloader(name string) (*Reloader, error) {
	data, err := Load(name)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", name, err)
	}

	w, err := NewWatcher(Dir)
	if err != nil {
		return nil, fmt.Errorf("prefabs: watch %s: %w", Dir, err)
	}

	return &Reloader{
		name:    cleanPrefabPath(name),
		watcher: w,
		sum:     xxhash.Sum64(data),
	}, nil
}

// Poll never blocks. It reports a new spec only when the watched file's
// content changed since the last accepted version.
func (r *Reloader) Poll() (TuningSpec, bool, error) {
	if r == nil || r.watcher == nil {
		return TuningSpec{}, false, nil
	}

	for {
		select {
		case path, ok := <-r.watcher.Events:
			if !ok {
				return TuningSpec{}, false, nil
			}
			if filepath.Base(path) != filepath.Base(r.name) {
				continue
			}
			data, err := Load(r.name)
			if err != nil {
				return TuningSpec{}, false, fmt.Errorf("prefabs: reload %s: %w", r.name, err)
			}
			return r.accept(data)
		case err, ok := <-r.watcher.Errors:
			if !ok {
				return TuningSpec{}, false, nil
			}
			return TuningSpec{}, false, fmt.Errorf("prefabs: watch %s: %w", r.name, err)
		default:
			return TuningSpec{}, false, nil
		}
	}
}

func (r *Reloader) accept(data []byte) (TuningSpec, bool, error) {
	sum := xxhash.Sum64(data)
	if sum == r.sum {
		return TuningSpec{}, false, nil
	}

	spec, err := DecodeTuning(data)
	if err != nil {
		return TuningSpec{}, false, fmt.Errorf("prefabs: unmarshal %s: %w", r.name, err)
	}
	r.sum = sum
	return spec, true, nil
}

func (r *Reloader) Close() error {
	if r == nil || r.watcher == nil {
		return nil
	}
	return r.watcher.Close()
}
