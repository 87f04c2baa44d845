package novel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"sfutils/internal/api"
	"sfutils/internal/cache"
	"sfutils/internal/domain"
)

const (
	infoKey      = "info"
	catalogueKey = "catalogue"
)

// ErrVolumeRange is returned when a volume lookup falls back to index
// semantics and the index is out of range.
var ErrVolumeRange = errors.New("volume index out of range")

// Novel is a cached view over one novel. Created by Lookup, shares the
// gateway without owning it.
type Novel struct {
	api   *api.Client
	id    int
	cache *cache.Cache
}

// Lookup fetches the novel's info record and wraps it. ok is false when the
// remote reports business failure for the id (the record stays unfetched);
// only transport failures return an error.
func Lookup(ctx context.Context, client *api.Client, novelID int) (*Novel, bool, error) {
	env, err := client.Novel(ctx, novelID, nil)
	if err != nil {
		return nil, false, err
	}
	if !env.OK() {
		return nil, false, nil
	}
	var info domain.NovelInfo
	if err := json.Unmarshal(env.Data, &info); err != nil {
		return nil, false, err
	}
	n := &Novel{api: client, id: novelID, cache: cache.New()}
	if err := n.cache.Store(infoKey, &info); err != nil {
		return nil, false, err
	}
	return n, true, nil
}

// ID returns the novel id.
func (n *Novel) ID() int { return n.id }

// Info returns the novel's info record, refreshed when the cached copy has
// gone stale. A failed refresh retains and re-stores the previous value.
func (n *Novel) Info(ctx context.Context) (*domain.NovelInfo, bool, error) {
	var prev *domain.NovelInfo
	fresh, _, err := n.cache.Load(infoKey, cache.DefaultTTL, &prev)
	if err != nil {
		return nil, false, err
	}
	if fresh {
		return prev, prev != nil, nil
	}

	env, err := n.api.Novel(ctx, n.id, nil)
	if err != nil {
		return nil, false, err
	}
	value := prev
	if env.OK() {
		var info domain.NovelInfo
		if err := json.Unmarshal(env.Data, &info); err != nil {
			return nil, false, err
		}
		value = &info
	}
	if err := n.cache.Store(infoKey, value); err != nil {
		return nil, false, err
	}
	return value, value != nil, nil
}

// Catalogue returns the novel's volume/chapter directory, refreshed when
// stale. Unlike Info, the refreshed value is stored unconditionally, business
// failure included; the dirs endpoint is treated as always succeeding.
func (n *Novel) Catalogue(ctx context.Context) (domain.Catalogue, error) {
	var cat domain.Catalogue
	fresh, _, err := n.cache.Load(catalogueKey, cache.DefaultTTL, &cat)
	if err != nil {
		return nil, err
	}
	if fresh {
		return cat, nil
	}

	env, err := n.api.NovelDirs(ctx, n.id, nil)
	if err != nil {
		return nil, err
	}
	var dirs struct {
		VolumeList domain.Catalogue `json:"volumeList"`
	}
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &dirs); err != nil {
			return nil, err
		}
	}
	if err := n.cache.Store(catalogueKey, dirs.VolumeList); err != nil {
		return nil, err
	}
	return dirs.VolumeList, nil
}

// Volumes projects the catalogue into per-volume summaries sorted ascending
// by sequence number. Recomputed on every call; only as fresh as the cached
// catalogue underneath.
func (n *Novel) Volumes(ctx context.Context) ([]domain.VolumeSummary, error) {
	cat, err := n.Catalogue(ctx)
	if err != nil {
		return nil, err
	}
	vols := slices.Clone(cat)
	slices.SortStableFunc(vols, func(a, b domain.Volume) int {
		switch {
		case a.Sno < b.Sno:
			return -1
		case a.Sno > b.Sno:
			return 1
		}
		return 0
	})
	out := make([]domain.VolumeSummary, 0, len(vols))
	for _, v := range vols {
		chars := 0
		for _, ch := range v.ChapterList {
			chars += ch.CharCount
		}
		out = append(out, domain.VolumeSummary{
			VolumeID:     v.VolumeID,
			Title:        v.Title,
			ChapterCount: len(v.ChapterList),
			CharCount:    chars,
		})
	}
	return out, nil
}

// Volume resolves id against the current volumes. An id matching a known
// volume id wins; otherwise id is an index into the sorted volumes, negative
// counting from the end, and an index outside that range returns
// ErrVolumeRange. ok is false when the resolved id matches nothing.
func (n *Novel) Volume(ctx context.Context, id int) (*Volume, bool, error) {
	vols, err := n.Volumes(ctx)
	if err != nil {
		return nil, false, err
	}
	target := id
	if !slices.ContainsFunc(vols, func(v domain.VolumeSummary) bool { return v.VolumeID == id }) {
		idx := id
		if idx < 0 {
			idx += len(vols)
		}
		if idx < 0 || idx >= len(vols) {
			return nil, false, fmt.Errorf("%w: %d of %d", ErrVolumeRange, id, len(vols))
		}
		target = vols[idx].VolumeID
	}
	for _, v := range vols {
		if v.VolumeID == target {
			vol := &Volume{novel: n, id: target, cache: cache.New()}
			summary := v
			if err := vol.cache.Store(infoKey, &summary); err != nil {
				return nil, false, err
			}
			return vol, true, nil
		}
	}
	return nil, false, nil
}
