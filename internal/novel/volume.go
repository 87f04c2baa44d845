package novel

import (
	"context"

	"sfutils/internal/cache"
	"sfutils/internal/domain"
)

// Volume is a cached view over one volume of its owning Novel. The back
// reference is non-owning; the wrapper lives as long as the caller holds it.
type Volume struct {
	novel *Novel
	id    int
	cache *cache.Cache
}

// ID returns the volume id.
func (v *Volume) ID() int { return v.id }

// Novel returns the owning novel wrapper.
func (v *Volume) Novel() *Novel { return v.novel }

// Info returns the volume's summary, recomputed from the novel's volumes when
// the cached copy has gone stale. If the volume has vanished from the
// projection the previous value is retained.
func (v *Volume) Info(ctx context.Context) (*domain.VolumeSummary, bool, error) {
	var prev *domain.VolumeSummary
	fresh, _, err := v.cache.Load(infoKey, cache.DefaultTTL, &prev)
	if err != nil {
		return nil, false, err
	}
	if fresh {
		return prev, prev != nil, nil
	}

	vols, err := v.novel.Volumes(ctx)
	if err != nil {
		return nil, false, err
	}
	value := prev
	for _, s := range vols {
		if s.VolumeID == v.id {
			summary := s
			value = &summary
			break
		}
	}
	if err := v.cache.Store(infoKey, value); err != nil {
		return nil, false, err
	}
	return value, value != nil, nil
}

// Chapters returns the volume's chapter list straight from the novel's
// cached catalogue; no independent network fetch. ok is false when the
// volume id is absent from the catalogue, which can happen after a refresh.
func (v *Volume) Chapters(ctx context.Context) ([]domain.Chapter, bool, error) {
	cat, err := v.novel.Catalogue(ctx)
	if err != nil {
		return nil, false, err
	}
	for _, entry := range cat {
		if entry.VolumeID == v.id {
			return entry.ChapterList, true, nil
		}
	}
	return nil, false, nil
}
