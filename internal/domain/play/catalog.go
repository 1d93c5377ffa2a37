package play

import (
	ierr "github.com/flexprice/playbill/internal/errors"
	"github.com/samber/lo"
)

// Catalog maps play identifiers to plays. It is lookup-only.
type Catalog map[string]*Play

// NewCatalog indexes plays by ID. Later entries win on duplicate IDs.
func NewCatalog(plays ...*Play) Catalog {
	return lo.SliceToMap(plays, func(p *Play) (string, *Play) {
		return p.ID, p
	})
}

// Lookup returns the play with the given id or ErrUnknownPlay
func (c Catalog) Lookup(id string) (*Play, error) {
	p, ok := c[id]
	if !ok || p == nil {
		return nil, ierr.NewError("play not found in catalog").
			WithHintf("Unknown play: %s", id).
			WithReportableDetails(map[string]any{
				"play_id": id,
			}).
			Mark(ierr.ErrUnknownPlay)
	}
	return p, nil
}

// IDs returns the identifiers in the catalog in no particular order
func (c Catalog) IDs() []string {
	return lo.Keys(c)
}
