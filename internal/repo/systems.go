// ABOUTME: Review and OKR repositories over the systems tables.
// ABOUTME: Both are pure event logs; records are never updated or deleted.
package repo

import (
	"fmt"

	"github.com/harperreed/lifeos/internal/models"
	"github.com/harperreed/lifeos/internal/store"
)

// ReviewRepo is the typed view over the sys_reviews table.
type ReviewRepo struct {
	store *store.Store
}

// Save appends one weekly review.
func (r *ReviewRepo) Save(rev *models.Review) error {
	rec, err := r.store.Insert(store.TableReviews, rev.Fields())
	if err != nil {
		return fmt.Errorf("insert review: %w", err)
	}
	rev.ID = rec.ID
	rev.CreatedAt = rec.CreatedAt
	return nil
}

// All returns every review in insertion order.
func (r *ReviewRepo) All() ([]*models.Review, error) {
	recs, err := r.store.ReadAll(store.TableReviews)
	if err != nil {
		return nil, fmt.Errorf("read reviews: %w", err)
	}
	reviews := make([]*models.Review, 0, len(recs))
	for _, rec := range recs {
		reviews = append(reviews, models.ReviewFromRecord(rec))
	}
	return reviews, nil
}

// OKRRepo is the typed view over the sys_okrs table.
type OKRRepo struct {
	store *store.Store
}

// Save appends one OKR.
func (r *OKRRepo) Save(o *models.OKR) error {
	rec, err := r.store.Insert(store.TableOKRs, o.Fields())
	if err != nil {
		return fmt.Errorf("insert okr: %w", err)
	}
	o.ID = rec.ID
	o.CreatedAt = rec.CreatedAt
	return nil
}

// List returns OKRs, optionally filtered by quarter. An empty quarter
// returns everything.
func (r *OKRRepo) List(quarter string) ([]*models.OKR, error) {
	recs, err := r.store.ReadAll(store.TableOKRs)
	if err != nil {
		return nil, fmt.Errorf("read okrs: %w", err)
	}
	var okrs []*models.OKR
	for _, rec := range recs {
		o := models.OKRFromRecord(rec)
		if quarter == "" || o.Quarter == quarter {
			okrs = append(okrs, o)
		}
	}
	return okrs, nil
}
