package service

import (
	"context"
	"log"
	"time"

	"Hive_Community/internal/repository/mysql"
)

// MemberCountReconciler periodically walks all communities and repairs drift
// between the denormalized member_count and the real number of active rows.
type MemberCountReconciler struct {
	repo      *mysql.MemberCountReconcilerRepo
	batchSize int
	interval  time.Duration
}

func NewMemberCountReconciler() *MemberCountReconciler {
	return &MemberCountReconciler{
		repo:      &mysql.MemberCountReconcilerRepo{DB: mysql.DB},
		batchSize: 500,
		interval:  5 * time.Minute,
	}
}

// Run 对账定时任务启动器
func (r *MemberCountReconciler) Run(ctx context.Context) {
	t := time.NewTicker(r.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			r.reconcileOnce(ctx)
		}
	}
}

func (r *MemberCountReconciler) reconcileOnce(ctx context.Context) {
	var lastID uint64
	for {
		list, next, err := r.repo.ReconcileList(ctx, r.batchSize, lastID)
		if err != nil {
			log.Printf("reconcile list err: %v", err)
			return
		}
		if len(list) == 0 {
			return
		}
		for _, c := range list {
			real, err := r.repo.RealMemberCount(ctx, c.ID)
			if err != nil {
				continue
			}
			if real != c.MemberCount {
				_ = r.repo.FixMemberCount(ctx, c.ID, real)
			}
		}
		lastID = next
	}
}
