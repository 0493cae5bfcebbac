package progression

import (
	"context"
	"sort"
	"strings"

	"github.com/KirkDiggler/rpg-progression/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-progression/internal/redis"
)

// AuditReport describes Redis entries that no longer match the key layout
type AuditReport struct {
	Checked int
	// Corrupted holds ids whose stored value does not decode
	Corrupted []string
	// Orphaned holds index entries with no mobile key behind them
	Orphaned []string
	// Unindexed holds stored mobiles missing from the index
	Unindexed []string
	Repaired  bool
}

// Clean reports whether the audit found nothing to repair
func (r *AuditReport) Clean() bool {
	return len(r.Corrupted) == 0 && len(r.Orphaned) == 0 && len(r.Unindexed) == 0
}

// Audit scans every stored mobile for values that no longer decode and for
// drift between the mobile keys and the index set. With fix set, corrupted
// mobiles are deleted and the index is reconciled in one transaction.
func Audit(ctx context.Context, client redisclient.Client, fix bool) (*AuditReport, error) {
	if client == nil {
		return nil, errors.InvalidArgument("client cannot be nil")
	}

	members, err := client.SMembers(ctx, mobileIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read mobile index")
	}
	indexed := make(map[string]bool, len(members))
	for _, id := range members {
		indexed[id] = true
	}

	report := &AuditReport{}
	stored := make(map[string]bool)

	iter := client.Scan(ctx, 0, mobileKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		id := strings.TrimPrefix(key, mobileKeyPrefix)
		report.Checked++

		data, err := client.Get(ctx, key).Bytes()
		if err != nil {
			// deleted between the scan and the read
			if err == redisclient.Nil {
				continue
			}
			return nil, errors.Wrapf(err, "failed to read %s", key)
		}
		stored[id] = true

		if _, err := decodeMobile(data); err != nil {
			report.Corrupted = append(report.Corrupted, id)
			continue
		}
		if !indexed[id] {
			report.Unindexed = append(report.Unindexed, id)
		}
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to scan mobiles")
	}

	for id := range indexed {
		if !stored[id] {
			report.Orphaned = append(report.Orphaned, id)
		}
	}

	sort.Strings(report.Corrupted)
	sort.Strings(report.Orphaned)
	sort.Strings(report.Unindexed)

	if !fix || report.Clean() {
		return report, nil
	}

	pipe := client.TxPipeline()
	for _, id := range report.Corrupted {
		pipe.Del(ctx, mobileKey(id))
		pipe.SRem(ctx, mobileIndexKey, id)
	}
	for _, id := range report.Orphaned {
		pipe.SRem(ctx, mobileIndexKey, id)
	}
	for _, id := range report.Unindexed {
		pipe.SAdd(ctx, mobileIndexKey, id)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to repair mobiles")
	}
	report.Repaired = true

	return report, nil
}
