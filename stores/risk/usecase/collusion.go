package usecase

import (
	"fmt"
	"sort"
	"time"

	"github.com/lelongx/goapi/base/ctx"
	"github.com/lelongx/goapi/base/log"
	"github.com/lelongx/goapi/domain"
	"github.com/lelongx/goapi/domain/auction"
	"github.com/lelongx/goapi/domain/bidder"
	"github.com/lelongx/goapi/domain/risk"
)

const (
	// coordinatedGap is the max spacing between alternating bids from a
	// pair before the timing looks rehearsed
	coordinatedGap = 30 * time.Second
	// coordinatedRuns is how many tight alternations a pair needs before
	// the timing evidence counts
	coordinatedRuns = 3
)

type CollusionCfg struct {
	BidRepo    auction.BidRepo
	BidderRepo bidder.Repo
}

type collusionImpl struct {
	bidRepo    auction.BidRepo
	bidderRepo bidder.Repo
}

func NewCollusionDetector(cfg *CollusionCfg) risk.CollusionDetector {
	return &collusionImpl{bidRepo: cfg.BidRepo, bidderRepo: cfg.BidderRepo}
}

// Detect inspects every unordered pair of bidders active in the auction for
// coordinated timing and shared identity signals. Findings are advisory.
func (im *collusionImpl) Detect(c ctx.Ctx, auctionId domain.AuctionId) (*risk.CollusionFinding, error) {
	bids, err := im.bidRepo.FindAll(c,
		auction.BidWithAuctionId(auctionId),
		auction.BidWithSort("time", domain.SortDirAsc),
	)
	if err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"auctionId": auctionId,
		}).Error("failed to bidRepo.FindAll")
		return nil, err
	}

	finding := &risk.CollusionFinding{AuctionId: auctionId, CheckedAt: time.Now()}

	bidders := distinctBidders(bids)
	if len(bidders) < 2 {
		return finding, nil
	}

	profiles := map[domain.BidderId]*bidder.Profile{}
	for _, id := range bidders {
		profile, err := im.bidderRepo.FindOne(c, bidder.ProfileId{Id: id})
		if err != nil {
			c.WithFields(log.Fields{
				"err":      err,
				"bidderId": id,
			}).Warn("profile unavailable, identity signals skipped for bidder")
			continue
		}
		profiles[id] = profile
	}

	linked := map[domain.BidderId][]domain.BidderId{}
	link := func(a, b domain.BidderId) {
		linked[a] = append(linked[a], b)
		linked[b] = append(linked[b], a)
	}

	for i := 0; i < len(bidders); i++ {
		for j := i + 1; j < len(bidders); j++ {
			a, b := bidders[i], bidders[j]

			if runs := alternationRuns(bids, a, b); runs >= coordinatedRuns {
				finding.Evidence = append(finding.Evidence,
					fmt.Sprintf("bidders %s and %s alternated %d times within %s of each other", a, b, runs, coordinatedGap))
				link(a, b)
			}

			if pa, pb := profiles[a], profiles[b]; pa != nil && pb != nil {
				for _, signal := range sharedIdentitySignals(pa, pb) {
					finding.Evidence = append(finding.Evidence,
						fmt.Sprintf("bidders %s and %s share %s", a, b, signal))
					link(a, b)
				}
			}
		}
	}

	finding.SuspectedGroups = groupLinked(bidders, linked)
	return finding, nil
}

func distinctBidders(bids []*auction.Bid) []domain.BidderId {
	seen := map[domain.BidderId]bool{}
	res := []domain.BidderId{}
	for _, b := range bids {
		if !seen[b.BidderId] {
			seen[b.BidderId] = true
			res = append(res, b.BidderId)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res
}

// alternationRuns counts consecutive bid pairs where a and b answer each
// other inside coordinatedGap.
func alternationRuns(bids []*auction.Bid, a, b domain.BidderId) int {
	runs := 0
	var prev *auction.Bid
	for _, bid := range bids {
		if bid.BidderId != a && bid.BidderId != b {
			continue
		}
		if prev != nil && prev.BidderId != bid.BidderId && bid.Time.Sub(prev.Time) <= coordinatedGap {
			runs++
		}
		prev = bid
	}
	return runs
}

func sharedIdentitySignals(a, b *bidder.Profile) []string {
	signals := []string{}

	devices := map[domain.DeviceId]bool{}
	for _, d := range a.Devices {
		devices[d] = true
	}
	for _, d := range b.Devices {
		if devices[d] {
			signals = append(signals, fmt.Sprintf("device %s", d))
		}
	}

	if a.ContactHash != "" && a.ContactHash == b.ContactHash {
		signals = append(signals, "contact details")
	}
	if a.PaymentHash != "" && a.PaymentHash == b.PaymentHash {
		signals = append(signals, "payment instrument")
	}
	return signals
}

// groupLinked collapses pairwise links into connected groups.
func groupLinked(bidders []domain.BidderId, linked map[domain.BidderId][]domain.BidderId) [][]domain.BidderId {
	visited := map[domain.BidderId]bool{}
	groups := [][]domain.BidderId{}

	for _, start := range bidders {
		if visited[start] || len(linked[start]) == 0 {
			continue
		}
		group := []domain.BidderId{}
		queue := []domain.BidderId{start}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			if visited[cur] {
				continue
			}
			visited[cur] = true
			group = append(group, cur)
			queue = append(queue, linked[cur]...)
		}
		sort.Slice(group, func(i, j int) bool { return group[i] < group[j] })
		groups = append(groups, group)
	}
	return groups
}
