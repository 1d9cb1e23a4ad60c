package domain

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"
)

type SortDir int8

const (
	SortDirAsc  = 1
	SortDirDesc = -1
)

// Table is a mongo collection name
type Table string

const (
	TableAuctions             Table = "auctions"
	TableBids                 Table = "bids"
	TableProperties           Table = "properties"
	TableBidders              Table = "bidders"
	TableAuditRecords         Table = "audit_records"
	TableFraudReports         Table = "fraud_reports"
	TableHealthCheck          Table = "health_check"
	TableSuspiciousActivities Table = "suspicious_activities"
)

type AuctionId string

func (id AuctionId) String() string {
	return string(id)
}

func (id AuctionId) IsEmpty() bool {
	return len(id) == 0
}

type BidderId string

func (id BidderId) String() string {
	return string(id)
}

func (id BidderId) ToLower() BidderId {
	return BidderId(strings.ToLower(string(id)))
}

func (id BidderId) IsEmpty() bool {
	return len(id) == 0
}

func (id BidderId) Equals(other BidderId) bool {
	return strings.EqualFold(string(id), string(other))
}

// TitleId is a land-title reference issued by the land registry
type TitleId string

func (id TitleId) String() string {
	return string(id)
}

func (id TitleId) IsEmpty() bool {
	return len(id) == 0
}

type OwnerId string

func (id OwnerId) String() string {
	return string(id)
}

type DeviceId string

type PropertyId string

func (id PropertyId) String() string {
	return string(id)
}

func (id PropertyId) IsEmpty() bool {
	return len(id) == 0
}

// ParseAmount parses a decimal money string, e.g. "1000000.50".
// Amounts are persisted as strings and only parsed at the edges.
func ParseAmount(s string) (decimal.Decimal, error) {
	if len(s) == 0 {
		return decimal.Zero, ErrInvalidNumberFormat
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, xerrors.Errorf("invalid amount %q: %w", s, ErrInvalidNumberFormat)
	}
	return d, nil
}
