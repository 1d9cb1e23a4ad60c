package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"

	bCtx "github.com/lelongx/goapi/base/ctx"
	"github.com/lelongx/goapi/domain"
	"github.com/lelongx/goapi/domain/compliance"
	mCompliance "github.com/lelongx/goapi/domain/compliance/mocks"
	"github.com/lelongx/goapi/domain/property"
	"github.com/lelongx/goapi/service/registry"
	mRegistry "github.com/lelongx/goapi/service/registry/mocks"
)

type checkerTestSuite struct {
	suite.Suite

	registry *mRegistry.Client
	checker  compliance.Checker
}

func TestChecker(t *testing.T) {
	suite.Run(t, new(checkerTestSuite))
}

func (s *checkerTestSuite) SetupTest() {
	s.registry = &mRegistry.Client{}
	s.checker = New(&CheckerCfg{
		Predicates: DefaultPredicates(s.registry),
	})
}

func (s *checkerTestSuite) prop() *property.Property {
	return &property.Property{
		Id:            "prop-1",
		TitleId:       "GRN 1234/2020",
		OwnerId:       "owner-1",
		Category:      property.CategoryResidential,
		ReservePrice:  "500000",
		AuctioneerLic: "LIC-7788",
	}
}

func (s *checkerTestSuite) registryAllClear() {
	s.registry.On("GetTitleStatus", mock.Anything, mock.Anything).
		Return(&registry.TitleStatus{TitleId: "GRN 1234/2020", Clear: true, Owner: "owner-1"}, nil)
	s.registry.On("GetLicenseStatus", mock.Anything, mock.Anything).
		Return(&registry.LicenseStatus{License: "LIC-7788", Valid: true, Expiry: time.Now().Add(24 * time.Hour)}, nil)
}

func (s *checkerTestSuite) TestCleanPropertyPasses() {
	s.registryAllClear()

	outcome, err := s.checker.Evaluate(bCtx.Background(), s.prop())
	s.Require().NoError(err)
	s.True(outcome.Passed)
	s.Empty(outcome.Issues)
}

func (s *checkerTestSuite) TestAllViolationsReportedTogether() {
	s.registry.On("GetTitleStatus", mock.Anything, mock.Anything).
		Return(&registry.TitleStatus{Clear: false, Caveats: []string{"private caveat"}}, nil)
	s.registry.On("GetLicenseStatus", mock.Anything, mock.Anything).
		Return(&registry.LicenseStatus{Valid: false}, nil)

	p := s.prop()
	p.ReservePrice = "0"
	p.NativeLand = true

	outcome, err := s.checker.Evaluate(bCtx.Background(), p)
	s.Require().NoError(err)
	s.False(outcome.Passed)
	// every failed predicate contributes, not just the first
	s.Len(outcome.Issues, 4)
}

func (s *checkerTestSuite) TestZeroReserveFails() {
	s.registryAllClear()
	p := s.prop()
	p.ReservePrice = "0"

	outcome, err := s.checker.Evaluate(bCtx.Background(), p)
	s.Require().NoError(err)
	s.False(outcome.Passed)
	s.Len(outcome.Issues, 1)
	s.Contains(outcome.Issues[0], "reserve price")
}

func (s *checkerTestSuite) TestMissingTitleFails() {
	s.registryAllClear()
	p := s.prop()
	p.TitleId = ""

	outcome, err := s.checker.Evaluate(bCtx.Background(), p)
	s.Require().NoError(err)
	s.False(outcome.Passed)
	s.Contains(outcome.Issues[0], "no title reference")
	s.registry.AssertNotCalled(s.T(), "GetTitleStatus", mock.Anything, mock.Anything)
}

func (s *checkerTestSuite) TestMalformedTitleFails() {
	s.registryAllClear()
	p := s.prop()
	p.TitleId = "LOT 99"

	outcome, err := s.checker.Evaluate(bCtx.Background(), p)
	s.Require().NoError(err)
	s.False(outcome.Passed)
	s.Contains(outcome.Issues[0], "malformed")
}

func (s *checkerTestSuite) TestOwnerMismatchFails() {
	s.registry.On("GetTitleStatus", mock.Anything, mock.Anything).
		Return(&registry.TitleStatus{Clear: true, Owner: "somebody-else"}, nil)
	s.registry.On("GetLicenseStatus", mock.Anything, mock.Anything).
		Return(&registry.LicenseStatus{Valid: true}, nil)

	outcome, err := s.checker.Evaluate(bCtx.Background(), s.prop())
	s.Require().NoError(err)
	s.False(outcome.Passed)
	s.Contains(outcome.Issues[0], "does not match seller")
}

func (s *checkerTestSuite) TestNativeLandFails() {
	s.registryAllClear()
	p := s.prop()
	p.NativeLand = true

	outcome, err := s.checker.Evaluate(bCtx.Background(), p)
	s.Require().NoError(err)
	s.False(outcome.Passed)
	s.Contains(outcome.Issues[0], "native customary land")
}

func (s *checkerTestSuite) TestMalayReserveCommercialFails() {
	s.registryAllClear()
	p := s.prop()
	p.MalayReserve = true
	p.Category = property.CategoryCommercial

	outcome, err := s.checker.Evaluate(bCtx.Background(), p)
	s.Require().NoError(err)
	s.False(outcome.Passed)
	s.Contains(outcome.Issues[0], "malay reserve")
}

func (s *checkerTestSuite) TestMalayReserveResidentialPasses() {
	s.registryAllClear()
	p := s.prop()
	p.MalayReserve = true

	outcome, err := s.checker.Evaluate(bCtx.Background(), p)
	s.Require().NoError(err)
	s.True(outcome.Passed)
}

func (s *checkerTestSuite) TestRegistryOutageIsNotARejection() {
	s.registry.On("GetTitleStatus", mock.Anything, mock.Anything).
		Return(nil, registry.ErrStatusCodeNotOk)

	outcome, err := s.checker.Evaluate(bCtx.Background(), s.prop())
	s.Nil(outcome)
	s.Require().True(xerrors.Is(err, domain.ErrCollaboratorDown))
}

func (s *checkerTestSuite) TestPredicateErrorShortCircuits() {
	failing := &mCompliance.Predicate{}
	failing.On("Name").Return("boom")
	failing.On("Evaluate", mock.Anything, mock.Anything).
		Return(compliance.Result{}, xerrors.New("downstream timeout"))

	checker := New(&CheckerCfg{Predicates: []compliance.Predicate{failing}})
	outcome, err := checker.Evaluate(bCtx.Background(), s.prop())
	s.Nil(outcome)
	s.Require().True(xerrors.Is(err, domain.ErrCollaboratorDown))
}
